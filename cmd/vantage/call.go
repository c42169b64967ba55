package main

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CallCmd struct {
	Operation string   `arg:"" help:"Operation name (e.g. device_restart)"`
	Args      []string `arg:"" optional:"" help:"Arguments as name=value pairs"`
	Site      string   `help:"Site identifier, canonical or symbolic"`
	Filter    string   `help:"Server-side filter for list operations"`
	Body      string   `help:"JSON request body"`
	DryRun    bool     `help:"Print the request instead of executing it"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CallCmd) Run(ctx *Globals) error {
	e, err := ctx.Engine()
	if err != nil {
		return err
	}
	op, exists := e.Index().Lookup(cmd.Operation)
	if !exists {
		return fmt.Errorf("operation %q not found", cmd.Operation)
	}

	params, err := cmd.params(ctx, op)
	if err != nil {
		return err
	}

	if cmd.DryRun {
		req, err := e.DryRun(op.Name(), params)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	response, err := e.Call(ctx.ctx, op.Name(), params)
	if err != nil {
		return err
	}
	return printJSON(response)
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func (cmd *CallCmd) params(ctx *Globals, op catalog.Operation) (catalog.Params, error) {
	params := catalog.Params{
		Site:   cmd.Site,
		Args:   make(map[string]string),
		Query:  make(map[string]string),
		Filter: cmd.Filter,
	}
	if params.Site == "" {
		params.Site = ctx.config.Site
	}

	// Bind name=value pairs to declared arguments and query parameters
	for _, pair := range cmd.Args {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return params, fmt.Errorf("expected name=value, got %q", pair)
		}
		switch {
		case hasArg(op, name):
			params.Args[name] = value
		case hasQuery(op, name):
			params.Query[name] = value
		default:
			return params, fmt.Errorf("operation %q has no parameter %q", op.Name(), name)
		}
	}

	if cmd.Body != "" {
		var body any
		if err := json.Unmarshal([]byte(cmd.Body), &body); err != nil {
			return params, fmt.Errorf("invalid body: %w", err)
		}
		params.Body = body
	}
	return params, nil
}

func hasArg(op catalog.Operation, name string) bool {
	for _, arg := range op.Args {
		if arg.Name == name {
			return true
		}
	}
	return false
}

func hasQuery(op catalog.Operation, name string) bool {
	for _, qp := range op.Query {
		if qp.Name == name || catalog.CamelCase(qp.Name) == name {
			return true
		}
	}
	return false
}

func printJSON(response json.RawMessage) error {
	if len(response) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(response, &value); err != nil {
		fmt.Println(string(response))
		return nil
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
