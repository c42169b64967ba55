package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	mcp "github.com/perimeterlabs/vantage/pkg/mcp"
	tool "github.com/perimeterlabs/vantage/pkg/tool"
	version "github.com/perimeterlabs/vantage/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type MCPCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (*MCPCmd) Run(ctx *Globals) error {
	e, err := ctx.Engine()
	if err != nil {
		return err
	}
	toolkit, err := tool.NewToolkit(tool.NewTools(e)...)
	if err != nil {
		return err
	}

	// Log tools that will be exposed via MCP
	var names []string
	for _, t := range toolkit.Tools() {
		names = append(names, t.Name())
	}
	fmt.Fprintln(os.Stderr, "Starting MCP server with tools:", strings.Join(names, ", "))

	// Create MCP server and run it on stdio
	server, err := mcp.New(execName(), version.Version(),
		mcp.WithToolkit(toolkit),
	)
	if err != nil {
		return err
	}
	return server.RunStdio(ctx.ctx, os.Stdin, os.Stdout)
}
