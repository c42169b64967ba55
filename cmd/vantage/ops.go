package main

import (
	"fmt"
	"strings"

	// Packages
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
	table "github.com/perimeterlabs/vantage/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type OpsCmd struct{}

type DescribeCmd struct {
	Operation string `arg:"" help:"Operation name (e.g. device_list)"`
}

// opsTable renders the catalog as a terminal table.
type opsTable []catalog.Operation

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (*OpsCmd) Run(ctx *Globals) error {
	index, err := ctx.Index()
	if err != nil {
		return err
	}
	fmt.Println(table.Render(opsTable(index.All())))
	return nil
}

func (cmd *DescribeCmd) Run(ctx *Globals) error {
	index, err := ctx.Index()
	if err != nil {
		return err
	}
	resolver, err := ctx.Resolver()
	if err != nil {
		return err
	}
	op, exists := index.Lookup(cmd.Operation)
	if !exists {
		op, exists = index.LookupId(cmd.Operation)
	}
	if !exists {
		return fmt.Errorf("operation %q not found", cmd.Operation)
	}

	fmt.Printf("%s  %s %s\n", op.Name(), op.Method, op.Path)
	if op.Description != "" {
		fmt.Println(" ", op.Description)
	}
	var flags []string
	if op.NeedsSite {
		flags = append(flags, "site-scoped")
	}
	if op.Paginatable {
		flags = append(flags, "paginated")
	}
	if op.HasBody {
		flags = append(flags, "body")
	}
	if len(flags) > 0 {
		fmt.Println(" ", strings.Join(flags, ", "))
	}
	for _, arg := range op.Args {
		fmt.Printf("  %s (required)  %s\n", arg.Name, arg.Description)
	}
	for _, qp := range op.Query {
		required := ""
		if qp.Required {
			required = " (required)"
		}
		fmt.Printf("  --%s%s  %s\n", qp.Name, required, qp.Description)
	}

	// Describe the request body shape from the schema document
	if op.HasBody {
		if _, _, docOp, exists := resolver.FindOperation(op.OperationId); exists {
			if node := docOp.Schema(); node != nil && node.Kind == openapi.KindRef {
				fmt.Println()
				fmt.Println(resolver.Describe(node.Ref, 3))
			}
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (t opsTable) Header() []string {
	return []string{"Operation", "Method", "Path", "Flags", "Description"}
}

func (t opsTable) Len() int {
	return len(t)
}

func (t opsTable) Row(i int) []any {
	op := t[i]
	var flags []string
	if op.NeedsSite {
		flags = append(flags, "site")
	}
	if op.Paginatable {
		flags = append(flags, "paged")
	}
	if op.HasBody {
		flags = append(flags, "body")
	}
	return []any{op.Name(), op.Method, op.Path, strings.Join(flags, ","), op.Description}
}
