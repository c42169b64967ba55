/*
catalog declares the callable operations of the Vantage Cloud API. The
catalog is a static, read-only list: each entry names an HTTP method, a path
template with {name} placeholders, the positional arguments that fill those
placeholders, and the flags that drive site resolution, pagination and
request bodies.
*/
package catalog

import (
	"regexp"
	"strings"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Arg is a positional argument filling one path placeholder.
type Arg struct {
	Name        string
	Description string
}

// QueryParam is an extra named query parameter for one operation. Callers
// may supply it under the declared name or its camel-cased alias.
type QueryParam struct {
	Name        string
	Description string
	Required    bool
}

// Operation describes one callable API operation. Every placeholder in the
// path template corresponds to either the site placeholder or a declared
// positional argument, and every declared argument appears exactly once as
// a placeholder; Validate checks this invariant.
type Operation struct {
	Group       string // empty for ungrouped operations
	Action      string
	OperationId string
	Method      string
	Path        string
	Description string
	Args        []Arg
	NeedsSite   bool
	Paginatable bool
	HasBody     bool
	Query       []QueryParam
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// SitePlaceholder is the path token substituted during site resolution.
const SitePlaceholder = "{siteId}"

var placeholderRe = regexp.MustCompile(`\{[^{}]+\}`)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the externally-visible operation name, group_action.
func (op Operation) Name() string {
	if op.Group == "" {
		return op.Action
	}
	return op.Group + "_" + op.Action
}

// Validate checks the placeholder invariant against the path template.
func (op Operation) Validate() error {
	placeholders := placeholderRe.FindAllString(op.Path, -1)

	seen := make(map[string]int, len(placeholders))
	for _, token := range placeholders {
		seen[token]++
	}
	for _, arg := range op.Args {
		token := "{" + arg.Name + "}"
		if seen[token] != 1 {
			return vantage.ErrBadParameter.Withf("%s: argument %q appears %d times in path %q", op.OperationId, arg.Name, seen[token], op.Path)
		}
		delete(seen, token)
	}
	for token := range seen {
		if token == SitePlaceholder {
			if !op.NeedsSite {
				return vantage.ErrBadParameter.Withf("%s: path %q has a site placeholder but the operation does not need a site", op.OperationId, op.Path)
			}
			continue
		}
		return vantage.ErrBadParameter.Withf("%s: path %q has undeclared placeholder %s", op.OperationId, op.Path, token)
	}
	if op.NeedsSite && !strings.Contains(op.Path, SitePlaceholder) {
		return vantage.ErrBadParameter.Withf("%s: operation needs a site but path %q has no site placeholder", op.OperationId, op.Path)
	}
	return nil
}
