package catalog

import (
	"net/url"
	"strconv"
	"strings"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Params are the caller-supplied invocation parameters for one operation.
type Params struct {
	// Site is the site identifier, symbolic or canonical. When empty the
	// literal "default" is substituted for operations that need a site.
	Site string

	// Args are positional argument values, keyed by declared name.
	Args map[string]string

	// Query holds extra named query parameters, keyed by declared name or
	// its camel-cased alias.
	Query map[string]string

	// Pagination parameters, only emitted for paginatable operations.
	Offset *int64
	Limit  *int64
	Filter string

	// Body is the request body, only emitted when the operation accepts one.
	Body any
}

// Request is a concrete request descriptor ready for a Transport, or for
// dry-run display.
type Request struct {
	Method string     `json:"method"`
	Path   string     `json:"path"`
	Query  url.Values `json:"query,omitempty"`
	Body   any        `json:"body,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// DefaultSite is substituted when no site identifier is supplied.
const DefaultSite = "default"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resolve maps an operation and its invocation parameters to a concrete
// request. A placeholder left unresolved after substitution is an error: a
// request with a literal {token} in its path is never emitted.
func Resolve(op Operation, params Params) (Request, error) {
	path := op.Path

	// Site substitution first, then positional arguments in declared order
	if op.NeedsSite {
		site := params.Site
		if site == "" {
			site = DefaultSite
		}
		path = strings.ReplaceAll(path, SitePlaceholder, site)
	}
	for _, arg := range op.Args {
		if value := params.Args[arg.Name]; value != "" {
			path = strings.ReplaceAll(path, "{"+arg.Name+"}", value)
		}
	}
	if token := placeholderRe.FindString(path); token != "" {
		return Request{}, vantage.ErrBadParameter.Withf("%s: missing value for %s", op.Name(), token)
	}

	// Query construction. Pagination parameters are only valid on
	// paginatable operations, and only when supplied.
	query := url.Values{}
	if op.Paginatable {
		if params.Offset != nil {
			query.Set("offset", strconv.FormatInt(*params.Offset, 10))
		}
		if params.Limit != nil {
			query.Set("limit", strconv.FormatInt(*params.Limit, 10))
		}
		if params.Filter != "" {
			query.Set("filter", params.Filter)
		}
	}
	for _, qp := range op.Query {
		if value, exists := params.Query[qp.Name]; exists {
			query.Set(qp.Name, value)
		} else if value, exists := params.Query[CamelCase(qp.Name)]; exists {
			query.Set(qp.Name, value)
		}
	}
	if len(query) == 0 {
		query = nil
	}

	// Drop any supplied body on operations that do not accept one, so an
	// unrelated payload can never leak onto the wire
	var body any
	if op.HasBody {
		body = params.Body
	}

	return Request{
		Method: op.Method,
		Path:   path,
		Query:  query,
		Body:   body,
	}, nil
}

// CamelCase converts a snake_case name to its camelCase alias.
func CamelCase(name string) string {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return name
	}
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
