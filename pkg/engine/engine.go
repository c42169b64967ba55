/*
engine executes catalog operations against a transport: it resolves symbolic
site identifiers, builds concrete requests, and drives pagination for
list-shaped operations. The engine owns no HTTP details; the transport is
the only suspension point.
*/
package engine

import (
	"context"
	"encoding/json"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Engine resolves and executes operations by name.
type Engine struct {
	index     *catalog.Index
	resolver  *openapi.Resolver
	transport vantage.Transport
	sites     *SiteResolver
	pageSize  int64
}

// Opt is a functional option for the engine.
type Opt func(*Engine)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an engine over a catalog index, a schema resolver and a
// transport. Each engine owns its own site-resolution cache.
func New(index *catalog.Index, resolver *openapi.Resolver, transport vantage.Transport, opts ...Opt) *Engine {
	engine := &Engine{
		index:     index,
		resolver:  resolver,
		transport: transport,
		sites:     NewSiteResolver(index, transport),
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// WithPageSize overrides the page size used for paginated operations.
func WithPageSize(size int64) Opt {
	return func(engine *Engine) {
		engine.pageSize = size
		engine.sites.pageSize = size
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Index returns the catalog index.
func (e *Engine) Index() *catalog.Index {
	return e.index
}

// Resolver returns the schema resolver.
func (e *Engine) Resolver() *openapi.Resolver {
	return e.resolver
}

// Sites returns the engine's site resolver.
func (e *Engine) Sites() *SiteResolver {
	return e.sites
}

// Call executes the named operation: the site identifier is canonicalised
// first when the operation is site-scoped, then the request cycle runs
// through the paginator. List-shaped results are returned merged in the
// uniform { data, totalCount } shape.
func (e *Engine) Call(ctx context.Context, name string, params catalog.Params) (json.RawMessage, error) {
	op, exists := e.index.Lookup(name)
	if !exists {
		return nil, vantage.ErrNotFound.Withf("operation %q", name)
	}
	if op.NeedsSite && params.Site != "" {
		site, err := e.sites.Resolve(ctx, params.Site)
		if err != nil {
			return nil, err
		}
		params.Site = site
	}
	return CallAllPages(ctx, e.transport, op, params, e.pageSize)
}

// DryRun returns the concrete request the named operation would issue, for
// display. No network calls are made; a symbolic site identifier is left
// as supplied.
func (e *Engine) DryRun(name string, params catalog.Params) (catalog.Request, error) {
	op, exists := e.index.Lookup(name)
	if !exists {
		return catalog.Request{}, vantage.ErrNotFound.Withf("operation %q", name)
	}
	return catalog.Resolve(op, params)
}
