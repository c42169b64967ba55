package engine

import (
	"context"
	"encoding/json"
	"regexp"
	"sync"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// SiteResolver converts a caller-supplied symbolic site identifier (an
// internal reference such as "default") into the canonical identifier the
// wire API expects. Resolution is cached per symbolic identifier for the
// lifetime of the resolver, so distinct symbolic ids resolve independently
// and a repeated resolution costs no network calls.
type SiteResolver struct {
	transport vantage.Transport
	index     *catalog.Index
	pageSize  int64

	mu    sync.Mutex
	cache map[string]string
}

// siteEntry is the subset of a site listing entry used for matching.
type siteEntry struct {
	Id                string `json:"id"`
	InternalReference string `json:"internalReference"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// A canonical site identifier begins with 8 hexadecimal characters followed
// by a hyphen.
var canonicalSiteRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-`)

// The well-known listing operation used for resolution.
const listSitesId = "listSites"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSiteResolver creates a resolver with an empty cache. Cache state is
// owned by the instance, never shared between sessions.
func NewSiteResolver(index *catalog.Index, transport vantage.Transport) *SiteResolver {
	return &SiteResolver{
		transport: transport,
		index:     index,
		pageSize:  DefaultPageSize,
		cache:     make(map[string]string),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsCanonical reports whether the identifier already has the canonical
// lexical shape.
func IsCanonical(site string) bool {
	return canonicalSiteRe.MatchString(site)
}

// Resolve returns the canonical identifier for a site. A canonical input is
// returned unchanged with zero network calls. A symbolic input is looked up
// in the full paginated site listing, matching the entry's internal
// reference or id; a listing fetch failure propagates verbatim, and a fetch
// that finds no match is a distinct not-found error rather than passing the
// unresolved identifier through to the wire API.
func (r *SiteResolver) Resolve(ctx context.Context, site string) (string, error) {
	if IsCanonical(site) {
		return site, nil
	}

	r.mu.Lock()
	cached, exists := r.cache[site]
	r.mu.Unlock()
	if exists {
		return cached, nil
	}

	op, exists := r.index.LookupId(listSitesId)
	if !exists {
		return "", vantage.ErrInternalServerError.Withf("operation %q not in catalog", listSitesId)
	}
	response, err := CallAllPages(ctx, r.transport, op, catalog.Params{}, r.pageSize)
	if err != nil {
		return "", err
	}

	var listing struct {
		Data []siteEntry `json:"data"`
	}
	if err := json.Unmarshal(response, &listing); err != nil {
		return "", vantage.ErrInternalServerError.Withf("unexpected site listing: %v", err)
	}
	for _, entry := range listing.Data {
		if entry.InternalReference == site || entry.Id == site {
			r.mu.Lock()
			r.cache[site] = entry.Id
			r.mu.Unlock()
			return entry.Id, nil
		}
	}

	return "", vantage.ErrNotFound.Withf("site %q", site)
}
