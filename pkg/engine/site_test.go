package engine_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	engine "github.com/perimeterlabs/vantage/pkg/engine"
	assert "github.com/stretchr/testify/assert"
)

const siteListing = `{
	"data": [
		{"id": "5f3a9b2c-0001", "internalReference": "default", "name": "Head Office"},
		{"id": "7e1d44f0-0002", "internalReference": "warehouse", "name": "Warehouse"}
	],
	"totalCount": 2
}`

func index(t *testing.T) *catalog.Index {
	t.Helper()
	ix, err := catalog.NewIndex(catalog.Operations)
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func listingTransport(calls *int) vantage.Transport {
	return vantage.TransportFunc(func(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
		*calls++
		return json.RawMessage(siteListing), nil
	})
}

func TestIsCanonical(t *testing.T) {
	assert := assert.New(t)
	assert.True(engine.IsCanonical("5f3a9b2c-0001"))
	assert.True(engine.IsCanonical("DEADBEEF-site"))
	assert.False(engine.IsCanonical("default"))
	assert.False(engine.IsCanonical("5f3a9b2-short"))
	assert.False(engine.IsCanonical("5f3a9b2cznohyphen"))
	assert.False(engine.IsCanonical(""))
}

func TestResolveCanonicalNoFetch(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	resolver := engine.NewSiteResolver(index(t), listingTransport(&calls))

	// A canonical identifier never touches the network
	site, err := resolver.Resolve(context.TODO(), "5f3a9b2c-0001")
	if assert.NoError(err) {
		assert.Equal("5f3a9b2c-0001", site)
		assert.Equal(0, calls)
	}
}

func TestResolveSymbolic(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	resolver := engine.NewSiteResolver(index(t), listingTransport(&calls))

	site, err := resolver.Resolve(context.TODO(), "warehouse")
	if assert.NoError(err) {
		assert.Equal("7e1d44f0-0002", site)
		assert.Equal(1, calls)
	}

	// Repeat resolutions are served from the cache
	site, err = resolver.Resolve(context.TODO(), "warehouse")
	if assert.NoError(err) {
		assert.Equal("7e1d44f0-0002", site)
		assert.Equal(1, calls)
	}

	// A different symbolic identifier resolves independently
	site, err = resolver.Resolve(context.TODO(), "default")
	if assert.NoError(err) {
		assert.Equal("5f3a9b2c-0001", site)
		assert.Equal(2, calls)
	}
}

func TestResolveNotFound(t *testing.T) {
	assert := assert.New(t)
	calls := 0
	resolver := engine.NewSiteResolver(index(t), listingTransport(&calls))

	_, err := resolver.Resolve(context.TODO(), "no-such-site")
	if assert.Error(err) {
		assert.True(errors.Is(err, vantage.ErrNotFound))
		assert.Contains(err.Error(), "no-such-site")
	}

	// A failed resolution is not cached
	_, err = resolver.Resolve(context.TODO(), "no-such-site")
	assert.Error(err)
	assert.Equal(2, calls)
}

func TestResolveListingFailure(t *testing.T) {
	assert := assert.New(t)
	transport := vantage.TransportFunc(func(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
		return nil, vantage.ErrInternalServerError.With("listing unavailable")
	})
	resolver := engine.NewSiteResolver(index(t), transport)

	// The fetch failure propagates, not a not-found
	_, err := resolver.Resolve(context.TODO(), "warehouse")
	if assert.Error(err) {
		assert.False(errors.Is(err, vantage.ErrNotFound))
		assert.Contains(err.Error(), "listing unavailable")
	}
}
