package catalog_test

import (
	"testing"

	// Packages
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	assert "github.com/stretchr/testify/assert"
)

func operation(t *testing.T, name string) catalog.Operation {
	t.Helper()
	ix, err := catalog.NewIndex(catalog.Operations)
	if err != nil {
		t.Fatal(err)
	}
	op, exists := ix.Lookup(name)
	if !exists {
		t.Fatalf("no operation %q", name)
	}
	return op
}

func TestResolveDefaultSite(t *testing.T) {
	assert := assert.New(t)

	// An omitted site resolves to the literal default, with no lookup
	req, err := catalog.Resolve(operation(t, "site_get"), catalog.Params{})
	if assert.NoError(err) {
		assert.Equal("GET", req.Method)
		assert.Equal("/sites/default", req.Path)
	}
}

func TestResolveSubstitution(t *testing.T) {
	assert := assert.New(t)

	req, err := catalog.Resolve(operation(t, "device_get"), catalog.Params{
		Site: "5f3a9b2c-office",
		Args: map[string]string{"deviceId": "ap-17"},
	})
	if assert.NoError(err) {
		assert.Equal("/sites/5f3a9b2c-office/devices/ap-17", req.Path)
		assert.Nil(req.Query)
		assert.Nil(req.Body)
	}
}

func TestResolveMissingArg(t *testing.T) {
	assert := assert.New(t)

	_, err := catalog.Resolve(operation(t, "device_get"), catalog.Params{Site: "hq"})
	if assert.Error(err) {
		assert.Contains(err.Error(), "{deviceId}")
	}
}

func TestResolvePagination(t *testing.T) {
	assert := assert.New(t)
	offset, limit := int64(200), int64(100)

	req, err := catalog.Resolve(operation(t, "device_list"), catalog.Params{
		Offset: &offset,
		Limit:  &limit,
		Filter: "status eq online",
	})
	if assert.NoError(err) {
		assert.Equal("200", req.Query.Get("offset"))
		assert.Equal("100", req.Query.Get("limit"))
		assert.Equal("status eq online", req.Query.Get("filter"))
	}

	// Pagination parameters are only emitted when supplied
	req, err = catalog.Resolve(operation(t, "device_list"), catalog.Params{})
	if assert.NoError(err) {
		assert.Nil(req.Query)
	}

	// And never on a non-paginatable operation
	req, err = catalog.Resolve(operation(t, "site_get"), catalog.Params{
		Offset: &offset,
		Limit:  &limit,
	})
	if assert.NoError(err) {
		assert.Nil(req.Query)
	}
}

func TestResolveQueryAlias(t *testing.T) {
	assert := assert.New(t)

	// Declared name and camel-cased alias both bind, emitted under the
	// declared name
	req, err := catalog.Resolve(operation(t, "client_list"), catalog.Params{
		Query: map[string]string{"connected_only": "true"},
	})
	if assert.NoError(err) {
		assert.Equal("true", req.Query.Get("connected_only"))
	}

	req, err = catalog.Resolve(operation(t, "client_list"), catalog.Params{
		Query: map[string]string{"connectedOnly": "true"},
	})
	if assert.NoError(err) {
		assert.Equal("true", req.Query.Get("connected_only"))
	}

	// Undeclared parameters are dropped
	req, err = catalog.Resolve(operation(t, "client_list"), catalog.Params{
		Query: map[string]string{"bogus": "1"},
	})
	if assert.NoError(err) {
		assert.Nil(req.Query)
	}
}

func TestResolveBody(t *testing.T) {
	assert := assert.New(t)
	body := map[string]any{"name": "renamed"}

	req, err := catalog.Resolve(operation(t, "device_set"), catalog.Params{
		Args: map[string]string{"deviceId": "sw-3"},
		Body: body,
	})
	if assert.NoError(err) {
		assert.Equal("PUT", req.Method)
		assert.Equal(body, req.Body)
	}

	// A body supplied to an operation without one never reaches the wire
	req, err = catalog.Resolve(operation(t, "device_get"), catalog.Params{
		Args: map[string]string{"deviceId": "sw-3"},
		Body: body,
	})
	if assert.NoError(err) {
		assert.Nil(req.Body)
	}
}
