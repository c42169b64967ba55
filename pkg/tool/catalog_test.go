package tool_test

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	engine "github.com/perimeterlabs/vantage/pkg/engine"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
	tool "github.com/perimeterlabs/vantage/pkg/tool"
	vantageapi "github.com/perimeterlabs/vantage/pkg/vantageapi"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

type recorded struct {
	method string
	path   string
	query  url.Values
	body   any
}

func newEngine(t *testing.T, record *recorded, response string) *engine.Engine {
	t.Helper()
	doc, err := vantageapi.Document()
	if err != nil {
		t.Fatal(err)
	}
	ix, err := catalog.NewIndex(catalog.Operations)
	if err != nil {
		t.Fatal(err)
	}
	transport := vantage.TransportFunc(func(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
		if record != nil {
			*record = recorded{method: method, path: path, query: query, body: body}
		}
		return json.RawMessage(response), nil
	})
	return engine.New(ix, openapi.NewResolver(doc), transport)
}

func toolkit(t *testing.T, e *engine.Engine) *tool.Toolkit {
	t.Helper()
	tk, err := tool.NewToolkit(tool.NewTools(e)...)
	if err != nil {
		t.Fatal(err)
	}
	return tk
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNewTools(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, nil, `{}`)

	tools := tool.NewTools(e)
	assert.Len(tools, len(catalog.Operations))
	for i, item := range tools {
		assert.Equal("vantage_"+catalog.Operations[i].Name(), item.Name())
		assert.NotEmpty(item.Description())
	}
}

func TestToolSchemas(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, nil, `{}`)
	tk := toolkit(t, e)

	// A site-scoped operation with a positional argument
	schema, err := tk.Lookup("vantage_device_get").Schema()
	if assert.NoError(err) {
		assert.Contains(schema.Properties, "site")
		assert.Contains(schema.Properties, "deviceId")
		assert.Contains(schema.Required, "deviceId")
		assert.NotContains(schema.Properties, "filter")
	}

	// A paginatable listing carries filter and its query parameters
	schema, err = tk.Lookup("vantage_device_list").Schema()
	if assert.NoError(err) {
		assert.Contains(schema.Properties, "filter")
		assert.Contains(schema.Properties, "device_type")
		assert.Contains(schema.Properties, "status")
	}

	// An ungrouped operation has none of the site machinery
	schema, err = tk.Lookup("vantage_info").Schema()
	if assert.NoError(err) {
		assert.NotContains(schema.Properties, "site")
		assert.Empty(schema.Required)
	}
}

func TestToolBodySchema(t *testing.T) {
	assert := assert.New(t)
	e := newEngine(t, nil, `{}`)
	tk := toolkit(t, e)

	// The upgrade body comes from the API document, with its required
	// properties carried through
	schema, err := tk.Lookup("vantage_device_upgrade").Schema()
	if !assert.NoError(err) {
		return
	}
	assert.Contains(schema.Required, "body")
	body := schema.Properties["body"]
	if assert.NotNil(body) {
		assert.Equal("object", body.Type)
		assert.Contains(body.Properties, "version")
		assert.Contains(body.Required, "version")
	}
}

func TestToolRun(t *testing.T) {
	assert := assert.New(t)
	var record recorded
	e := newEngine(t, &record, `{"id": "ap-17", "status": "restarting"}`)
	tk := toolkit(t, e)

	result, err := tk.Run(context.TODO(), "vantage_device_restart", map[string]any{
		"site":     "00ab12cd-hq",
		"deviceId": "ap-17",
	})
	if assert.NoError(err) {
		assert.Equal("POST", record.method)
		assert.Equal("/sites/00ab12cd-hq/devices/ap-17/restart", record.path)
		raw, ok := result.(json.RawMessage)
		if assert.True(ok) {
			assert.JSONEq(`{"id": "ap-17", "status": "restarting"}`, string(raw))
		}
	}
}

func TestToolRunQueryAlias(t *testing.T) {
	assert := assert.New(t)
	var record recorded
	e := newEngine(t, &record, `{"data": [], "totalCount": 0}`)
	tk := toolkit(t, e)

	// Camel-cased aliases bind to the declared query parameter
	_, err := tk.Run(context.TODO(), "vantage_client_list", map[string]any{
		"site":          "00ab12cd-hq",
		"connectedOnly": "true",
	})
	if assert.NoError(err) {
		assert.Equal("true", record.query.Get("connected_only"))
	}
}

func TestToolRunBody(t *testing.T) {
	assert := assert.New(t)
	var record recorded
	e := newEngine(t, &record, `{"id": "ap-17"}`)
	tk := toolkit(t, e)

	_, err := tk.Run(context.TODO(), "vantage_device_upgrade", map[string]any{
		"site":     "00ab12cd-hq",
		"deviceId": "ap-17",
		"body":     map[string]any{"version": "7.1.2"},
	})
	if assert.NoError(err) {
		assert.Equal("POST", record.method)
		assert.Equal(map[string]any{"version": "7.1.2"}, record.body)
	}
}
