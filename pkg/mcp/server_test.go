package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/perimeterlabs/vantage/pkg/mcp"
	tool "github.com/perimeterlabs/vantage/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

type staticTool struct {
	fail bool
}

func (t *staticTool) Name() string {
	return "static"
}

func (t *staticTool) Description() string {
	return "returns a fixed result"
}

func (t *staticTool) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{Type: "object"}, nil
}

func (t *staticTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.fail {
		return nil, mcp.NewError(mcp.ErrorCodeInternalError, "deliberate failure")
	}
	return map[string]any{"answer": 42}, nil
}

// run feeds newline-delimited requests through the server and returns the
// responses keyed by request id.
func run(t *testing.T, server *mcp.Server, requests ...string) map[float64]mcp.Response {
	t.Helper()
	var out bytes.Buffer
	input := strings.Join(requests, "\n") + "\n"
	if err := server.RunStdio(context.TODO(), strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}

	// Responses arrive in completion order, one per line
	result := make(map[float64]mcp.Response)
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var response mcp.Response
		if err := json.Unmarshal([]byte(line), &response); err != nil {
			t.Fatal(err)
		}
		id, ok := response.ID.(float64)
		if !ok {
			t.Fatalf("unexpected response id %v", response.ID)
		}
		result[id] = response
	}
	return result
}

func newServer(t *testing.T, tools ...tool.Tool) *mcp.Server {
	t.Helper()
	tk, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcp.New("test-server", "0.0.1", mcp.WithToolkit(tk))
	if err != nil {
		t.Fatal(err)
	}
	return server
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestInitialize(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, &staticTool{})

	responses := run(t, server,
		`{"jsonrpc": "2.0", "id": 1, "method": "initialize"}`,
		`{"jsonrpc": "2.0", "method": "notifications/initialized"}`,
	)

	// The notification produces no response
	if assert.Len(responses, 1) {
		response := responses[1]
		assert.Equal(mcp.RPCVersion, response.Version)
		assert.Nil(response.Err)

		data, err := json.Marshal(response.Result)
		assert.NoError(err)
		var init mcp.ResponseInitialize
		assert.NoError(json.Unmarshal(data, &init))
		assert.Equal(mcp.ProtocolVersion, init.Version)
		assert.Equal("test-server", init.ServerInfo.Name)
	}
}

func TestListTools(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, &staticTool{})

	responses := run(t, server,
		`{"jsonrpc": "2.0", "id": 1, "method": "tools/list"}`,
	)
	if assert.Len(responses, 1) {
		data, err := json.Marshal(responses[1].Result)
		assert.NoError(err)
		var list mcp.ResponseListTools
		assert.NoError(json.Unmarshal(data, &list))
		if assert.Len(list.Tools, 1) {
			assert.Equal("static", list.Tools[0].Name)
			assert.NotNil(list.Tools[0].InputSchema)
		}
	}
}

func TestCallTool(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, &staticTool{})

	responses := run(t, server,
		`{"jsonrpc": "2.0", "id": 1, "method": "tools/call", "params": {"name": "static"}}`,
	)
	if assert.Len(responses, 1) {
		data, err := json.Marshal(responses[1].Result)
		assert.NoError(err)
		var result mcp.ResponseToolCall
		assert.NoError(json.Unmarshal(data, &result))
		assert.False(result.Error)
		if assert.Len(result.Content, 1) {
			assert.Equal("text", result.Content[0].Type)
			assert.JSONEq(`{"answer": 42}`, result.Content[0].Text)
		}
	}
}

func TestCallToolFailure(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, &staticTool{fail: true})

	// A tool failure is reported as a tool error result, not a JSON-RPC error
	responses := run(t, server,
		`{"jsonrpc": "2.0", "id": 1, "method": "tools/call", "params": {"name": "static"}}`,
	)
	if assert.Len(responses, 1) {
		assert.Nil(responses[1].Err)
		data, err := json.Marshal(responses[1].Result)
		assert.NoError(err)
		var result mcp.ResponseToolCall
		assert.NoError(json.Unmarshal(data, &result))
		assert.True(result.Error)
	}
}

func TestMethodNotFound(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, &staticTool{})

	responses := run(t, server,
		`{"jsonrpc": "2.0", "id": 1, "method": "bogus/method"}`,
	)
	if assert.Len(responses, 1) {
		if assert.NotNil(responses[1].Err) {
			assert.Equal(mcp.ErrorCodeMethodNotFound, responses[1].Err.Code)
		}
	}
}
