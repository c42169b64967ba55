/*
vantage exposes the Vantage Cloud device-management REST API as a set of
callable operations, for use by the command line tool and the MCP tool
server. The root package holds the types shared between the engine packages.
*/
package vantage

import (
	"context"
	"encoding/json"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Transport performs a single HTTP call against the wire API. The engine
// never constructs HTTP requests itself; it hands a method, path, query and
// optional body to the transport and receives the raw JSON response. A
// non-success response is returned as an error carrying the HTTP status and
// any parsed detail body; the engine propagates such errors verbatim.
type Transport interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (fn TransportFunc) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	return fn(ctx, method, path, query, body)
}
