/*
vantageapi implements an API client for the Vantage Cloud device-management
REST API. The client satisfies vantage.Transport, so the engine can drive it
directly from catalog operations.
*/
package vantageapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	vantage "github.com/perimeterlabs/vantage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ vantage.Transport = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The endpoint is the base URL of the controller API,
// and the key is a Vantage API token.
func New(endPoint, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing endpoint
	if endPoint == "" {
		return nil, vantage.ErrBadParameter.With("missing endpoint")
	}
	opts = append(opts, client.OptEndpoint(endPoint))
	if apiKey != "" {
		opts = append(opts, client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  apiKey,
		}))
	}
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Do performs a single request against the API and returns the raw JSON
// response. Non-success responses surface as errors carrying the HTTP
// status and any parsed detail body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	opts := []client.RequestOpt{client.OptPath(pathSegments(path)...)}
	if len(query) > 0 {
		opts = append(opts, client.OptQuery(query))
	}

	var response json.RawMessage
	switch {
	case method == http.MethodGet || method == "":
		if err := c.DoWithContext(ctx, nil, &response, opts...); err != nil {
			return nil, err
		}
	default:
		if body == nil {
			body = struct{}{}
		}
		payload, err := client.NewJSONRequestEx(method, body, client.ContentTypeAny)
		if err != nil {
			return nil, err
		}
		if err := c.DoWithContext(ctx, payload, &response, opts...); err != nil {
			return nil, err
		}
	}

	// Return success
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func pathSegments(path string) []any {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	segments := make([]any, len(parts))
	for i, part := range parts {
		segments[i] = part
	}
	return segments
}
