/*
openapi reads the subset of an OpenAPI document that the operation catalog
actually uses: path/method operation metadata, named component schemas, and
the $ref/oneOf/anyOf/allOf/enum/items/properties/required keywords. It is
not a general OpenAPI toolchain.
*/
package openapi

import (
	"encoding/json"

	// Packages
	vantage "github.com/perimeterlabs/vantage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Document is a parsed schema document, keyed by path and method for
// operation metadata and by name for reusable schema fragments. Documents
// are loaded once at startup and never mutated.
type Document struct {
	Info struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components struct {
		Schemas map[string]*Node `json:"schemas"`
	} `json:"components"`
}

// PathItem maps a lower-case HTTP method to its operation metadata.
type PathItem map[string]*Operation

// Operation is the per-path, per-method metadata from the document.
type Operation struct {
	OperationId string    `json:"operationId"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	RequestBody *Body     `json:"requestBody,omitempty"`
	Responses   Responses `json:"responses,omitempty"`
}

// Body is a request body with per-content-type schemas.
type Body struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]MediaType `json:"content,omitempty"`
}

// Responses maps a status code to its response body.
type Responses map[string]*Body

// MediaType carries the schema for one content type.
type MediaType struct {
	Schema *Node `json:"schema,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const contentTypeJSON = "application/json"

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load parses a JSON schema document.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, vantage.ErrBadParameter.Withf("invalid schema document: %v", err)
	}
	return &doc, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Schema returns the JSON request body schema for the operation, or nil if
// the operation has no body.
func (op *Operation) Schema() *Node {
	if op == nil || op.RequestBody == nil {
		return nil
	}
	return op.RequestBody.Content[contentTypeJSON].Schema
}

// ResponseSchema returns the JSON schema for the given response status, or
// nil if not declared.
func (op *Operation) ResponseSchema(status string) *Node {
	if op == nil || op.Responses == nil {
		return nil
	}
	body := op.Responses[status]
	if body == nil {
		return nil
	}
	return body.Content[contentTypeJSON].Schema
}
