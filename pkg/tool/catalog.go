package tool

import (
	"context"
	"encoding/json"
	"fmt"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	engine "github.com/perimeterlabs/vantage/pkg/engine"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// opTool exposes one catalog operation as a tool. The input schema is
// assembled from the operation descriptor and, for operations with a body,
// the unfolded request-body schema from the API document.
type opTool struct {
	op     catalog.Operation
	engine *engine.Engine
}

var _ Tool = (*opTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolPrefix = "vantage_"

	// Request-body schemas are unfolded to this depth for tool input shapes.
	bodySchemaDepth = 3
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns one tool per catalog operation, in catalog order.
func NewTools(e *engine.Engine) []Tool {
	ops := e.Index().All()
	result := make([]Tool, 0, len(ops))
	for _, op := range ops {
		result = append(result, &opTool{op: op, engine: e})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t *opTool) Name() string {
	return toolPrefix + t.op.Name()
}

func (t *opTool) Description() string {
	description := t.op.Description
	if t.op.Paginatable {
		description += ". Returns the complete result set with all pages merged."
	}
	return description
}

func (t *opTool) Schema() (*jsonschema.Schema, error) {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema),
	}

	if t.op.NeedsSite {
		schema.Properties["site"] = &jsonschema.Schema{
			Type:        "string",
			Description: "Site identifier, canonical or symbolic (e.g. \"default\").",
		}
	}
	for _, arg := range t.op.Args {
		schema.Properties[arg.Name] = &jsonschema.Schema{
			Type:        "string",
			Description: arg.Description,
		}
		schema.Required = append(schema.Required, arg.Name)
	}
	for _, qp := range t.op.Query {
		schema.Properties[qp.Name] = &jsonschema.Schema{
			Type:        "string",
			Description: qp.Description,
		}
		if qp.Required {
			schema.Required = append(schema.Required, qp.Name)
		}
	}
	if t.op.Paginatable {
		schema.Properties["filter"] = &jsonschema.Schema{
			Type:        "string",
			Description: "Server-side filter expression applied to the listing.",
		}
	}
	if t.op.HasBody {
		body := &jsonschema.Schema{Type: "object", Description: "Request body."}
		resolver := t.engine.Resolver()
		if _, _, docOp, exists := resolver.FindOperation(t.op.OperationId); exists {
			if node := docOp.Schema(); node != nil {
				body = toSchema(resolver.Unfold(node, bodySchemaDepth))
				if body.Description == "" {
					body.Description = "Request body."
				}
			}
			if docOp.RequestBody != nil && docOp.RequestBody.Required {
				schema.Required = append(schema.Required, "body")
			}
		}
		schema.Properties["body"] = body
	}

	return schema, nil
}

func (t *opTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var in map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, err
		}
	}

	params := catalog.Params{
		Args:  make(map[string]string),
		Query: make(map[string]string),
	}
	if site, ok := in["site"].(string); ok {
		params.Site = site
	}
	for _, arg := range t.op.Args {
		if value, ok := in[arg.Name].(string); ok {
			params.Args[arg.Name] = value
		}
	}
	for _, qp := range t.op.Query {
		if value, exists := in[qp.Name]; exists {
			params.Query[qp.Name] = fmt.Sprint(value)
		} else if value, exists := in[catalog.CamelCase(qp.Name)]; exists {
			params.Query[qp.Name] = fmt.Sprint(value)
		}
	}
	if filter, ok := in["filter"].(string); ok {
		params.Filter = filter
	}
	if body, exists := in["body"]; exists {
		params.Body = body
	}

	response, err := t.engine.Call(ctx, t.op.Name(), params)
	if err != nil {
		return nil, err
	}
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts a self-contained schema node to a JSON schema. The node
// must already be unfolded; references are not resolved here.
func toSchema(node *openapi.Node) *jsonschema.Schema {
	if node == nil {
		return &jsonschema.Schema{Type: "object"}
	}
	schema := &jsonschema.Schema{Description: node.Description}
	switch node.Kind {
	case openapi.KindComposite:
		variants := make([]*jsonschema.Schema, len(node.Variants))
		for i, variant := range node.Variants {
			variants[i] = toSchema(variant)
		}
		switch node.Combinator {
		case openapi.OneOf:
			schema.OneOf = variants
		case openapi.AnyOf:
			schema.AnyOf = variants
		case openapi.AllOf:
			schema.AllOf = variants
		}
	case openapi.KindArray:
		schema.Type = "array"
		schema.Items = toSchema(node.Items)
	case openapi.KindObject:
		schema.Type = "object"
		if len(node.Properties) > 0 {
			schema.Properties = make(map[string]*jsonschema.Schema, len(node.Properties))
			for name, property := range node.Properties {
				schema.Properties[name] = toSchema(property)
			}
		}
		schema.Required = node.Required
	default:
		schema.Type = node.Type
		schema.Enum = node.Enum
	}
	return schema
}
