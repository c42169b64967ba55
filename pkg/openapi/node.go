package openapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind discriminates the schema node variants. A node is exactly one of a
// primitive, an array, an object, a reference to a named schema, or a
// composite (oneOf/anyOf/allOf) of other nodes.
type Kind int

// Combinator is the composite variant tag.
type Combinator string

// Node is one node of a schema tree. The zero value is an unconstrained
// object. Nodes are immutable once decoded; Unfold returns new trees and
// never mutates its input.
type Node struct {
	Kind        Kind
	Type        string
	Description string
	Enum        []any
	Items       *Node
	Properties  map[string]*Node
	Order       []string // property names in document order
	Required    []string
	Ref         string // named schema this node points at
	Combinator  Combinator
	Variants    []*Node
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindPrimitive Kind = iota
	KindObject
	KindArray
	KindRef
	KindComposite
)

const (
	OneOf Combinator = "oneOf"
	AnyOf Combinator = "anyOf"
	AllOf Combinator = "allOf"
)

const refPrefix = "#/components/schemas/"

///////////////////////////////////////////////////////////////////////////////
// JSON UNMARSHALLING

func (n *Node) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ref         string           `json:"$ref"`
		Type        string           `json:"type"`
		Description string           `json:"description"`
		Enum        []any            `json:"enum"`
		Items       *Node            `json:"items"`
		Properties  map[string]*Node `json:"properties"`
		Required    []string         `json:"required"`
		OneOf       []*Node          `json:"oneOf"`
		AnyOf       []*Node          `json:"anyOf"`
		AllOf       []*Node          `json:"allOf"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.Type = raw.Type
	n.Description = raw.Description
	n.Enum = raw.Enum
	n.Items = raw.Items
	n.Properties = raw.Properties
	n.Required = raw.Required
	n.Ref = refName(raw.Ref)

	// Tag the variant. A $ref wins over any sibling keywords, then
	// composites, then the structural types.
	switch {
	case n.Ref != "":
		n.Kind = KindRef
	case raw.OneOf != nil:
		n.Kind, n.Combinator, n.Variants = KindComposite, OneOf, raw.OneOf
	case raw.AnyOf != nil:
		n.Kind, n.Combinator, n.Variants = KindComposite, AnyOf, raw.AnyOf
	case raw.AllOf != nil:
		n.Kind, n.Combinator, n.Variants = KindComposite, AllOf, raw.AllOf
	case raw.Type == "array" || raw.Items != nil:
		n.Kind = KindArray
	case raw.Type == "object" || raw.Properties != nil:
		n.Kind = KindObject
	default:
		n.Kind = KindPrimitive
	}

	// encoding/json does not preserve map key order, so walk the raw bytes
	// again to capture the property order as declared in the document
	if len(n.Properties) > 0 {
		n.Order = propertyOrder(data)
	}

	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsRequired returns true when name appears in the node's required set.
func (n *Node) IsRequired(name string) bool {
	for _, v := range n.Required {
		if v == name {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// refName strips the component prefix from a $ref value. A reference outside
// the components/schemas namespace resolves to its last path element.
func refName(ref string) string {
	if ref == "" {
		return ""
	}
	if name, ok := strings.CutPrefix(ref, refPrefix); ok {
		return name
	}
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// propertyOrder returns the keys of the top-level "properties" object in
// declaration order, or nil if the bytes are not shaped as expected.
func propertyOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		if key, ok := tok.(string); ok && key == "properties" {
			if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
				return nil
			}
			var order []string
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return nil
				}
				if name, ok := tok.(string); ok {
					order = append(order, name)
				}
				if err := skipValue(dec); err != nil {
					return nil
				}
			}
			return order
		}
		if err := skipValue(dec); err != nil {
			return nil
		}
	}
	return nil
}

// skipValue consumes one JSON value, including nested objects and arrays.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch tok {
	case json.Delim('{'), json.Delim('['):
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}
