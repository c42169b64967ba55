package openapi

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Property is one element of a structured schema description: the same
// information as Describe, but as data for programmatic consumption.
type Property struct {
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Required    bool       `json:"required,omitempty"`
	Description string     `json:"description,omitempty"`
	Enum        []any      `json:"enum,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
	Variants    []Variant  `json:"variants,omitempty"`
}

// Variant is one branch of a composite (oneOf/anyOf/allOf) property.
type Variant struct {
	Type       string     `json:"type"`
	Properties []Property `json:"properties,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Descriptions are cut to their first line and this many runes.
const descriptionBudget = 80

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Describe returns a human-readable listing of the named schema's immediate
// and depth-bounded nested properties, marking required properties. Returns
// the empty string when the schema is absent from the document.
func (r *Resolver) Describe(ref string, maxDepth int) string {
	node, exists := r.ResolveRef(ref)
	if !exists {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(ref + ":")
	r.describeNode(&sb, node, maxDepth, "  ")
	return sb.String()
}

// Structured returns the named schema's properties as an ordered list of
// descriptors. Composite nodes become a discriminator entry carrying the
// ordered variant descriptors. Returns nil when the schema is absent.
func (r *Resolver) Structured(ref string, maxDepth int) []Property {
	node, exists := r.ResolveRef(ref)
	if !exists {
		return nil
	}
	if node.Kind == KindComposite {
		return []Property{r.discriminator(string(node.Combinator), node, maxDepth)}
	}
	return r.structured(node, maxDepth)
}

// TypeLabel renders a node's display type: a reference renders as its schema
// name, an enum as its base type annotated with the allowed values, an array
// as array<item-type>, and anything else as its declared type, defaulting
// to object.
func (r *Resolver) TypeLabel(node *Node) string {
	if node == nil {
		return "object"
	}
	switch {
	case node.Kind == KindRef:
		return node.Ref
	case len(node.Enum) > 0:
		base := node.Type
		if base == "" {
			base = "string"
		}
		values := make([]string, len(node.Enum))
		for i, v := range node.Enum {
			values[i] = fmt.Sprint(v)
		}
		return base + " (" + strings.Join(values, "|") + ")"
	case node.Kind == KindArray:
		return "array<" + r.TypeLabel(node.Items) + ">"
	case node.Type != "":
		return node.Type
	}
	return "object"
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Resolver) structured(node *Node, depth int) []Property {
	node, depth = r.chase(node, depth)
	if node == nil || node.Kind != KindObject {
		return nil
	}

	result := make([]Property, 0, len(node.Order))
	for _, name := range node.Order {
		child := node.Properties[name]
		if child == nil {
			continue
		}
		property := Property{
			Name:        name,
			Type:        r.TypeLabel(child),
			Required:    node.IsRequired(name),
			Description: clip(child.Description),
			Enum:        child.Enum,
		}
		// A composite may sit directly on the property or one reference
		// hop away; either way it becomes a discriminator entry
		effective, effectiveDepth := child, depth
		if child.Kind == KindRef {
			if target, exists := r.ResolveRef(child.Ref); exists && target.Kind == KindComposite {
				effective, effectiveDepth = target, depth-1
			}
		}
		switch effective.Kind {
		case KindComposite:
			property = r.discriminator(name, effective, effectiveDepth)
			property.Required = node.IsRequired(name)
		case KindObject, KindRef:
			if depth > 1 {
				property.Properties = r.structured(child, depth-1)
			}
		}
		result = append(result, property)
	}
	return result
}

// discriminator builds the composite entry for a oneOf/anyOf/allOf node,
// recursing into reference variants.
func (r *Resolver) discriminator(name string, node *Node, depth int) Property {
	property := Property{
		Name:        name,
		Type:        string(node.Combinator),
		Description: clip(node.Description),
	}
	for _, variant := range node.Variants {
		entry := Variant{Type: r.TypeLabel(variant)}
		if variant != nil && variant.Kind == KindRef && depth > 1 {
			entry.Properties = r.structured(variant, depth-1)
		}
		property.Variants = append(property.Variants, entry)
	}
	return property
}

func (r *Resolver) describeNode(sb *strings.Builder, node *Node, depth int, indent string) {
	node, depth = r.chase(node, depth)
	if node == nil {
		return
	}

	switch node.Kind {
	case KindComposite:
		for _, variant := range node.Variants {
			sb.WriteString("\n" + indent + "- " + r.TypeLabel(variant))
			if variant != nil && variant.Kind == KindRef && depth > 1 {
				sb.WriteString(":")
				r.describeNode(sb, variant, depth-1, indent+"  ")
			}
		}
	case KindObject:
		for _, name := range node.Order {
			child := node.Properties[name]
			if child == nil {
				continue
			}
			sb.WriteString("\n" + indent + name + " " + r.TypeLabel(child))
			if node.IsRequired(name) {
				sb.WriteString(" (required)")
			}
			if description := clip(child.Description); description != "" {
				sb.WriteString("  " + description)
			}
			switch child.Kind {
			case KindObject, KindRef, KindComposite:
				if depth > 1 {
					r.describeNode(sb, child, depth-1, indent+"  ")
				}
			}
		}
	}
}

// chase resolves reference hops, decrementing the depth budget on each.
// Returns nil when the budget is exhausted or a reference is dangling.
func (r *Resolver) chase(node *Node, depth int) (*Node, int) {
	for node != nil && node.Kind == KindRef {
		if depth <= 0 {
			return nil, 0
		}
		target, exists := r.ResolveRef(node.Ref)
		if !exists {
			return nil, depth
		}
		node, depth = target, depth-1
	}
	if depth <= 0 {
		return nil, 0
	}
	return node, depth
}

// clip cuts a description to its first line and the rune budget.
func clip(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(s)
	if len(r) <= descriptionBudget {
		return s
	}
	return string(r[:descriptionBudget-1]) + "…"
}
