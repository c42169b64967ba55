package openapi

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Resolver answers reference lookups and produces self-contained,
// depth-bounded schema trees from a document. Resolution never fails: a
// missing reference or an exhausted depth budget substitutes a generic
// unconstrained-object placeholder so that input-shape generation always
// succeeds, even against an incomplete document.
type Resolver struct {
	doc *Document
}

// memoKey identifies one unfolding of a named schema at a given remaining
// depth. Unfolding is memoized on this key so that diamond-shaped reference
// graphs resolve each shared reference once per depth, deterministically.
type memoKey struct {
	ref   string
	depth int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewResolver creates a resolver over the document.
func NewResolver(doc *Document) *Resolver {
	return &Resolver{doc: doc}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResolveRef looks up a named schema in the document. Absence is a normal
// outcome, not an error.
func (r *Resolver) ResolveRef(name string) (*Node, bool) {
	if r.doc == nil {
		return nil, false
	}
	node, exists := r.doc.Components.Schemas[name]
	return node, exists
}

// FindOperation scans the document's path and method entries for the
// operation with the given id. Returns the path, the upper-cased method and
// the operation metadata, or ok=false when absent.
func (r *Resolver) FindOperation(operationId string) (path, method string, op *Operation, ok bool) {
	if r.doc == nil {
		return "", "", nil, false
	}
	for p, item := range r.doc.Paths {
		for m, candidate := range item {
			if candidate != nil && candidate.OperationId == operationId {
				return p, strings.ToUpper(m), candidate, true
			}
		}
	}
	return "", "", nil, false
}

// Unfold returns a self-contained copy of the node: references are replaced
// by their resolved targets, decrementing the remaining depth on each hop,
// and composite, array and object nodes are unfolded recursively. When the
// budget reaches zero a generic object placeholder is substituted instead of
// recursing further, which guarantees termination over cyclic references.
// Each call starts a fresh budget and a fresh memo table.
func (r *Resolver) Unfold(node *Node, maxDepth int) *Node {
	return r.unfold(node, maxDepth, make(map[memoKey]*Node))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Resolver) unfold(node *Node, depth int, memo map[memoKey]*Node) *Node {
	if node == nil || depth <= 0 {
		return placeholder()
	}

	switch node.Kind {
	case KindRef:
		key := memoKey{ref: node.Ref, depth: depth}
		if cached, exists := memo[key]; exists {
			return cached
		}
		target, exists := r.ResolveRef(node.Ref)
		if !exists {
			memo[key] = placeholder()
			return memo[key]
		}
		result := r.unfold(target, depth-1, memo)
		memo[key] = result
		return result
	case KindComposite:
		result := shallowCopy(node)
		result.Variants = make([]*Node, len(node.Variants))
		for i, variant := range node.Variants {
			result.Variants[i] = r.unfold(variant, depth, memo)
		}
		return result
	case KindArray:
		result := shallowCopy(node)
		if node.Items != nil {
			result.Items = r.unfold(node.Items, depth, memo)
		}
		return result
	case KindObject:
		result := shallowCopy(node)
		if len(node.Properties) > 0 {
			result.Properties = make(map[string]*Node, len(node.Properties))
			for name, property := range node.Properties {
				result.Properties[name] = r.unfold(property, depth, memo)
			}
		}
		return result
	default:
		return shallowCopy(node)
	}
}

// placeholder is the generic unconstrained-object fallback.
func placeholder() *Node {
	return &Node{Kind: KindObject, Type: "object"}
}

func shallowCopy(node *Node) *Node {
	result := *node
	return &result
}
