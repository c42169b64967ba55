package catalog

import (
	// Packages
	vantage "github.com/perimeterlabs/vantage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Index is a precomputed lookup over a catalog, built once at startup and
// keyed by operationId and by externally-visible name. Catalog order is
// preserved for listing.
type Index struct {
	ops    []Operation
	byId   map[string]int
	byName map[string]int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewIndex validates each operation and builds the lookup maps. Duplicate
// ids or names are rejected.
func NewIndex(ops []Operation) (*Index, error) {
	ix := &Index{
		ops:    ops,
		byId:   make(map[string]int, len(ops)),
		byName: make(map[string]int, len(ops)),
	}
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return nil, err
		}
		if _, exists := ix.byId[op.OperationId]; exists {
			return nil, vantage.ErrConflict.Withf("duplicate operation id %q", op.OperationId)
		}
		if _, exists := ix.byName[op.Name()]; exists {
			return nil, vantage.ErrConflict.Withf("duplicate operation name %q", op.Name())
		}
		ix.byId[op.OperationId] = i
		ix.byName[op.Name()] = i
	}
	return ix, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lookup returns an operation by its externally-visible name.
func (ix *Index) Lookup(name string) (Operation, bool) {
	if i, exists := ix.byName[name]; exists {
		return ix.ops[i], true
	}
	return Operation{}, false
}

// LookupId returns an operation by its operationId.
func (ix *Index) LookupId(id string) (Operation, bool) {
	if i, exists := ix.byId[id]; exists {
		return ix.ops[i], true
	}
	return Operation{}, false
}

// All returns the operations in catalog order.
func (ix *Index) All() []Operation {
	return ix.ops
}

// Len returns the number of operations.
func (ix *Index) Len() int {
	return len(ix.ops)
}
