package vantageapi

import (
	_ "embed"
	"sync"

	// Packages
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

//go:embed vantage.json
var schemaDocument []byte

var (
	documentOnce sync.Once
	document     *openapi.Document
	documentErr  error
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Document returns the embedded Vantage API schema document, parsed once.
func Document() (*openapi.Document, error) {
	documentOnce.Do(func() {
		document, documentErr = openapi.Load(schemaDocument)
	})
	return document, documentErr
}
