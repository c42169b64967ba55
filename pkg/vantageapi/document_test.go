package vantageapi_test

import (
	"testing"

	// Packages
	catalog "github.com/perimeterlabs/vantage/pkg/catalog"
	openapi "github.com/perimeterlabs/vantage/pkg/openapi"
	vantageapi "github.com/perimeterlabs/vantage/pkg/vantageapi"
	assert "github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	assert := assert.New(t)

	doc, err := vantageapi.Document()
	if !assert.NoError(err) {
		return
	}
	assert.NotEmpty(doc.Info.Title)
	assert.NotEmpty(doc.Components.Schemas)
}

func TestDocumentCoversCatalog(t *testing.T) {
	assert := assert.New(t)
	doc, err := vantageapi.Document()
	if !assert.NoError(err) {
		return
	}
	resolver := openapi.NewResolver(doc)

	// Every catalog operation exists in the document under the same method
	// and path template
	for _, op := range catalog.Operations {
		path, method, docOp, exists := resolver.FindOperation(op.OperationId)
		if assert.True(exists, op.OperationId) {
			assert.Equal(op.Method, method, op.OperationId)
			assert.Equal(op.Path, path, op.OperationId)
			if op.HasBody {
				assert.NotNil(docOp.Schema(), op.OperationId)
			}
		}
	}
}

func TestDocumentDeviceConfig(t *testing.T) {
	assert := assert.New(t)
	doc, err := vantageapi.Document()
	if !assert.NoError(err) {
		return
	}
	resolver := openapi.NewResolver(doc)

	node, exists := resolver.ResolveRef("DeviceConfig")
	if !assert.True(exists) {
		return
	}
	assert.Equal(openapi.KindComposite, node.Kind)
	assert.Equal(openapi.OneOf, node.Combinator)
	assert.Len(node.Variants, 3)

	// The unfolded config is self-contained down to the variant properties
	result := resolver.Unfold(node, 3)
	if assert.Len(result.Variants, 3) {
		assert.Contains(result.Variants[0].Properties, "wanMode")
	}
}
