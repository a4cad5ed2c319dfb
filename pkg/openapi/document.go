package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version written by Document.
const Version = "3.0.3"

// Document wraps schemas as components of a validated OpenAPI document.
func Document(ctx context.Context, title, version string, schemas map[string]*openapi3.Schema) (*openapi3.T, error) {
	if title == "" {
		return nil, errors.New("openapi: document title is required")
	}
	if version == "" {
		version = "1.0.0"
	}
	components := openapi3.Schemas{}
	for name, schema := range schemas {
		if schema == nil {
			return nil, fmt.Errorf("openapi: schema %q is nil", name)
		}
		components[name] = openapi3.NewSchemaRef("", schema)
	}

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: components,
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// LoadDocument parses an OpenAPI document, typically one produced by
// Document.
func LoadDocument(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// ComponentSchema returns the named component schema of doc.
func ComponentSchema(doc *openapi3.T, name string) (*openapi3.Schema, bool) {
	if doc == nil || doc.Components == nil {
		return nil, false
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, false
	}
	return ref.Value, true
}
