package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument reads an OpenAPI document from disk, resolving references.
func LoadDocument(ctx context.Context, path string) (*openapi3.T, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: true,
	}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return doc, nil
}

// ComponentSchema picks a named schema from the document's components. With
// an empty name the document's single component schema is returned, erroring
// when there are several.
func ComponentSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc == nil || doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}
	schemas := doc.Components.Schemas
	if name == "" {
		if len(schemas) != 1 {
			return nil, fmt.Errorf("openapi: document has %d component schemas, name one of: %s",
				len(schemas), strings.Join(schemaNames(schemas), ", "))
		}
		for _, ref := range schemas {
			return ref.Value, nil
		}
	}
	ref, ok := schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: no component schema %q, have: %s",
			name, strings.Join(schemaNames(schemas), ", "))
	}
	return ref.Value, nil
}

// OperationRequestSchema finds the request body schema of the operation with
// the given operationId, preferring JSON and form media types.
func OperationRequestSchema(doc *openapi3.T, operationID string) (*openapi3.Schema, error) {
	if doc == nil || doc.Paths == nil {
		return nil, fmt.Errorf("openapi: document has no paths")
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op == nil || op.OperationID != operationID {
				continue
			}
			if op.RequestBody == nil || op.RequestBody.Value == nil {
				return nil, fmt.Errorf("openapi: operation %q has no request body", operationID)
			}
			content := op.RequestBody.Value.Content
			for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
				if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
					return mt.Schema.Value, nil
				}
			}
			for _, mt := range content {
				if mt.Schema != nil && mt.Schema.Value != nil {
					return mt.Schema.Value, nil
				}
			}
			return nil, fmt.Errorf("openapi: operation %q request body has no schema", operationID)
		}
	}
	return nil, fmt.Errorf("openapi: no operation %q", operationID)
}

func schemaNames(schemas openapi3.Schemas) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
