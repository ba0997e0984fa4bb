// Package openapi derives formlets from OpenAPI schemas. An object schema
// becomes a labeled field per property, each scoped to its own sub-model
// slot, with validation rules translated from the schema's constraints.
package openapi

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/validate"
)

// Values is the form result: property name to raw string value. Booleans
// encode as the checkbox model value ("on" or empty).
type Values map[string]string

// FromSchema builds a formlet for an object schema. Properties are emitted
// in name order so generated ids and the visual layout stay deterministic.
// Schemas that are not objects, or that use property types the form
// vocabulary cannot express, are rejected.
func FromSchema(schema *openapi3.Schema, controls formlet.Controls) (formlet.Formlet[Values], error) {
	if schema == nil {
		return nil, fmt.Errorf("openapi: schema is required")
	}
	if !schemaType(schema, "object") {
		return nil, fmt.Errorf("openapi: form schemas must be objects, got %q", firstType(schema))
	}
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: object schema has no properties")
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	form := formlet.Return(Values{})
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("openapi: property %q has no schema", name)
		}
		field, err := buildField(name, ref.Value, required[name], controls)
		if err != nil {
			return nil, err
		}
		scoped := formlet.WithSub(name, field)
		fieldName := name
		form = formlet.Map(formlet.AndAlso(form, scoped), func(p formlet.Pair[Values, string]) Values {
			merged := make(Values, len(p.First)+1)
			for k, v := range p.First {
				merged[k] = v
			}
			merged[fieldName] = p.Second
			return merged
		})
	}
	return form, nil
}

func buildField(name string, schema *openapi3.Schema, required bool, controls formlet.Controls) (formlet.Formlet[string], error) {
	label := schema.Title
	if label == "" {
		label = name
	}

	var field formlet.Formlet[string]
	switch {
	case len(schema.Enum) > 0:
		options := make([]string, 0, len(schema.Enum))
		for _, v := range schema.Enum {
			options = append(options, fmt.Sprint(v))
		}
		field = controls.Select(options)
	case schemaType(schema, "boolean"):
		field = formlet.Map(controls.Checkbox(), func(checked bool) string {
			if checked {
				return formlet.CheckedValue
			}
			return ""
		})
	case schemaType(schema, "string"), firstType(schema) == "":
		if schema.Format == "password" {
			field = controls.Password(schema.Description)
		} else {
			field = controls.Text(schema.Description)
		}
	default:
		return nil, fmt.Errorf("openapi: property %q has unsupported type %q", name, firstType(schema))
	}

	field = applyStringRules(name, schema, field)
	if required {
		field = validate.NotEmpty(field)
	}
	return formlet.WithLabel(controls, label, field), nil
}

func applyStringRules(name string, schema *openapi3.Schema, field formlet.Formlet[string]) formlet.Formlet[string] {
	if schema.Pattern != "" {
		field = validate.Matches(field, schema.Pattern,
			fmt.Sprintf("%s does not match the required pattern.", name))
	}
	if schema.MinLength > 0 {
		field = validate.MinLength(field, int(schema.MinLength),
			fmt.Sprintf("%s must be at least %d characters.", name, schema.MinLength))
	}
	if schema.MaxLength != nil {
		field = validate.MaxLength(field, int(*schema.MaxLength),
			fmt.Sprintf("%s must be at most %d characters.", name, *schema.MaxLength))
	}
	return field
}

func schemaType(schema *openapi3.Schema, want string) bool {
	return schema.Type != nil && schema.Type.Is(want)
}

func firstType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
