package hcldef

import (
	"fmt"

	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/validate"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Values is the result of a compiled form: field name to raw string value.
// Fields inside groups use dotted keys, e.g. "address.city".
type Values map[string]string

// Build compiles a form definition into a formlet. Fields keep their file
// order; each field and group evaluates inside its own named sub-model, so
// persisted state survives reordering the definition.
func Build(form *Form, controls formlet.Controls) (formlet.Formlet[Values], error) {
	if form == nil {
		return nil, fmt.Errorf("hcldef: form is required")
	}
	if len(form.Fields) == 0 && len(form.Groups) == 0 {
		return nil, fmt.Errorf("hcldef: form %q has no fields", form.Name)
	}
	return buildBody(form.Name, form.Fields, form.Groups, controls)
}

func buildBody(scope string, fields []*Field, groups []*Group, controls formlet.Controls) (formlet.Formlet[Values], error) {
	body := formlet.Return(Values{})
	for _, field := range fields {
		f, err := buildField(scope, field, controls)
		if err != nil {
			return nil, err
		}
		name := field.Name
		body = formlet.Map(formlet.AndAlso(body, formlet.WithSub(name, f)), func(p formlet.Pair[Values, string]) Values {
			return merge(p.First, name, p.Second)
		})
	}
	for _, group := range groups {
		sub, err := buildBody(scope+"."+group.Name, group.Fields, group.Groups, controls)
		if err != nil {
			return nil, err
		}
		if group.Label != "" {
			sub = formlet.WithLabel(controls, group.Label, sub)
		}
		prefix := group.Name
		body = formlet.Map(formlet.AndAlso(body, formlet.WithSub(prefix, sub)), func(p formlet.Pair[Values, Values]) Values {
			out := p.First
			for k, v := range p.Second {
				out = merge(out, prefix+"."+k, v)
			}
			return out
		})
	}
	return body, nil
}

func buildField(scope string, field *Field, controls formlet.Controls) (formlet.Formlet[string], error) {
	if field.Name == "" {
		return nil, fmt.Errorf("hcldef: form %q has an unnamed field", scope)
	}

	var f formlet.Formlet[string]
	switch field.Kind {
	case "", "text":
		f = controls.Text(field.Placeholder)
	case "textarea":
		f = controls.TextArea(field.Placeholder)
	case "password":
		f = controls.Password(field.Placeholder)
	case "checkbox":
		f = formlet.Map(controls.Checkbox(), func(checked bool) string {
			if checked {
				return formlet.CheckedValue
			}
			return ""
		})
	case "select":
		if len(field.Options) == 0 {
			return nil, fmt.Errorf("hcldef: select field %q needs options", field.Name)
		}
		f = controls.Select(field.Options)
	default:
		return nil, fmt.Errorf("hcldef: field %q has unknown kind %q", field.Name, field.Kind)
	}

	def, err := field.DefaultString()
	if err != nil {
		return nil, err
	}
	if def != "" {
		f = withDefault(def, f)
	}

	if field.Pattern != "" {
		f = validate.Matches(f, field.Pattern,
			fmt.Sprintf("%s does not match the required pattern.", field.Name))
	}
	if field.MinLength > 0 {
		f = validate.MinLength(f, field.MinLength,
			fmt.Sprintf("%s must be at least %d characters.", field.Name, field.MinLength))
	}
	if field.MaxLength > 0 {
		f = validate.MaxLength(f, field.MaxLength,
			fmt.Sprintf("%s must be at most %d characters.", field.Name, field.MaxLength))
	}
	if field.Required {
		f = validate.NotEmpty(f)
	}

	label := field.Label
	if label == "" {
		label = field.Name
	}
	return formlet.WithLabel(controls, label, f), nil
}

// withDefault substitutes the definition's default for a slot the user has
// never touched. Once any value is dispatched the model carries it and the
// default no longer applies.
func withDefault(def string, inner formlet.Formlet[string]) formlet.Formlet[string] {
	return func(ctx *formlet.Context, path formlet.Path, m model.Model, d model.Dispatcher) (string, view.Tree, failure.Tree) {
		if _, untouched := m.(model.Empty); untouched {
			m = model.Value{V: def}
		}
		return inner(ctx, path, m, d)
	}
}

func merge(values Values, key, value string) Values {
	out := make(Values, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out[key] = value
	return out
}
