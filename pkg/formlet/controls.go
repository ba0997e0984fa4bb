package formlet

import (
	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// ControlKind identifies the input widget a leaf formlet asked for.
type ControlKind string

const (
	ControlText     ControlKind = "text"
	ControlTextArea ControlKind = "textarea"
	ControlPassword ControlKind = "password"
	ControlCheckbox ControlKind = "checkbox"
	ControlSelect   ControlKind = "select"
)

// Checkbox models encode their checked state as this value; anything else
// reads as unchecked.
const CheckedValue = "on"

// Control describes one input at flatten time: the widget kind, its current
// value, and everything ancestor combinators accumulated around it. The
// OnChange callback dispatches the new value back through the position
// aware update path; renderers call it with the raw string the user
// produced.
type Control struct {
	Kind        ControlKind
	Value       string
	Placeholder string
	Options     []string
	Attrs       []view.Attribute
	Class       string
	Styles      []view.Style
	OnChange    func(string)
}

// ControlFactory turns a control description into a concrete renderable
// element. Rendering collaborators supply one per element vocabulary.
type ControlFactory func(c Control) view.Element

// LabelFactory builds a label element associated with the id of the control
// it describes.
type LabelFactory func(forID, text string) view.Element

// Controls bundles the element constructors leaf formlets close over. The
// evaluation core stays parametric over what an element is; a renderer
// package provides a Controls value for its own element type.
type Controls struct {
	Control   ControlFactory
	Label     LabelFactory
	Container ContainerFactory
}

func (c Controls) input(kind ControlKind, placeholder string, options []string) Formlet[string] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (string, view.Tree, failure.Tree) {
		value := model.StringValue(m, "")
		if kind == ControlSelect && !contains(options, value) {
			value = options[0]
		}
		vt := view.Delayed{Build: func(attrs []view.Attribute, class string, styles []view.Style) view.Element {
			return c.Control(Control{
				Kind:        kind,
				Value:       value,
				Placeholder: placeholder,
				Options:     options,
				Attrs:       attrs,
				Class:       class,
				Styles:      styles,
				OnChange:    func(s string) { d.Dispatch(model.SetValue{V: s}) },
			})
		}}
		return value, vt, failure.Empty{}
	}
}

// Text is a single-line string input backed by one value leaf.
func (c Controls) Text(placeholder string) Formlet[string] {
	return c.input(ControlText, placeholder, nil)
}

// TextArea is a multi-line string input.
func (c Controls) TextArea(placeholder string) Formlet[string] {
	return c.input(ControlTextArea, placeholder, nil)
}

// Password is a masked string input. Masking is a renderer concern; the
// model stores the value like any other.
func (c Controls) Password(placeholder string) Formlet[string] {
	return c.input(ControlPassword, placeholder, nil)
}

// Checkbox is a boolean input encoded as CheckedValue / empty string in the
// model.
func (c Controls) Checkbox() Formlet[bool] {
	inner := c.input(ControlCheckbox, "", nil)
	return Map(inner, func(v string) bool { return v == CheckedValue })
}

// Select is a one-of-N input. Constructing a select with no options is a
// programming error and panics immediately, before any evaluation pass.
func (c Controls) Select(options []string) Formlet[string] {
	if len(options) == 0 {
		panic("formlet: select requires at least one option")
	}
	return c.input(ControlSelect, "", append([]string(nil), options...))
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// Opt is the value of an optional sub-form.
type Opt[T any] struct {
	Present bool
	Value   T
}

// Option gates an inner formlet behind a labeled checkbox. When unchecked,
// the inner formlet contributes nothing to the view or failure trees and
// the produced value is absent.
func Option[T any](c Controls, label string, inner Formlet[T]) Formlet[Opt[T]] {
	gate := WithLabel(c, label, c.Checkbox())
	return Bind(gate, func(checked bool) Formlet[Opt[T]] {
		if !checked {
			return Return(Opt[T]{})
		}
		return Map(inner, func(v T) Opt[T] { return Opt[T]{Present: true, Value: v} })
	})
}

// Case names one variant of a Choice.
type Case[T any] struct {
	Label   string
	Formlet Formlet[T]
}

// Choice gates one of several variant formlets behind a select. Each
// variant evaluates inside a sub-model named after its label, so switching
// variants abandons the previous variant's state instead of misreading it
// as the new variant's shape. Constructing a choice with no cases panics.
func Choice[T any](c Controls, cases []Case[T]) Formlet[T] {
	if len(cases) == 0 {
		panic("formlet: choice requires at least one case")
	}
	byLabel := make(map[string]Formlet[T], len(cases))
	labels := make([]string, 0, len(cases))
	for _, cs := range cases {
		labels = append(labels, cs.Label)
		byLabel[cs.Label] = cs.Formlet
	}
	selector := c.Select(labels)
	return Bind(selector, func(selected string) Formlet[T] {
		chosen, ok := byLabel[selected]
		if !ok {
			chosen = cases[0].Formlet
			selected = cases[0].Label
		}
		return WithSub(selected, chosen)
	})
}
