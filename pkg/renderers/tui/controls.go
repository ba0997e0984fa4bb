// Package tui drives an interactive terminal session over a formlet: it
// walks the flattened view elements, prompts for each control, dispatches
// the answers back through the model, and loops until validation passes or
// the user gives up.
package tui

import (
	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Prompt is the renderable element this package produces for controls. The
// session reads the widget kind and current value from it and pushes the
// user's answer through Change.
type Prompt struct {
	Kind        formlet.ControlKind
	Value       string
	Placeholder string
	Options     []string
	Change      func(string)
}

// Heading is the renderable produced for labels; it becomes the message of
// the next prompt.
type Heading struct {
	Text string
}

// Group wraps container children so nested sections still walk in order.
type Group struct {
	Children []view.Element
}

// Controls returns the element constructors leaf formlets need for a
// terminal session.
func Controls() formlet.Controls {
	return formlet.Controls{
		Control: func(c formlet.Control) view.Element {
			return &Prompt{
				Kind:        c.Kind,
				Value:       c.Value,
				Placeholder: c.Placeholder,
				Options:     c.Options,
				Change:      c.OnChange,
			}
		},
		Label: func(forID, text string) view.Element {
			return Heading{Text: text}
		},
		Container: func(children []view.Element, _ []view.Attribute, _ string, _ []view.Style) view.Element {
			return Group{Children: children}
		},
	}
}
