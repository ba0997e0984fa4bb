// Package vanilla renders flattened formlet documents as dependency-free
// HTML. It also supplies the default element vocabulary leaf formlets use.
package vanilla

import (
	"html"
	"strings"

	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Node is the concrete renderable element this package produces. Everything
// is escaped at write time, so Node values can carry raw user input.
type Node struct {
	Tag      string
	Attrs    []view.Attribute
	Class    string
	Styles   []view.Style
	Text     string
	Children []Node
}

var voidTags = map[string]bool{
	"input": true,
	"br":    true,
	"hr":    true,
}

// WriteHTML appends the node's markup to the builder.
func (n Node) WriteHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Value))
		b.WriteByte('"')
	}
	if n.Class != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(n.Class))
		b.WriteByte('"')
	}
	if len(n.Styles) > 0 {
		b.WriteString(` style="`)
		for i, s := range n.Styles {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(html.EscapeString(s.Property))
			b.WriteString(": ")
			b.WriteString(html.EscapeString(s.Value))
		}
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidTags[n.Tag] {
		return
	}
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, child := range n.Children {
		child.WriteHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// HTML renders the node to a string.
func (n Node) HTML() string {
	var b strings.Builder
	n.WriteHTML(&b)
	return b.String()
}

// Controls returns the element constructors that build vanilla nodes for
// leaf formlets. The name attribute of each control falls back to its
// generated id so plain form submissions stay addressable.
func Controls() formlet.Controls {
	return formlet.Controls{
		Control:   buildControl,
		Label:     buildLabel,
		Container: buildContainer,
	}
}

func buildControl(c formlet.Control) view.Element {
	attrs := append([]view.Attribute(nil), c.Attrs...)
	if name := attrValue(attrs, "id"); name != "" && attrValue(attrs, "name") == "" {
		attrs = append(attrs, view.Attribute{Key: "name", Value: name})
	}

	switch c.Kind {
	case formlet.ControlTextArea:
		if c.Placeholder != "" {
			attrs = append(attrs, view.Attribute{Key: "placeholder", Value: c.Placeholder})
		}
		return Node{Tag: "textarea", Attrs: attrs, Class: c.Class, Styles: c.Styles, Text: c.Value}
	case formlet.ControlCheckbox:
		attrs = append(attrs, view.Attribute{Key: "type", Value: "checkbox"})
		if c.Value == formlet.CheckedValue {
			attrs = append(attrs, view.Attribute{Key: "checked", Value: "checked"})
		}
		return Node{Tag: "input", Attrs: attrs, Class: c.Class, Styles: c.Styles}
	case formlet.ControlSelect:
		children := make([]Node, 0, len(c.Options))
		for _, opt := range c.Options {
			option := Node{Tag: "option", Attrs: []view.Attribute{{Key: "value", Value: opt}}, Text: opt}
			if opt == c.Value {
				option.Attrs = append(option.Attrs, view.Attribute{Key: "selected", Value: "selected"})
			}
			children = append(children, option)
		}
		return Node{Tag: "select", Attrs: attrs, Class: c.Class, Styles: c.Styles, Children: children}
	case formlet.ControlPassword:
		attrs = appendInputAttrs(attrs, "password", c)
		return Node{Tag: "input", Attrs: attrs, Class: c.Class, Styles: c.Styles}
	default:
		attrs = appendInputAttrs(attrs, "text", c)
		return Node{Tag: "input", Attrs: attrs, Class: c.Class, Styles: c.Styles}
	}
}

func appendInputAttrs(attrs []view.Attribute, inputType string, c formlet.Control) []view.Attribute {
	attrs = append(attrs, view.Attribute{Key: "type", Value: inputType})
	if c.Value != "" {
		attrs = append(attrs, view.Attribute{Key: "value", Value: c.Value})
	}
	if c.Placeholder != "" {
		attrs = append(attrs, view.Attribute{Key: "placeholder", Value: c.Placeholder})
	}
	return attrs
}

func buildLabel(forID, text string) view.Element {
	return Node{
		Tag:   "label",
		Attrs: []view.Attribute{{Key: "for", Value: forID}},
		Text:  text,
	}
}

func buildContainer(children []view.Element, attrs []view.Attribute, class string, styles []view.Style) view.Element {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		if n, ok := child.(Node); ok {
			nodes = append(nodes, n)
		}
	}
	return Node{Tag: "div", Attrs: attrs, Class: class, Styles: styles, Children: nodes}
}

func attrValue(attrs []view.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}
