// Package template defines the seam between HTML renderers and the
// template engine that assembles their chrome. It follows the
// github.com/goliatone/go-template engine surface so engine
// implementations stay swappable.
package template

// Renderer executes named or literal templates against a data context.
type Renderer interface {
	// RenderTemplate executes the template stored under name.
	RenderTemplate(name string, data map[string]any) (string, error)
	// RenderString parses and executes literal template content.
	RenderString(content string, data map[string]any) (string, error)
}
