// Package render defines the contract between the formlet core and
// concrete renderers, plus a registry for discovering them by name.
package render

import (
	"context"

	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Document packages the outcome of one evaluation pass for renderers: the
// flattened render fragments, the flattened failures, and overall validity.
type Document struct {
	Elements []view.Element
	Failures []failure.Item
	Good     bool
}

// Snapshot flattens the trees produced by an evaluation pass into a
// Document.
func Snapshot(vt view.Tree, ft failure.Tree) Document {
	return Document{
		Elements: view.Flatten(vt),
		Failures: failure.Flatten(ft),
		Good:     failure.IsGood(ft),
	}
}

// Options carry per-request data renderers may use without affecting the
// evaluation pipeline.
type Options struct {
	// Title labels the rendered form, e.g. the page heading or the TUI
	// session banner.
	Title string
	// Method overrides the submit method emitted by HTML renderers.
	Method string
	// Action is the submit target emitted by HTML renderers.
	Action string
}

// Renderer converts a Document into a byte representation (HTML, JSON,
// plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc Document, opts Options) ([]byte, error)
}
