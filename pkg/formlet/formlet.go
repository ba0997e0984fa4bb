// Package formlet implements a composable form-construction algebra. A
// formlet is a pure evaluator that turns a model slice into three things at
// once: a typed value, a tree of render fragments, and a tree of validation
// failures. Combinators build bigger formlets out of smaller ones while
// threading all three structures through a fixed left/right tree-splitting
// discipline, which is what lets a flat, serializable model back an
// arbitrarily nested and dynamically-reshaped visual tree.
package formlet

import (
	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Formlet is the central abstraction: a stateless function of the pass
// context, the current path, a model slice and a position-scoped
// dispatcher. All state lives in the model passed in and the updates
// emitted out; the formlet itself may be evaluated any number of times.
type Formlet[T any] func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree)

// Run evaluates a formlet for one pass. It resets the context counter so
// generated ids are stable across passes, substitutes an empty model for
// nil, and wraps the host callback into the root dispatcher. A nil ctx gets
// a fresh default context.
func Run[T any](f Formlet[T], ctx *Context, m model.Model, send func(model.Update)) (T, view.Tree, failure.Tree) {
	if ctx == nil {
		ctx = NewContext()
	}
	ctx.Reset()
	if m == nil {
		m = model.Empty{}
	}
	return f(ctx, Path{}, m, model.NewDispatcher(send))
}
