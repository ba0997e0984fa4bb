package formlet

import (
	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// Return lifts a plain value into a formlet that renders nothing and never
// fails. It is the identity element of the algebra.
func Return[T any](v T) Formlet[T] {
	return func(*Context, Path, model.Model, model.Dispatcher) (T, view.Tree, failure.Tree) {
		return v, view.Empty{}, failure.Empty{}
	}
}

// Map transforms the produced value; view and failure trees pass through
// untouched.
func Map[T, U any](f Formlet[T], fn func(T) U) Formlet[U] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (U, view.Tree, failure.Tree) {
		v, vt, ft := f(ctx, path, m, d)
		return fn(v), vt, ft
	}
}

// combine is the shared two-child evaluation shape. The incoming model
// splits along its fork (fresh empties on shape mismatch); the left child
// evaluates against the left slice and a Left-scoped dispatcher, then the
// right child against the right slice and a Right-scoped dispatcher. Both
// children always run, even when one is visually hidden, because the fork
// structure of the model depends on knowing both.
func combine[A, B, C any](t Formlet[A], u Formlet[B], merge func(A, B) C) Formlet[C] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (C, view.Tree, failure.Tree) {
		lm, rm := model.Split(m)
		av, avt, aft := t(ctx, path, lm, d.Left())
		bv, bvt, bft := u(ctx, path, rm, d.Right())
		return merge(av, bv), view.Join(avt, bvt), failure.Join(aft, bft)
	}
}

// Apply is the applicative combinator: the left formlet produces a
// function, the right produces its argument.
func Apply[T, U any](ff Formlet[func(T) U], ft Formlet[T]) Formlet[U] {
	return combine(ff, ft, func(fn func(T) U, v T) U { return fn(v) })
}

// Pair is the product of two formlet values.
type Pair[T, U any] struct {
	First  T
	Second U
}

// AndAlso evaluates two formlets side by side and pairs their values.
func AndAlso[T, U any](t Formlet[T], u Formlet[U]) Formlet[Pair[T, U]] {
	return combine(t, u, func(a T, b U) Pair[T, U] { return Pair[T, U]{First: a, Second: b} })
}

// KeepLeft evaluates both formlets but keeps only the left value. The
// discarded side still contributes its view and failure trees.
func KeepLeft[T, U any](t Formlet[T], u Formlet[U]) Formlet[T] {
	return combine(t, u, func(a T, _ U) T { return a })
}

// KeepRight evaluates both formlets but keeps only the right value.
func KeepRight[T, U any](t Formlet[T], u Formlet[U]) Formlet[U] {
	return combine(t, u, func(_ T, b U) U { return b })
}

// Bind sequences two formlets where the second depends on the first's
// value, enabling variant and optional sub-forms. The model splits exactly
// as in combine, but the right formlet is only constructed once the left
// value is known. The left branch always evaluates first and always fully:
// an invalid left branch still produces a value for fn to consume.
func Bind[T, U any](t Formlet[T], fn func(T) Formlet[U]) Formlet[U] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (U, view.Tree, failure.Tree) {
		lm, rm := model.Split(m)
		tv, tvt, tft := t(ctx, path, lm, d.Left())
		uv, uvt, uft := fn(tv)(ctx, path, rm, d.Right())
		return uv, view.Join(tvt, uvt), failure.Join(tft, uft)
	}
}

// WithSub scopes the wrapped formlet to a named sub-model slot, creating it
// empty when absent or shape-mismatched. The dispatcher and path are scoped
// alongside so updates and failure messages stay addressed correctly.
func WithSub[T any](name string, t Formlet[T]) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		return t(ctx, path.Push(name), model.InSubNamed(m, name), d.Sub(name))
	}
}

// WithAttribute attaches an attribute to the wrapped formlet's view tree.
func WithAttribute[T any](t Formlet[T], attr view.Attribute) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := t(ctx, path, m, d)
		return v, view.WithAttribute{Attr: attr, Tree: vt}, ft
	}
}

// WithClass adds a class name to the wrapped formlet's view tree.
func WithClass[T any](t Formlet[T], name string) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := t(ctx, path, m, d)
		return v, view.WithClass{Name: name, Tree: vt}, ft
	}
}

// WithStyle adds a style to the wrapped formlet's view tree.
func WithStyle[T any](t Formlet[T], style view.Style) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := t(ctx, path, m, d)
		return v, view.WithStyle{Style: style, Tree: vt}, ft
	}
}

// ContainerFactory builds a single wrapping element around pre-flattened
// children, receiving whatever attributes, classes and styles ancestors
// accumulate afterwards.
type ContainerFactory func(children []view.Element, attrs []view.Attribute, class string, styles []view.Style) view.Element

// WithContainer flattens the wrapped formlet's fragments immediately and
// replaces them with one deferred container element. Ancestor styling
// applied later lands on the container, not on the already-built children.
func WithContainer[T any](build ContainerFactory, t Formlet[T]) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := t(ctx, path, m, d)
		children := view.Flatten(vt)
		wrapped := view.Delayed{Build: func(attrs []view.Attribute, class string, styles []view.Style) view.Element {
			return build(children, attrs, class, styles)
		}}
		return v, wrapped, ft
	}
}

// WithLabel obtains a fresh id, evaluates the wrapped formlet under a path
// extended with the label text, and joins a label element ahead of the
// wrapped tree. The id lands on the wrapped controls through the attribute
// accumulator so label and control stay associated.
func WithLabel[T any](c Controls, text string, t Formlet[T]) Formlet[T] {
	return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		id := ctx.NextID()
		v, vt, ft := t(ctx, path.Push(text), m, d)
		labeled := view.WithAttribute{Attr: view.Attribute{Key: "id", Value: id}, Tree: vt}
		lbl := view.Final{Element: c.Label(id, text)}
		return v, view.Join(lbl, labeled), ft
	}
}
