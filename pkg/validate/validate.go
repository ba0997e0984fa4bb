// Package validate wraps formlets with value checks. Validators never
// change the produced value; they graft failure leaves and tag the view
// with a validity class marker so renderers can surface the state inline.
// Validators chain by ordinary composition, so a single value can
// accumulate several independent failures at the same path.
package validate

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/formlet"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// InvalidClass tags the view tree of a formlet whose predicate failed.
const InvalidClass = "is-invalid"

// NotEmptyMessage is the failure message NotEmpty reports.
const NotEmptyMessage = "You must provide a value."

// Test evaluates the wrapped formlet and grafts a failure leaf at the
// current path when the predicate rejects the produced value. The value
// itself always passes through unchanged, valid or not.
func Test[T any](f formlet.Formlet[T], pred func(T) bool, message string) formlet.Formlet[T] {
	return func(ctx *formlet.Context, path formlet.Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := f(ctx, path, m, d)
		if pred(v) {
			return v, vt, ft
		}
		ft = failure.Join(ft, failure.Leaf{Path: path.String(), Message: message})
		return v, view.WithClass{Name: InvalidClass, Tree: vt}, ft
	}
}

// Suppressed runs the wrapped formlet and marks whatever failures it
// produced as non-blocking but still reportable.
func Suppressed[T any](f formlet.Formlet[T]) formlet.Formlet[T] {
	return func(ctx *formlet.Context, path formlet.Path, m model.Model, d model.Dispatcher) (T, view.Tree, failure.Tree) {
		v, vt, ft := f(ctx, path, m, d)
		return v, vt, failure.Suppress{Tree: ft}
	}
}

// NotEmpty rejects the empty string. Whitespace counts as content;
// callers that want to reject blank input compose their own Test.
func NotEmpty(f formlet.Formlet[string]) formlet.Formlet[string] {
	return Test(f, func(s string) bool { return s != "" }, NotEmptyMessage)
}

// Matches rejects values that do not match the pattern. An invalid pattern
// is a programming error and panics at construction time, before any
// evaluation pass runs.
func Matches(f formlet.Formlet[string], pattern, message string) formlet.Formlet[string] {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("validate: invalid pattern %q: %v", pattern, err))
	}
	return Test(f, re.MatchString, message)
}

// MinLength rejects values shorter than n characters.
func MinLength(f formlet.Formlet[string], n int, message string) formlet.Formlet[string] {
	return Test(f, func(s string) bool { return len([]rune(s)) >= n }, message)
}

// MaxLength rejects values longer than n characters.
func MaxLength(f formlet.Formlet[string], n int, message string) formlet.Formlet[string] {
	return Test(f, func(s string) bool { return len([]rune(s)) <= n }, message)
}
