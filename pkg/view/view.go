// Package view holds the render-fragment tree produced by one formlet
// evaluation pass. The core never inspects the elements it carries; it only
// accumulates attributes, classes and styles around them until Flatten
// finalizes the pass. Like the failure tree, a view tree is rebuilt fresh
// every pass.
package view

// Element is an opaque renderable. Concrete renderers supply their own
// element types through the constructors leaf formlets close over; the
// evaluation core never looks inside.
type Element interface{}

// Attribute is a key/value pair destined for a rendered control.
type Attribute struct {
	Key   string
	Value string
}

// Style is a single CSS-style property/value pair.
type Style struct {
	Property string
	Value    string
}

// Builder defers element construction until flatten time, when the
// attributes, class names and styles contributed by ancestor combinators
// are finally known. A builder runs exactly once per pass and must not
// memoize across passes.
type Builder func(attrs []Attribute, class string, styles []Style) Element

// Tree is the per-pass tree of render fragments.
type Tree interface {
	isTree()
}

// Empty is the zero tree: nothing to render.
type Empty struct{}

// Final wraps an already-built element. Finished elements cannot
// retroactively receive attributes, so flatten emits them as-is.
type Final struct {
	Element Element
}

// Delayed wraps a deferred element constructor.
type Delayed struct {
	Build Builder
}

// WithAttribute adds an attribute to every delayed element in its subtree.
type WithAttribute struct {
	Attr Attribute
	Tree Tree
}

// WithClass prepends a class name for every delayed element in its subtree.
type WithClass struct {
	Name string
	Tree Tree
}

// WithStyle adds a style for every delayed element in its subtree.
type WithStyle struct {
	Style Style
	Tree  Tree
}

// Fork joins the fragments of two sibling formlets.
type Fork struct {
	Left  Tree
	Right Tree
}

func (Empty) isTree()         {}
func (Final) isTree()         {}
func (Delayed) isTree()       {}
func (WithAttribute) isTree() {}
func (WithClass) isTree()     {}
func (WithStyle) isTree()     {}
func (Fork) isTree()          {}

// Join merges two trees. Empty is the identity on both sides.
func Join(a, b Tree) Tree {
	if isEmpty(a) {
		return b
	}
	if isEmpty(b) {
		return a
	}
	return Fork{Left: a, Right: b}
}

func isEmpty(t Tree) bool {
	if t == nil {
		return true
	}
	_, ok := t.(Empty)
	return ok
}

// Flatten walks the tree depth-first, left to right, and returns the
// rendered elements in order. Attribute, class and style accumulators start
// empty at the root and extend on descent; a Delayed node sees exactly the
// values accumulated on its own ancestor chain. Class names join with a
// single space, the newest (deepest) name first.
func Flatten(t Tree) []Element {
	var out []Element
	flattenInto(t, nil, "", nil, &out)
	return out
}

func flattenInto(t Tree, attrs []Attribute, class string, styles []Style, out *[]Element) {
	switch t := t.(type) {
	case Final:
		*out = append(*out, t.Element)
	case Delayed:
		if t.Build != nil {
			*out = append(*out, t.Build(attrs, class, styles))
		}
	case WithAttribute:
		extended := make([]Attribute, 0, len(attrs)+1)
		extended = append(extended, attrs...)
		extended = append(extended, t.Attr)
		flattenInto(t.Tree, extended, class, styles, out)
	case WithClass:
		flattenInto(t.Tree, attrs, joinClass(t.Name, class), styles, out)
	case WithStyle:
		extended := make([]Style, 0, len(styles)+1)
		extended = append(extended, styles...)
		extended = append(extended, t.Style)
		flattenInto(t.Tree, attrs, class, extended, out)
	case Fork:
		flattenInto(t.Left, attrs, class, styles, out)
		flattenInto(t.Right, attrs, class, styles, out)
	}
}

func joinClass(name, existing string) string {
	if existing == "" {
		return name
	}
	if name == "" {
		return existing
	}
	return name + " " + existing
}
