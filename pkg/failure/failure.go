// Package failure holds the validation-failure tree produced by one
// formlet evaluation pass. The tree is a semigroup with Empty as its zero;
// it is rebuilt from scratch on every pass and never persisted.
package failure

// Tree accumulates validation failures. Leaves carry the evaluation path
// that produced them so hosts can associate messages with controls.
type Tree interface {
	isTree()
}

// Empty is the zero tree: no failures at all.
type Empty struct{}

// Leaf is a single failure message qualified by its evaluation path.
type Leaf struct {
	Path    string
	Message string
}

// Suppress marks every failure in its subtree as non-blocking but still
// reportable. A suppressed failure does not affect overall validity.
type Suppress struct {
	Tree Tree
}

// Fork combines the failures of two sibling formlets.
type Fork struct {
	Left  Tree
	Right Tree
}

func (Empty) isTree()    {}
func (Leaf) isTree()     {}
func (Suppress) isTree() {}
func (Fork) isTree()     {}

// Join merges two trees. Empty is the identity on both sides. Two
// suppressed trees stay suppressed; mixing a suppressed tree with an
// unsuppressed one yields a plain fork, so the suppressed side's leaves
// keep their flag only through their own Suppress wrapper.
func Join(a, b Tree) Tree {
	if isEmpty(a) {
		return b
	}
	if isEmpty(b) {
		return a
	}
	sa, aok := a.(Suppress)
	sb, bok := b.(Suppress)
	if aok && bok {
		return Suppress{Tree: Fork{Left: sa.Tree, Right: sb.Tree}}
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

// IsGood reports whether the tree contains no un-suppressed leaf. A good
// tree means the form value is acceptable for commit.
func IsGood(t Tree) bool {
	switch t := t.(type) {
	case Leaf:
		return false
	case Fork:
		return IsGood(t.Left) && IsGood(t.Right)
	default:
		// Empty, Suppress, nil: nothing blocks validity.
		return true
	}
}

// Item is one flattened failure.
type Item struct {
	Suppressed bool
	Path       string
	Message    string
}

// Flatten lists every failure depth-first, left to right, matching the
// textual order of the originating formlet expression. The suppression flag
// is carried down into Suppress subtrees and never leaks to siblings.
func Flatten(t Tree) []Item {
	var items []Item
	flattenInto(t, false, &items)
	return items
}

func flattenInto(t Tree, suppressed bool, items *[]Item) {
	switch t := t.(type) {
	case Leaf:
		*items = append(*items, Item{Suppressed: suppressed, Path: t.Path, Message: t.Message})
	case Suppress:
		flattenInto(t.Tree, true, items)
	case Fork:
		flattenInto(t.Left, suppressed, items)
		flattenInto(t.Right, suppressed, items)
	}
}
