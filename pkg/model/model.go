package model

// Model is the persisted, tree-shaped state of a form between evaluation
// passes. The tree mirrors the shape of the formlet expression that last
// evaluated it: every two-child combinator owns a Fork, every named scope
// owns a Sub, every leaf input owns a Value. Hosts treat Model as an
// immutable snapshot; the only way to derive a new one is Apply.
type Model interface {
	isModel()
}

// Empty is the zero model. Evaluators substitute it whenever the stored
// shape does not match what the formlet expects.
type Empty struct{}

// Value holds a single atomic string, e.g. the content of a text input.
type Value struct {
	V string
}

// Sub is a named sub-model used for logically-scoped sections.
type Sub struct {
	Name  string
	Child Model
}

// Fork pairs the two sub-models of a two-child combinator.
type Fork struct {
	Left  Model
	Right Model
}

func (Empty) isModel() {}
func (Value) isModel() {}
func (Sub) isModel()   {}
func (Fork) isModel()  {}

// Split returns the two halves of a fork, or two empty models when the
// stored shape is anything else.
func Split(m Model) (Model, Model) {
	if f, ok := m.(Fork); ok {
		return f.Left, f.Right
	}
	return Empty{}, Empty{}
}

// InSubNamed returns the child of a sub-model when the stored name matches,
// or an empty model otherwise.
func InSubNamed(m Model, name string) Model {
	if s, ok := m.(Sub); ok && s.Name == name {
		return s.Child
	}
	return Empty{}
}

// StringValue returns the stored atomic value, or the fallback when the
// model holds anything but a Value leaf.
func StringValue(m Model, fallback string) string {
	if v, ok := m.(Value); ok {
		return v.V
	}
	return fallback
}
