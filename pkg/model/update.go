package model

// Update is a localized, path-addressed instruction to edit a Model. One
// user interaction produces exactly one Update; the host folds it into the
// previous snapshot with Apply and schedules the next evaluation pass.
type Update interface {
	isUpdate()
}

// SetValue replaces the addressed node with a Value leaf.
type SetValue struct {
	V string
}

// InSub applies an update inside the named sub-model, discarding whatever
// was stored there when the name does not match.
type InSub struct {
	Name   string
	Update Update
}

// InLeft applies an update to the left half of a fork.
type InLeft struct {
	Update Update
}

// InRight applies an update to the right half of a fork.
type InRight struct {
	Update Update
}

func (SetValue) isUpdate() {}
func (InSub) isUpdate()    {}
func (InLeft) isUpdate()   {}
func (InRight) isUpdate()  {}

// Apply folds a single update into a model, returning a fresh tree. The old
// model is never mutated, so hosts may compare snapshots by reference.
// Shape mismatches are repaired rather than rejected: descending into a
// non-fork replaces it with Fork(Empty, Empty) first, and descending into a
// differently-named sub-model discards its content.
func Apply(u Update, m Model) Model {
	switch u := u.(type) {
	case SetValue:
		return Value{V: u.V}
	case InSub:
		child := Model(Empty{})
		if s, ok := m.(Sub); ok && s.Name == u.Name {
			child = s.Child
		}
		return Sub{Name: u.Name, Child: Apply(u.Update, child)}
	case InLeft:
		left, right := Split(m)
		return Fork{Left: Apply(u.Update, left), Right: right}
	case InRight:
		left, right := Split(m)
		return Fork{Left: left, Right: Apply(u.Update, right)}
	default:
		return m
	}
}

// Fold applies pending updates oldest-first. Hosts that queue events while
// a pass is running drain the queue through Fold before re-evaluating.
func Fold(m Model, updates ...Update) Model {
	for _, u := range updates {
		m = Apply(u, m)
	}
	return m
}
