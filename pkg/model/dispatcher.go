package model

// Dispatcher is a write-only, position-scoped callback through which a leaf
// element announces a value change without knowing where it sits in the
// tree. The root dispatcher wraps the host's callback; descending into a
// combinator derives a new dispatcher that prefixes the corresponding path
// constructor onto every update it later receives. Dispatchers are never
// mutated, only wrapped, and must not outlive the pass that derived them.
type Dispatcher struct {
	send func(Update)
}

// NewDispatcher wraps the host callback that receives updates. A nil
// callback yields a dispatcher that drops everything, which is convenient
// for render-only passes.
func NewDispatcher(send func(Update)) Dispatcher {
	return Dispatcher{send: send}
}

// Dispatch delivers a single update to the host.
func (d Dispatcher) Dispatch(u Update) {
	if d.send != nil {
		d.send(u)
	}
}

// Left scopes the dispatcher to the left half of a fork.
func (d Dispatcher) Left() Dispatcher {
	return Dispatcher{send: func(u Update) { d.Dispatch(InLeft{Update: u}) }}
}

// Right scopes the dispatcher to the right half of a fork.
func (d Dispatcher) Right() Dispatcher {
	return Dispatcher{send: func(u Update) { d.Dispatch(InRight{Update: u}) }}
}

// Sub scopes the dispatcher to the named sub-model.
func (d Dispatcher) Sub(name string) Dispatcher {
	return Dispatcher{send: func(u Update) { d.Dispatch(InSub{Name: name, Update: u}) }}
}
