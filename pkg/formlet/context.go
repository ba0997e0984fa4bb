package formlet

import (
	"strconv"
	"strings"
)

// Context supplies unique element identifiers during one evaluation pass.
// The counter restarts at its configured initial value on Reset, so two
// passes over the same tree shape hand out identical ids and generated
// markup stays stable. A context must not be shared between concurrent
// passes.
type Context struct {
	prefix string
	start  int
	next   int
}

// NewContext returns a context whose ids look like "formlet-0",
// "formlet-1", and so on.
func NewContext() *Context {
	return NewContextFrom("formlet", 0)
}

// NewContextFrom returns a context with a custom id prefix and initial
// counter value.
func NewContextFrom(prefix string, start int) *Context {
	return &Context{prefix: prefix, start: start, next: start}
}

// NextID returns a fresh identifier and advances the counter.
func (c *Context) NextID() string {
	id := c.prefix + "-" + strconv.Itoa(c.next)
	c.next++
	return id
}

// Reset restarts the counter at its initial value. Call it (or use Run,
// which does) at the start of every evaluation pass.
func (c *Context) Reset() {
	c.next = c.start
}

// Path is the immutable sequence of named segments accumulated while
// evaluation descends into sub-formlets. It qualifies failure messages;
// nothing else depends on it.
type Path struct {
	segments []string
}

// Push returns a copy of the path extended with one more segment. The
// receiver is left untouched, so sibling branches never observe each
// other's segments.
func (p Path) Push(segment string) Path {
	out := make([]string, len(p.segments)+1)
	copy(out, p.segments)
	out[len(p.segments)] = segment
	return Path{segments: out}
}

// Segments returns a copy of the path segments, root first.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// String joins the segments with dots, matching the dotted field paths the
// render layer uses.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}
