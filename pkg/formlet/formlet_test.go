package formlet

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formlet/pkg/failure"
	"github.com/goliatone/go-formlet/pkg/model"
	"github.com/goliatone/go-formlet/pkg/view"
)

// elem is the renderable used throughout these tests. Change is captured
// separately where a test needs to drive dispatch.
type elem struct {
	Kind  string
	Text  string
	For   string
	ID    string
	Class string
}

func testControls(changes *map[string]func(string)) Controls {
	record := func(id string, fn func(string)) {
		if changes != nil {
			if *changes == nil {
				*changes = make(map[string]func(string))
			}
			(*changes)[id] = fn
		}
	}
	return Controls{
		Control: func(c Control) view.Element {
			id := attrValue(c.Attrs, "id")
			record(id, c.OnChange)
			return elem{Kind: string(c.Kind), Text: c.Value, ID: id, Class: c.Class}
		},
		Label: func(forID, text string) view.Element {
			return elem{Kind: "label", Text: text, For: forID}
		},
		Container: func(children []view.Element, _ []view.Attribute, class string, _ []view.Style) view.Element {
			return elem{Kind: "container", Text: "", Class: class}
		},
	}
}

func attrValue(attrs []view.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func evaluate[T any](t *testing.T, f Formlet[T], m model.Model) (T, []view.Element, []failure.Item) {
	t.Helper()
	v, vt, ft := Run(f, NewContext(), m, nil)
	return v, view.Flatten(vt), failure.Flatten(ft)
}

func TestReturn_AndAlsoPairsValuesWithEmptyTrees(t *testing.T) {
	f := AndAlso(Return(1), Return(2))

	for _, m := range []model.Model{model.Empty{}, model.Value{V: "junk"}, nil} {
		v, vt, ft := Run(f, NewContext(), m, nil)
		if v.First != 1 || v.Second != 2 {
			t.Fatalf("value = %+v, want (1, 2)", v)
		}
		if _, ok := vt.(view.Empty); !ok {
			t.Fatalf("view tree = %T, want view.Empty", vt)
		}
		if _, ok := ft.(failure.Empty); !ok {
			t.Fatalf("failure tree = %T, want failure.Empty", ft)
		}
	}
}

func TestMap_TransformsValueOnly(t *testing.T) {
	c := testControls(nil)
	f := Map(c.Text("hint"), func(s string) int { return len(s) })

	v, elements, failures := evaluate(t, f, model.Value{V: "abcd"})
	if v != 4 {
		t.Fatalf("value = %d, want 4", v)
	}
	if len(elements) != 1 || len(failures) != 0 {
		t.Fatalf("trees changed under Map: %v %v", elements, failures)
	}
}

func TestApply_AppliesFunctionToArgument(t *testing.T) {
	c := testControls(nil)
	ff := Map(c.Text(""), func(s string) func(string) string {
		return func(x string) string { return s + "/" + x }
	})
	f := Apply(ff, c.Text(""))

	m := model.Fork{Left: model.Value{V: "a"}, Right: model.Value{V: "b"}}
	v, _, _ := Run(f, NewContext(), m, nil)
	if v != "a/b" {
		t.Fatalf("value = %q, want %q", v, "a/b")
	}
}

func TestKeep_DiscardsValueButKeepsTrees(t *testing.T) {
	c := testControls(nil)
	left := c.Text("left")
	right := c.Text("right")

	_, elements, _ := evaluate(t, KeepLeft(left, right), model.Empty{})
	if len(elements) != 2 {
		t.Fatalf("KeepLeft dropped a view contribution: %v", elements)
	}
	_, elements, _ = evaluate(t, KeepRight(left, right), model.Empty{})
	if len(elements) != 2 {
		t.Fatalf("KeepRight dropped a view contribution: %v", elements)
	}
}

func TestCombine_SplitsModelLeftThenRight(t *testing.T) {
	c := testControls(nil)
	f := AndAlso(c.Text(""), c.Text(""))
	m := model.Fork{Left: model.Value{V: "l"}, Right: model.Value{V: "r"}}

	v, _, _ := Run(f, NewContext(), m, nil)
	if v.First != "l" || v.Second != "r" {
		t.Fatalf("value = %+v, want (l, r)", v)
	}
}

func TestCombine_ForkRoundTrip(t *testing.T) {
	c := testControls(nil)
	left := c.Text("")
	right := c.Checkbox()
	f := AndAlso(left, right)

	m := model.Fork{Left: model.Value{V: "Alice"}, Right: model.Value{V: CheckedValue}}
	combined, _, _ := Run(f, NewContext(), m, nil)

	lm, rm := model.Split(m)
	lv, _, _ := Run(left, NewContext(), lm, nil)
	rv, _, _ := Run(right, NewContext(), rm, nil)

	if lv != combined.First || rv != combined.Second {
		t.Fatalf("fork round trip mismatch: combined=%+v split=(%v, %v)", combined, lv, rv)
	}
}

func TestBind_LeftEvaluatesBeforeRight(t *testing.T) {
	var order []string
	mark := func(name string, f Formlet[string]) Formlet[string] {
		return func(ctx *Context, path Path, m model.Model, d model.Dispatcher) (string, view.Tree, failure.Tree) {
			order = append(order, name)
			return f(ctx, path, m, d)
		}
	}
	c := testControls(nil)
	f := Bind(mark("left", c.Text("")), func(string) Formlet[string] {
		return mark("right", c.Text(""))
	})

	_, elements, _ := evaluate(t, f, model.Empty{})
	if diff := cmp.Diff([]string{"left", "right"}, order); diff != "" {
		t.Fatalf("unexpected evaluation order (-want +got):\n%s", diff)
	}
	if len(elements) != 2 {
		t.Fatalf("expected both branches in flatten order, got %v", elements)
	}
}

func TestBind_DispatchesIntoRightFork(t *testing.T) {
	c := testControls(nil)
	var changes map[string]func(string)
	cc := testControls(&changes)

	f := Bind(c.Checkbox(), func(bool) Formlet[string] {
		return WithAttribute(cc.Text(""), view.Attribute{Key: "id", Value: "inner"})
	})

	var got model.Update
	v, vt, _ := Run(f, NewContext(), model.Empty{}, func(u model.Update) { got = u })
	_ = v
	view.Flatten(vt)

	changes["inner"]("typed")
	want := model.Update(model.InRight{Update: model.SetValue{V: "typed"}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected update (-want +got):\n%s", diff)
	}
}

func TestWithSub_ScopesModelPathAndDispatch(t *testing.T) {
	var changes map[string]func(string)
	c := testControls(&changes)

	f := WithSub("person", WithAttribute(c.Text(""), view.Attribute{Key: "id", Value: "name"}))
	m := model.Sub{Name: "person", Child: model.Value{V: "Alice"}}

	var got model.Update
	v, vt, _ := Run(f, NewContext(), m, func(u model.Update) { got = u })
	if v != "Alice" {
		t.Fatalf("value = %q, want Alice", v)
	}
	view.Flatten(vt)

	changes["name"]("Bob")
	want := model.Update(model.InSub{Name: "person", Update: model.SetValue{V: "Bob"}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected update (-want +got):\n%s", diff)
	}
}

func TestWithSub_MismatchedShapeReadsEmpty(t *testing.T) {
	c := testControls(nil)
	f := WithSub("person", c.Text(""))

	v, _, _ := Run(f, NewContext(), model.Value{V: "stale"}, nil)
	if v != "" {
		t.Fatalf("value = %q, want empty for shape mismatch", v)
	}
}

func TestWithLabel_JoinsLabelBeforeControlAndAssociatesID(t *testing.T) {
	c := testControls(nil)
	f := WithLabel(c, "Name", c.Text("hint"))

	_, elements, _ := evaluate(t, f, model.Empty{})
	if len(elements) != 2 {
		t.Fatalf("expected label plus control, got %v", elements)
	}
	label := elements[0].(elem)
	control := elements[1].(elem)
	if label.Kind != "label" || label.Text != "Name" {
		t.Fatalf("unexpected label %+v", label)
	}
	if label.For == "" || label.For != control.ID {
		t.Fatalf("label/control association broken: for=%q id=%q", label.For, control.ID)
	}
}

func TestWithLabel_IDsStableAcrossPasses(t *testing.T) {
	c := testControls(nil)
	f := AndAlso(WithLabel(c, "A", c.Text("")), WithLabel(c, "B", c.Text("")))
	ctx := NewContext()

	_, vt1, _ := Run(f, ctx, model.Empty{}, nil)
	_, vt2, _ := Run(f, ctx, model.Empty{}, nil)

	ids := func(tree view.Tree) []string {
		var out []string
		for _, e := range view.Flatten(tree) {
			out = append(out, e.(elem).For+e.(elem).ID)
		}
		return out
	}
	if diff := cmp.Diff(ids(vt1), ids(vt2)); diff != "" {
		t.Fatalf("ids drifted between passes (-first +second):\n%s", diff)
	}
}

func TestWithContainer_WrapsChildrenAndTakesAncestorStyling(t *testing.T) {
	c := testControls(nil)
	f := WithClass(WithContainer(c.Container, AndAlso(c.Text(""), c.Text(""))), "boxed")

	_, elements, _ := evaluate(t, f, model.Empty{})
	if len(elements) != 1 {
		t.Fatalf("expected single container element, got %v", elements)
	}
	container := elements[0].(elem)
	if container.Kind != "container" || container.Class != "boxed" {
		t.Fatalf("ancestor class missed the container: %+v", container)
	}
}

func TestOption_UncheckedHidesInnerForm(t *testing.T) {
	c := testControls(nil)
	f := Option(c, "Has nickname", c.Text("nickname"))

	v, elements, _ := evaluate(t, f, model.Empty{})
	if v.Present {
		t.Fatalf("value = %+v, want absent", v)
	}
	kinds := elementKinds(elements)
	if diff := cmp.Diff([]string{"label", "checkbox"}, kinds); diff != "" {
		t.Fatalf("expected only the gate in the view (-want +got):\n%s", diff)
	}
}

func TestOption_CheckedShowsInnerForm(t *testing.T) {
	c := testControls(nil)
	f := Option(c, "Has nickname", c.Text("nickname"))

	m := model.Fork{
		Left:  model.Value{V: CheckedValue},
		Right: model.Value{V: "Ace"},
	}
	v, elements, _ := evaluate(t, f, m)
	if !v.Present || v.Value != "Ace" {
		t.Fatalf("value = %+v, want present Ace", v)
	}
	kinds := elementKinds(elements)
	if diff := cmp.Diff([]string{"label", "checkbox", "text"}, kinds); diff != "" {
		t.Fatalf("unexpected elements (-want +got):\n%s", diff)
	}
}

func TestChoice_SwitchingVariantsAbandonsStaleState(t *testing.T) {
	c := testControls(nil)
	f := Choice(c, []Case[string]{
		{Label: "email", Formlet: c.Text("email")},
		{Label: "phone", Formlet: c.Text("phone")},
	})

	// State captured while the email variant was selected.
	m := model.Model(model.Fork{
		Left:  model.Value{V: "email"},
		Right: model.Sub{Name: "email", Child: model.Value{V: "a@b.c"}},
	})
	v, _, _ := Run(f, NewContext(), m, nil)
	if v != "a@b.c" {
		t.Fatalf("value = %q, want stored email", v)
	}

	// The user switches the selector; the stale email sub-model must not
	// be misread as phone state.
	m = model.Apply(model.InLeft{Update: model.SetValue{V: "phone"}}, m)
	v, _, _ = Run(f, NewContext(), m, nil)
	if v != "" {
		t.Fatalf("value = %q, want empty after variant switch", v)
	}
}

func TestSelect_RequiresOptions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty select")
		}
	}()
	testControls(nil).Select(nil)
}

func TestChoice_RequiresCases(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty choice")
		}
	}()
	Choice[string](testControls(nil), nil)
}

func TestText_DispatchesSetValue(t *testing.T) {
	var changes map[string]func(string)
	c := testControls(&changes)
	f := WithAttribute(c.Text(""), view.Attribute{Key: "id", Value: "field"})

	var got model.Update
	_, vt, _ := Run(f, NewContext(), model.Empty{}, func(u model.Update) { got = u })
	view.Flatten(vt)

	changes["field"]("hello")
	want := model.Update(model.SetValue{V: "hello"})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected update (-want +got):\n%s", diff)
	}
}

func elementKinds(elements []view.Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.(elem).Kind)
	}
	return out
}
