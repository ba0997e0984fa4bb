package failure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJoin_EmptyIsIdentity(t *testing.T) {
	trees := []Tree{
		Leaf{Path: "name", Message: "required"},
		Suppress{Tree: Leaf{Path: "age", Message: "odd"}},
		Fork{Left: Leaf{Path: "a", Message: "x"}, Right: Empty{}},
		Empty{},
	}
	for _, tree := range trees {
		if diff := cmp.Diff(tree, Join(Empty{}, tree)); diff != "" {
			t.Fatalf("left identity broken (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(tree, Join(tree, Empty{})); diff != "" {
			t.Fatalf("right identity broken (-want +got):\n%s", diff)
		}
	}
}

func TestJoin_SuppressedPairStaysSuppressed(t *testing.T) {
	a := Suppress{Tree: Leaf{Path: "a", Message: "x"}}
	b := Suppress{Tree: Leaf{Path: "b", Message: "y"}}
	got := Join(a, b)
	want := Tree(Suppress{Tree: Fork{Left: a.Tree, Right: b.Tree}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected join (-want +got):\n%s", diff)
	}
}

func TestJoin_MixedSuppressionYieldsPlainFork(t *testing.T) {
	a := Suppress{Tree: Leaf{Path: "a", Message: "x"}}
	b := Leaf{Path: "b", Message: "y"}
	got := Join(a, b)
	want := Tree(Fork{Left: a, Right: b})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected join (-want +got):\n%s", diff)
	}
	if IsGood(got) {
		t.Fatal("tree with an unsuppressed leaf must not be good")
	}
}

func TestIsGood(t *testing.T) {
	cases := []struct {
		name string
		tree Tree
		want bool
	}{
		{"empty", Empty{}, true},
		{"leaf", Leaf{Path: "p", Message: "m"}, false},
		{"suppressed leaf", Suppress{Tree: Leaf{Path: "p", Message: "m"}}, true},
		{"suppressed fork of leaves", Suppress{Tree: Fork{Left: Leaf{}, Right: Leaf{}}}, true},
		{"fork with leaf", Fork{Left: Empty{}, Right: Leaf{Path: "p", Message: "m"}}, false},
		{"fork of empties", Fork{Left: Empty{}, Right: Empty{}}, true},
		{"fork mixing suppressed and leaf", Fork{Left: Suppress{Tree: Leaf{}}, Right: Leaf{}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsGood(tc.tree); got != tc.want {
				t.Fatalf("IsGood = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlatten_OrderAndSuppression(t *testing.T) {
	tree := Fork{
		Left: Leaf{Path: "name", Message: "required"},
		Right: Fork{
			Left:  Suppress{Tree: Leaf{Path: "nick", Message: "unusual"}},
			Right: Leaf{Path: "email", Message: "invalid"},
		},
	}
	got := Flatten(tree)
	want := []Item{
		{Suppressed: false, Path: "name", Message: "required"},
		{Suppressed: true, Path: "nick", Message: "unusual"},
		{Suppressed: false, Path: "email", Message: "invalid"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestFlatten_SuppressionDoesNotLeakToSiblings(t *testing.T) {
	tree := Fork{
		Left:  Suppress{Tree: Leaf{Path: "a", Message: "x"}},
		Right: Leaf{Path: "b", Message: "y"},
	}
	got := Flatten(tree)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if !got[0].Suppressed || got[1].Suppressed {
		t.Fatalf("suppression leaked: %+v", got)
	}
}

func TestFlatten_EmptyIsNil(t *testing.T) {
	if got := Flatten(Empty{}); len(got) != 0 {
		t.Fatalf("expected no items, got %+v", got)
	}
}
