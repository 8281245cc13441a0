package runtime

import (
	"testing"
)

func traversalTree() (*stubContainer, *stubFocusable, *stubFocusable, *stubFocusable) {
	a := newStubFocusable("a")
	b := newStubFocusable("b")
	c := newStubFocusable("c")
	root := newStubContainer(a, newStubContainer(b), c)
	return root, a, b, c
}

func TestFocusables_DocumentOrder(t *testing.T) {
	root, a, b, c := traversalTree()

	got := Focusables(root)
	want := []Focusable{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Focusables()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFocusables_SkipsNonFocusable(t *testing.T) {
	a := newStubFocusable("a")
	a.canFocus = false
	b := newStubFocusable("b")
	root := newStubContainer(a, b)

	got := Focusables(root)
	if len(got) != 1 || got[0] != b {
		t.Fatalf("Focusables() = %v, want [b]", got)
	}
}

func TestMoveFocusInto_FirstLast(t *testing.T) {
	root, a, _, c := traversalTree()
	m := NewFocusManager()

	if got, ok := MoveFocusInto(m, root, Traversal{Dir: First}); !ok || got != a {
		t.Fatalf("First = %v/%v, want a/true", got, ok)
	}
	if got, ok := MoveFocusInto(m, root, Traversal{Dir: Last}); !ok || got != c {
		t.Fatalf("Last = %v/%v, want c/true", got, ok)
	}
}

func TestMoveFocusInto_NextWraps(t *testing.T) {
	root, a, b, c := traversalTree()
	m := NewFocusManager()
	m.Request(c)

	got, ok := MoveFocusInto(m, root, Traversal{Dir: Next, Wrap: true})
	if !ok || got != a {
		t.Fatalf("Next from last = %v/%v, want wrap to a", got, ok)
	}

	got, ok = MoveFocusInto(m, root, Traversal{Dir: Next, Wrap: true})
	if !ok || got != b {
		t.Fatalf("Next from a = %v/%v, want b", got, ok)
	}
}

func TestMoveFocusInto_NextNoWrapStops(t *testing.T) {
	root, _, _, c := traversalTree()
	m := NewFocusManager()
	m.Request(c)

	if got, ok := MoveFocusInto(m, root, Traversal{Dir: Next}); ok {
		t.Fatalf("Next from last without wrap = %v, want not found", got)
	}
	if m.Focused() != c {
		t.Error("focus should not have moved")
	}
}

func TestMoveFocusInto_PreviousWraps(t *testing.T) {
	root, a, _, c := traversalTree()
	m := NewFocusManager()
	m.Request(a)

	got, ok := MoveFocusInto(m, root, Traversal{Dir: Previous, Wrap: true})
	if !ok || got != c {
		t.Fatalf("Previous from first = %v/%v, want wrap to c", got, ok)
	}
}

func TestMoveFocusInto_CurrentOutsideRoot(t *testing.T) {
	root, a, _, c := traversalTree()
	outside := newStubFocusable("outside")
	m := NewFocusManager()
	m.Request(outside)

	// Next from an element outside root behaves like First.
	if got, ok := MoveFocusInto(m, root, Traversal{Dir: Next, Wrap: true}); !ok || got != a {
		t.Fatalf("Next from outside = %v/%v, want a", got, ok)
	}

	m.Request(outside)
	// Previous behaves like Last.
	if got, ok := MoveFocusInto(m, root, Traversal{Dir: Previous, Wrap: true}); !ok || got != c {
		t.Fatalf("Previous from outside = %v/%v, want c", got, ok)
	}
}

func TestMoveFocusInto_Specific(t *testing.T) {
	root, _, b, _ := traversalTree()
	m := NewFocusManager()

	got, ok := MoveFocusInto(m, root, Traversal{Dir: Specific, ID: "b"})
	if !ok || got != b {
		t.Fatalf("Specific(b) = %v/%v, want b", got, ok)
	}

	if got, ok := MoveFocusInto(m, root, Traversal{Dir: Specific, ID: "zzz"}); ok {
		t.Fatalf("Specific(zzz) = %v, want not found", got)
	}
}

func TestMoveFocusInto_EmptyRoot(t *testing.T) {
	m := NewFocusManager()
	root := newStubContainer()

	if got, ok := MoveFocusInto(m, root, Traversal{Dir: First}); ok {
		t.Fatalf("First on empty = %v, want not found", got)
	}
}

func TestIsDescendant(t *testing.T) {
	root, a, b, _ := traversalTree()
	outside := newStubFocusable("outside")

	if !IsDescendant(root, root) {
		t.Error("root should contain itself")
	}
	if !IsDescendant(root, a) || !IsDescendant(root, b) {
		t.Error("root should contain its descendants")
	}
	if IsDescendant(root, outside) {
		t.Error("root should not contain outside")
	}
	if IsDescendant(nil, a) || IsDescendant(root, nil) {
		t.Error("nil root or candidate should never match")
	}
}
