package runtime

// Direction selects which focusable descendant a traversal should land on.
type Direction int

const (
	// First focuses the first focusable descendant.
	First Direction = iota
	// Last focuses the last focusable descendant.
	Last
	// Next focuses the descendant after the currently focused one.
	Next
	// Previous focuses the descendant before the currently focused one.
	Previous
	// Specific focuses the descendant whose ID matches Traversal.ID.
	Specific
)

// Traversal describes a directional focus request within a root.
type Traversal struct {
	Dir  Direction
	ID   string // used when Dir == Specific
	Wrap bool   // Next/Previous cycle past the ends
}

// Focusables returns root's focusable descendants in document order.
// Widgets whose CanFocus reports false are skipped.
func Focusables(root Widget) []Focusable {
	var out []Focusable
	Walk(root, func(w Widget) bool {
		if f, ok := w.(Focusable); ok && f.CanFocus() {
			out = append(out, f)
		}
		return true
	})
	return out
}

// MoveFocusInto resolves a traversal request inside root and commits
// the move through the focus manager. It returns the element focus
// landed on, or nil and false when no candidate exists.
//
// Next/Previous are relative to the manager's currently focused
// element; when that element is not inside root, Next behaves like
// First and Previous like Last.
func MoveFocusInto(m *FocusManager, root Widget, req Traversal) (Focusable, bool) {
	candidates := Focusables(root)
	if len(candidates) == 0 {
		return nil, false
	}

	target := pickTarget(candidates, m.Focused(), req)
	if target == nil {
		return nil, false
	}

	m.Request(target)
	return target, true
}

func pickTarget(candidates []Focusable, current Focusable, req Traversal) Focusable {
	switch req.Dir {
	case First:
		return candidates[0]
	case Last:
		return candidates[len(candidates)-1]
	case Specific:
		for _, c := range candidates {
			if c.ID() == req.ID {
				return c
			}
		}
		return nil
	case Next:
		idx := indexOf(candidates, current)
		if idx < 0 {
			return candidates[0]
		}
		if idx+1 < len(candidates) {
			return candidates[idx+1]
		}
		if req.Wrap {
			return candidates[0]
		}
		return nil
	case Previous:
		idx := indexOf(candidates, current)
		if idx < 0 {
			return candidates[len(candidates)-1]
		}
		if idx > 0 {
			return candidates[idx-1]
		}
		if req.Wrap {
			return candidates[len(candidates)-1]
		}
		return nil
	}
	return nil
}

func indexOf(candidates []Focusable, w Focusable) int {
	if w == nil {
		return -1
	}
	for i, c := range candidates {
		if c == w {
			return i
		}
	}
	return -1
}
