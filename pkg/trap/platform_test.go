package trap

import (
	"github.com/yuta-ike/headlessui/pkg/runtime"
)

// node is a minimal widget tree element for engine tests. It acts as
// a container when it has children and as a focusable leaf otherwise.
type node struct {
	id       string
	canFocus bool
	focused  bool
	focusCnt int
	children []runtime.Widget
}

func leaf(id string) *node {
	return &node{id: id, canFocus: true}
}

func tree(id string, children ...runtime.Widget) *node {
	return &node{id: id, children: children}
}

func (n *node) Measure(c runtime.Constraints) runtime.Size { return runtime.Size{} }
func (n *node) Layout(bounds runtime.Rect)                 {}
func (n *node) Render(ctx runtime.RenderContext)           {}
func (n *node) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}
func (n *node) ID() string                 { return n.id }
func (n *node) CanFocus() bool             { return n.canFocus }
func (n *node) Focus()                     { n.focused = true; n.focusCnt++ }
func (n *node) Blur()                      { n.focused = false }
func (n *node) IsFocused() bool            { return n.focused }
func (n *node) Children() []runtime.Widget { return n.children }

// fakePlatform implements Platform over a real focus manager and an
// explicit set of mounted roots, so tests control the tree directly.
type fakePlatform struct {
	fm    *runtime.FocusManager
	roots []runtime.Widget

	keyFilters []runtime.KeyFilter
}

func newFakePlatform(roots ...runtime.Widget) *fakePlatform {
	return &fakePlatform{fm: runtime.NewFocusManager(), roots: roots}
}

func (p *fakePlatform) Focused() runtime.Focusable {
	return p.fm.Focused()
}

func (p *fakePlatform) RequestFocus(target runtime.Focusable) runtime.Focusable {
	return p.fm.Request(target)
}

func (p *fakePlatform) MoveFocusInto(root runtime.Widget, req runtime.Traversal) (runtime.Focusable, bool) {
	return runtime.MoveFocusInto(p.fm, root, req)
}

func (p *fakePlatform) IsMounted(w runtime.Widget) bool {
	for _, root := range p.roots {
		if runtime.IsDescendant(root, w) {
			return true
		}
	}
	return false
}

func (p *fakePlatform) unmountRoot(root runtime.Widget) {
	for i, r := range p.roots {
		if r == root {
			p.roots = append(p.roots[:i], p.roots[i+1:]...)
			return
		}
	}
}

func (p *fakePlatform) AddFocusInterceptor(i runtime.FocusInterceptor) {
	p.fm.AddInterceptor(i)
}

func (p *fakePlatform) RemoveFocusInterceptor(i runtime.FocusInterceptor) {
	p.fm.RemoveInterceptor(i)
}

func (p *fakePlatform) AddKeyFilter(f runtime.KeyFilter) {
	p.keyFilters = append(p.keyFilters, f)
}

func (p *fakePlatform) RemoveKeyFilter(f runtime.KeyFilter) {
	for i, existing := range p.keyFilters {
		if existing == f {
			p.keyFilters = append(p.keyFilters[:i], p.keyFilters[i+1:]...)
			return
		}
	}
}
