package runtime

import (
	"fmt"

	"github.com/yuta-ike/headlessui/pkg/backend"
	"github.com/yuta-ike/headlessui/pkg/terminal"
	"github.com/yuta-ike/headlessui/pkg/theme"
)

// Layer represents a layer in the modal stack.
type Layer struct {
	Root  Widget
	Modal bool // If true, blocks input to layers below
}

// Mounter is implemented by widgets that need to wire themselves to
// the screen when their tree is attached (push subscriptions, claim
// focus, activate traps). A returned error aborts the attach.
type Mounter interface {
	OnMount(s *Screen) error
}

// Unmounter is implemented by widgets that need to tear down when
// their tree is detached. It runs synchronously inside the detach, so
// teardown observes the tree while it is still mounted.
type Unmounter interface {
	OnUnmount()
}

// Screen manages the widget tree, modal stack, focus, and rendering.
// A single FocusManager spans all layers: there is exactly one
// globally focused element per screen.
type Screen struct {
	width, height int
	layers        []*Layer
	focus         *FocusManager
	keyFilters    []KeyFilter
	theme         *theme.Theme

	lastMountErr error
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.Default()
	}
	return &Screen{
		width:  w,
		height: h,
		focus:  NewFocusManager(),
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays out all layers.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h

	bounds := Rect{0, 0, w, h}
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(bounds)
		}
	}
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// Focus returns the screen's focus manager.
func (s *Screen) Focus() *FocusManager {
	return s.focus
}

// Focused returns the currently focused element, or nil.
func (s *Screen) Focused() Focusable {
	return s.focus.Focused()
}

// RequestFocus routes a focus change through the focus pipeline and
// returns the element that holds focus afterwards.
func (s *Screen) RequestFocus(target Focusable) Focusable {
	return s.focus.Request(target)
}

// MoveFocusInto resolves a traversal request inside root.
func (s *Screen) MoveFocusInto(root Widget, req Traversal) (Focusable, bool) {
	return MoveFocusInto(s.focus, root, req)
}

// AddFocusInterceptor registers a capture-phase focus interceptor.
func (s *Screen) AddFocusInterceptor(i FocusInterceptor) {
	s.focus.AddInterceptor(i)
}

// RemoveFocusInterceptor unregisters a focus interceptor.
func (s *Screen) RemoveFocusInterceptor(i FocusInterceptor) {
	s.focus.RemoveInterceptor(i)
}

// AddKeyFilter registers a filter for key events the widget tree did
// not consume. Filters added later run first, so the filter belonging
// to the innermost active trap sees the key before outer ones.
func (s *Screen) AddKeyFilter(f KeyFilter) {
	for _, existing := range s.keyFilters {
		if existing == f {
			return
		}
	}
	s.keyFilters = append(s.keyFilters, f)
}

// RemoveKeyFilter unregisters a key filter.
func (s *Screen) RemoveKeyFilter(f KeyFilter) {
	for idx, existing := range s.keyFilters {
		if existing == f {
			s.keyFilters = append(s.keyFilters[:idx], s.keyFilters[idx+1:]...)
			return
		}
	}
}

// SetRoot sets the root widget of the base layer, replacing and
// unmounting any previous root.
func (s *Screen) SetRoot(root Widget) error {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{Root: root})
	} else {
		s.unmount(s.layers[0].Root)
		s.layers[0].Root = root
	}

	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
		if err := s.mount(root); err != nil {
			return fmt.Errorf("mount root: %w", err)
		}
	}
	return nil
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a new layer on top of the stack.
// If modal is true, input won't pass to layers below.
// A mount error leaves the stack unchanged.
func (s *Screen) PushLayer(root Widget, modal bool) error {
	layer := &Layer{Root: root, Modal: modal}
	s.layers = append(s.layers, layer)

	if root != nil {
		root.Layout(Rect{0, 0, s.width, s.height})
		if err := s.mount(root); err != nil {
			s.layers = s.layers[:len(s.layers)-1]
			return fmt.Errorf("mount layer: %w", err)
		}
	}
	return nil
}

// PopLayer removes the top layer from the stack.
// Returns false if only the base layer remains (can't pop it).
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}

	top := s.layers[len(s.layers)-1]
	// Unmount while the layer is still in the stack, so teardown logic
	// (focus restoration in particular) sees a consistent tree.
	s.unmount(top.Root)
	s.layers = s.layers[:len(s.layers)-1]

	// If focus still points into the removed tree and nothing claimed
	// it during unmount, release it through the pipeline so remaining
	// traps can reclaim it.
	if cur := s.focus.Focused(); cur != nil && !s.IsMounted(cur) {
		s.focus.Request(nil)
	}
	return true
}

// TopLayer returns the topmost layer.
func (s *Screen) TopLayer() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

// IsMounted reports whether w is part of any layer's tree.
func (s *Screen) IsMounted(w Widget) bool {
	if w == nil {
		return false
	}
	for _, layer := range s.layers {
		if IsDescendant(layer.Root, w) {
			return true
		}
	}
	return false
}

// TakeMountError returns and clears the error from the most recent
// command-driven overlay push, if any.
func (s *Screen) TakeMountError() error {
	err := s.lastMountErr
	s.lastMountErr = nil
	return err
}

// Render draws all layers, bottom to top, to the target.
func (s *Screen) Render(target backend.RenderTarget) {
	ctx := RenderContext{
		Target: target,
		Theme:  s.theme,
		Bounds: Rect{0, 0, s.width, s.height},
	}

	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx.Focused = i == len(s.layers)-1
		layer.Root.Render(ctx)
	}
}

// HandleMessage dispatches a message through the input pipeline:
// the widget tree first (top layer down, modal layers blocking),
// then key filters, then default Tab navigation.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	result := s.dispatchToLayers(msg)
	for _, cmd := range result.Commands {
		s.handleCommand(cmd)
	}
	if result.Handled {
		return result
	}

	key, ok := msg.(KeyMsg)
	if !ok {
		return Unhandled()
	}

	// Filters run newest-first; a consuming filter suppresses default
	// key behavior, exactly like preventDefault on a bubbled event.
	for i := len(s.keyFilters) - 1; i >= 0; i-- {
		if s.keyFilters[i].FilterKey(key) {
			return Handled()
		}
	}

	return s.defaultKeyNavigation(key)
}

func (s *Screen) dispatchToLayers(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}

		result := layer.Root.HandleMessage(msg)
		if result.Handled {
			return result
		}
		if layer.Modal {
			break
		}
	}
	return Unhandled()
}

// defaultKeyNavigation implements the screen's own Tab handling, used
// only when no widget and no filter consumed the key.
func (s *Screen) defaultKeyNavigation(key KeyMsg) HandleResult {
	top := s.TopLayer()
	if top == nil || top.Root == nil {
		return Unhandled()
	}

	switch {
	case key.Key == terminal.KeyTab && !key.Shift:
		MoveFocusInto(s.focus, top.Root, Traversal{Dir: Next, Wrap: true})
		return Handled()
	case key.Key == terminal.KeyBacktab || (key.Key == terminal.KeyTab && key.Shift):
		MoveFocusInto(s.focus, top.Root, Traversal{Dir: Previous, Wrap: true})
		return Handled()
	}
	return Unhandled()
}

// handleCommand processes focus and overlay commands emitted by widgets.
// Other commands are left for the app's command handler.
func (s *Screen) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case FocusNext:
		if top := s.TopLayer(); top != nil && top.Root != nil {
			MoveFocusInto(s.focus, top.Root, Traversal{Dir: Next, Wrap: true})
		}
	case FocusPrev:
		if top := s.TopLayer(); top != nil && top.Root != nil {
			MoveFocusInto(s.focus, top.Root, Traversal{Dir: Previous, Wrap: true})
		}
	case PushOverlay:
		if err := s.PushLayer(c.Widget, c.Modal); err != nil {
			s.lastMountErr = err
		}
	case PopOverlay:
		s.PopLayer()
	}
}

func (s *Screen) mount(root Widget) error {
	var err error
	Walk(root, func(w Widget) bool {
		if m, ok := w.(Mounter); ok {
			if e := m.OnMount(s); e != nil {
				err = e
				return false
			}
		}
		return true
	})
	if err != nil {
		// Roll back anything that mounted before the failure.
		s.unmount(root)
	}
	return err
}

func (s *Screen) unmount(root Widget) {
	Walk(root, func(w Widget) bool {
		if u, ok := w.(Unmounter); ok {
			u.OnUnmount()
		}
		return true
	})
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Target  backend.RenderTarget
	Theme   *theme.Theme
	Focused bool // Is the containing layer the top layer?
	Bounds  Rect // Widget's allocated bounds
}

// WithTarget returns a context rendering into a different target.
func (ctx RenderContext) WithTarget(target backend.RenderTarget, bounds Rect) RenderContext {
	return RenderContext{
		Target:  target,
		Theme:   ctx.Theme,
		Focused: ctx.Focused,
		Bounds:  bounds,
	}
}
