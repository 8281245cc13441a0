package widgets

import (
	"github.com/yuta-ike/headlessui/pkg/backend"
	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
	"github.com/yuta-ike/headlessui/pkg/trap"
)

// ModalOptions configures the trap session a modal hosts.
type ModalOptions struct {
	// Features for the trap session. The zero value disables all
	// containment; most dialogs want trap.All.
	Features trap.Feature

	// InitialFocusID addresses the child that should receive focus on
	// open. Empty means the first focusable child.
	InitialFocusID string

	// Containers are additional allowed regions, e.g. a related
	// tooltip layer the dialog considers its own.
	Containers []trap.Ref

	// Width fixes the dialog width. Zero picks a default.
	Width int

	// OnClose runs after the dialog's trap session has torn down.
	// Parents use it to re-enable features they relaxed while this
	// dialog was open.
	OnClose func()
}

// Modal is a dialog widget that owns a container subtree and binds it
// to a focus-trap session. The session activates when the modal's
// layer mounts and tears down, restoring focus, when it pops.
type Modal struct {
	Base

	title    string
	children []runtime.Widget
	opts     ModalOptions

	engine *trap.Engine
	screen *runtime.Screen

	box     runtime.Rect // dialog bounds
	content runtime.Rect // interior bounds
}

// NewModal creates a modal dialog hosting the given children.
func NewModal(title string, opts ModalOptions, children ...runtime.Widget) *Modal {
	return &Modal{title: title, children: children, opts: opts}
}

// Children returns the dialog's children in document order.
func (m *Modal) Children() []runtime.Widget {
	return m.children
}

// Session returns the live trap session, or nil while unmounted.
// Parents use it to relax features while a child dialog is open.
func (m *Modal) Session() *trap.Engine {
	return m.engine
}

// SetFeatures updates the trap features, live if mounted.
func (m *Modal) SetFeatures(f trap.Feature) error {
	m.opts.Features = f
	if m.engine != nil {
		return m.engine.SetFeatures(f)
	}
	return nil
}

// OnMount activates the trap session. An activation error (a trap
// around nothing focusable) aborts the mount and reaches whoever
// pushed the layer.
func (m *Modal) OnMount(s *runtime.Screen) error {
	m.screen = s
	m.engine = trap.New(s, trap.MountedRef(s, m), m.opts.Features, trap.Options{
		InitialFocus: m.initialFocusRef(),
		Containers:   m.opts.Containers,
	})
	return m.engine.Activate()
}

// OnUnmount tears the session down inside the detach, so focus
// restoration runs before anything else observes the pop.
func (m *Modal) OnUnmount() {
	if m.engine != nil {
		m.engine.Teardown()
		m.engine = nil
	}
	m.screen = nil
	if m.opts.OnClose != nil {
		m.opts.OnClose()
	}
}

// initialFocusRef resolves the InitialFocusID child lazily, so a
// child swapped out before activation degrades to "absent".
func (m *Modal) initialFocusRef() trap.Ref {
	if m.opts.InitialFocusID == "" {
		return nil
	}
	return func() runtime.Widget {
		for _, f := range runtime.Focusables(m) {
			if f.ID() == m.opts.InitialFocusID {
				return f
			}
		}
		return nil
	}
}

// Measure returns the dialog's preferred size.
func (m *Modal) Measure(c runtime.Constraints) runtime.Size {
	width := m.opts.Width
	if width <= 0 {
		width = 44
	}
	if width > c.MaxWidth {
		width = c.MaxWidth
	}

	height := 2 // borders
	inner := width - 4
	for _, child := range m.children {
		sz := child.Measure(runtime.Loose(inner, c.MaxHeight))
		height += sz.Height
	}
	if height > c.MaxHeight {
		height = c.MaxHeight
	}
	return runtime.Size{Width: width, Height: height}
}

// Layout centers the dialog in bounds and stacks children vertically
// inside it. Child coordinates are relative to the interior, which is
// clipped at render time.
func (m *Modal) Layout(bounds runtime.Rect) {
	m.Base.Layout(bounds)

	size := m.Measure(runtime.Loose(bounds.Width, bounds.Height))
	m.box = runtime.Rect{
		X:      bounds.X + (bounds.Width-size.Width)/2,
		Y:      bounds.Y + (bounds.Height-size.Height)/2,
		Width:  size.Width,
		Height: size.Height,
	}
	m.content = m.box.Inset(1, 2, 1, 2)

	y := 0
	for _, child := range m.children {
		sz := child.Measure(runtime.Loose(m.content.Width, m.content.Height-y))
		child.Layout(runtime.NewRect(0, y, m.content.Width, sz.Height))
		y += sz.Height
	}
}

// HandleMessage forwards to children, then handles Escape as dismiss.
func (m *Modal) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range m.children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}

	if key, ok := msg.(runtime.KeyMsg); ok && key.Key == terminal.KeyEscape {
		return runtime.WithCommand(runtime.PopOverlay{})
	}
	return runtime.Unhandled()
}

// Render draws the dialog box and its children clipped to the interior.
func (m *Modal) Render(ctx runtime.RenderContext) {
	borderStyle := ctx.Theme.Border
	if ctx.Focused {
		borderStyle = ctx.Theme.BorderFocus
	}

	fillRect(ctx.Target, m.box, ' ', ctx.Theme.Surface)
	drawBorder(ctx.Target, m.box, borderStyle)

	if m.title != "" && m.box.Width > 4 {
		title := " " + truncate(m.title, m.box.Width-4) + " "
		drawText(ctx.Target, runtime.NewRect(m.box.X+1, m.box.Y, m.box.Width-2, 1), center(title, m.box.Width-2), borderStyle)
	}

	sub := backend.NewSubTarget(ctx.Target, m.content.X, m.content.Y, m.content.Width, m.content.Height)
	childCtx := ctx.WithTarget(sub, runtime.NewRect(0, 0, m.content.Width, m.content.Height))
	for _, child := range m.children {
		child.Render(childCtx)
	}
}
