package widgets

import (
	"github.com/yuta-ike/headlessui/pkg/runtime"
)

// Panel is a plain vertical container. It carries no behavior of its
// own; it exists to group focusable children into a region.
type Panel struct {
	Base

	children []runtime.Widget
}

// NewPanel creates a panel with the given children.
func NewPanel(children ...runtime.Widget) *Panel {
	return &Panel{children: children}
}

// Children returns the panel's children in document order.
func (p *Panel) Children() []runtime.Widget {
	return p.children
}

// Append adds a child to the end of the panel.
func (p *Panel) Append(w runtime.Widget) {
	p.children = append(p.children, w)
}

// Measure sums child heights at the widest child width.
func (p *Panel) Measure(c runtime.Constraints) runtime.Size {
	width, height := 0, 0
	for _, child := range p.children {
		sz := child.Measure(runtime.Loose(c.MaxWidth, c.MaxHeight-height))
		if sz.Width > width {
			width = sz.Width
		}
		height += sz.Height
	}
	return c.Constrain(runtime.Size{Width: width, Height: height})
}

// Layout stacks children vertically from the top of bounds.
func (p *Panel) Layout(bounds runtime.Rect) {
	p.Base.Layout(bounds)

	y := bounds.Y
	for _, child := range p.children {
		sz := child.Measure(runtime.Loose(bounds.Width, bounds.Y+bounds.Height-y))
		child.Layout(runtime.NewRect(bounds.X, y, bounds.Width, sz.Height))
		y += sz.Height
	}
}

// HandleMessage forwards to children until one consumes the message.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range p.children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

// Render draws all children.
func (p *Panel) Render(ctx runtime.RenderContext) {
	for _, child := range p.children {
		child.Render(ctx)
	}
}
