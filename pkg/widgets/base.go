// Package widgets provides reusable focusable widgets and the modal
// dialog that hosts a focus-trap session.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/yuta-ike/headlessui/pkg/backend"
	"github.com/yuta-ike/headlessui/pkg/runtime"
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds  runtime.Rect
	focused bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	b.bounds = bounds
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

// Focus marks the widget as focused.
func (b *Base) Focus() {
	b.focused = true
}

// Blur marks the widget as unfocused.
func (b *Base) Blur() {
	b.focused = false
}

// IsFocused returns whether the widget is focused.
func (b *Base) IsFocused() bool {
	return b.focused
}

// FocusableBase extends Base for focusable widgets with an ID.
type FocusableBase struct {
	Base
	id string
}

// CanFocus returns true for focusable widgets.
func (f *FocusableBase) CanFocus() bool {
	return true
}

// SetID assigns the widget's traversal identifier.
func (f *FocusableBase) SetID(id string) {
	f.id = id
}

// ID returns the widget's traversal identifier.
func (f *FocusableBase) ID() string {
	return f.id
}

// drawText draws a single line of text clipped to bounds, using
// display widths so wide runes occupy their real cell count.
func drawText(target backend.RenderTarget, bounds runtime.Rect, text string, style backend.Style) {
	x := bounds.X
	maxX := bounds.X + bounds.Width
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			break
		}
		target.SetContent(x, bounds.Y, r, nil, style)
		x += w
	}
}

// fillRect fills a rectangle with a character.
func fillRect(target backend.RenderTarget, bounds runtime.Rect, ch rune, style backend.Style) {
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			target.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawBorder draws a single-line box border around bounds.
func drawBorder(target backend.RenderTarget, bounds runtime.Rect, style backend.Style) {
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}
	x2 := bounds.X + bounds.Width - 1
	y2 := bounds.Y + bounds.Height - 1

	target.SetContent(bounds.X, bounds.Y, '┌', nil, style)
	target.SetContent(x2, bounds.Y, '┐', nil, style)
	target.SetContent(bounds.X, y2, '└', nil, style)
	target.SetContent(x2, y2, '┘', nil, style)
	for x := bounds.X + 1; x < x2; x++ {
		target.SetContent(x, bounds.Y, '─', nil, style)
		target.SetContent(x, y2, '─', nil, style)
	}
	for y := bounds.Y + 1; y < y2; y++ {
		target.SetContent(bounds.X, y, '│', nil, style)
		target.SetContent(x2, y, '│', nil, style)
	}
}

// truncate shortens a string to fit maxWidth display cells, appending
// an ellipsis when it was cut.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// center centers a string within the given display width.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return truncate(s, width)
	}
	pad := (width - w) / 2
	out := make([]rune, 0, width)
	for i := 0; i < pad; i++ {
		out = append(out, ' ')
	}
	out = append(out, []rune(s)...)
	return string(out)
}
