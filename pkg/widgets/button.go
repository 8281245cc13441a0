package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
)

// Button is a focusable widget that emits commands when activated
// with Enter or Space.
type Button struct {
	FocusableBase

	label    string
	commands []runtime.Command
}

// NewButton creates a button. The commands are emitted on activation;
// when none are given the button emits Pressed with its own ID.
func NewButton(id, label string, commands ...runtime.Command) *Button {
	b := &Button{label: label, commands: commands}
	b.SetID(id)
	return b
}

// Label returns the button's label.
func (b *Button) Label() string {
	return b.label
}

// Measure returns the label size plus bracket padding.
func (b *Button) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: runewidth.StringWidth(b.label) + 4, Height: 1})
}

// HandleMessage activates the button on Enter or Space when focused.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !b.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	if key.Key == terminal.KeyEnter || (key.Key == terminal.KeyRune && key.Rune == ' ') {
		if len(b.commands) > 0 {
			return runtime.WithCommands(b.commands...)
		}
		return runtime.WithCommand(runtime.Pressed{ID: b.ID()})
	}
	return runtime.Unhandled()
}

// Render draws the button, highlighted when focused.
func (b *Button) Render(ctx runtime.RenderContext) {
	style := ctx.Theme.TextPrimary
	if b.IsFocused() {
		style = ctx.Theme.Accent.Reverse(true)
	}
	drawText(ctx.Target, b.Bounds(), "[ "+b.label+" ]", style)
}
