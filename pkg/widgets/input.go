package widgets

import (
	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
)

// Input is a single-line text input.
type Input struct {
	FocusableBase

	placeholder string
	value       []rune
	cursor      int
}

// NewInput creates an input with a placeholder.
func NewInput(id, placeholder string) *Input {
	in := &Input{placeholder: placeholder}
	in.SetID(id)
	return in
}

// Value returns the current text.
func (in *Input) Value() string {
	return string(in.value)
}

// SetValue replaces the current text and moves the cursor to the end.
func (in *Input) SetValue(s string) {
	in.value = []rune(s)
	in.cursor = len(in.value)
}

// Measure requests a full-width single row.
func (in *Input) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: c.MaxWidth, Height: 1})
}

// HandleMessage edits the value while focused. Enter submits.
func (in *Input) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !in.IsFocused() {
		return runtime.Unhandled()
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}

	switch key.Key {
	case terminal.KeyRune:
		in.value = append(in.value[:in.cursor], append([]rune{key.Rune}, in.value[in.cursor:]...)...)
		in.cursor++
		return runtime.Handled()
	case terminal.KeyBackspace:
		if in.cursor > 0 {
			in.value = append(in.value[:in.cursor-1], in.value[in.cursor:]...)
			in.cursor--
		}
		return runtime.Handled()
	case terminal.KeyDelete:
		if in.cursor < len(in.value) {
			in.value = append(in.value[:in.cursor], in.value[in.cursor+1:]...)
		}
		return runtime.Handled()
	case terminal.KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
		return runtime.Handled()
	case terminal.KeyRight:
		if in.cursor < len(in.value) {
			in.cursor++
		}
		return runtime.Handled()
	case terminal.KeyHome:
		in.cursor = 0
		return runtime.Handled()
	case terminal.KeyEnd:
		in.cursor = len(in.value)
		return runtime.Handled()
	case terminal.KeyEnter:
		return runtime.WithCommand(runtime.Submit{Text: in.Value()})
	}
	return runtime.Unhandled()
}

// Render draws the value or placeholder.
func (in *Input) Render(ctx runtime.RenderContext) {
	bounds := in.Bounds()

	style := ctx.Theme.TextPrimary
	text := in.Value()
	if text == "" && !in.IsFocused() {
		style = ctx.Theme.TextMuted
		text = in.placeholder
	}

	fillRect(ctx.Target, bounds, ' ', ctx.Theme.Surface)
	drawText(ctx.Target, bounds, text, style)

	if in.IsFocused() && bounds.Width > 0 {
		// Block cursor via reverse video on the cursor cell.
		x := bounds.X + in.cursor
		if x >= bounds.X+bounds.Width {
			x = bounds.X + bounds.Width - 1
		}
		ch := ' '
		if in.cursor < len(in.value) {
			ch = in.value[in.cursor]
		}
		ctx.Target.SetContent(x, bounds.Y, ch, nil, style.Reverse(true))
	}
}
