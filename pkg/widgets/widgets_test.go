package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
)

func key(k terminal.Key) runtime.KeyMsg { return runtime.KeyMsg{Key: k} }
func runeKey(r rune) runtime.KeyMsg     { return runtime.KeyMsg{Key: terminal.KeyRune, Rune: r} }

func typeInto(in *Input, s string) {
	for _, r := range s {
		in.HandleMessage(runeKey(r))
	}
}

func TestButton_EnterEmitsPressed(t *testing.T) {
	b := NewButton("save", "Save")
	b.Focus()

	result := b.HandleMessage(key(terminal.KeyEnter))
	require.True(t, result.Handled)
	require.Len(t, result.Commands, 1)
	assert.Equal(t, runtime.Pressed{ID: "save"}, result.Commands[0])
}

func TestButton_SpaceActivates(t *testing.T) {
	b := NewButton("save", "Save")
	b.Focus()

	result := b.HandleMessage(runeKey(' '))
	require.True(t, result.Handled)
	assert.Equal(t, runtime.Pressed{ID: "save"}, result.Commands[0])
}

func TestButton_CustomCommands(t *testing.T) {
	b := NewButton("quit", "Quit", runtime.Quit{})
	b.Focus()

	result := b.HandleMessage(key(terminal.KeyEnter))
	require.True(t, result.Handled)
	require.Len(t, result.Commands, 1)
	assert.Equal(t, runtime.Quit{}, result.Commands[0])
}

func TestButton_IgnoredWhileBlurred(t *testing.T) {
	b := NewButton("save", "Save")

	result := b.HandleMessage(key(terminal.KeyEnter))
	assert.False(t, result.Handled)
}

func TestButton_IgnoresOtherKeys(t *testing.T) {
	b := NewButton("save", "Save")
	b.Focus()

	assert.False(t, b.HandleMessage(key(terminal.KeyTab)).Handled)
	assert.False(t, b.HandleMessage(runeKey('x')).Handled)
}

func TestInput_TypingAndEditing(t *testing.T) {
	in := NewInput("name", "Name")
	in.Focus()

	typeInto(in, "helo")
	assert.Equal(t, "helo", in.Value())

	// Fix the typo: move left past "o", insert the missing "l".
	in.HandleMessage(key(terminal.KeyLeft))
	in.HandleMessage(key(terminal.KeyLeft))
	in.HandleMessage(runeKey('l'))
	assert.Equal(t, "hello", in.Value())

	in.HandleMessage(key(terminal.KeyEnd))
	in.HandleMessage(key(terminal.KeyBackspace))
	assert.Equal(t, "hell", in.Value())

	in.HandleMessage(key(terminal.KeyHome))
	in.HandleMessage(key(terminal.KeyDelete))
	assert.Equal(t, "ell", in.Value())
}

func TestInput_EnterSubmits(t *testing.T) {
	in := NewInput("name", "Name")
	in.Focus()
	typeInto(in, "hi")

	result := in.HandleMessage(key(terminal.KeyEnter))
	require.True(t, result.Handled)
	require.Len(t, result.Commands, 1)
	assert.Equal(t, runtime.Submit{Text: "hi"}, result.Commands[0])
}

func TestInput_SetValueMovesCursorToEnd(t *testing.T) {
	in := NewInput("name", "Name")
	in.Focus()
	in.SetValue("ab")

	in.HandleMessage(runeKey('c'))
	assert.Equal(t, "abc", in.Value())
}

func TestInput_IgnoredWhileBlurred(t *testing.T) {
	in := NewInput("name", "Name")

	result := in.HandleMessage(runeKey('x'))
	assert.False(t, result.Handled)
	assert.Empty(t, in.Value())
}

func TestPanel_ForwardsToFocusedChild(t *testing.T) {
	save := NewButton("save", "Save")
	cancel := NewButton("cancel", "Cancel")
	p := NewPanel(save, cancel)
	cancel.Focus()

	result := p.HandleMessage(key(terminal.KeyEnter))
	require.True(t, result.Handled)
	assert.Equal(t, runtime.Pressed{ID: "cancel"}, result.Commands[0])
}

func TestPanel_FocusablesInDocumentOrder(t *testing.T) {
	save := NewButton("save", "Save")
	name := NewInput("name", "Name")
	p := NewPanel(name, NewPanel(save))

	got := runtime.Focusables(p)
	require.Len(t, got, 2)
	assert.Equal(t, "name", got[0].ID())
	assert.Equal(t, "save", got[1].ID())
}

func TestPanel_LayoutStacksChildren(t *testing.T) {
	a := NewButton("a", "A")
	b := NewButton("b", "B")
	p := NewPanel(a, b)

	p.Layout(runtime.NewRect(2, 3, 40, 10))

	assert.Equal(t, runtime.NewRect(2, 3, 40, 1), a.Bounds())
	assert.Equal(t, runtime.NewRect(2, 4, 40, 1), b.Bounds())
}
