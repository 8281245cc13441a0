package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets to the screen and app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a screen redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// Submit indicates text was submitted (e.g., from an input widget).
type Submit struct {
	Text string
}

func (Submit) isCommand() {}

// Cancel indicates an operation was cancelled (e.g., Escape pressed).
type Cancel struct{}

func (Cancel) isCommand() {}

// Pressed indicates a button was activated.
type Pressed struct {
	ID string
}

func (Pressed) isCommand() {}

// FocusNext requests focus move to the next focusable widget.
type FocusNext struct{}

func (FocusNext) isCommand() {}

// FocusPrev requests focus move to the previous focusable widget.
type FocusPrev struct{}

func (FocusPrev) isCommand() {}

// PushOverlay requests a modal overlay be pushed.
type PushOverlay struct {
	Widget Widget
	Modal  bool
}

func (PushOverlay) isCommand() {}

// PopOverlay requests the top overlay be dismissed.
type PopOverlay struct{}

func (PopOverlay) isCommand() {}
