package trap

import "errors"

// ErrNoFocusableElements is returned from activation when InitialFocus
// is enabled, no explicit target is available, and the container has
// no focusable descendants. A trap around nothing focusable is a
// caller bug and is surfaced immediately rather than ignored.
var ErrNoFocusableElements = errors.New("trap: container has no focusable elements")
