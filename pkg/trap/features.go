package trap

// Feature is a bitset selecting which containment behaviors a trap
// session applies. Features may change over the session's lifetime;
// a parent dialog typically drops FocusLock while a child dialog is
// open, then re-enables it.
type Feature uint8

const (
	// InitialFocus seeds focus into the container on activation.
	InitialFocus Feature = 1 << iota
	// TabLock keeps Tab/Shift+Tab cycling inside the container.
	TabLock
	// FocusLock forces focus back when it tries to leave the allowed
	// regions.
	FocusLock
	// RestoreFocus returns focus to the previously focused element on
	// teardown.
	RestoreFocus
)

const (
	// None disables all trap behaviors.
	None Feature = 0
	// All enables every trap behavior.
	All = InitialFocus | TabLock | FocusLock | RestoreFocus
)

// Has reports whether every feature in f is enabled.
func (fs Feature) Has(f Feature) bool {
	return fs&f == f
}
