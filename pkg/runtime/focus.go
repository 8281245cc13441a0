package runtime

// FocusManager owns the single "currently focused element" for a
// screen and the pipeline every focus change flows through.
//
// A change is requested via Request. Before it commits, registered
// interceptors observe it in registration order and may redirect the
// change or cancel it outright. Cancellation stops the remaining
// interceptors, so the cancelling interceptor fully decides the
// outcome. Observers run after the change has committed.
//
// Everything here is synchronous: by the time Request returns, the
// focused element has its final value and all observers have run. No
// intermediate state is ever observable from outside.
type FocusManager struct {
	current      Focusable
	interceptors []FocusInterceptor
	observers    []func(prev, next Focusable)
}

// FocusInterceptor can veto or redirect a focus change before it commits.
type FocusInterceptor interface {
	InterceptFocus(req *FocusRequest)
}

// KeyFilter observes key events that were not consumed by the widget
// tree, before default key handling runs.
type KeyFilter interface {
	FilterKey(msg KeyMsg) bool
}

// FocusRequest describes an in-flight focus change.
// Target is the element the change wants to focus; nil means focus is
// moving to no element.
type FocusRequest struct {
	Target Focusable

	redirect   Focusable
	redirected bool
	cancelled  bool
}

// Redirect substitutes the element that will receive focus.
// Later interceptors still run and observe the original target.
func (r *FocusRequest) Redirect(to Focusable) {
	r.redirect = to
	r.redirected = true
}

// Cancel stops the change: the default commit is suppressed, no later
// interceptor runs, and focus moves to the given element instead.
// Passing nil keeps focus where it is.
func (r *FocusRequest) Cancel(to Focusable) {
	r.cancelled = true
	r.redirect = to
	r.redirected = to != nil
}

// Cancelled reports whether an earlier interceptor cancelled the change.
func (r *FocusRequest) Cancelled() bool {
	return r.cancelled
}

// NewFocusManager creates an empty focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Focused returns the currently focused element, or nil.
// This is the one ambient read the rest of the system performs.
func (m *FocusManager) Focused() Focusable {
	return m.current
}

// AddInterceptor registers a capture-phase interceptor.
// Interceptors run in registration order.
func (m *FocusManager) AddInterceptor(i FocusInterceptor) {
	for _, existing := range m.interceptors {
		if existing == i {
			return
		}
	}
	m.interceptors = append(m.interceptors, i)
}

// RemoveInterceptor unregisters an interceptor.
func (m *FocusManager) RemoveInterceptor(i FocusInterceptor) {
	for idx, existing := range m.interceptors {
		if existing == i {
			m.interceptors = append(m.interceptors[:idx], m.interceptors[idx+1:]...)
			return
		}
	}
}

// AddObserver registers a callback invoked after each committed change.
func (m *FocusManager) AddObserver(fn func(prev, next Focusable)) {
	m.observers = append(m.observers, fn)
}

// Request asks for focus to move to target and returns the element
// that actually holds focus afterwards.
//
// This is the only entry point for focus changes; traversal, widgets,
// and the trap engine all route through it, so interceptors see every
// change regardless of origin.
func (m *FocusManager) Request(target Focusable) Focusable {
	req := &FocusRequest{Target: target}
	for _, i := range m.interceptors {
		i.InterceptFocus(req)
		if req.cancelled {
			break
		}
	}

	next := target
	if req.cancelled {
		if !req.redirected {
			// Cancelled with no replacement: focus stays put.
			return m.current
		}
		next = req.redirect
	} else if req.redirected {
		next = req.redirect
	}

	m.commit(next)
	return m.current
}

// commit moves focus to next unconditionally. Focus is re-applied even
// when next is already current, so an element that merely looks
// focused is made actually focused.
func (m *FocusManager) commit(next Focusable) {
	prev := m.current
	if prev != nil && prev != next {
		prev.Blur()
	}
	if next != nil {
		next.Focus()
	}
	m.current = next

	for _, fn := range m.observers {
		fn(prev, next)
	}
}
