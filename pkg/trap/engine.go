// Package trap implements focus containment for modal-like UI regions.
//
// A trap session binds to one container widget and, depending on its
// enabled features, seeds focus into the container on activation,
// keeps Tab navigation cycling inside it, forces focus back when it
// tries to leave, and restores the previously focused element on
// teardown. Sessions nest: each registers with the screen's focus
// pipeline, and a parent session typically relaxes its features while
// a child session is active.
package trap

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/yuta-ike/headlessui/pkg/runtime"
	"github.com/yuta-ike/headlessui/pkg/terminal"
)

// Platform is the narrow runtime surface a session depends on. A
// *runtime.Screen satisfies it; tests substitute their own.
//
// Focused is the single ambient read in the whole engine: every other
// piece of state a reaction needs arrives as an argument or lives on
// the session itself.
type Platform interface {
	// Focused returns the globally focused element, or nil.
	Focused() runtime.Focusable

	// RequestFocus routes a focus change through the capture pipeline
	// and returns the element holding focus afterwards.
	RequestFocus(target runtime.Focusable) runtime.Focusable

	// MoveFocusInto resolves a directional traversal inside root.
	MoveFocusInto(root runtime.Widget, req runtime.Traversal) (runtime.Focusable, bool)

	// IsMounted reports whether w is still part of the mounted tree.
	IsMounted(w runtime.Widget) bool

	AddFocusInterceptor(i runtime.FocusInterceptor)
	RemoveFocusInterceptor(i runtime.FocusInterceptor)
	AddKeyFilter(f runtime.KeyFilter)
	RemoveKeyFilter(f runtime.KeyFilter)
}

// Options carries the caller-tunable parts of a session.
// Both refs may resolve differently over time; the session re-reads
// them on every reaction and treats stale refs as absent.
type Options struct {
	// InitialFocus is the explicit element to seed focus onto.
	// When nil or unresolvable, activation falls through to the first
	// focusable descendant of the container.
	InitialFocus Ref

	// Containers are additional allowed regions beyond the trap's own
	// container. Focus inside any of them is treated as contained.
	Containers []Ref
}

// Engine is one live trap session.
//
// All methods run on the UI event loop; the engine is not safe for
// concurrent use, and does not need to be: every reaction runs to
// completion before the next event is processed, which is what makes
// the containment invariant airtight (no observable frame with focus
// outside the allowed regions).
type Engine struct {
	id       string
	platform Platform
	// container is borrowed from the host; the session never outlives
	// the container's mount.
	container Ref
	features  Feature
	opts      Options

	// restoreTarget is the element focus returns to on teardown.
	// Captured on the RestoreFocus off->on edge, cleared once the
	// restore fires or the feature is switched off.
	restoreTarget runtime.Focusable

	// lastGood is the most recent element confirmed focused inside an
	// allowed region (or the initial-focus target). While FocusLock is
	// on it never points outside all regions.
	lastGood runtime.Focusable

	// mounted is true from the moment RestoreFocus arms until teardown
	// consumes it. It guards the restore from firing twice and doubles
	// as the "session has a baseline" gate for FocusLock.
	mounted bool

	active bool

	// initTarget remembers what the last initial-focus run keyed on,
	// so option updates only re-seed on an actual change.
	initTarget runtime.Widget
}

// New creates a session bound to container. The session is inert
// until Activate.
func New(p Platform, container Ref, features Feature, opts Options) *Engine {
	return &Engine{
		id:        ulid.Make().String(),
		platform:  p,
		container: container,
		features:  features,
		opts:      opts,
	}
}

// ID returns the session's identifier.
func (e *Engine) ID() string {
	return e.id
}

// Features returns the currently enabled features.
func (e *Engine) Features() Feature {
	return e.features
}

// Activate registers the session's event subscriptions and applies
// the enabled features. The restore target is captured before initial
// focus runs, so restoration returns focus to where it was before the
// trap moved it.
//
// If InitialFocus is enabled and the container holds nothing
// focusable, Activate fails with ErrNoFocusableElements, unregisters
// everything it registered, and performs no focus change.
func (e *Engine) Activate() error {
	if e.active {
		return nil
	}
	e.active = true
	e.platform.AddFocusInterceptor(e)
	e.platform.AddKeyFilter(e)

	if e.features.Has(RestoreFocus) {
		e.arm()
	}
	if e.features.Has(InitialFocus) {
		if err := e.seedInitialFocus(); err != nil {
			e.platform.RemoveKeyFilter(e)
			e.platform.RemoveFocusInterceptor(e)
			e.disarm()
			e.active = false
			return err
		}
	}
	return nil
}

// SetFeatures replaces the feature set. Reactions are edge-triggered:
// only bits that actually changed have side effects, re-applying the
// same value does nothing.
func (e *Engine) SetFeatures(f Feature) error {
	old := e.features
	e.features = f
	if !e.active || f == old {
		return nil
	}

	switch {
	case f.Has(RestoreFocus) && !old.Has(RestoreFocus):
		e.arm()
	case !f.Has(RestoreFocus) && old.Has(RestoreFocus):
		e.disarm()
	}

	if f.Has(InitialFocus) && !old.Has(InitialFocus) {
		return e.seedInitialFocus()
	}
	return nil
}

// SetOptions replaces the session options. Initial focus re-seeds
// only when the resolved target actually changed; clearing a
// previously explicit target counts as a change and re-runs the
// sequence under the no-explicit-target policy.
func (e *Engine) SetOptions(opts Options) error {
	e.opts = opts
	if !e.active || !e.features.Has(InitialFocus) {
		return nil
	}
	var target runtime.Widget
	if t := e.resolveInitialTarget(); t != nil {
		target = t
	}
	if target != e.initTarget {
		return e.seedInitialFocus()
	}
	return nil
}

// Teardown ends the session: subscriptions are removed, the pending
// restore fires, and session state is cleared. Calling it again (or
// on a session that never armed) is a no-op.
func (e *Engine) Teardown() {
	if !e.active {
		return
	}
	e.active = false
	e.platform.RemoveKeyFilter(e)
	// The interceptor must go before the restore request: the restore
	// target normally lives outside the container, and a still
	// registered FocusLock would veto its own restoration.
	e.platform.RemoveFocusInterceptor(e)
	e.fireRestore()
	e.lastGood = nil
	e.initTarget = nil
}

// FilterKey implements runtime.KeyFilter: Tab containment.
func (e *Engine) FilterKey(msg runtime.KeyMsg) bool {
	if !e.features.Has(TabLock) {
		return false
	}
	container := e.resolveContainer()
	if container == nil {
		return false
	}

	var dir runtime.Direction
	switch {
	case msg.Key == terminal.KeyBacktab || (msg.Key == terminal.KeyTab && msg.Shift):
		dir = runtime.Previous
	case msg.Key == terminal.KeyTab:
		dir = runtime.Next
	default:
		return false
	}

	if _, ok := e.platform.MoveFocusInto(container, runtime.Traversal{Dir: dir, Wrap: true}); ok {
		e.lastGood = e.platform.Focused()
	}
	// Consumed either way: an empty container must not leak the key to
	// default navigation, which would walk focus out of the trap.
	return true
}

// InterceptFocus implements runtime.FocusInterceptor: external focus
// containment. It runs synchronously inside the dispatch that is
// attempting the change, so a vetoed change is never observable.
func (e *Engine) InterceptFocus(req *runtime.FocusRequest) {
	if !e.features.Has(FocusLock) {
		return
	}
	regions := e.allowedRegions()
	if !anyResolvable(regions) {
		return
	}
	// No baseline yet: the session has not confirmed any in-region
	// focus, so there is nothing to defend.
	if e.lastGood == nil || !e.mounted {
		return
	}

	target := req.Target
	if target == nil {
		// Focus moving to no element: pull it back.
		if e.platform.IsMounted(e.lastGood) {
			req.Redirect(e.lastGood)
		}
		return
	}

	if !Contains(regions, target) {
		// Escape attempt. If the last good element is itself gone the
		// trap stands down rather than fight over a corpse.
		if e.platform.IsMounted(e.lastGood) {
			req.Cancel(e.lastGood)
		}
		return
	}

	// Contained: adopt the target as the new baseline. The manager
	// re-commits focus onto it even when it only looked focused.
	e.lastGood = target
}

// seedInitialFocus implements the activation sequence. It tolerates
// the target or container disappearing between steps by degrading to
// the next policy step.
func (e *Engine) seedInitialFocus() error {
	container := e.resolveContainer()
	target := e.resolveInitialTarget()
	current := e.platform.Focused()

	e.initTarget = nil
	if target != nil {
		e.initTarget = target
	}

	if target != nil && current == target {
		// Already where we want to be.
		e.lastGood = current
		return nil
	}
	if target == nil && current != nil && container != nil && runtime.IsDescendant(container, current) {
		// No explicit target and focus is already inside.
		e.lastGood = current
		return nil
	}

	if target != nil {
		e.platform.RequestFocus(target)
	} else {
		if container == nil {
			return fmt.Errorf("session %s: %w", e.id, ErrNoFocusableElements)
		}
		if _, ok := e.platform.MoveFocusInto(container, runtime.Traversal{Dir: runtime.First}); !ok {
			return fmt.Errorf("session %s: %w", e.id, ErrNoFocusableElements)
		}
	}

	e.lastGood = e.platform.Focused()
	return nil
}

// arm captures the restore target. Capturing at feature-on time, not
// construction time, lets nested traps decide which of them restores.
func (e *Engine) arm() {
	e.restoreTarget = e.platform.Focused()
	e.mounted = true
}

// disarm drops the pending restore without moving focus. A later
// RestoreFocus on-edge captures a fresh target.
func (e *Engine) disarm() {
	e.mounted = false
	e.restoreTarget = nil
}

// fireRestore consumes the pending restore at most once.
func (e *Engine) fireRestore() {
	if !e.mounted {
		return
	}
	e.mounted = false
	if e.restoreTarget != nil && e.platform.IsMounted(e.restoreTarget) {
		e.platform.RequestFocus(e.restoreTarget)
	}
	e.restoreTarget = nil
}

func (e *Engine) allowedRegions() []Ref {
	regions := make([]Ref, 0, len(e.opts.Containers)+1)
	regions = append(regions, e.container)
	regions = append(regions, e.opts.Containers...)
	return regions
}

func (e *Engine) resolveContainer() runtime.Widget {
	if e.container == nil {
		return nil
	}
	return e.container()
}

func (e *Engine) resolveInitialTarget() runtime.Focusable {
	if e.opts.InitialFocus == nil {
		return nil
	}
	w := e.opts.InitialFocus()
	if w == nil {
		return nil
	}
	f, ok := w.(runtime.Focusable)
	if !ok {
		return nil
	}
	return f
}
