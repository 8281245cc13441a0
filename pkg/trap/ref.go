package trap

import "github.com/yuta-ike/headlessui/pkg/runtime"

// Ref is a resolvable reference to a widget. It returns nil once the
// target is no longer available (unmounted, replaced, never set).
// Refs are borrowed: the trap never owns the widgets behind them.
type Ref func() runtime.Widget

// StaticRef returns a ref that always resolves to w.
// Intended for tests and for widgets with static lifetimes.
func StaticRef(w runtime.Widget) Ref {
	return func() runtime.Widget { return w }
}

// MountedRef returns a ref that resolves to w only while w is part of
// the screen's mounted tree. After the widget's layer is popped the
// ref resolves to nil, which downstream logic treats as "absent".
func MountedRef(s *runtime.Screen, w runtime.Widget) Ref {
	return func() runtime.Widget {
		if s == nil || !s.IsMounted(w) {
			return nil
		}
		return w
	}
}
