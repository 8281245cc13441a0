package trap

import "github.com/yuta-ike/headlessui/pkg/runtime"

// Contains reports whether candidate lies inside any of the allowed
// regions: it is a descendant of (or equal to) some region whose ref
// still resolves. Stale refs are skipped, never an error. An empty
// region set or a nil candidate yields false. No side effects.
func Contains(regions []Ref, candidate runtime.Widget) bool {
	if candidate == nil {
		return false
	}
	for _, ref := range regions {
		if ref == nil {
			continue
		}
		root := ref()
		if root == nil {
			continue
		}
		if runtime.IsDescendant(root, candidate) {
			return true
		}
	}
	return false
}

// anyResolvable reports whether at least one region ref still resolves.
func anyResolvable(regions []Ref) bool {
	for _, ref := range regions {
		if ref != nil && ref() != nil {
			return true
		}
	}
	return false
}
