package trap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuta-ike/headlessui/pkg/runtime"
)

// staleRef resolves to nothing, like a region whose widget unmounted.
func staleRef() runtime.Widget { return nil }

func TestContains_EmptyRegions(t *testing.T) {
	assert.False(t, Contains(nil, leaf("a")))
	assert.False(t, Contains([]Ref{}, leaf("a")))
}

func TestContains_NilCandidate(t *testing.T) {
	root := tree("root", leaf("a"))
	assert.False(t, Contains([]Ref{StaticRef(root)}, nil))
}

func TestContains_DescendantAndSelf(t *testing.T) {
	a := leaf("a")
	inner := tree("inner", a)
	root := tree("root", inner)

	regions := []Ref{StaticRef(root)}
	assert.True(t, Contains(regions, a), "nested descendant")
	assert.True(t, Contains(regions, inner), "direct child")
	assert.True(t, Contains(regions, root), "region itself")
}

func TestContains_Outside(t *testing.T) {
	root := tree("root", leaf("a"))
	assert.False(t, Contains([]Ref{StaticRef(root)}, leaf("elsewhere")))
}

func TestContains_SkipsStaleRefs(t *testing.T) {
	a := leaf("a")
	root := tree("root", a)

	regions := []Ref{nil, staleRef, StaticRef(root)}
	assert.True(t, Contains(regions, a), "resolvable region after stale ones")
}

func TestContains_ExtraContainers(t *testing.T) {
	a := leaf("a")
	b := leaf("b")
	main := tree("main", a)
	extra := tree("extra", b)

	regions := []Ref{StaticRef(main), StaticRef(extra)}
	assert.True(t, Contains(regions, b), "candidate in extra container")
}

func TestAnyResolvable(t *testing.T) {
	root := tree("root")

	assert.False(t, anyResolvable(nil))
	assert.False(t, anyResolvable([]Ref{nil, staleRef}))
	assert.True(t, anyResolvable([]Ref{staleRef, StaticRef(root)}))
}
