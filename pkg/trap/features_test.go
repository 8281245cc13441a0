package trap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeature_Has(t *testing.T) {
	assert.True(t, All.Has(InitialFocus))
	assert.True(t, All.Has(TabLock|FocusLock))
	assert.False(t, None.Has(InitialFocus))

	f := TabLock | RestoreFocus
	assert.True(t, f.Has(TabLock))
	assert.True(t, f.Has(RestoreFocus))
	assert.False(t, f.Has(FocusLock))
	assert.False(t, f.Has(TabLock|FocusLock), "Has requires every bit")

	// None is a subset of everything.
	assert.True(t, None.Has(None))
	assert.True(t, All.Has(None))
}
