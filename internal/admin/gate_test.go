package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateUnlock(t *testing.T) {
	t.Parallel()

	g := NewGate("secreto")
	assert.False(t, g.Unlocked())

	assert.False(t, g.Unlock("wrong"))
	assert.False(t, g.Unlocked())

	assert.True(t, g.Unlock("secreto"))
	assert.True(t, g.Unlocked())

	// a failed retry locks it again
	assert.False(t, g.Unlock("wrong"))
	assert.False(t, g.Unlocked())
}

func TestGateLock(t *testing.T) {
	t.Parallel()

	g := NewGate("secreto")
	g.Unlock("secreto")
	g.Lock()
	assert.False(t, g.Unlocked())
}

func TestEmptyPasswordNeverUnlocks(t *testing.T) {
	t.Parallel()

	g := NewGate("")
	assert.False(t, g.Unlock(""))
	assert.False(t, g.Unlock("anything"))
	assert.False(t, g.Unlocked())
}
