package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
)

func mustID(t *testing.T, s string) valueobjects.NodeID {
	t.Helper()
	id, err := valueobjects.NewNodeIDFromString(s)
	assert.NoError(t, err)
	return id
}

func TestTracker_InitiallyUnselected(t *testing.T) {
	tracker := NewTracker()

	_, ok := tracker.Active()

	assert.False(t, ok)
}

func TestTracker_SelectThenActive(t *testing.T) {
	tracker := NewTracker()
	id := mustID(t, "2")

	tracker.Select(id)

	active, ok := tracker.Active()
	assert.True(t, ok)
	assert.True(t, active.Equals(id))
}

func TestTracker_SelectRetargets(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(mustID(t, "2"))

	tracker.Select(mustID(t, "3"))

	active, ok := tracker.Active()
	assert.True(t, ok)
	assert.Equal(t, "3", active.String())
}

func TestTracker_Clear(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(mustID(t, "2"))

	tracker.Clear()

	_, ok := tracker.Active()
	assert.False(t, ok)
}

func TestTracker_Resolve_LiveID(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(mustID(t, "2"))

	id, ok := tracker.Resolve(func(valueobjects.NodeID) bool { return true })

	assert.True(t, ok)
	assert.Equal(t, "2", id.String())
}

func TestTracker_Resolve_StaleIDReadsAsNoSelection(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(mustID(t, "2"))

	_, ok := tracker.Resolve(func(valueobjects.NodeID) bool { return false })

	assert.False(t, ok)
}

func TestTracker_Resolve_KeepsStoredState(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(mustID(t, "2"))

	// Stale read leaves the stored id in place.
	_, ok := tracker.Resolve(func(valueobjects.NodeID) bool { return false })
	assert.False(t, ok)

	id, ok := tracker.Resolve(func(valueobjects.NodeID) bool { return true })
	assert.True(t, ok)
	assert.Equal(t, "2", id.String())
}

func TestTracker_Resolve_Unselected(t *testing.T) {
	tracker := NewTracker()

	called := false
	_, ok := tracker.Resolve(func(valueobjects.NodeID) bool {
		called = true
		return true
	})

	assert.False(t, ok)
	assert.False(t, called)
}
