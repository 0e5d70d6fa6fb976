// Package selection tracks the at-most-one node currently targeted by
// the properties-editing operations.
package selection

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
)

// Tracker is a two-state machine: Unselected (initial) and
// Selected(nodeID). Clicking a node re-targets immediately regardless
// of prior state; clicking the pane clears; creating a node selects it
// so the properties panel opens right away.
//
// The tracker holds whatever id it was last given. A node deleted
// behind its back leaves a stale id; Resolve maps that to "nothing
// selected" at read time instead of requiring a deletion hook.
type Tracker struct {
	activeID valueobjects.NodeID
	selected bool
}

// NewTracker creates a tracker in the Unselected state
func NewTracker() *Tracker {
	return &Tracker{}
}

// Select transitions to Selected(id), from any state
func (t *Tracker) Select(id valueobjects.NodeID) {
	t.activeID = id
	t.selected = true
}

// Clear transitions to Unselected
func (t *Tracker) Clear() {
	t.activeID = valueobjects.NodeID{}
	t.selected = false
}

// Active returns the raw active id, without liveness resolution
func (t *Tracker) Active() (valueobjects.NodeID, bool) {
	if !t.selected {
		return valueobjects.NodeID{}, false
	}
	return t.activeID, true
}

// Resolve returns the active id only if exists confirms the node is
// still present. A stale id reads as no selection; the stored state is
// left untouched so a later re-appearance of the id would still resolve.
func (t *Tracker) Resolve(exists func(valueobjects.NodeID) bool) (valueobjects.NodeID, bool) {
	if !t.selected || !exists(t.activeID) {
		return valueobjects.NodeID{}, false
	}
	return t.activeID, true
}
