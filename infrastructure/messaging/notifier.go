package messaging

import (
	"sync"
)

// ChangeListener receives store-changed signals. Implementations must
// not block: notification happens on the event-handling goroutine.
type ChangeListener interface {
	OnGraphChanged()
	OnSelectionChanged()
}

// Notifier is the explicit observer list behind the core's "store
// changed" contract. Each mutation produces a new immutable snapshot;
// the notifier only tells subscribers that a fresh one exists.
type Notifier struct {
	mu        sync.RWMutex
	listeners []ChangeListener
}

// NewNotifier creates a notifier with no listeners
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener subscribes a listener to change signals
func (n *Notifier) AddListener(l ChangeListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// GraphChanged signals that node or edge collections changed
func (n *Notifier) GraphChanged() {
	n.mu.RLock()
	listeners := n.listeners
	n.mu.RUnlock()

	for _, l := range listeners {
		l.OnGraphChanged()
	}
}

// SelectionChanged signals that the active node changed
func (n *Notifier) SelectionChanged() {
	n.mu.RLock()
	listeners := n.listeners
	n.mu.RUnlock()

	for _, l := range listeners {
		l.OnSelectionChanged()
	}
}
