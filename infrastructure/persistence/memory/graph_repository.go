package memory

import (
	"context"
	"sync"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	apperrors "github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/errors"
)

// InMemoryGraphRepository holds the single session graph in process
// memory. The editor session's state lives exactly as long as the
// process; persisting it anywhere is out of scope for this editor.
//
// Mutations arrive pre-serialized (the command bus runs them one at a
// time), so the lock here only guards snapshot reads racing a commit.
type InMemoryGraphRepository struct {
	mu    sync.RWMutex
	graph *aggregates.Graph
}

// NewInMemoryGraphRepository creates a repository seeded with the given graph
func NewInMemoryGraphRepository(graph *aggregates.Graph) *InMemoryGraphRepository {
	return &InMemoryGraphRepository{graph: graph}
}

// Load returns the session graph
func (r *InMemoryGraphRepository) Load(ctx context.Context) (*aggregates.Graph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.graph == nil {
		return nil, apperrors.NewNotFoundError("session graph")
	}
	return r.graph, nil
}

// Save stores the graph after a mutation
func (r *InMemoryGraphRepository) Save(ctx context.Context, graph *aggregates.Graph) error {
	if graph == nil {
		return apperrors.NewValidationError("cannot save nil graph")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.graph = graph
	return nil
}
