package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/di"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/messaging"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/persistence/memory"
	"go.uber.org/zap"
)

// newTestServer wires a full editor session behind the real router,
// with the snapshot stream stubbed out.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
	}

	graph := aggregates.NewSessionGraph(valueobjects.NewSessionGenerator())
	graph.MarkEventsAsCommitted()
	graphRepo := memory.NewInMemoryGraphRepository(graph)
	tracker := selection.NewTracker()
	metrics := di.ProvideMetrics()
	notifier := messaging.NewNotifier()
	dispatcher := messaging.NewDispatcher(logger)

	commandBus := di.ProvideCommandBus(graphRepo, tracker, dispatcher, notifier, metrics, logger)
	queryBus := di.ProvideQueryBus(graphRepo, tracker, logger)

	stream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return NewRouter(cfg, config.DefaultDynamicConfig(), commandBus, queryBus, stream, metrics, logger).Setup()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestRouter_HealthCheck(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestRouter_GetGraph_SeedSnapshot(t *testing.T) {
	h := newTestServer(t)

	rec, env := do(t, h, http.MethodGet, "/api/v1/graph", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var snapshot struct {
		Nodes []struct {
			ID   string `json:"id"`
			Kind string `json:"type"`
			Data struct {
				Label string `json:"label"`
			} `json:"data"`
		} `json:"nodes"`
		ActiveID *string `json:"active_id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Len(t, snapshot.Nodes, 1)
	assert.Equal(t, "1", snapshot.Nodes[0].ID)
	assert.Equal(t, "concerto", snapshot.Nodes[0].Kind)
	assert.Equal(t, "Person", snapshot.Nodes[0].Data.Label)
	assert.Nil(t, snapshot.ActiveID)
}

func TestRouter_DropCreatesAndSelects(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/events/drop", `{"x":100,"y":50,"payload":"Concept"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	_, env := do(t, h, http.MethodGet, "/api/v1/graph", "")
	var snapshot struct {
		Nodes    []json.RawMessage `json:"nodes"`
		ActiveID *string           `json:"active_id"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Len(t, snapshot.Nodes, 2)
	assert.NotNil(t, snapshot.ActiveID)
	assert.Equal(t, "2", *snapshot.ActiveID)
}

func TestRouter_DropWithoutPayloadRejected(t *testing.T) {
	h := newTestServer(t)

	rec, env := do(t, h, http.MethodPost, "/api/v1/events/drop", `{"x":1,"y":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.NotNil(t, env.Error)
}

func TestRouter_DropMalformedBodyRejected(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/events/drop", `{"x":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SelectionLifecycle(t *testing.T) {
	h := newTestServer(t)

	// Nothing selected at session start.
	rec, env := do(t, h, http.MethodGet, "/api/v1/selection", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var sel struct {
		Node *struct {
			ID   string `json:"id"`
			Data struct {
				Label string `json:"label"`
			} `json:"data"`
		} `json:"node"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &sel))
	assert.Nil(t, sel.Node)

	// Click the seed node and read it back.
	rec, _ = do(t, h, http.MethodPost, "/api/v1/events/node-click", `{"node_id":"1"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	_, env = do(t, h, http.MethodGet, "/api/v1/selection", "")
	assert.NoError(t, json.Unmarshal(env.Data, &sel))
	assert.NotNil(t, sel.Node)
	assert.Equal(t, "1", sel.Node.ID)
	assert.Equal(t, "Person", sel.Node.Data.Label)

	// Pane click clears it again.
	rec, _ = do(t, h, http.MethodPost, "/api/v1/events/pane-click", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	_, env = do(t, h, http.MethodGet, "/api/v1/selection", "")
	sel.Node = nil
	assert.NoError(t, json.Unmarshal(env.Data, &sel))
	assert.Nil(t, sel.Node)
}

func TestRouter_FieldEditsThroughPanel(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/events/node-click", `{"node_id":"1"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/selection/label", `{"label":"Employee"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/selection/fields", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPatch, "/api/v1/selection/fields/3", `{"attribute":"name","value":"salary"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPatch, "/api/v1/selection/fields/3", `{"attribute":"type","value":"Double"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/selection/fields/0", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	_, env := do(t, h, http.MethodGet, "/api/v1/selection", "")
	var sel struct {
		Node struct {
			Data struct {
				Label  string `json:"label"`
				Fields []struct {
					Type string `json:"type"`
					Name string `json:"name"`
				} `json:"fields"`
			} `json:"data"`
		} `json:"node"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &sel))
	assert.Equal(t, "Employee", sel.Node.Data.Label)
	assert.Len(t, sel.Node.Data.Fields, 3)
	last := sel.Node.Data.Fields[2]
	assert.Equal(t, "salary", last.Name)
	assert.Equal(t, "Double", last.Type)
}

func TestRouter_FieldIndexMustBeNumeric(t *testing.T) {
	h := newTestServer(t)

	rec, env := do(t, h, http.MethodPatch, "/api/v1/selection/fields/abc", `{"attribute":"name","value":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestRouter_EditWithoutSelectionIsAccepted(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/selection/fields", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// The seed node was not touched.
	_, env := do(t, h, http.MethodGet, "/api/v1/graph", "")
	var snapshot struct {
		Nodes []struct {
			Data struct {
				Fields []json.RawMessage `json:"fields"`
			} `json:"data"`
		} `json:"nodes"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Len(t, snapshot.Nodes[0].Data.Fields, 3)
}

func TestRouter_ConnectAndMove(t *testing.T) {
	h := newTestServer(t)

	rec, _ := do(t, h, http.MethodPost, "/api/v1/events/drop", `{"x":0,"y":0,"payload":"Asset"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/events/connect", `{"source":"1","target":"2","edge_id":"e1"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/events/node-move", `{"node_id":"2","x":400,"y":120}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	_, env := do(t, h, http.MethodGet, "/api/v1/graph", "")
	var snapshot struct {
		Nodes []struct {
			ID       string `json:"id"`
			Position struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"position"`
		} `json:"nodes"`
		Edges []struct {
			ID     string `json:"id"`
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"edges"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &snapshot))
	assert.Len(t, snapshot.Edges, 1)
	assert.Equal(t, "e1", snapshot.Edges[0].ID)
	assert.Equal(t, float64(400), snapshot.Nodes[1].Position.X)
}
