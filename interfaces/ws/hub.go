// Package ws pushes render snapshots to canvas clients. It is the
// propagation half of the store-changed contract: the core mutates,
// the hub ships the resulting snapshot.
package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/observability"
	"go.uber.org/zap"
)

// Hub fans the current snapshot out to every connected client. It
// implements the messaging.ChangeListener interface; both graph and
// selection changes push a complete snapshot, because the collaborator
// re-renders from the full collections either way.
type Hub struct {
	queryBus *querybus.QueryBus
	dynamic  func() *config.DynamicConfig
	metrics  *observability.Metrics
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan *queries.GetGraphDataResult
}

// NewHub creates a hub reading its knobs from dynamic
func NewHub(
	queryBus *querybus.QueryBus,
	dynamic func() *config.DynamicConfig,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Hub {
	return &Hub{
		queryBus: queryBus,
		dynamic:  dynamic,
		metrics:  metrics,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Origin policy is enforced by the CORS layer in front.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}
}

// OnGraphChanged implements the change listener
func (h *Hub) OnGraphChanged() {
	h.broadcast()
}

// OnSelectionChanged implements the change listener
func (h *Hub) OnSelectionChanged() {
	h.broadcast()
}

// ServeHTTP upgrades a canvas client onto the snapshot stream
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cfg := h.dynamic().WebSocket

	h.mu.RLock()
	connected := len(h.clients)
	h.mu.RUnlock()
	if cfg.MaxClients > 0 && connected >= cfg.MaxClients {
		http.Error(w, "too many stream clients", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Stream upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan *queries.GetGraphDataResult, cfg.SendBuffer),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.StreamClients.Inc()
	}

	h.logger.Info("Stream client connected", zap.String("clientID", c.id))

	// Ship the current state immediately so a late joiner renders
	// without waiting for the next mutation.
	if snapshot := h.snapshot(); snapshot != nil {
		c.send <- snapshot
	}

	go h.writePump(c, cfg)
	go h.readPump(c)
}

// broadcast pushes a fresh snapshot to every client. Clients whose
// send buffer is full are dropped; a canvas that cannot keep up with
// edit traffic is better reconnected than backlogged.
func (h *Hub) broadcast() {
	snapshot := h.snapshot()
	if snapshot == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- snapshot:
			if h.metrics != nil {
				h.metrics.SnapshotsPushed.Inc()
			}
		default:
			h.logger.Warn("Dropping slow stream client", zap.String("clientID", c.id))
			h.drop(c)
		}
	}

	if h.metrics != nil {
		h.metrics.GraphNodes.Set(float64(snapshot.Stats.NodeCount))
		h.metrics.GraphEdges.Set(float64(snapshot.Stats.EdgeCount))
	}
}

func (h *Hub) snapshot() *queries.GetGraphDataResult {
	result, err := h.queryBus.Ask(context.Background(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Snapshot query failed", zap.Error(err))
		return nil
	}
	snapshot, ok := result.(*queries.GetGraphDataResult)
	if !ok {
		h.logger.Error("Snapshot query returned unexpected type")
		return nil
	}
	return snapshot
}

func (h *Hub) writePump(c *client, cfg config.WebSocketConfig) {
	pingInterval := time.Duration(cfg.PingInterval) * time.Second
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	writeTimeout := time.Duration(cfg.WriteTimeout) * time.Second
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.drop(c)
	}()

	for {
		select {
		case snapshot := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(snapshot); err != nil {
				h.logger.Debug("Stream write failed", zap.String("clientID", c.id), zap.Error(err))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the stream is one-way. It exists
// to notice the close handshake and tear the client down.
func (h *Hub) readPump(c *client) {
	defer h.drop(c)
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, present := h.clients[c.id]
	if present {
		delete(h.clients, c.id)
	}
	h.mu.Unlock()

	if !present {
		return
	}

	// The send channel stays open: a broadcast racing the drop may
	// still buffer into it, and closing would turn that into a panic.
	// Closing the conn unblocks the write pump on its next write.
	c.conn.Close()
	if h.metrics != nil {
		h.metrics.StreamClients.Dec()
	}
	h.logger.Info("Stream client disconnected", zap.String("clientID", c.id))
}
