package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/bus"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/interfaces/http/rest/handlers"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/interfaces/http/rest/middleware"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/observability"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	dynamic    *config.DynamicConfig
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	stream     http.Handler
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	dynamic *config.DynamicConfig,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	stream http.Handler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		dynamic:    dynamic,
		commandBus: commandBus,
		queryBus:   queryBus,
		stream:     stream,
		metrics:    metrics,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	maxBody := rt.dynamic.Limits.MaxBodyBytes

	router.Route("/api/v1", func(r chi.Router) {
		// Interaction events forwarded by the rendering collaborator
		r.Route("/events", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(rt.commandBus, maxBody, rt.logger)
			r.Post("/node-click", eventHandler.NodeClick)
			r.Post("/pane-click", eventHandler.PaneClick)
			r.Post("/drop", eventHandler.Drop)
			r.Post("/connect", eventHandler.Connect)
			r.Post("/node-move", eventHandler.NodeMove)
		})

		// Properties panel: selection reads and edits
		r.Route("/selection", func(r chi.Router) {
			selectionHandler := handlers.NewSelectionHandler(rt.commandBus, rt.queryBus, maxBody, rt.logger)
			r.Get("/", selectionHandler.GetSelection)
			r.Post("/label", selectionHandler.Rename)
			r.Post("/fields", selectionHandler.AddField)
			r.Patch("/fields/{index}", selectionHandler.UpdateField)
			r.Delete("/fields/{index}", selectionHandler.RemoveField)
		})

		// Snapshot pull and push
		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.logger)
		r.Get("/graph", graphHandler.GetGraph)
		r.Handle("/stream", rt.stream)
	})

	return router
}

// healthCheck provides a health check endpoint
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
