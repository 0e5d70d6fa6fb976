package di

import (
	"context"
	"fmt"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/bus"
	commands_handlers "github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/handlers"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	queries_handlers "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/handlers"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/aggregates"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/core/valueobjects"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/messaging"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/persistence/memory"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/interfaces/ws"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/observability"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDynamicSource wires the optional hot-reloadable config file
func ProvideDynamicSource(cfg *config.Config, logger *zap.Logger) (*DynamicSource, error) {
	if cfg.DynamicConfigPath == "" {
		return &DynamicSource{}, nil
	}

	watcher, err := config.NewWatcher(cfg.DynamicConfigPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start config watcher: %w", err)
	}
	return &DynamicSource{watcher: watcher}, nil
}

// ProvideGenerator creates the session's identity generator
func ProvideGenerator() *valueobjects.Generator {
	return valueobjects.NewSessionGenerator()
}

// ProvideGraph creates the seeded session graph
func ProvideGraph(gen *valueobjects.Generator) *aggregates.Graph {
	return aggregates.NewSessionGraph(gen)
}

// ProvideGraphRepository creates the in-memory graph store
func ProvideGraphRepository(graph *aggregates.Graph) ports.GraphRepository {
	return memory.NewInMemoryGraphRepository(graph)
}

// ProvideTracker creates the selection tracker
func ProvideTracker() *selection.Tracker {
	return selection.NewTracker()
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics("concerto_editor")
}

// ProvideNotifier creates the store-changed notifier
func ProvideNotifier() *messaging.Notifier {
	return messaging.NewNotifier()
}

// ProvideDispatcher creates the domain event dispatcher with the
// metrics subscriber attached
func ProvideDispatcher(metrics *observability.Metrics, logger *zap.Logger) *messaging.Dispatcher {
	dispatcher := messaging.NewDispatcher(logger)
	dispatcher.Subscribe(func(ctx context.Context, event events.DomainEvent) {
		switch event.GetEventType() {
		case "graph.node_added":
			metrics.NodesCreated.Inc()
		case "graph.edge_connected":
			metrics.EdgesCreated.Inc()
		}
	})
	return dispatcher
}

// ProvideEventPublisher exposes the dispatcher through its port
func ProvideEventPublisher(dispatcher *messaging.Dispatcher) ports.EventPublisher {
	return dispatcher
}

// ProvideChangeNotifier exposes the notifier through its port
func ProvideChangeNotifier(notifier *messaging.Notifier) ports.ChangeNotifier {
	return notifier
}

// CommandHandlerAdapter adapts typed command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(ctx context.Context, cmd bus.Command) error
}

// Handle implements bus.CommandHandler
func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates the command bus with every interaction and
// edit handler registered
func ProvideCommandBus(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	publisher ports.EventPublisher,
	notifier ports.ChangeNotifier,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	// Events run to completion one at a time, in arrival order.
	commandBus.Use(bus.SequentialMiddleware())
	commandBus.Use(bus.LoggingMiddleware(logger))
	commandBus.Use(metricsMiddleware(metrics))

	dropHandler := commands_handlers.NewDropConceptHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.DropConceptCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			dropCmd, ok := cmd.(commands.DropConceptCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return dropHandler.Handle(ctx, dropCmd)
		},
	})

	nodeClickHandler := commands_handlers.NewNodeClickHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.NodeClickCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			clickCmd, ok := cmd.(commands.NodeClickCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return nodeClickHandler.Handle(ctx, clickCmd)
		},
	})

	paneClickHandler := commands_handlers.NewPaneClickHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.PaneClickCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			paneCmd, ok := cmd.(commands.PaneClickCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return paneClickHandler.Handle(ctx, paneCmd)
		},
	})

	connectHandler := commands_handlers.NewConnectNodesHandler(graphRepo, publisher, notifier, logger)
	commandBus.Register(commands.ConnectNodesCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			connectCmd, ok := cmd.(commands.ConnectNodesCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return connectHandler.Handle(ctx, connectCmd)
		},
	})

	moveHandler := commands_handlers.NewMoveNodeHandler(graphRepo, publisher, notifier, logger)
	commandBus.Register(commands.MoveNodeCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			moveCmd, ok := cmd.(commands.MoveNodeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return moveHandler.Handle(ctx, moveCmd)
		},
	})

	renameHandler := commands_handlers.NewRenameConceptHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.RenameConceptCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			renameCmd, ok := cmd.(commands.RenameConceptCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return renameHandler.Handle(ctx, renameCmd)
		},
	})

	addFieldHandler := commands_handlers.NewAddFieldHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.AddFieldCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddFieldCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return addFieldHandler.Handle(ctx, addCmd)
		},
	})

	updateFieldHandler := commands_handlers.NewUpdateFieldHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.UpdateFieldCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdateFieldCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return updateFieldHandler.Handle(ctx, updateCmd)
		},
	})

	removeFieldHandler := commands_handlers.NewRemoveFieldHandler(graphRepo, tracker, publisher, notifier, logger)
	commandBus.Register(commands.RemoveFieldCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			removeCmd, ok := cmd.(commands.RemoveFieldCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return removeFieldHandler.Handle(ctx, removeCmd)
		},
	})

	return commandBus
}

// metricsMiddleware counts processed commands by type
func metricsMiddleware(metrics *observability.Metrics) bus.Middleware {
	return func(next bus.CommandHandler) bus.CommandHandler {
		return bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
			err := next.Handle(ctx, cmd)
			if err == nil {
				metrics.EventsProcessed.WithLabelValues(fmt.Sprintf("%T", cmd)).Inc()
			}
			return err
		})
	}
}

// QueryHandlerAdapter adapts typed query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(ctx context.Context, query querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates the query bus with the snapshot and
// selection handlers registered
func ProvideQueryBus(
	graphRepo ports.GraphRepository,
	tracker *selection.Tracker,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	graphDataHandler := queries_handlers.NewGetGraphDataHandler(graphRepo, tracker, logger)
	queryBus.Register(queries.GetGraphDataQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			dataQuery, ok := query.(queries.GetGraphDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return graphDataHandler.Handle(ctx, dataQuery)
		},
	})

	selectionHandler := queries_handlers.NewGetSelectionHandler(graphRepo, tracker, logger)
	queryBus.Register(queries.GetSelectionQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			selQuery, ok := query.(queries.GetSelectionQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return selectionHandler.Handle(ctx, selQuery)
		},
	})

	return queryBus
}

// ProvideHub creates the snapshot stream hub and subscribes it to
// store-changed notifications
func ProvideHub(
	queryBus *querybus.QueryBus,
	dynamic *DynamicSource,
	notifier *messaging.Notifier,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ws.Hub {
	hub := ws.NewHub(queryBus, dynamic.Current, metrics, logger)
	notifier.AddListener(hub)
	return hub
}
