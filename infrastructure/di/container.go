package di

import (
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/ports"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/selection"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/interfaces/ws"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/observability"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Dynamic    *DynamicSource
	Logger     *zap.Logger
	GraphRepo  ports.GraphRepository
	Tracker    *selection.Tracker
	Metrics    *observability.Metrics
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Hub        *ws.Hub
}

// Close releases container resources
func (c *Container) Close() {
	if c.Dynamic != nil {
		c.Dynamic.Stop()
	}
}

// DynamicSource yields the live dynamic configuration: the watched
// file when one is configured, the defaults otherwise.
type DynamicSource struct {
	watcher *config.Watcher
}

// Current returns the active dynamic configuration
func (s *DynamicSource) Current() *config.DynamicConfig {
	if s.watcher != nil {
		return s.watcher.Current()
	}
	return config.DefaultDynamicConfig()
}

// Stop stops the underlying watcher, if any
func (s *DynamicSource) Stop() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
}
