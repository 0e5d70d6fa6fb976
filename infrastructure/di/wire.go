//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/infrastructure/config"
)

// SuperSet is the full provider set for the application
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDynamicSource,
	ProvideGenerator,
	ProvideGraph,
	ProvideGraphRepository,
	ProvideTracker,
	ProvideMetrics,
	ProvideNotifier,
	ProvideDispatcher,
	ProvideEventPublisher,
	ProvideChangeNotifier,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideHub,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer builds the full dependency container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
