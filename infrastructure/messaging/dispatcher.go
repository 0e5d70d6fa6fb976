// Package messaging carries state-change signals from the mutation
// core to in-process subscribers, chiefly the rendering layer.
package messaging

import (
	"context"
	"sync"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/domain/events"
	"go.uber.org/zap"
)

// EventHandler consumes one domain event
type EventHandler func(ctx context.Context, event events.DomainEvent)

// Dispatcher delivers domain events synchronously to registered
// handlers, in registration order. A failing handler never fails the
// mutation that raised the event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []EventHandler
	logger   *zap.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Subscribe registers a handler for all domain events
func (d *Dispatcher) Subscribe(handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Publish delivers a single event
func (d *Dispatcher) Publish(ctx context.Context, event events.DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}

	d.logger.Debug("Event dispatched",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
	)
	return nil
}

// PublishBatch delivers events in order
func (d *Dispatcher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := d.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
