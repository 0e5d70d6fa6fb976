package bus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testCommand struct {
	invalid bool
}

func (c testCommand) Validate() error {
	if c.invalid {
		return errors.New("bad command")
	}
	return nil
}

type otherCommand struct{}

func (c otherCommand) Validate() error { return nil }

func TestCommandBus_SendDispatchesToHandler(t *testing.T) {
	b := NewCommandBus()
	handled := false
	err := b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	}))
	assert.NoError(t, err)

	err = b.Send(context.Background(), testCommand{})

	assert.NoError(t, err)
	assert.True(t, handled)
}

func TestCommandBus_SendRejectsInvalidCommand(t *testing.T) {
	b := NewCommandBus()
	handled := false
	_ = b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = true
		return nil
	}))

	err := b.Send(context.Background(), testCommand{invalid: true})

	assert.Error(t, err)
	assert.False(t, handled)
}

func TestCommandBus_SendUnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), otherCommand{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestCommandBus_RegisterTwiceFails(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	assert.NoError(t, b.Register(testCommand{}, handler))
	assert.Error(t, b.Register(testCommand{}, handler))
}

func TestCommandBus_MiddlewareOrder(t *testing.T) {
	b := NewCommandBus()
	var trace []string

	mk := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				trace = append(trace, name)
				return next.Handle(ctx, cmd)
			})
		}
	}
	b.Use(mk("outer"))
	b.Use(mk("inner"))
	_ = b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		trace = append(trace, "handler")
		return nil
	}))

	err := b.Send(context.Background(), testCommand{})

	assert.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestSequentialMiddleware_SerializesConcurrentSends(t *testing.T) {
	b := NewCommandBus()
	b.Use(SequentialMiddleware())

	inflight := 0
	maxInflight := 0
	var stateMu sync.Mutex
	_ = b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		stateMu.Lock()
		inflight++
		if inflight > maxInflight {
			maxInflight = inflight
		}
		stateMu.Unlock()

		time.Sleep(time.Millisecond)

		stateMu.Lock()
		inflight--
		stateMu.Unlock()
		return nil
	}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Send(context.Background(), testCommand{})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInflight, "handlers must never overlap")
}

func TestLoggingMiddleware_PassesErrorThrough(t *testing.T) {
	b := NewCommandBus()
	b.Use(LoggingMiddleware(zap.NewNop()))
	sentinel := errors.New("handler failed")
	_ = b.Register(testCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return sentinel
	}))

	err := b.Send(context.Background(), testCommand{})

	assert.ErrorIs(t, err, sentinel)
}
