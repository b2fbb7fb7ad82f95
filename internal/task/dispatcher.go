package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the Dispatcher
var (
	ErrDispatcherStopped = errors.New("dispatcher is stopped")
)

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	// QueueSize is the buffer size of the pending-work channel.
	// If zero or negative, defaults to 64.
	QueueSize int
}

// DefaultDispatcherConfig returns a DispatcherConfig with reasonable defaults
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{QueueSize: 64}
}

type loopKey struct{}

// Dispatcher is the application's single logical UI thread. Functions posted
// to it run one at a time, in submission order, on one goroutine. Every
// mutation of view-visible state goes through it.
type Dispatcher struct {
	queue  chan func(context.Context)
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
	logger *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewDispatcher creates a Dispatcher. Call Start before posting work.
func NewDispatcher(config DispatcherConfig, logger *slog.Logger) *Dispatcher {
	size := config.QueueSize
	if size <= 0 {
		size = DefaultDispatcherConfig().QueueSize
		logger.Warn("invalid dispatcher queue size specified, using default",
			"specified_size", config.QueueSize,
			"default_size", size)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctx = context.WithValue(ctx, loopKey{}, true)

	return &Dispatcher{
		queue:  make(chan func(context.Context), size),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
		logger: logger.With("component", "dispatcher"),
	}
}

// Start launches the dispatch loop. Calling it more than once has no effect.
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.loop()
		d.logger.Debug("dispatcher started", "queue_cap", cap(d.queue))
	})
}

// Stop ends the dispatch loop after draining work that was already queued.
// Work posted afterwards is rejected with ErrDispatcherStopped.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.done)
		d.wg.Wait()
		d.cancel()
		d.logger.Debug("dispatcher stopped")
	})
}

// OnLoop reports whether ctx belongs to work running on a dispatcher.
func OnLoop(ctx context.Context) bool {
	on, _ := ctx.Value(loopKey{}).(bool)
	return on
}

// Post queues fn to run on the dispatcher and returns without waiting.
func (d *Dispatcher) Post(fn func(ctx context.Context)) error {
	select {
	case <-d.done:
		return ErrDispatcherStopped
	default:
	}

	select {
	case d.queue <- fn:
		return nil
	case <-d.done:
		return ErrDispatcherStopped
	}
}

// Do runs fn on the dispatcher and waits for it to return. When called from
// work already running on the dispatcher, fn runs inline.
// If ctx ends first, Do stops waiting; fn still runs once it is dequeued.
func (d *Dispatcher) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if OnLoop(ctx) {
		return fn(ctx)
	}

	// fn sees the caller's values but not its cancellation; a mutation that
	// has been dequeued always runs to the end.
	fnCtx := context.WithValue(context.WithoutCancel(ctx), loopKey{}, true)

	result := make(chan error, 1)
	if err := d.Post(func(context.Context) {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("dispatched function panicked: %v", r)
			}
		}()
		result <- fn(fnCtx)
	}); err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		// The loop drains before exiting, so the result may still arrive.
		select {
		case err := <-result:
			return err
		default:
			return ErrDispatcherStopped
		}
	}
}

func (d *Dispatcher) loop() {
	defer d.wg.Done()
	for {
		select {
		case fn := <-d.queue:
			d.run(fn)
		case <-d.done:
			for {
				select {
				case fn := <-d.queue:
					d.run(fn)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) run(fn func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatched function panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn(d.ctx)
}
