package page

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the task queue capacity of a new loop.
const DefaultQueueSize = 256

// Loop runs page tasks one at a time on a single goroutine.
type Loop struct {
	tasks   chan func()
	done    chan struct{}
	closed  atomic.Bool
	running atomic.Bool
	once    sync.Once
	logger  *slog.Logger

	// Timer callbacks wait here instead of in tasks so they are never
	// dropped. Run drains them before each task.
	timerMu sync.Mutex
	timerQ  []func()
	wake    chan struct{}
}

// NewLoop creates a loop with the given queue capacity.
func NewLoop(queueSize int, logger *slog.Logger) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		tasks:  make(chan func(), queueSize),
		done:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Run executes queued tasks until ctx is cancelled. It returns ctx.Err().
// A loop runs at most once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("page: event loop already running")
	}
	defer l.stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.runTimers()
		case task := <-l.tasks:
			l.runTimers()
			l.execute(task)
		}
	}
}

// Dispatch queues fn to run on the loop without waiting. If the loop has
// stopped or the queue is full the task is dropped.
func (l *Loop) Dispatch(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	default:
		l.logger.Warn("dispatch queue full, discarding task")
	}
}

// Do runs fn on the loop and waits for it to finish. Do must not be called
// from a task already running on the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if l.closed.Load() {
		return ErrLoopStopped
	}

	finished := make(chan error, 1)
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				finished <- fmt.Errorf("%w: %v", ErrTaskPanicked, r)
				panic(r)
			}
		}()
		fn()
		finished <- nil
	}

	select {
	case l.tasks <- task:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-finished:
		return err
	case <-l.done:
		// The loop may have run the task right before stopping.
		select {
		case err := <-finished:
			return err
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// deliver queues a timer callback. Unlike Dispatch it never drops fn while
// the loop is alive and never blocks.
func (l *Loop) deliver(fn func()) {
	if l.closed.Load() {
		return
	}
	l.timerMu.Lock()
	l.timerQ = append(l.timerQ, fn)
	l.timerMu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// runTimers executes every delivered timer callback in delivery order.
func (l *Loop) runTimers() {
	l.timerMu.Lock()
	queued := l.timerQ
	l.timerQ = nil
	l.timerMu.Unlock()

	for _, fn := range queued {
		l.execute(fn)
	}
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// execute runs one task with panic recovery.
func (l *Loop) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("task panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	task()
}

func (l *Loop) stop() {
	l.once.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}
