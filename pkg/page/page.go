package page

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/fll-tools/teamgen/pkg/page"

// ReadyState mirrors document.readyState.
type ReadyState string

const (
	StateLoading     ReadyState = "loading"
	StateInteractive ReadyState = "interactive"
)

// Page is one hosted page: document, window, event loop and clock.
type Page struct {
	// Document is the page's element tree. Loop-owned.
	Document *Document

	// Window holds the page globals.
	Window *Window

	loop     *Loop
	clock    Clock
	logger   *slog.Logger
	state    ReadyState
	handlers []func()
}

type options struct {
	title     string
	clock     Clock
	logger    *slog.Logger
	queueSize int
	tracer    trace.TracerProvider
}

// Option configures a Page.
type Option func(*options)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithClock replaces the real clock, typically with a simulated one.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the page logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithQueueSize sets the event loop queue capacity.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

// WithTracerProvider sets the provider for window call spans.
// Default: the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// New creates a page in the loading state. The loop does not run until Run
// is called.
func New(opts ...Option) *Page {
	o := options{
		clock:  RealClock{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.GetTracerProvider()
	}

	loop := NewLoop(o.queueSize, o.logger)
	return &Page{
		Document: NewDocument(o.title),
		Window:   newWindow(loop, o.tracer.Tracer(tracerName)),
		loop:     loop,
		clock:    o.clock,
		logger:   o.logger,
		state:    StateLoading,
	}
}

// Run drives the page's event loop until ctx is cancelled.
func (p *Page) Run(ctx context.Context) error {
	return p.loop.Run(ctx)
}

// Done is closed once the page loop has stopped.
func (p *Page) Done() <-chan struct{} {
	return p.loop.Done()
}

// Dispatch queues fn on the page loop.
func (p *Page) Dispatch(fn func()) {
	p.loop.Dispatch(fn)
}

// Do runs fn on the page loop and waits for it.
func (p *Page) Do(ctx context.Context, fn func()) error {
	return p.loop.Do(ctx, fn)
}

// Clock returns the page clock.
func (p *Page) Clock() Clock {
	return p.clock
}

// Logger returns the page logger.
func (p *Page) Logger() *slog.Logger {
	return p.logger
}

// ReadyState reports whether the page has loaded. Loop-owned.
func (p *Page) ReadyState() ReadyState {
	return p.state
}

// OnContentLoaded registers fn to run when the page finishes loading.
// Handlers run in registration order. Registering after the page loaded
// queues fn to run on the loop right away. Loop-owned.
func (p *Page) OnContentLoaded(fn func()) {
	if p.state != StateLoading {
		p.loop.Dispatch(fn)
		return
	}
	p.handlers = append(p.handlers, fn)
}

// Load marks the document as parsed and fires the content-loaded handlers
// on the loop. It waits until they have run.
func (p *Page) Load(ctx context.Context) error {
	var err error
	doErr := p.loop.Do(ctx, func() {
		if p.state != StateLoading {
			err = ErrAlreadyLoaded
			return
		}
		p.state = StateInteractive
		handlers := p.handlers
		p.handlers = nil
		for _, h := range handlers {
			p.runHandler(h)
		}
	})
	if doErr != nil {
		return doErr
	}
	return err
}

// runHandler isolates one load handler so a panic does not skip the rest.
func (p *Page) runHandler(h func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("content-loaded handler panic", "panic", r)
		}
	}()
	h()
}

// SetTimeout runs fn on the loop after d. The returned Timer can cancel it
// until it fires. A fired callback runs even when the task queue is full.
func (p *Page) SetTimeout(d time.Duration, fn func()) Timer {
	return p.clock.AfterFunc(d, func() {
		p.loop.deliver(fn)
	})
}
