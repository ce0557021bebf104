package page

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Func is a function installed on the window. Arguments arrive as the
// caller passed them; missing arguments are simply absent.
type Func func(args ...any) any

// Window is the page-global namespace shared by every script on the page.
// Globals are owned by the event loop: Define and Lookup must run on the
// loop (or before it starts); Call may be used from any goroutine.
type Window struct {
	globals map[string]Func
	loop    *Loop
	tracer  trace.Tracer
}

func newWindow(loop *Loop, tracer trace.Tracer) *Window {
	return &Window{
		globals: make(map[string]Func),
		loop:    loop,
		tracer:  tracer,
	}
}

// Define installs fn under name, replacing any previous definition.
func (w *Window) Define(name string, fn Func) {
	w.globals[name] = fn
}

// Lookup returns the global named name.
func (w *Window) Lookup(name string) (Func, bool) {
	fn, ok := w.globals[name]
	return fn, ok
}

// Names returns the defined globals in sorted order.
func (w *Window) Names() []string {
	names := make([]string, 0, len(w.globals))
	for name := range w.globals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the global name on the page loop and returns its result.
// Calling a name that is not defined yields ErrUndefinedGlobal.
func (w *Window) Call(ctx context.Context, name string, args ...any) (any, error) {
	ctx, span := w.tracer.Start(ctx, "window."+name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("teamgen.global", name),
			attribute.Int("teamgen.args", len(args)),
		),
	)
	defer span.End()

	var (
		result  any
		callErr error
	)
	err := w.loop.Do(ctx, func() {
		fn, ok := w.globals[name]
		if !ok {
			callErr = ErrUndefinedGlobal
			return
		}
		result = fn(args...)
	})
	if err == nil {
		err = callErr
	}
	if err != nil {
		err = &GlobalError{Name: name, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}
