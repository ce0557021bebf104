package vtest

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fll-tools/teamgen/pkg/page"
	"github.com/fll-tools/teamgen/pkg/vdom"
)

// Harness is a running page on a simulated clock.
type Harness struct {
	*page.Page

	// Clock drives every timer on the page.
	Clock *FakeClock

	t   testing.TB
	ctx context.Context
}

// NewPage starts a page for the duration of the test. The page logs to
// nowhere unless opts supply a logger.
func NewPage(t testing.TB, opts ...page.Option) *Harness {
	t.Helper()

	clock := NewFakeClock(Epoch)
	base := []page.Option{
		page.WithClock(clock),
		page.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	p := page.New(append(base, opts...)...)

	ctx, cancel := context.WithCancel(context.Background())
	go p.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-p.Done()
	})

	return &Harness{Page: p, Clock: clock, t: t, ctx: ctx}
}

// Context returns a context that lives as long as the page.
func (h *Harness) Context() context.Context {
	return h.ctx
}

// Run executes fn on the page loop and fails the test if it cannot.
func (h *Harness) Run(fn func()) {
	h.t.Helper()
	require.NoError(h.t, h.Page.Do(h.ctx, fn))
}

// Load fires the page's content-loaded handlers.
func (h *Harness) Load() {
	h.t.Helper()
	require.NoError(h.t, h.Page.Load(h.ctx))
}

// Call invokes a window global and fails the test on error.
func (h *Harness) Call(name string, args ...any) any {
	h.t.Helper()
	result, err := h.Window.Call(h.ctx, name, args...)
	require.NoError(h.t, err)
	return result
}

// Advance moves the clock forward and waits until every callback that fell
// due has run on the loop.
func (h *Harness) Advance(d time.Duration) {
	h.t.Helper()
	h.Clock.Advance(d)
	h.Run(func() {})
}

// Element is a copy of an element's observable state.
type Element struct {
	Exists  bool
	Text    string
	Classes []string
	Parent  string
}

// Has reports whether the element carries class.
func (e Element) Has(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Element reads the element with the given id from the loop.
func (h *Harness) Element(id string) Element {
	h.t.Helper()
	var snap Element
	h.Run(func() {
		el := h.Document.GetElementByID(id)
		if el == nil {
			return
		}
		snap = Element{
			Exists:  true,
			Text:    el.TextContent(),
			Classes: el.ClassList().Values(),
			Parent:  parentTag(h.Document.Root(), el),
		}
	})
	return snap
}

// Count returns how many elements match a "tag", "#id" or "tag#id" selector.
func (h *Harness) Count(selector string) int {
	h.t.Helper()
	var n int
	h.Run(func() {
		n = h.Document.QuerySelectorCount(selector)
	})
	return n
}

// HTML serializes the document.
func (h *Harness) HTML() string {
	h.t.Helper()
	var (
		html string
		err  error
	)
	h.Run(func() {
		html, err = h.Document.HTML(false)
	})
	require.NoError(h.t, err)
	return html
}

func parentTag(root, target *vdom.VNode) string {
	var tag string
	root.Walk(func(n *vdom.VNode) bool {
		for _, c := range n.Children {
			if c == target {
				tag = n.Tag
				return false
			}
		}
		return true
	})
	return tag
}
