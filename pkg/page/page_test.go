package page_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fll-tools/teamgen/pkg/page"
	"github.com/fll-tools/teamgen/pkg/vtest"
)

func TestLoadFiresHandlersOnce(t *testing.T) {
	h := vtest.NewPage(t)
	var calls []string

	h.OnContentLoaded(func() { calls = append(calls, "first") })
	h.OnContentLoaded(func() { panic("bad handler") })
	h.OnContentLoaded(func() { calls = append(calls, "third") })

	h.Run(func() { assert.Equal(t, page.StateLoading, h.ReadyState()) })
	h.Load()

	assert.Equal(t, []string{"first", "third"}, calls)
	h.Run(func() { assert.Equal(t, page.StateInteractive, h.ReadyState()) })

	err := h.Page.Load(h.Context())
	assert.ErrorIs(t, err, page.ErrAlreadyLoaded)
	assert.Equal(t, []string{"first", "third"}, calls)
}

func TestOnContentLoadedAfterLoadRunsImmediately(t *testing.T) {
	h := vtest.NewPage(t)
	h.Load()
	ran := false

	h.Run(func() {
		h.OnContentLoaded(func() { ran = true })
	})
	h.Run(func() {})

	assert.True(t, ran)
}

func TestWindowCall(t *testing.T) {
	h := vtest.NewPage(t)
	h.Run(func() {
		h.Window.Define("double", func(args ...any) any {
			return args[0].(int) * 2
		})
	})

	assert.Equal(t, 42, h.Call("double", 21))
	h.Run(func() { assert.Equal(t, []string{"double"}, h.Window.Names()) })
}

func TestWindowCallUndefined(t *testing.T) {
	h := vtest.NewPage(t)

	_, err := h.Window.Call(h.Context(), "showNotification", "hi")

	require.Error(t, err)
	assert.ErrorIs(t, err, page.ErrUndefinedGlobal)
	var gErr *page.GlobalError
	require.ErrorAs(t, err, &gErr)
	assert.Equal(t, "showNotification", gErr.Name)
}

func TestWindowCallPanics(t *testing.T) {
	h := vtest.NewPage(t)
	h.Run(func() {
		h.Window.Define("explode", func(args ...any) any { panic("nope") })
	})

	_, err := h.Window.Call(h.Context(), "explode")

	assert.ErrorIs(t, err, page.ErrTaskPanicked)
}

func TestSetTimeoutCancel(t *testing.T) {
	h := vtest.NewPage(t)
	fired := false

	var timer page.Timer
	h.Run(func() { timer = h.SetTimeout(time.Second, func() { fired = true }) })
	assert.True(t, timer.Stop())
	h.Advance(2 * time.Second)

	assert.False(t, fired)
}

func TestRealClockTimeout(t *testing.T) {
	p := page.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	fired := make(chan struct{})
	require.NoError(t, p.Do(ctx, func() {
		p.SetTimeout(5*time.Millisecond, func() { close(fired) })
	}))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}
}

func TestPageDefaults(t *testing.T) {
	p := page.New(page.WithTitle("Teams"), page.WithQueueSize(8))

	assert.IsType(t, page.RealClock{}, p.Clock())
	assert.NotNil(t, p.Logger())
	assert.Equal(t, "Teams", p.Document.Title())
	assert.Equal(t, page.StateLoading, p.ReadyState())
}

func TestSetTimeoutWithFullQueue(t *testing.T) {
	h := vtest.NewPage(t, page.WithQueueSize(1))
	fired := false
	h.Run(func() { h.SetTimeout(time.Second, func() { fired = true }) })

	started := make(chan struct{})
	release := make(chan struct{})
	h.Dispatch(func() {
		close(started)
		<-release
	})
	<-started
	h.Dispatch(func() {})

	h.Clock.Advance(time.Second)
	close(release)
	h.Run(func() {})

	assert.True(t, fired)
}
