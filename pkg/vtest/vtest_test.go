package vtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fll-tools/teamgen/pkg/vdom"
)

func TestFakeClockFiresInOrder(t *testing.T) {
	c := NewFakeClock(Epoch)
	var fired []string

	c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	c.AfterFunc(2*time.Second, func() { fired = append(fired, "c") })
	c.AfterFunc(5*time.Second, func() { fired = append(fired, "late") })

	c.Advance(2 * time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, Epoch.Add(2*time.Second), c.Now())
}

func TestFakeClockNowDuringCallback(t *testing.T) {
	c := NewFakeClock(Epoch)
	var at time.Time

	c.AfterFunc(1500*time.Millisecond, func() { at = c.Now() })
	c.Advance(10 * time.Second)

	assert.Equal(t, Epoch.Add(1500*time.Millisecond), at)
	assert.Equal(t, Epoch.Add(10*time.Second), c.Now())
}

func TestFakeClockNestedTimers(t *testing.T) {
	c := NewFakeClock(Epoch)
	count := 0

	c.AfterFunc(time.Second, func() {
		count++
		c.AfterFunc(time.Second, func() { count++ })
	})
	c.Advance(3 * time.Second)

	assert.Equal(t, 2, count)
}

func TestFakeTimerStop(t *testing.T) {
	c := NewFakeClock(Epoch)
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeTimerStopAfterFire(t *testing.T) {
	c := NewFakeClock(Epoch)
	timer := c.AfterFunc(time.Millisecond, func() {})

	c.Advance(time.Millisecond)

	assert.False(t, timer.Stop())
}

func TestHarnessTimeoutRunsOnLoop(t *testing.T) {
	h := NewPage(t)
	h.Run(func() {
		h.Document.Body().AppendChild(vdom.Div(vdom.ID("box"), vdom.Class("show")))
		h.SetTimeout(time.Second, func() {
			h.Document.GetElementByID("box").ClassList().Remove("show")
		})
	})

	assert.True(t, h.Element("box").Has("show"))
	h.Advance(999 * time.Millisecond)
	assert.True(t, h.Element("box").Has("show"))
	h.Advance(time.Millisecond)
	assert.False(t, h.Element("box").Has("show"))
}

func TestHarnessElement(t *testing.T) {
	h := NewPage(t)
	h.Run(func() {
		h.Document.Body().AppendChild(vdom.Div(vdom.ID("x"), vdom.Class("a", "b"), "hi"))
	})

	el := h.Element("x")
	assert.True(t, el.Exists)
	assert.Equal(t, "hi", el.Text)
	assert.Equal(t, []string{"a", "b"}, el.Classes)
	assert.Equal(t, "body", el.Parent)

	assert.False(t, h.Element("missing").Exists)
	assert.Equal(t, 1, h.Count("div#x"))
	assert.Contains(t, h.HTML(), `<div class="a b" id="x">hi</div>`)
}
