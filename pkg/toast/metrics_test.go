package toast

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/fll-tools/teamgen/pkg/vtest"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := vtest.NewPage(t)
	n := New(h.Page, DefaultConfig(), WithMetrics(m))

	var hide *PendingHide
	h.Run(func() {
		n.Success("a")
		n.Success("b")
		hide = n.Error("c")
	})
	assert.True(t, hide.Cancel())
	h.Advance(3 * time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.shown.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shown.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.hidden))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.styleInjections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cancelledHides))

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.recordShown(CategoryInfo)
		m.recordHidden()
		m.recordStyleInjection()
		m.recordCancelledHide()
	})
}
