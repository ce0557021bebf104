package toast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts notification activity. A nil *Metrics records nothing.
type Metrics struct {
	shown           *prometheus.CounterVec
	hidden          prometheus.Counter
	styleInjections prometheus.Counter
	cancelledHides  prometheus.Counter
}

// NewMetrics registers the toast metrics with reg under the "teamgen"
// namespace.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "teamgen",
			Subsystem: "toast",
			Name:      "shown_total",
			Help:      "Total number of notifications shown, by category",
		}, []string{"category"}),

		hidden: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "teamgen",
			Subsystem: "toast",
			Name:      "hidden_total",
			Help:      "Total number of hide timers that fired",
		}),

		styleInjections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "teamgen",
			Subsystem: "toast",
			Name:      "stylesheet_injections_total",
			Help:      "Total number of notification stylesheets injected",
		}),

		cancelledHides: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "teamgen",
			Subsystem: "toast",
			Name:      "cancelled_hides_total",
			Help:      "Total number of pending hides cancelled before firing",
		}),
	}
}

func (m *Metrics) recordShown(c Category) {
	if m == nil {
		return
	}
	m.shown.WithLabelValues(string(c)).Inc()
}

func (m *Metrics) recordHidden() {
	if m == nil {
		return
	}
	m.hidden.Inc()
}

func (m *Metrics) recordStyleInjection() {
	if m == nil {
		return
	}
	m.styleInjections.Inc()
}

func (m *Metrics) recordCancelledHide() {
	if m == nil {
		return
	}
	m.cancelledHides.Inc()
}
