package toast

import (
	"log/slog"
	"sync/atomic"

	"github.com/fll-tools/teamgen/pkg/page"
	"github.com/fll-tools/teamgen/pkg/render"
	"github.com/fll-tools/teamgen/pkg/vdom"
)

// Notifier shows notifications on one page. Its methods must run on the
// page loop.
type Notifier struct {
	page    *page.Page
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics

	stylesInjected bool
	lastHide       *PendingHide
}

type options struct {
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Notifier.
type Option func(*options)

// WithLogger sets the notifier logger. Default: the page logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records notification activity in m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a notifier for p. Nothing is added to the document until the
// first Show.
func New(p *page.Page, cfg Config, opts ...Option) *Notifier {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = p.Logger()
	}

	return &Notifier{
		page:    p,
		cfg:     cfg.withDefaults(),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Config returns the effective settings.
func (n *Notifier) Config() Config {
	return n.cfg
}

// Show displays message with the given category and schedules its hide.
// Unknown categories are shown without a background rule.
func (n *Notifier) Show(message string, category Category) *PendingHide {
	el := n.element()
	n.injectStyles()

	el.SetText(message)
	el.SetClassName(BaseClass + " " + string(category))
	el.ClassList().Add(ShowClass)
	n.metrics.recordShown(category)
	n.logger.Debug("notification shown", "category", string(category), "length", len(message))

	if n.cfg.ResetPendingHide && n.lastHide != nil {
		n.lastHide.Cancel()
	}

	hide := &PendingHide{metrics: n.metrics}
	hide.timer = n.page.SetTimeout(n.cfg.Duration, func() {
		if !hide.state.CompareAndSwap(hidePending, hideFired) {
			return
		}
		el.ClassList().Remove(ShowClass)
		n.metrics.recordHidden()
		n.logger.Debug("notification hidden", "category", string(category))
	})
	n.lastHide = hide
	return hide
}

// Info shows an info notification.
func (n *Notifier) Info(message string) *PendingHide {
	return n.Show(message, CategoryInfo)
}

// Success shows a success notification.
func (n *Notifier) Success(message string) *PendingHide {
	return n.Show(message, CategorySuccess)
}

// Error shows an error notification.
func (n *Notifier) Error(message string) *PendingHide {
	return n.Show(message, CategoryError)
}

// element returns the notification element, creating it in <body> if the
// document has none.
func (n *Notifier) element() *vdom.VNode {
	doc := n.page.Document
	if el := doc.GetElementByID(n.cfg.ElementID); el != nil {
		return el
	}
	el := doc.CreateElement("div")
	el.SetAttr("id", n.cfg.ElementID)
	doc.Body().AppendChild(el)
	return el
}

// injectStyles adds the stylesheet to <head> once per page.
func (n *Notifier) injectStyles() {
	if n.stylesInjected {
		return
	}
	n.stylesInjected = true

	doc := n.page.Document
	if doc.QuerySelector("style#"+n.cfg.StyleID) != nil {
		return
	}
	style := doc.CreateElement("style")
	style.SetAttr("id", n.cfg.StyleID)
	style.SetText(Stylesheet(n.cfg))
	doc.Head().AppendChild(style)
	n.metrics.recordStyleInjection()
}

const (
	hidePending int32 = iota
	hideFired
	hideCancelled
)

// PendingHide is the scheduled hide of one Show call.
type PendingHide struct {
	timer   page.Timer
	metrics *Metrics
	state   atomic.Int32
}

// Cancel stops the hide. It reports false if the hide already ran or was
// cancelled. A hide whose timer fired but which has not run yet is still
// cancelled.
func (h *PendingHide) Cancel() bool {
	if h == nil || !h.state.CompareAndSwap(hidePending, hideCancelled) {
		return false
	}
	if h.timer != nil {
		h.timer.Stop()
	}
	h.metrics.recordCancelledHide()
	return true
}

// Sanitize returns input escaped as the text content of an element would be
// serialized: & < > and non-breaking spaces become character references.
func Sanitize(input string) string {
	scratch := vdom.Div()
	scratch.SetText(input)
	return render.InnerHTML(scratch)
}
