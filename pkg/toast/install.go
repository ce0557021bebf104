package toast

import (
	"fmt"

	"github.com/fll-tools/teamgen/pkg/page"
)

// Names of the window globals defined by Install.
const (
	GlobalShow     = "showNotification"
	GlobalSanitize = "sanitizeInput"
)

// LoadedMessage is logged when the page finishes loading.
const LoadedMessage = "FLL Team Name Generator loaded"

// Install prepares a notifier for p and defines its globals once the page
// content has loaded. Call it before Load, or on the loop afterwards.
func Install(p *page.Page, cfg Config, opts ...Option) *Notifier {
	n := New(p, cfg, opts...)
	p.OnContentLoaded(func() {
		n.logger.Info(LoadedMessage)
		p.Window.Define(GlobalShow, n.showGlobal)
		p.Window.Define(GlobalSanitize, sanitizeGlobal)
	})
	return n
}

// showGlobal is showNotification(message, category = "info").
func (n *Notifier) showGlobal(args ...any) any {
	category := CategoryInfo
	if len(args) > 1 && args[1] != nil {
		category = Category(stringArg(args[1]))
	}
	n.Show(argAt(args, 0), category)
	return nil
}

// sanitizeGlobal is sanitizeInput(input).
func sanitizeGlobal(args ...any) any {
	return Sanitize(argAt(args, 0))
}

// argAt converts args[i] to a string. Missing or nil arguments are empty.
func argAt(args []any, i int) string {
	if i >= len(args) || args[i] == nil {
		return ""
	}
	return stringArg(args[i])
}

func stringArg(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case Category:
		return string(s)
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
