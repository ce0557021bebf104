package toast

import (
	"fmt"
	"strings"
)

const (
	// BaseClass is carried by the notification element at all times.
	BaseClass = "notification"

	// ShowClass makes the notification visible.
	ShowClass = "show"
)

// Stylesheet returns the CSS injected with the first notification.
func Stylesheet(cfg Config) string {
	cfg = cfg.withDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, `
.%[1]s {
    position: fixed;
    top: %[2]s;
    right: %[3]s;
    padding: 12px 20px;
    border-radius: 8px;
    color: white;
    font-weight: 600;
    z-index: 1000;
    opacity: 0;
    transform: translateY(-20px);
    transition: opacity %[4]s, transform %[4]s;
    max-width: %[5]s;
}

.%[1]s.%[6]s {
    opacity: 1;
    transform: translateY(0);
}
`, BaseClass, cfg.Top, cfg.Right, cfg.Transition, cfg.MaxWidth, ShowClass)

	for _, cat := range Categories {
		fmt.Fprintf(&b, `
.%s.%s {
    background-color: %s;
}
`, BaseClass, cat, cfg.Colors[cat])
	}

	return b.String()
}
