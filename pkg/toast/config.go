package toast

import "time"

// Category selects a notification's color.
type Category string

const (
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
)

// Categories lists the styled categories in stylesheet order.
var Categories = []Category{CategoryInfo, CategorySuccess, CategoryError}

// Valid reports whether c has a style rule. Show accepts any category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Config controls the notification element and its stylesheet.
type Config struct {
	// Duration is the delay between Show and the hide.
	Duration time.Duration

	// ElementID is the id of the notification element.
	ElementID string

	// StyleID is the id of the injected <style> block.
	StyleID string

	// Top and Right offset the element from the top-right corner.
	Top   string
	Right string

	// MaxWidth caps the element width.
	MaxWidth string

	// Transition is the CSS duration of the fade/slide.
	Transition string

	// Colors maps categories to background colors.
	Colors map[Category]string

	// ResetPendingHide cancels the previous hide on each Show.
	ResetPendingHide bool
}

// DefaultConfig returns the stock page settings.
func DefaultConfig() Config {
	return Config{
		Duration:   3000 * time.Millisecond,
		ElementID:  "notification",
		StyleID:    "notification-styles",
		Top:        "20px",
		Right:      "20px",
		MaxWidth:   "300px",
		Transition: "0.3s",
		Colors: map[Category]string{
			CategoryInfo:    "#0055BF",
			CategorySuccess: "#00852B",
			CategoryError:   "#D01012",
		},
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Duration <= 0 {
		c.Duration = d.Duration
	}
	if c.ElementID == "" {
		c.ElementID = d.ElementID
	}
	if c.StyleID == "" {
		c.StyleID = d.StyleID
	}
	if c.Top == "" {
		c.Top = d.Top
	}
	if c.Right == "" {
		c.Right = d.Right
	}
	if c.MaxWidth == "" {
		c.MaxWidth = d.MaxWidth
	}
	if c.Transition == "" {
		c.Transition = d.Transition
	}
	colors := make(map[Category]string, len(d.Colors))
	for cat, color := range d.Colors {
		colors[cat] = color
	}
	for cat, color := range c.Colors {
		if color != "" {
			colors[cat] = color
		}
	}
	c.Colors = colors
	return c
}
