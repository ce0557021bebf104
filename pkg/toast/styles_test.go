package toast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fll-tools/teamgen/pkg/toast"
)

func TestStylesheetDefaults(t *testing.T) {
	css := toast.Stylesheet(toast.DefaultConfig())

	for _, want := range []string{
		"position: fixed;",
		"top: 20px;",
		"right: 20px;",
		"padding: 12px 20px;",
		"border-radius: 8px;",
		"color: white;",
		"font-weight: 600;",
		"z-index: 1000;",
		"opacity: 0;",
		"transform: translateY(-20px);",
		"transition: opacity 0.3s, transform 0.3s;",
		"max-width: 300px;",
		".notification.show {",
		"transform: translateY(0);",
		".notification.info {\n    background-color: #0055BF;",
		".notification.success {\n    background-color: #00852B;",
		".notification.error {\n    background-color: #D01012;",
	} {
		assert.Contains(t, css, want)
	}
}

func TestStylesheetOverrides(t *testing.T) {
	cfg := toast.DefaultConfig()
	cfg.Top = "1rem"
	cfg.Transition = "150ms"
	cfg.Colors = map[toast.Category]string{toast.CategoryError: "#FF0000"}

	css := toast.Stylesheet(cfg)

	assert.Contains(t, css, "top: 1rem;")
	assert.Contains(t, css, "transition: opacity 150ms, transform 150ms;")
	assert.Contains(t, css, "background-color: #FF0000;")
	assert.Contains(t, css, "background-color: #0055BF;")
	assert.NotContains(t, css, "#D01012")
}
