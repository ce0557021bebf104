package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration errors (E100-E199)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config file could not be read",
		Suggestion: "Check the path passed to --config.",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Config file is malformed",
		Suggestion: "teamgen.json must be valid JSON; .yaml and .yml files must be valid YAML.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid config value",
		Suggestion: "Remove the field to fall back to its default.",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Invalid environment override",
		Suggestion: "TEAMGEN_TOAST_DURATION takes a Go duration such as 3s or 1500ms.",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Unsupported config file extension",
		Suggestion: "Use .json, .yaml or .yml.",
	},

	// CLI errors (E200-E299)

	"E200": {
		Category:   CategoryCLI,
		Message:    "Unknown notification category",
		Suggestion: "Use one of: info, success, error.",
	},
	"E201": {
		Category: CategoryCLI,
		Message:  "Page did not finish loading",
	},
	"E202": {
		Category: CategoryCLI,
		Message:  "Global call failed",
	},
	"E203": {
		Category:   CategoryCLI,
		Message:    "Invalid log level",
		Suggestion: "Use one of: debug, info, warn, error.",
	},
}

// Lookup returns the template for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
