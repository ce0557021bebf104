package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/fll-tools/teamgen/internal/errors"
	"github.com/fll-tools/teamgen/pkg/toast"
)

const (
	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "teamgen.json"

	// DefaultToastDuration is how long a notification stays visible.
	DefaultToastDuration = 3000 * time.Millisecond

	// DefaultElementID is the id of the notification element.
	DefaultElementID = "notification"

	// DefaultStyleID is the id of the injected <style> block.
	DefaultStyleID = "notification-styles"
)

// searchNames are tried in order when no explicit path is given.
var searchNames = []string{ConfigFileName, "teamgen.yaml", "teamgen.yml"}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config represents the complete teamgen configuration.
type Config struct {
	// Toast configures the notification helper.
	Toast Toast `json:"toast" yaml:"toast"`

	// Log configures structured logging.
	Log Log `json:"log" yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Toast configures the notification element, its timing and its styles.
type Toast struct {
	// Duration is the delay before a shown notification is hidden.
	Duration Duration `json:"duration" yaml:"duration" env:"TEAMGEN_TOAST_DURATION"`

	// ElementID is the id of the singleton notification element.
	ElementID string `json:"elementId" yaml:"elementId"`

	// StyleID is the id of the singleton <style> block.
	StyleID string `json:"styleId" yaml:"styleId"`

	// Top and Right position the element from the viewport corner.
	Top   string `json:"top" yaml:"top"`
	Right string `json:"right" yaml:"right"`

	// MaxWidth caps the element width.
	MaxWidth string `json:"maxWidth" yaml:"maxWidth"`

	// Transition is the fade/slide duration as a CSS time.
	Transition string `json:"transition" yaml:"transition"`

	// Colors maps each category to its background color.
	Colors Colors `json:"colors" yaml:"colors"`

	// ResetPendingHide cancels the previous pending hide on every show.
	// When false, an earlier hide timer may hide a newer message early.
	ResetPendingHide bool `json:"resetPendingHide" yaml:"resetPendingHide" env:"TEAMGEN_TOAST_RESET_PENDING_HIDE"`
}

// Colors holds the background color of each notification category.
type Colors struct {
	Info    string `json:"info" yaml:"info"`
	Success string `json:"success" yaml:"success"`
	Error   string `json:"error" yaml:"error"`
}

// Log configures the slog handler used by the CLI.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" env:"TEAMGEN_LOG_LEVEL"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Toast: DefaultToast(),
		Log:   Log{Level: "info"},
	}
}

// DefaultToast returns the toast settings of the stock page.
func DefaultToast() Toast {
	d := toast.DefaultConfig()
	return Toast{
		Duration:   Duration(DefaultToastDuration),
		ElementID:  DefaultElementID,
		StyleID:    DefaultStyleID,
		Top:        d.Top,
		Right:      d.Right,
		MaxWidth:   d.MaxWidth,
		Transition: d.Transition,
		Colors: Colors{
			Info:    d.Colors[toast.CategoryInfo],
			Success: d.Colors[toast.CategorySuccess],
			Error:   d.Colors[toast.CategoryError],
		},
	}
}

// ToastConfig converts the file settings to notifier settings.
func (t Toast) ToastConfig() toast.Config {
	return toast.Config{
		Duration:   t.Duration.Std(),
		ElementID:  t.ElementID,
		StyleID:    t.StyleID,
		Top:        t.Top,
		Right:      t.Right,
		MaxWidth:   t.MaxWidth,
		Transition: t.Transition,
		Colors: map[toast.Category]string{
			toast.CategoryInfo:    t.Colors.Info,
			toast.CategorySuccess: t.Colors.Success,
			toast.CategoryError:   t.Colors.Error,
		},
		ResetPendingHide: t.ResetPendingHide,
	}
}

// Color returns the configured background of category, or "" if it has none.
func (c Colors) Color(category toast.Category) string {
	switch category {
	case toast.CategoryInfo:
		return c.Info
	case toast.CategorySuccess:
		return c.Success
	case toast.CategoryError:
		return c.Error
	}
	return ""
}

// Load reads configuration from path. An empty path searches the working
// directory for teamgen.json, teamgen.yaml and teamgen.yml and falls back to
// defaults when none exists. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, name := range searchNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	cfg := New()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path without
// applying environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").WithDetail(path).Wrap(err)
	}

	cfg := New()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.New("E104").WithDetail(path)
	}
	if err != nil {
		return nil, errors.New("E101").WithDetail(path).Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// ApplyEnv overlays TEAMGEN_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.New("E103").Wrap(err)
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields a file set to "".
func (c *Config) applyDefaults() {
	d := DefaultToast()
	t := &c.Toast

	if t.ElementID == "" {
		t.ElementID = d.ElementID
	}
	if t.StyleID == "" {
		t.StyleID = d.StyleID
	}
	if t.Top == "" {
		t.Top = d.Top
	}
	if t.Right == "" {
		t.Right = d.Right
	}
	if t.MaxWidth == "" {
		t.MaxWidth = d.MaxWidth
	}
	if t.Transition == "" {
		t.Transition = d.Transition
	}
	if t.Colors.Info == "" {
		t.Colors.Info = d.Colors.Info
	}
	if t.Colors.Success == "" {
		t.Colors.Success = d.Colors.Success
	}
	if t.Colors.Error == "" {
		t.Colors.Error = d.Colors.Error
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	t := c.Toast
	if t.Duration <= 0 {
		return errors.New("E102").WithDetailf("toast.duration must be positive, got %s", t.Duration)
	}
	if t.ElementID == "" {
		return errors.New("E102").WithDetail("toast.elementId must not be empty")
	}
	if t.StyleID == "" {
		return errors.New("E102").WithDetail("toast.styleId must not be empty")
	}
	if t.ElementID == t.StyleID {
		return errors.New("E102").WithDetailf("toast.elementId and toast.styleId are both %q", t.ElementID)
	}
	for name, value := range map[string]string{
		"info":    t.Colors.Info,
		"success": t.Colors.Success,
		"error":   t.Colors.Error,
	} {
		if !hexColor.MatchString(value) {
			return errors.New("E102").WithDetailf("toast.colors.%s: %q is not a hex color", name, value)
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured level, defaulting to info.
func (l Log) SlogLevel() slog.Level {
	level, err := ParseLevel(l.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.New("E203").WithDetailf("%q", s)
	}
	return level, nil
}
