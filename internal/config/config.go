// Package config loads keyctx settings from .keyctx.yaml over built-in
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/keyctx/internal/model"
)

// FileName is the config file looked up in the scanned root.
const FileName = ".keyctx.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultPool is the numeric keypad, in allocation order.
var DefaultPool = []string{
	"VK_NUMPAD0", "VK_NUMPAD1", "VK_NUMPAD2", "VK_NUMPAD3", "VK_NUMPAD4",
	"VK_NUMPAD5", "VK_NUMPAD6", "VK_NUMPAD7", "VK_NUMPAD8", "VK_NUMPAD9",
	"VK_ADD", "VK_SUBTRACT", "VK_MULTIPLY", "VK_DIVIDE", "VK_DECIMAL",
}

// Config holds every tunable of a run.
type Config struct {
	Pool           []string        `yaml:"pool"`
	DenySections   []string        `yaml:"deny_sections"`
	Exclude        []string        `yaml:"exclude"`
	RequireType    string          `yaml:"require_type"`
	Scope          m.SelectorScope `yaml:"scope"`
	SelectorPrefix string          `yaml:"selector_prefix"`
	GlobalSelector string          `yaml:"global_selector"`
	Triggers       TriggersConfig  `yaml:"triggers"`
	StripLegacy    bool            `yaml:"strip_legacy"`
	BackupSuffix   string          `yaml:"backup_suffix"`
	Manifest       string          `yaml:"manifest"`
	Display        DisplayConfig   `yaml:"display"`
	Logging        LoggingConfig   `yaml:"logging"`
}

// TriggersConfig names the keys that drive the selector handlers.
type TriggersConfig struct {
	Next   string `yaml:"next"`
	Prev   string `yaml:"prev"`
	Toggle string `yaml:"toggle"`
}

// DisplayConfig locates the inputs and outputs of the display generator.
type DisplayConfig struct {
	Rules         string `yaml:"rules"`
	Output        string `yaml:"output"`
	ControllerIni string `yaml:"controller_ini"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pool: append([]string(nil), DefaultPool...),
		DenySections: []string{
			"Constants", "Present", "Resources", "TextureOverride",
			"CommandList*", "Resource*",
		},
		Exclude:        []string{".*", "DISABLED*"},
		RequireType:    "cycle",
		Scope:          m.ScopeLocal,
		SelectorPrefix: "sel",
		GlobalSelector: "selected_character",
		Triggers: TriggersConfig{
			Next:   "VK_DOWN",
			Prev:   "VK_UP",
			Toggle: "VK_RETURN",
		},
		StripLegacy:  true,
		BackupSuffix: ".backup",
		Manifest:     "keyctx_manifest.json",
		Display: DisplayConfig{
			Rules:         "character_name_mapping.json",
			Output:        "character_display.json",
			ControllerIni: "mod.ini",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path is operator supplied
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadForRoot loads explicit when set, otherwise root/.keyctx.yaml if present.
func LoadForRoot(root, explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit, true)
	}

	return Load(filepath.Join(root, FileName), false)
}

// Validate rejects settings the engine cannot honour.
func (c Config) Validate() error {
	if len(c.Pool) == 0 {
		return fmt.Errorf("%w: pool is empty", ErrInvalid)
	}

	seen := make(map[string]struct{}, len(c.Pool))
	for _, key := range c.Pool {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("%w: pool contains an empty key", ErrInvalid)
		}

		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: pool key %s listed twice", ErrInvalid, key)
		}

		seen[key] = struct{}{}
	}

	if !c.Scope.Valid() {
		return fmt.Errorf("%w: unknown scope %q", ErrInvalid, c.Scope)
	}

	if c.SelectorPrefix == "" || !isWord(c.SelectorPrefix) {
		return fmt.Errorf("%w: selector_prefix %q must be a word", ErrInvalid, c.SelectorPrefix)
	}

	if c.GlobalSelector == "" || !isWord(c.GlobalSelector) {
		return fmt.Errorf("%w: global_selector %q must be a word", ErrInvalid, c.GlobalSelector)
	}

	if c.Triggers.Next == "" || c.Triggers.Prev == "" || c.Triggers.Toggle == "" {
		return fmt.Errorf("%w: all triggers must be set", ErrInvalid)
	}

	if c.BackupSuffix == "" {
		return fmt.Errorf("%w: backup_suffix is empty", ErrInvalid)
	}

	for _, pattern := range append(append([]string(nil), c.DenySections...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: bad glob %q", ErrInvalid, pattern)
		}
	}

	if _, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(c.Logging.Level))); err != nil {
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

func isWord(s string) bool {
	for _, r := range s {
		if r != '_' && (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
