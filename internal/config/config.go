// Package config loads settings for the calc command from YAML or JSON files.
//
// A file may set any subset of the keys below; missing keys keep their
// defaults.
//
//	max_len: 4096      # or an expression, e.g. "4 * 1024"; 0 disables the limit
//	echo: true         # print "expr = result"
//	color: false       # color error messages
//	log_level: debug   # debug, info, warn, or error
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// Config holds the settings of the calc command.
type Config struct {
	// MaxLen is the maximum expression length in runes. Zero disables the
	// limit.
	MaxLen int
	// Echo prints each expression alongside its result.
	Echo bool
	// Color enables colored output.
	Color bool
	// LogLevel is the minimum level of log records.
	LogLevel string
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		MaxLen:   calc.DefaultMaxLen,
		Color:    true,
		LogLevel: "info",
	}
}

// file is the on-disk form of Config. Pointers distinguish missing keys.
type file struct {
	MaxLen   any     `yaml:"max_len" json:"max_len"`
	Echo     *bool   `yaml:"echo" json:"echo"`
	Color    *bool   `yaml:"color" json:"color"`
	LogLevel *string `yaml:"log_level" json:"log_level"`
}

// FromFile reads calc settings from path. The format follows the extension:
// .yaml or .yml for YAML, .json for JSON. Keys absent from the file keep the
// values from Default.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data over the defaults.
func FromYAML(data []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f.apply(Default())
}

// FromJSON parses JSON data over the defaults.
func FromJSON(data []byte) (Config, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return f.apply(Default())
}

func (f *file) apply(c Config) (Config, error) {
	if f.MaxLen != nil {
		n, err := maxLen(f.MaxLen)
		if err != nil {
			return Config{}, fmt.Errorf("max_len: %w", err)
		}
		c.MaxLen = n
	}
	if f.Echo != nil {
		c.Echo = *f.Echo
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	return c, c.Validate()
}

// maxLen converts a decoded max_len value to an int. Numbers are used
// directly; strings are evaluated as expressions.
func maxLen(v any) (int, error) {
	var x float64
	switch v := v.(type) {
	case int:
		return v, nil
	case float64:
		x = v
	default:
		r, err := calc.EvalValue(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", calc.Message(err), err)
		}
		x = r
	}
	if x != math.Trunc(x) || x > math.MaxInt32 || x < math.MinInt32 {
		return 0, fmt.Errorf("%s is not an integer", calc.Format(x))
	}
	return int(x), nil
}

// Validate reports whether the settings are usable.
func (c Config) Validate() error {
	if c.MaxLen < 0 {
		return fmt.Errorf("max_len must not be negative, got %d", c.MaxLen)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, or info if it is invalid.
func (c Config) Level() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// EvalOptions returns the evaluation options for the settings.
func (c Config) EvalOptions() []calc.EvalOption {
	return []calc.EvalOption{calc.MaxLen(c.MaxLen)}
}
