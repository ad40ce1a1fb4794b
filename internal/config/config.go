// Package config loads zfake's optional defaults file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/zarlcorp/zfake/internal/feed"
	"github.com/zarlcorp/zfake/internal/identity"
	"github.com/zarlcorp/zfake/internal/locale"
)

// DefaultMistakeRate matches the slider's starting position of 0.25.
const DefaultMistakeRate = 25

// File mirrors the on-disk format. Pointer fields distinguish unset keys
// from zero values.
type File struct {
	Region          string   `json:"region" yaml:"region"`
	MistakeRate     *float64 `json:"mistake_rate" yaml:"mistake_rate"`
	Seed            *string  `json:"seed" yaml:"seed"`
	ScrollThreshold *int     `json:"scroll_threshold" yaml:"scroll_threshold"`
	LogLevel        string   `json:"log_level" yaml:"log_level"`
	LogFile         string   `json:"log_file" yaml:"log_file"`
}

// Config holds validated settings.
type Config struct {
	Options         identity.Options
	SeedSet         bool
	ScrollThreshold int
	LogLevel        slog.Level
	LogFile         string
}

// Default returns the built-in settings. The seed is left unset; callers
// draw a random one when SeedSet is false.
func Default() Config {
	return Config{
		Options: identity.Options{
			Region:      locale.US,
			MistakeRate: DefaultMistakeRate,
		},
		ScrollThreshold: feed.DefaultThreshold,
		LogLevel:        slog.LevelInfo,
	}
}

// Dir returns the configuration directory for zfake.
func Dir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d + "/zfake"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zfake"
	}
	return home + "/.config/zfake"
}

// DefaultPath returns the path of the defaults file.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.jsonc")
}

// Load reads path and applies it over Default. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if err := f.Apply(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data as YAML when ext is .yaml or .yml, and as JSON with
// comments otherwise.
func Parse(data []byte, ext string) (File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return f, fmt.Errorf("parse json: %w", err)
		}
	}
	return f, nil
}

// Apply validates f and writes every set field into cfg.
func (f File) Apply(cfg *Config) error {
	if f.Region != "" {
		r, err := locale.Parse(f.Region)
		if err != nil {
			return err
		}
		cfg.Options.Region = r
	}

	if f.MistakeRate != nil {
		rate := *f.MistakeRate
		if rate < 0 || rate > identity.MaxMistakeRate {
			return fmt.Errorf("%w: %v", identity.ErrMistakeRateRange, rate)
		}
		cfg.Options.MistakeRate = rate
	}

	if f.Seed != nil {
		seed, err := identity.ParseSeed(*f.Seed)
		if err != nil {
			return err
		}
		cfg.Options.Seed = seed
		cfg.SeedSet = true
	}

	if f.ScrollThreshold != nil {
		if *f.ScrollThreshold < 0 {
			return fmt.Errorf("scroll_threshold must not be negative: %d", *f.ScrollThreshold)
		}
		cfg.ScrollThreshold = *f.ScrollThreshold
	}

	if f.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(f.LogLevel)); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}

	return nil
}
