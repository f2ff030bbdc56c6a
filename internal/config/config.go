package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/showcase/internal/carousel"
)

type Config struct {
	// Where the featured products come from. A database wins over a file
	// when both are set.
	Catalog CatalogConfig `koanf:"catalog"`

	// Carousel timings and layout
	Carousel CarouselConfig `koanf:"carousel"`
}

// CatalogConfig locates the featured products.
type CatalogConfig struct {
	File     string `koanf:"file"`     // TOML catalog with [[products]] tables
	Database string `koanf:"database"` // sqlite database written by "showcase seed"
}

// CarouselConfig holds carousel settings. Durations are Go duration strings
// such as "4s" or "150ms".
type CarouselConfig struct {
	AutoAdvance       time.Duration `koanf:"auto_advance"`        // default: 4s
	AutoAdvanceNarrow time.Duration `koanf:"auto_advance_narrow"` // default: 2s
	Cooldown          time.Duration `koanf:"cooldown"`            // default: 5s
	SettleDelay       time.Duration `koanf:"settle_delay"`        // default: 150ms
	SnapDuration      time.Duration `koanf:"snap_duration"`       // default: 300ms
	WheelStep         int           `koanf:"wheel_step"`          // columns per wheel notch (default: 4)
	NarrowWidth       int           `koanf:"narrow_width"`        // terminals narrower than this are narrow (default: 100)
	CardWidth         int           `koanf:"card_width"`          // card width in columns (12-80, default: 28)
}

const (
	DefaultNarrowWidth = 100
	DefaultCardWidth   = 28

	minCardWidth = 12
	maxCardWidth = 80
)

// Load reads the config files in priority order. extra, when not empty, is
// loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if extra != "" {
		path := expandPath(extra)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog.File = expandPath(cfg.Catalog.File)
	cfg.Catalog.Database = expandPath(cfg.Catalog.Database)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/showcase/config.toml
		filepath.Join(xdg.ConfigHome, "showcase", "config.toml"),

		// 2. ./showcase.toml (pwd, highest priority)
		"showcase.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasCatalog returns true if a catalog source is configured.
func (c *Config) HasCatalog() bool {
	return c.Catalog.File != "" || c.Catalog.Database != ""
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel
	d := carousel.DefaultConfig()

	if cfg.AutoAdvance <= 0 {
		cfg.AutoAdvance = d.AutoAdvance
	}
	if cfg.AutoAdvanceNarrow <= 0 {
		cfg.AutoAdvanceNarrow = d.AutoAdvanceNarrow
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = d.Cooldown
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = d.SettleDelay
	}
	if cfg.SnapDuration <= 0 {
		cfg.SnapDuration = d.SnapDuration
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = d.WheelStep
	}
	if cfg.NarrowWidth <= 0 {
		cfg.NarrowWidth = DefaultNarrowWidth
	}
	if cfg.CardWidth < minCardWidth || cfg.CardWidth > maxCardWidth {
		cfg.CardWidth = DefaultCardWidth
	}

	return cfg
}

// Engine converts the settings to the carousel's own config.
func (c CarouselConfig) Engine() carousel.Config {
	return carousel.Config{
		AutoAdvance:       c.AutoAdvance,
		AutoAdvanceNarrow: c.AutoAdvanceNarrow,
		Cooldown:          c.Cooldown,
		SettleDelay:       c.SettleDelay,
		SnapDuration:      c.SnapDuration,
		WheelStep:         c.WheelStep,
	}
}
