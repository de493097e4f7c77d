package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/landscape/engine/core"
	"github.com/spaghettifunk/landscape/engine/landscape"
)

// MaxFrameRate bounds frame_rate so the frame period stays a positive duration.
const MaxFrameRate = 1000

type ApplicationSettings struct {
	// The application name used in logs and by the renderer backend.
	Name string `toml:"name"`
	// Target frames per second.
	FrameRate int `toml:"frame_rate"`
	// Stop after this many seconds. 0 runs until interrupted.
	Duration float64 `toml:"duration"`
	// Stop after this many frames. 0 means no limit.
	MaxFrames uint64 `toml:"max_frames"`
	LogLevel  string `toml:"log_level"`
}

type ControlSettings struct {
	// Control file holding the tweakable scalars.
	Path string `toml:"path"`
	// Reload the file whenever it changes.
	Watch bool `toml:"watch"`
}

type ApplicationConfig struct {
	Application ApplicationSettings `toml:"application"`
	Landscape   landscape.Config    `toml:"landscape"`
	Controls    ControlSettings     `toml:"controls"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Application: ApplicationSettings{
			Name:      "Landscape Construction",
			FrameRate: 60,
			LogLevel:  "info",
		},
		Landscape: landscape.Config{
			Width:     8,
			Depth:     8,
			CellSize:  1,
			MaxHeight: 4,
			Seed:      1,
		},
	}
}

// LoadApplicationConfig reads a TOML file over the defaults, so a file only
// needs the keys it changes.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.Application.Name == "" {
		return fmt.Errorf("%w: empty application name", core.ErrInvalidConfig)
	}
	if c.Application.FrameRate <= 0 || c.Application.FrameRate > MaxFrameRate {
		return fmt.Errorf("%w: frame rate %d outside [1, %d]", core.ErrInvalidConfig, c.Application.FrameRate, MaxFrameRate)
	}
	if c.Application.Duration < 0 {
		return fmt.Errorf("%w: negative duration", core.ErrInvalidConfig)
	}
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	return c.Landscape.Validate()
}
