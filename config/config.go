package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/lixenwraith/blocky-snake/core"
	"github.com/lixenwraith/blocky-snake/engine"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names
const (
	EnvWidth     = "BLOCKY_SNAKE_WIDTH"
	EnvHeight    = "BLOCKY_SNAKE_HEIGHT"
	EnvUpdateMs  = "BLOCKY_SNAKE_UPDATE_MS"
	EnvRenderMs  = "BLOCKY_SNAKE_RENDER_MS"
	EnvCollision = "BLOCKY_SNAKE_COLLISION"
	EnvSeed      = "BLOCKY_SNAKE_SEED"
)

// Config holds runtime settings for one run of the game
type Config struct {
	// Interior size of the playfield and the window origin on screen
	Height, Width    int
	OriginX, OriginY int

	RenderInterval time.Duration
	UpdateInterval time.Duration
	ExitPause      time.Duration

	Collision engine.CollisionPolicy

	// Seed for cherry placement, 0 picks a time-based seed
	Seed uint64

	Debug bool
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Height:         10,
		Width:          20,
		RenderInterval: 16 * time.Millisecond,
		UpdateInterval: 100 * time.Millisecond,
		ExitPause:      2 * time.Second,
		Collision:      engine.PolicyHalt,
	}
}

// Bounds returns the playfield window
func (c *Config) Bounds() core.Bounds {
	return core.Bounds{
		Height:  c.Height,
		Width:   c.Width,
		OriginX: c.OriginX,
		OriginY: c.OriginY,
	}
}

// Timing returns the loop cadence
func (c *Config) Timing() engine.Timing {
	return engine.Timing{
		RenderInterval: c.RenderInterval,
		UpdateInterval: c.UpdateInterval,
		ExitPause:      c.ExitPause,
	}
}

// Validate checks ranges and returns an error wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	switch {
	case c.Height < 1 || c.Width < 1:
		return fmt.Errorf("%w: playfield %dx%d must be at least 1x1", ErrInvalidConfig, c.Height, c.Width)
	case c.OriginX < 0 || c.OriginY < 0:
		return fmt.Errorf("%w: origin (%d,%d) must not be negative", ErrInvalidConfig, c.OriginX, c.OriginY)
	case c.RenderInterval <= 0:
		return fmt.Errorf("%w: render interval %v must be positive", ErrInvalidConfig, c.RenderInterval)
	case c.UpdateInterval <= 0:
		return fmt.Errorf("%w: update interval %v must be positive", ErrInvalidConfig, c.UpdateInterval)
	case c.ExitPause < 0:
		return fmt.Errorf("%w: exit pause %v must not be negative", ErrInvalidConfig, c.ExitPause)
	}
	return nil
}

// FitsScreen checks the window including its frame against the terminal size
func (c *Config) FitsScreen(screenWidth, screenHeight int) error {
	b := c.Bounds()
	if b.OriginX+b.OuterWidth() > screenWidth || b.OriginY+b.OuterHeight() > screenHeight {
		return fmt.Errorf("%w: window %dx%d at (%d,%d) does not fit terminal %dx%d",
			ErrInvalidConfig, b.OuterWidth(), b.OuterHeight(), b.OriginX, b.OriginY, screenWidth, screenHeight)
	}
	return nil
}

// Load layers defaults, environment and command-line flags, then validates
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
	}
	for _, e := range ints {
		if v := getenv(e.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.name, v, err)
			}
			*e.dst = n
		}
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{EnvUpdateMs, &c.UpdateInterval},
		{EnvRenderMs, &c.RenderInterval},
	}
	for _, e := range durations {
		if v := getenv(e.name); v != "" {
			ms, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.name, v, err)
			}
			*e.dst = time.Duration(ms) * time.Millisecond
		}
	}

	if v := getenv(EnvCollision); v != "" {
		p, err := engine.ParseCollisionPolicy(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvCollision, err)
		}
		c.Collision = p
	}

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = seed
	}

	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("blocky-snake", flag.ContinueOnError)

	fs.IntVar(&c.Width, "width", c.Width, "Playfield interior width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "Playfield interior height in cells")
	fs.IntVar(&c.OriginX, "x", c.OriginX, "Window column on screen")
	fs.IntVar(&c.OriginY, "y", c.OriginY, "Window row on screen")
	fs.DurationVar(&c.RenderInterval, "render", c.RenderInterval, "Render tick interval")
	fs.DurationVar(&c.UpdateInterval, "update", c.UpdateInterval, "Update tick interval")
	fs.DurationVar(&c.ExitPause, "pause", c.ExitPause, "Pause after game over or quit")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Cherry placement seed, 0 for time-based")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write debug log to logs/")
	collision := fs.String("collision", c.Collision.String(), "Collision policy: halt, reverse")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	p, err := engine.ParseCollisionPolicy(*collision)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Collision = p

	return nil
}
