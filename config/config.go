// Package config loads runtime settings from a TOML file overridden by CONSTELLATION_* environment variables
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
)

// ErrInvalidConfig is returned for settings rejected after loading
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime settings
type Config struct {
	Seed   uint64 `toml:"seed" env:"CONSTELLATION_SEED"`
	Debug  bool   `toml:"debug" env:"CONSTELLATION_DEBUG"`
	Keymap string `toml:"keymap" env:"CONSTELLATION_KEYMAP"` // Optional keymap TOML path

	Tree     TreeConfig     `toml:"tree"`
	Frontier FrontierConfig `toml:"frontier"`
	Economy  EconomyConfig  `toml:"economy"`
	Audio    AudioConfig    `toml:"audio"`
	Display  DisplayConfig  `toml:"display"`
}

// TreeConfig shapes the generated tree
type TreeConfig struct {
	Tiers       int `toml:"tiers" env:"CONSTELLATION_TIERS"`
	BaseWidth   int `toml:"base_width" env:"CONSTELLATION_BASE_WIDTH"`
	WidthGrowth int `toml:"width_growth" env:"CONSTELLATION_WIDTH_GROWTH"`
	MaxWidth    int `toml:"max_width" env:"CONSTELLATION_MAX_WIDTH"`
}

// FrontierConfig controls on-demand expansion
type FrontierConfig struct {
	Buffer int `toml:"buffer" env:"CONSTELLATION_FRONTIER_BUFFER"`
	Tiers  int `toml:"tiers" env:"CONSTELLATION_FRONTIER_TIERS"` // 0 disables expansion
}

// EconomyConfig seeds the demo ledger
type EconomyConfig struct {
	StartCoin   float64 `toml:"start_coin" env:"CONSTELLATION_START_COIN"`
	StartMana   float64 `toml:"start_mana" env:"CONSTELLATION_START_MANA"`
	StartFavor  float64 `toml:"start_favor" env:"CONSTELLATION_START_FAVOR"`
	IncomeCoin  float64 `toml:"income_coin" env:"CONSTELLATION_INCOME_COIN"`
	IncomeMana  float64 `toml:"income_mana" env:"CONSTELLATION_INCOME_MANA"`
	IncomeFavor float64 `toml:"income_favor" env:"CONSTELLATION_INCOME_FAVOR"`
}

// AudioConfig controls feedback sounds
type AudioConfig struct {
	Enabled bool `toml:"enabled" env:"CONSTELLATION_AUDIO"`
	Muted   bool `toml:"muted" env:"CONSTELLATION_MUTED"`
}

// DisplayConfig controls the frame loop and decoration
type DisplayConfig struct {
	FPS     int `toml:"fps" env:"CONSTELLATION_FPS"`
	Ambient int `toml:"ambient_particles" env:"CONSTELLATION_AMBIENT"`
}

// Default returns the default configuration
func Default() *Config {
	p := skill.DefaultParams()
	return &Config{
		Seed: parameter.DefaultSeed,
		Tree: TreeConfig{
			Tiers:       p.Tiers,
			BaseWidth:   p.BaseWidth,
			WidthGrowth: p.WidthGrowth,
			MaxWidth:    p.MaxWidth,
		},
		Frontier: FrontierConfig{Buffer: parameter.FrontierBuffer, Tiers: parameter.FrontierTiers},
		Economy: EconomyConfig{
			StartCoin:   parameter.StartCoin,
			StartMana:   parameter.StartMana,
			StartFavor:  parameter.StartFavor,
			IncomeCoin:  parameter.IncomeCoin,
			IncomeMana:  parameter.IncomeMana,
			IncomeFavor: parameter.IncomeFavor,
		},
		Audio:   AudioConfig{Enabled: true},
		Display: DisplayConfig{FPS: int(time.Second / parameter.FrameUpdateInterval), Ambient: parameter.AmbientTarget},
	}
}

// Load reads path over defaults, applies environment overrides, then validates
// An empty path skips the file, a missing file is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		log.Printf("config loaded from %s", path)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return nil
}

// Validate rejects out-of-range settings without clamping
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	e := c.Economy
	switch {
	case c.Frontier.Buffer < 0:
		return fmt.Errorf("%w: frontier buffer must be >= 0, got %d", ErrInvalidConfig, c.Frontier.Buffer)
	case c.Frontier.Tiers < 0:
		return fmt.Errorf("%w: frontier tiers must be >= 0, got %d", ErrInvalidConfig, c.Frontier.Tiers)
	case e.StartCoin < 0 || e.StartMana < 0 || e.StartFavor < 0:
		return fmt.Errorf("%w: starting balance must be >= 0", ErrInvalidConfig)
	case e.IncomeCoin < 0 || e.IncomeMana < 0 || e.IncomeFavor < 0:
		return fmt.Errorf("%w: income must be >= 0", ErrInvalidConfig)
	case c.Display.FPS < 1 || c.Display.FPS > parameter.MaxFPS:
		return fmt.Errorf("%w: fps must be in [1,%d], got %d", ErrInvalidConfig, parameter.MaxFPS, c.Display.FPS)
	case c.Display.Ambient < 0 || c.Display.Ambient > parameter.ParticleCapacity:
		return fmt.Errorf("%w: ambient particles must be in [0,%d], got %d", ErrInvalidConfig, parameter.ParticleCapacity, c.Display.Ambient)
	}
	return nil
}

// Params returns the tree generation shape
func (c *Config) Params() skill.Params {
	return skill.Params{
		Tiers:       c.Tree.Tiers,
		BaseWidth:   c.Tree.BaseWidth,
		WidthGrowth: c.Tree.WidthGrowth,
		MaxWidth:    c.Tree.MaxWidth,
	}
}

// FrontierPolicy returns a fresh expansion policy
func (c *Config) FrontierPolicy() skill.FrontierPolicy {
	return skill.FrontierPolicy{Buffer: c.Frontier.Buffer, Tiers: c.Frontier.Tiers}
}

// StartBalance returns the ledger starting resources
func (c *Config) StartBalance() skill.Resources {
	return skill.Resources{Coin: c.Economy.StartCoin, Mana: c.Economy.StartMana, Favor: c.Economy.StartFavor}
}

// Income returns the ledger base income per second
func (c *Config) Income() skill.Resources {
	return skill.Resources{Coin: c.Economy.IncomeCoin, Mana: c.Economy.IncomeMana, Favor: c.Economy.IncomeFavor}
}

// FrameInterval converts FPS to the frame ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Display.FPS, 1))
}
