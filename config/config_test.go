package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constellation.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if cfg.Params() != skill.DefaultParams() {
		t.Errorf("Expected default params %+v, got %+v", skill.DefaultParams(), cfg.Params())
	}
	if cfg.StartBalance().Coin != parameter.StartCoin {
		t.Errorf("Expected start coin %v, got %v", parameter.StartCoin, cfg.StartBalance().Coin)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != parameter.DefaultSeed {
		t.Errorf("Expected default seed, got %d", cfg.Seed)
	}
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 99

[tree]
tiers = 6
max_width = 20

[display]
fps = 30

[audio]
enabled = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 99 || cfg.Tree.Tiers != 6 || cfg.Tree.MaxWidth != 20 {
		t.Errorf("Expected file values applied, got seed=%d tree=%+v", cfg.Seed, cfg.Tree)
	}
	if cfg.Tree.BaseWidth != skill.DefaultParams().BaseWidth {
		t.Errorf("Expected unset keys to keep defaults, got base width %d", cfg.Tree.BaseWidth)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("Expected frame interval %v, got %v", time.Second/30, got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "seed = 99\n[tree]\ntiers = 6\n[economy]\nstart_coin = 10.0\n")
	t.Setenv("CONSTELLATION_SEED", "7")
	t.Setenv("CONSTELLATION_TIERS", "9")
	t.Setenv("CONSTELLATION_START_COIN", "250.5")
	t.Setenv("CONSTELLATION_MUTED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected env seed 7, got %d", cfg.Seed)
	}
	if cfg.Tree.Tiers != 9 {
		t.Errorf("Expected env tiers 9, got %d", cfg.Tree.Tiers)
	}
	if cfg.Economy.StartCoin != 250.5 {
		t.Errorf("Expected env start coin 250.5, got %v", cfg.Economy.StartCoin)
	}
	if !cfg.Audio.Muted {
		t.Error("Expected env mute applied")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		env     map[string]string
		invalid bool
		want    string
	}{
		{name: "syntax", body: "seed = = 1", want: "config "},
		{name: "unknown key", body: "[tree]\ndepth = 3", invalid: true, want: "tree.depth"},
		{name: "bad tiers", body: "[tree]\ntiers = 0", invalid: true, want: "tiers must be >= 1"},
		{name: "bad fps", body: "[display]\nfps = 1000", invalid: true, want: "fps"},
		{name: "negative income", body: "[economy]\nincome_mana = -1.0", invalid: true, want: "income"},
		{name: "bad ambient", body: "[display]\nambient_particles = 500", invalid: true, want: "ambient"},
		{name: "bad env", body: "", env: map[string]string{"CONSTELLATION_FPS": "fast"}, want: "parse env:"},
		{name: "env invalid", body: "", env: map[string]string{"CONSTELLATION_FRONTIER_BUFFER": "-2"}, invalid: true, want: "frontier buffer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("Expected ErrInvalidConfig=%v, got %v", tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("Expected read error, got %v", err)
	}
}

func TestFrontierPolicyFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Frontier.Tiers = 0
	policy := cfg.FrontierPolicy()
	if policy.ShouldExpand(100, 0) {
		t.Error("Expected zero tiers to disable expansion")
	}
}
