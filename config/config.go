// Package config loads session settings from an optional TOML file,
// environment overrides, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/space-invaders/constants"
)

// DefaultPath is read when no -config flag is given and the file exists
const DefaultPath = "space-invaders.toml"

// Config is the full session configuration
type Config struct {
	Game       GameConfig       `toml:"game"`
	Agent      AgentConfig      `toml:"agent"`
	Audio      AudioConfig      `toml:"audio"`
	Screenshot ScreenshotConfig `toml:"screenshot"`

	// Resolved values, filled by Resolve
	Speed Speed `toml:"-"`
	Mode  Mode  `toml:"-"`
}

type GameConfig struct {
	Speed      int    `toml:"speed"`
	Mode       string `toml:"mode"`
	MaxBullets int    `toml:"max_bullets"`
}

type AgentConfig struct {
	Endpoint       string `toml:"endpoint"`
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	Azure          bool   `toml:"azure"`
	PollIntervalMs int    `toml:"poll_interval_ms"`
	TimeoutMs      int    `toml:"timeout_ms"`
}

// PollInterval returns the configured request cadence
func (a AgentConfig) PollInterval() time.Duration {
	return time.Duration(a.PollIntervalMs) * time.Millisecond
}

// Timeout returns the per-request bound
func (a AgentConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutMs) * time.Millisecond
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type ScreenshotConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxBullets: constants.DefaultMaxBullets,
		},
		Agent: AgentConfig{
			Model:          "gpt-4o-mini",
			PollIntervalMs: int(constants.AgentPollInterval / time.Millisecond),
			TimeoutMs:      int(constants.AgentRequestTimeout / time.Millisecond),
		},
		Audio:      AudioConfig{Enabled: true},
		Screenshot: ScreenshotConfig{Dir: "screenshots"},
	}
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// silently falls back to defaults when it does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays credentials from the environment. Azure variables win
// over plain OpenAI ones.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv("AZURE_OPENAI_ENDPOINT"); v != "" {
		c.Agent.Endpoint = v
		c.Agent.Azure = true
		if k := getenv("AZURE_OPENAI_APIKEY"); k != "" {
			c.Agent.APIKey = k
		}
		if m := getenv("AZURE_OPENAI_MODEL"); m != "" {
			c.Agent.Model = m
		}
		return
	}

	if k := getenv("OPENAI_API_KEY"); k != "" {
		c.Agent.APIKey = k
	}
	if u := getenv("OPENAI_BASE_URL"); u != "" {
		c.Agent.Endpoint = u
	}
	if m := getenv("OPENAI_MODEL"); m != "" {
		c.Agent.Model = m
	}
}

// Resolve merges flag values over the file and validates the result.
// Unset speed or mode stays unset and is asked for on the start screen.
func (c *Config) Resolve(speedFlag, modeFlag string) error {
	speed := Speed(c.Game.Speed)
	if speedFlag != "" {
		s, err := ParseSpeed(speedFlag)
		if err != nil {
			return err
		}
		speed = s
	}
	if speed != SpeedUnset && !speed.Valid() {
		return fmt.Errorf("speed %d out of range 1..3", speed)
	}

	mode, err := ParseMode(c.Game.Mode)
	if err != nil {
		return err
	}
	if modeFlag != "" {
		if mode, err = ParseMode(modeFlag); err != nil {
			return err
		}
	}

	if c.Game.MaxBullets < 1 {
		return fmt.Errorf("max_bullets must be at least 1, got %d", c.Game.MaxBullets)
	}
	if c.Agent.PollIntervalMs <= 0 {
		return fmt.Errorf("agent poll_interval_ms must be positive, got %d", c.Agent.PollIntervalMs)
	}
	if c.Agent.TimeoutMs <= 0 {
		return fmt.Errorf("agent timeout_ms must be positive, got %d", c.Agent.TimeoutMs)
	}

	c.Speed = speed
	c.Mode = mode
	return nil
}

// AgentReady reports whether credentials are present for the decision service
func (c *Config) AgentReady() bool {
	return c.Agent.APIKey != ""
}
