package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/l1jgo/invaders/internal/world"
)

// EnvPath overrides the config path given on the command line.
const EnvPath = "INVADERS_CONFIG"

type Config struct {
	Playfield PlayfieldConfig `toml:"playfield"`
	Player    PlayerConfig    `toml:"player"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Pickups   PickupsConfig   `toml:"pickups"`
	Bomber    BomberConfig    `toml:"bomber"`
	Session   SessionConfig   `toml:"session"`
	Data      DataConfig      `toml:"data"`
	Audio     AudioConfig     `toml:"audio"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
}

type PlayfieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	Health float64 `toml:"health"`
	Damage float64 `toml:"damage"` // per bullet, before upgrades
	Speed  float64 `toml:"speed"`  // px/s
}

type EnemyConfig struct {
	Health        float64 `toml:"health"`
	Damage        float64 `toml:"damage"`
	BurstCount    int     `toml:"burst_count"`
	ContactDPS    float64 `toml:"contact_dps"`
	BombDamage    float64 `toml:"bomb_damage"`
	LaserDamage   float64 `toml:"laser_damage"`
	LandingDamage float64 `toml:"landing_damage"`
	Score         int     `toml:"score"`
}

// PickupsConfig intervals and durations are in seconds.
type PickupsConfig struct {
	ShieldInterval float64 `toml:"shield_interval"`
	ShieldDuration float64 `toml:"shield_duration"`
	MedkitInterval float64 `toml:"medkit_interval"`
	MedkitHeal     float64 `toml:"medkit_heal"`
	PowerInterval  float64 `toml:"power_interval"`
	PowerDuration  float64 `toml:"power_duration"`
}

type BomberConfig struct {
	Interval float64 `toml:"interval"`
	Damage   float64 `toml:"damage"`
	Speed    float64 `toml:"speed"`
	Score    int     `toml:"score"`
}

type SessionConfig struct {
	Credits        int     `toml:"credits"`
	CreditsPerWave int     `toml:"credits_per_wave"`
	MaxLevel       int     `toml:"max_level"`
	ShopDelay      float64 `toml:"shop_delay"`
	GameOverDelay  float64 `toml:"game_over_delay"`
	Cheats         bool    `toml:"cheats"`
	Seed           int64   `toml:"seed"` // 0 = seed from the clock
}

type DataConfig struct {
	Upgrades  string `toml:"upgrades"`   // yaml catalog; empty uses the built-in one
	ScriptDir string `toml:"script_dir"` // *.lua level scripts; empty uses the built-in one
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
}

type DisplayConfig struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
	TPS   int     `toml:"tps"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Path returns the env override if set, else fallback.
func Path(fallback string) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return fallback
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config { return defaults() }

func (c *Config) validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	case c.Session.MaxLevel < 1:
		return fmt.Errorf("session.max_level must be >= 1, got %d", c.Session.MaxLevel)
	case c.Session.Credits < 0 || c.Session.CreditsPerWave < 0:
		return fmt.Errorf("session credits must not be negative")
	case c.Enemy.BurstCount < 1:
		return fmt.Errorf("enemy.burst_count must be >= 1, got %d", c.Enemy.BurstCount)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	return nil
}

// Params converts the gameplay sections into simulation parameters.
func (c *Config) Params() world.Params {
	return world.Params{
		Width:  c.Playfield.Width,
		Height: c.Playfield.Height,

		PlayerHealth: c.Player.Health,
		PlayerDamage: c.Player.Damage,
		PlayerSpeed:  c.Player.Speed,

		EnemyHealth:     c.Enemy.Health,
		EnemyDamage:     c.Enemy.Damage,
		EnemyBurstCount: c.Enemy.BurstCount,
		ContactDPS:      c.Enemy.ContactDPS,
		BombDamage:      c.Enemy.BombDamage,
		LaserDamage:     c.Enemy.LaserDamage,
		LandingDamage:   c.Enemy.LandingDamage,

		ShieldInterval: c.Pickups.ShieldInterval,
		ShieldDuration: c.Pickups.ShieldDuration,
		MedkitInterval: c.Pickups.MedkitInterval,
		MedkitHeal:     c.Pickups.MedkitHeal,
		PowerInterval:  c.Pickups.PowerInterval,
		PowerDuration:  c.Pickups.PowerDuration,

		BomberInterval: c.Bomber.Interval,
		BomberDamage:   c.Bomber.Damage,
		BomberSpeed:    c.Bomber.Speed,
		BomberScore:    c.Bomber.Score,
		InvaderScore:   c.Enemy.Score,

		StartCredits:   c.Session.Credits,
		CreditsPerWave: c.Session.CreditsPerWave,
		MaxLevel:       c.Session.MaxLevel,
		ShopDelay:      c.Session.ShopDelay,
		GameOverDelay:  c.Session.GameOverDelay,
	}
}

func defaults() *Config {
	p := world.DefaultParams()
	return &Config{
		Playfield: PlayfieldConfig{Width: p.Width, Height: p.Height},
		Player: PlayerConfig{
			Health: p.PlayerHealth,
			Damage: p.PlayerDamage,
			Speed:  p.PlayerSpeed,
		},
		Enemy: EnemyConfig{
			Health:        p.EnemyHealth,
			Damage:        p.EnemyDamage,
			BurstCount:    p.EnemyBurstCount,
			ContactDPS:    p.ContactDPS,
			BombDamage:    p.BombDamage,
			LaserDamage:   p.LaserDamage,
			LandingDamage: p.LandingDamage,
			Score:         p.InvaderScore,
		},
		Pickups: PickupsConfig{
			ShieldInterval: p.ShieldInterval,
			ShieldDuration: p.ShieldDuration,
			MedkitInterval: p.MedkitInterval,
			MedkitHeal:     p.MedkitHeal,
			PowerInterval:  p.PowerInterval,
			PowerDuration:  p.PowerDuration,
		},
		Bomber: BomberConfig{
			Interval: p.BomberInterval,
			Damage:   p.BomberDamage,
			Speed:    p.BomberSpeed,
			Score:    p.BomberScore,
		},
		Session: SessionConfig{
			Credits:        p.StartCredits,
			CreditsPerWave: p.CreditsPerWave,
			MaxLevel:       p.MaxLevel,
			ShopDelay:      p.ShopDelay,
			GameOverDelay:  p.GameOverDelay,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.6,
		},
		Display: DisplayConfig{
			Title: "Invaders",
			Scale: 1,
			TPS:   60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
