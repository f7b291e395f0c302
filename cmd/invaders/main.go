package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/invaders/internal/audio"
	"github.com/l1jgo/invaders/internal/client"
	"github.com/l1jgo/invaders/internal/config"
	"github.com/l1jgo/invaders/internal/data"
	"github.com/l1jgo/invaders/internal/game"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/scripting"
	"github.com/l1jgo/invaders/internal/upgrade"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              INVADERS  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := max(3, 46-len(title)-1)
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := max(3, 42-len(label)-len(numStr))
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func run() error {
	// 1. Load config
	cfgPath := config.Path("config/invaders.toml")
	cfg, err := config.Load(cfgPath)
	missing := errors.Is(err, fs.ErrNotExist)
	switch {
	case missing:
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	if missing {
		log.Warn("config file not found, using defaults", zap.String("path", cfgPath))
	}

	printBanner()

	// 3. Load data tables and scripts
	printSection("Data")

	catalog := data.DefaultUpgradeCatalog()
	if cfg.Data.Upgrades != "" {
		catalog, err = data.LoadUpgradeCatalog(cfg.Data.Upgrades)
		if err != nil {
			return fmt.Errorf("load upgrade catalog: %w", err)
		}
	}
	printStat("Upgrades", catalog.Len())
	printStat("Binary upgrades", countBinary(catalog))

	engine, err := scripting.NewEngine(cfg.Data.ScriptDir, cfg.Playfield.Height, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()
	printOK("Level script loaded")
	fmt.Println()

	// 4. Audio
	printSection("Audio")
	var cues game.CueSink
	if cfg.Audio.Enabled {
		synth := audio.NewSynth(cfg.Audio.SampleRate, cfg.Audio.Volume, log)
		if err := synth.Start(); err != nil {
			// Sound is optional; play on silently.
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer synth.Close()
			cues = synth
			printOK("Speaker ready")
		}
	}
	fmt.Println()

	// 5. Game
	g, err := game.New(game.Options{
		Params:  cfg.Params(),
		Catalog: catalog,
		Tuning:  engine,
		Rand:    rng.NewSource(cfg.Session.Seed),
		Cheats:  cfg.Session.Cheats,
		Log:     log,
		Cues:    cues,
	})
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	log.Info("game ready",
		zap.Int("credits", cfg.Session.Credits),
		zap.Int("max_level", cfg.Session.MaxLevel),
		zap.Bool("cheats", cfg.Session.Cheats),
	)

	// 6. Window loop (blocks until closed)
	if err := client.New(g, log).Run(cfg.Display.Title, cfg.Display.Scale, cfg.Display.TPS); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	log.Info("shutdown")
	return nil
}

func countBinary(c *upgrade.Catalog) int {
	n := 0
	for _, d := range c.All() {
		if d.Binary() {
			n++
		}
	}
	return n
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
