// Package game is the facade over one play session: it owns the session
// state machine, runs the frame systems in phase order and exposes the
// shop and session operations a front-end calls.
package game

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/core/event"
	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/system"
	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/wave"
	"github.com/l1jgo/invaders/internal/world"
)

// MaxStep bounds a single Advance so a stalled frame cannot tunnel bullets.
const MaxStep = 33 * time.Millisecond

// CueSink receives audio cues. It must not block.
type CueSink interface {
	PlayCue(c world.Cue)
}

// HUDSink receives the HUD summary once per Advance.
type HUDSink interface {
	UpdateHUD(h world.HUD)
}

// Options configures New. Catalog is required; everything else has a default.
type Options struct {
	Params  world.Params
	Catalog *upgrade.Catalog
	Tuning  wave.TuningSource
	Rand    rng.Source
	Cheats  bool
	Log     *zap.Logger
	Cues    CueSink
	HUD     HUDSink
}

var ErrNoCatalog = errors.New("game: upgrade catalog is required")

// Game owns one session. All methods must be called from one goroutine.
type Game struct {
	sess    *world.Session
	bus     *event.Bus
	runner  *coresys.Runner
	waves   *wave.Manager
	log     *zap.Logger
	hudSink HUDSink
	hud     world.HUD
}

// New builds a game sitting on the start screen with wave 1 behind it.
func New(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if opts.Params.Width <= 0 || opts.Params.Height <= 0 {
		opts.Params = world.DefaultParams()
	}
	if opts.Rand == nil {
		opts.Rand = rng.NewSource(0)
	}
	if opts.Tuning == nil {
		opts.Tuning = wave.FormulaSource{Height: opts.Params.Height}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	bus := event.NewBus()
	g := &Game{
		sess:    world.NewSession(opts.Params, opts.Catalog, opts.Rand, bus),
		bus:     bus,
		runner:  coresys.NewRunner(),
		waves:   wave.NewManager(opts.Tuning),
		log:     opts.Log,
		hudSink: opts.HUD,
	}
	if opts.Cues != nil {
		sink := opts.Cues
		event.Subscribe(bus, func(c event.Cue) { sink.PlayCue(c) })
	}
	g.registerSystems(opts.Cheats)
	g.reset(false)
	g.hud = g.sess.HUD()
	return g, nil
}

func (g *Game) registerSystems(cheats bool) {
	s := g.sess
	g.runner.Register(system.NewTriggerSystem(s, g, cheats))
	g.runner.Register(system.NewDecorSystem(s))
	g.runner.Register(system.NewFormationSystem(s))
	g.runner.Register(system.NewRoleSystem(s))
	g.runner.Register(system.NewPlayerSystem(s))
	g.runner.Register(system.NewDroneSystem(s))
	g.runner.Register(system.NewDropShipSystem(s))
	g.runner.Register(system.NewSpawnerSystem(s))
	g.runner.Register(system.NewPickupSystem(s))
	g.runner.Register(system.NewEnemySystem(s))
	g.runner.Register(system.NewBomberSystem(s))
	g.runner.Register(system.NewProjectileSystem(s))
	g.runner.Register(system.NewCollisionSystem(s))
	g.runner.Register(system.NewCleanupSystem(s))
	g.runner.Register(system.NewOutcomeSystem(s, g))
	g.runner.Register(system.NewOutputSystem(s, g.publish))
}

// World is the read-only view for renderers. Callers must not mutate it.
func (g *Game) World() *world.Session { return g.sess }

// Bus exposes the event bus for subscribing to game events.
func (g *Game) Bus() *event.Bus { return g.bus }

// HUD returns the summary published by the last Advance.
func (g *Game) HUD() world.HUD { return g.hud }

// Advance runs one frame. dt is clamped to [0, MaxStep].
func (g *Game) Advance(dt time.Duration, in world.Input) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	g.sess.Input = in

	g.runner.TickPhase(coresys.PhaseInput, dt)
	g.runner.TickPhase(coresys.PhaseDecor, dt)
	if !g.gated(dt) {
		g.runner.TickPhase(coresys.PhaseUpdate, dt)
		g.runner.TickPhase(coresys.PhaseCollide, dt)
		g.runner.TickPhase(coresys.PhaseCleanup, dt)
		g.runner.TickPhase(coresys.PhaseOutcome, dt)
	}
	g.runner.TickPhase(coresys.PhaseOutput, dt)
}

// gated runs the pending transition timers of non-playing states and
// reports whether gameplay must be skipped this frame.
func (g *Game) gated(dt time.Duration) bool {
	s := g.sess
	sec := dt.Seconds()
	switch s.State {
	case world.StateStart, world.StateShop:
		return true
	case world.StateGameOver:
		if s.GameOverTimer > 0 {
			s.GameOverTimer -= sec
			if s.GameOverTimer <= 0 {
				s.GameOverTimer = 0
			}
		}
		return true
	case world.StateIntermission:
		s.TransitionTimer -= sec
		if s.TransitionTimer <= 0 {
			s.TransitionTimer = 0
			g.OpenShop()
		}
		return true
	}
	return false
}

func (g *Game) publish(h world.HUD) {
	g.hud = h
	if g.hudSink != nil {
		g.hudSink.UpdateHUD(h)
	}
}

// reset reinitialises the session and spawns wave 1.
func (g *Game) reset(dropIn bool) {
	g.sess.Reset(dropIn)
	g.waves.Spawn(g.sess, 1)
}
