package world

import "github.com/l1jgo/invaders/internal/core/event"

// Input is one frame's snapshot of the player's controls. The last three
// fields are fire-once triggers: the source sets them for a single frame.
type Input struct {
	Left, Right, Up, Down bool
	Fire                  bool

	CloseShop bool
	SkipLevel bool
	AddCredit bool
}

// State is the top-level session state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateIntermission // wave cleared, shop opens after a short delay
	StateShop
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateIntermission:
		return "intermission"
	case StateShop:
		return "shop"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// HUD is the read-only summary published to the HUD sink every frame.
type HUD struct {
	Health    float64
	MaxHealth float64
	Score     int
	Level     int
	Credits   int
	State     State
	Won       bool

	// CanRespawn is true once the game-over countdown has finished and a
	// respawn would be accepted.
	CanRespawn bool
}

// LevelTuning is the difficulty of one wave.
type LevelTuning struct {
	Level            int
	Columns          int
	Rows             int
	EnemySpeed       float64
	BulletSpeed      float64
	FireChance       float64 // expected bursts per second per invader
	HealthMultiplier float64
	DamageMultiplier float64
	Elite            bool
}

// Cue is re-exported so renderers and sinks need only this package.
type Cue = event.Cue

// Playfield is the simulation area in pixels.
type Playfield struct {
	W, H float64
}
