package world

import (
	"github.com/l1jgo/invaders/internal/core/ecs"
	"github.com/l1jgo/invaders/internal/geom"
)

// Mode is an invader's motion mode.
type Mode int

const (
	ModeFormation Mode = iota // moves with the shared sweep
	ModeFlyer                 // bounces freely, never returns to formation
)

const (
	InvaderW = 36
	InvaderH = 22

	// StunDuration is how long a shock round freezes an invader.
	StunDuration = 1.2
)

// Invader is one enemy. Health never exceeds MaxHealth; MaxHealth differs
// from BaseMaxHealth only while a shield-buffer covers the invader.
type Invader struct {
	ID         ecs.EntityID
	X, Y, W, H float64
	Row, Col   int

	Health        float64
	BaseMaxHealth float64
	MaxHealth     float64

	Role Role // nil for plain invaders
	Mode Mode

	VX, VY float64 // flyer velocity

	FireCooldown float64 // lockout after starting a burst
	BurstShots   int
	BurstDelay   float64
	Stun         float64

	Tuning     LevelTuning
	ScoreValue int

	retired bool
}

func (iv *Invader) Rect() geom.Rect { return geom.Rect{X: iv.X, Y: iv.Y, W: iv.W, H: iv.H} }

func (iv *Invader) Center() (float64, float64) { return iv.Rect().Center() }

// Alive is false once health is non-positive or no longer a finite number.
func (iv *Invader) Alive() bool {
	return !iv.retired && iv.Health > 0 && geom.Finite(iv.Health)
}

// Retired reports whether the death hook already ran.
func (iv *Invader) Retired() bool { return iv.retired }

func (iv *Invader) Is(kind RoleKind) bool {
	if iv.Role == nil {
		return kind == RoleNone
	}
	return iv.Role.Kind() == kind
}

func (iv *Invader) Elite() bool   { return iv.Is(RoleElite) }
func (iv *Invader) Stunned() bool { return iv.Stun > 0 }

// Damage subtracts amount and reports whether this hit killed the invader.
func (iv *Invader) Damage(amount float64) bool {
	if !iv.Alive() {
		return false
	}
	iv.Health -= amount
	return iv.Health <= 0
}

// Heal adds amount up to MaxHealth.
func (iv *Invader) Heal(amount float64) {
	iv.Health = geom.Clamp(iv.Health+amount, 0, iv.MaxHealth)
}

// SetMaxHealth changes the cap and re-clamps health under it.
func (iv *Invader) SetMaxHealth(m float64) {
	iv.MaxHealth = m
	if iv.Health > m {
		iv.Health = m
	}
}

// Resize keeps the invader centred on its slot while changing its size.
func (iv *Invader) Resize(w, h float64) {
	cx, cy := iv.Center()
	iv.W, iv.H = w, h
	iv.X, iv.Y = cx-w/2, cy-h/2
}
