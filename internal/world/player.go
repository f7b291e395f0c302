package world

import (
	"math"

	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/upgrade"
)

const (
	playerW          = 48
	playerH          = 18
	playerMarginX    = 10
	playerMarginTop  = 40
	playerMarginBot  = 20
	dropInStartY     = -80
	dropInGrace      = 0.2
	burstShotDelay   = 0.12
	playerShotRadius = 4
)

// Player is the ship. Max health is not stored: it comes from upgrade.Stats.
type Player struct {
	X, Y, W, H float64
	Health     float64
	Speed      float64

	FireCooldown float64 // until the next burst may start
	BurstShots   int     // shots left in the current burst
	BurstDelay   float64 // until the next shot of the burst

	Invincible  float64 // seconds of damage immunity left
	DamageBoost float64 // seconds of doubled damage left

	DropIn  bool
	TargetY float64
}

// NewPlayer centres a fresh ship at the bottom of pf. With dropIn it starts
// above the screen and descends into place.
func NewPlayer(p Params, dropIn bool) *Player {
	pl := &Player{
		W:       playerW,
		H:       playerH,
		X:       p.Width/2 - playerW/2,
		TargetY: p.Height - 60,
		Health:  p.PlayerHealth,
		Speed:   p.PlayerSpeed,
		DropIn:  dropIn,
	}
	pl.Y = pl.TargetY
	if dropIn {
		pl.Y = dropInStartY
		pl.Invincible = dropInGrace
	}
	return pl
}

func (p *Player) Rect() geom.Rect { return geom.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H} }

func (p *Player) Center() (float64, float64) { return p.Rect().Center() }

// Update advances the ship one frame and returns the bullets it fired.
func (p *Player) Update(dt float64, in Input, st upgrade.Stats, pf Playfield) []*Bullet {
	p.DamageBoost = math.Max(0, p.DamageBoost-dt)

	if p.DropIn {
		p.Invincible = math.Max(p.Invincible, dropInGrace)
		p.Y += p.Speed * dt
		if p.Y >= p.TargetY {
			p.Y = p.TargetY
			p.DropIn = false
		}
		return nil
	}

	if in.Left {
		p.X -= p.Speed * dt
	}
	if in.Right {
		p.X += p.Speed * dt
	}
	if in.Up {
		p.Y -= p.Speed * dt
	}
	if in.Down {
		p.Y += p.Speed * dt
	}
	p.X = geom.Clamp(p.X, playerMarginX, pf.W-p.W-playerMarginX)
	p.Y = geom.Clamp(p.Y, playerMarginTop, pf.H-p.H-playerMarginBot)

	p.FireCooldown = math.Max(0, p.FireCooldown-dt)
	if in.Fire && p.FireCooldown <= 0 && p.BurstShots == 0 {
		p.BurstShots = st.BurstCount()
		p.BurstDelay = 0
		p.FireCooldown = st.FireCooldown()
	}

	var shots []*Bullet
	if p.BurstShots > 0 {
		p.BurstDelay -= dt
		if p.BurstDelay <= 0 {
			shots = p.volley(st)
			p.BurstShots--
			p.BurstDelay = burstShotDelay
		}
	}

	p.Invincible = math.Max(0, p.Invincible-dt)
	return shots
}

// volley builds one shot: a single bullet, or a fan of three with spread.
func (p *Player) volley(st upgrade.Stats) []*Bullet {
	angles := []float64{0}
	if theta := st.Spread(); theta > 0 {
		angles = []float64{0, -theta, theta}
	}
	speed := st.ShotSpeed()
	pierce := st.Pierce()
	x := p.X + p.W/2
	y := p.Y - 10

	out := make([]*Bullet, 0, len(angles))
	for _, a := range angles {
		out = append(out, &Bullet{
			X:           x,
			Y:           y,
			VX:          math.Sin(a) * speed,
			VY:          -math.Cos(a) * speed,
			Radius:      playerShotRadius,
			Owner:       OwnerPlayer,
			Pierce:      pierce,
			DamageScale: 1,
			Active:      true,
		})
	}
	return out
}

// ApplyDamage subtracts amount and clamps to [0, maxHealth].
func (p *Player) ApplyDamage(amount, maxHealth float64) {
	p.Health = geom.Clamp(p.Health-amount, 0, maxHealth)
}

// Heal adds amount without exceeding maxHealth.
func (p *Player) Heal(amount, maxHealth float64) {
	p.Health = geom.Clamp(p.Health+amount, 0, maxHealth)
}
