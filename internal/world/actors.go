package world

import (
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/rng"
)

// PickupKind identifies a collectible.
type PickupKind int

const (
	PickupShield PickupKind = iota
	PickupMedkit
	PickupPower
	pickupKinds
)

func (k PickupKind) String() string {
	switch k {
	case PickupShield:
		return "shield"
	case PickupMedkit:
		return "medkit"
	case PickupPower:
		return "power"
	}
	return "unknown"
}

// Pickup is a floating collectible. Pulse only drives the renderer's glow.
type Pickup struct {
	Kind   PickupKind
	X, Y   float64
	Radius float64
	Pulse  float64
}

// pickupSpawn describes where each kind appears relative to the ship.
var pickupSpawn = [pickupKinds]struct {
	radius           float64
	offX             float64
	offYMin, offYMax float64
	minY, bottom     float64
}{
	PickupShield: {radius: 14, offX: 120, offYMin: -120, offYMax: -40, minY: 40, bottom: 120},
	PickupMedkit: {radius: 9, offX: 140, offYMin: -140, offYMax: -60, minY: 60, bottom: 140},
	PickupPower:  {radius: 9, offX: 160, offYMin: -160, offYMax: -70, minY: 60, bottom: 160},
}

// NewPickup places a pickup of kind somewhere above and around the ship.
func NewPickup(kind PickupKind, pl *Player, pf Playfield, src rng.Source) *Pickup {
	sp := pickupSpawn[kind]
	offX := rng.Range(src, -sp.offX, sp.offX)
	offY := rng.Range(src, sp.offYMin, sp.offYMax)
	return &Pickup{
		Kind:   kind,
		X:      geom.Clamp(pl.X+pl.W/2+offX, 20, pf.W-20),
		Y:      geom.Clamp(pl.Y+offY, sp.minY, pf.H-sp.bottom),
		Radius: sp.radius,
		Pulse:  rng.Range(src, 0, 6.283185307179586),
	}
}

// Touches reports whether the pickup reaches the ship's rectangle.
func (p *Pickup) Touches(pl *Player) bool {
	return geom.CircleTouchesRect(p.X, p.Y, p.Radius, pl.Rect())
}

const (
	BomberW = 40
	BomberH = 26
)

// Bomber dives at the ship and explodes on contact.
type Bomber struct {
	X, Y, W, H float64
	Speed      float64
	Active     bool
}

func NewBomber(speed float64, pf Playfield, src rng.Source) *Bomber {
	return &Bomber{
		X:      rng.Range(src, 30, pf.W-70),
		Y:      -40,
		W:      BomberW,
		H:      BomberH,
		Speed:  speed,
		Active: true,
	}
}

func (b *Bomber) Rect() geom.Rect { return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// Update homes on (tx, ty) and retires once well below the playfield.
func (b *Bomber) Update(dt float64, tx, ty float64, pf Playfield) {
	cx, cy := b.Rect().Center()
	vx, vy := geom.Aim(cx, cy, tx, ty, b.Speed)
	b.X += vx * dt
	b.Y += vy * dt
	if b.Y > pf.H+60 {
		b.Active = false
	}
}

const (
	droneFireInterval = 0.9
	droneDamageScale  = 0.5
	droneOffsetX      = -26
)

// Drone trails the ship and fires weak straight shots.
type Drone struct {
	X, Y      float64
	FireTimer float64
}

func NewDrone(pl *Player) *Drone {
	d := &Drone{FireTimer: droneFireInterval}
	d.follow(pl)
	return d
}

func (d *Drone) follow(pl *Player) {
	d.X = pl.X + droneOffsetX
	d.Y = pl.Y + pl.H/2
}

// Update follows the ship and returns a bullet when the timer fires.
func (d *Drone) Update(dt float64, pl *Player, speed float64) *Bullet {
	d.follow(pl)
	if pl.DropIn {
		return nil
	}
	d.FireTimer -= dt
	if d.FireTimer > 0 {
		return nil
	}
	d.FireTimer = droneFireInterval
	return &Bullet{
		X:           d.X,
		Y:           d.Y - 8,
		VY:          -speed,
		Radius:      3,
		Owner:       OwnerPlayer,
		DamageScale: droneDamageScale,
		Active:      true,
	}
}

// DropShip carries the ship in at the start of a session.
type DropShip struct {
	X, Y, W, H float64
	Speed      float64
}

func NewDropShip(pf Playfield) *DropShip {
	return &DropShip{X: pf.W/2 - 90, Y: -120, W: 180, H: 60, Speed: 260}
}

// Update descends towards targetY and stops there.
func (d *DropShip) Update(dt, targetY float64) {
	d.Y += d.Speed * dt
	if d.Y >= targetY {
		d.Y = targetY
	}
}
