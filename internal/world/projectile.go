package world

import (
	"github.com/l1jgo/invaders/internal/core/ecs"
	"github.com/l1jgo/invaders/internal/geom"
)

// Owner says which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet is a player, drone or invader shot.
type Bullet struct {
	X, Y, VX, VY float64
	Radius       float64
	Owner        Owner
	Pierce       int     // further invaders it may pass through
	DamageScale  float64 // 1 for the ship, 0.5 for the drone
	Active       bool

	hits map[ecs.EntityID]struct{}
}

// Update moves the bullet and deactivates it 20 px beyond the playfield.
func (b *Bullet) Update(dt float64, pf Playfield) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
	if b.Y < -20 || b.Y > pf.H+20 || b.X < -20 || b.X > pf.W+20 {
		b.Active = false
	}
	if !geom.Finite(b.X) || !geom.Finite(b.Y) {
		b.Active = false
	}
}

// HasHit reports whether the bullet already damaged id.
func (b *Bullet) HasHit(id ecs.EntityID) bool {
	_, ok := b.hits[id]
	return ok
}

// RecordHit remembers id and spends one pierce, or deactivates the bullet
// when none is left.
func (b *Bullet) RecordHit(id ecs.EntityID) {
	if b.hits == nil {
		b.hits = make(map[ecs.EntityID]struct{}, b.Pierce+1)
	}
	b.hits[id] = struct{}{}
	b.consume()
}

// Spend uses up one hit on a target that has no ID (bombers).
func (b *Bullet) Spend() { b.consume() }

func (b *Bullet) consume() {
	if b.Pierce > 0 {
		b.Pierce--
		return
	}
	b.Active = false
}

// LeaderBomb falls straight down from the leader.
type LeaderBomb struct {
	X, Y, VY float64
	Radius   float64
	Active   bool
}

func (b *LeaderBomb) Update(dt float64, pf Playfield) {
	b.Y += b.VY * dt
	if b.Y-b.Radius > pf.H {
		b.Active = false
	}
}

// Laser is the elite's beam. It hurts the player at most once.
type Laser struct {
	X, Y    float64 // top centre
	Width   float64
	Length  float64
	Time    float64 // seconds left
	Applied bool
}

// Touches reports whether the beam overlaps r, edges inclusive.
func (l *Laser) Touches(r geom.Rect) bool {
	half := l.Width / 2
	hitX := r.X+r.W >= l.X-half && r.X <= l.X+half
	hitY := r.Y <= l.Y+l.Length && r.Y+r.H >= l.Y
	return hitX && hitY
}
