package system

import (
	"math"
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// SpawnerSystem runs the independent pickup and bomber interval timers.
// Phase 2 (Update).
type SpawnerSystem struct {
	sess *world.Session
}

func NewSpawnerSystem(sess *world.Session) *SpawnerSystem {
	return &SpawnerSystem{sess: sess}
}

func (s *SpawnerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *SpawnerSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	p := s.sess.Params
	t := &s.sess.Timers

	if tick(&t.Shield, sec, p.ShieldInterval) {
		s.spawn(world.PickupShield)
	}
	if tick(&t.Medkit, sec, p.MedkitInterval) {
		s.spawn(world.PickupMedkit)
	}
	if tick(&t.Power, sec, p.PowerInterval) {
		s.spawn(world.PickupPower)
	}
	if tick(&t.Bomber, sec, p.BomberInterval) {
		s.sess.Bombers = append(s.sess.Bombers, world.NewBomber(p.BomberSpeed, s.sess.Playfield(), s.sess.Rand))
	}
}

// spawn replaces any live pickup of the same kind.
func (s *SpawnerSystem) spawn(kind world.PickupKind) {
	s.sess.Pickups[kind] = world.NewPickup(kind, s.sess.Player, s.sess.Playfield(), s.sess.Rand)
}

// tick counts timer down and rearms it with interval when it expires.
func tick(timer *float64, dt, interval float64) bool {
	*timer -= dt
	if *timer > 0 {
		return false
	}
	*timer = interval
	return true
}

// PickupSystem animates pickups and applies the ones the ship touches.
// Every kind is checked on its own. Phase 2 (Update).
type PickupSystem struct {
	sess *world.Session
}

func NewPickupSystem(sess *world.Session) *PickupSystem {
	return &PickupSystem{sess: sess}
}

func (s *PickupSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PickupSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	pl := s.sess.Player
	for kind, pk := range s.sess.Pickups {
		if pk == nil {
			continue
		}
		pk.Pulse += sec * 4
		if !pk.Touches(pl) {
			continue
		}
		s.apply(pk.Kind)
		s.sess.Pickups[kind] = nil
		s.sess.Play(world.CuePickup)
	}
}

func (s *PickupSystem) apply(kind world.PickupKind) {
	st := s.sess.Stats()
	pl := s.sess.Player
	switch kind {
	case world.PickupShield:
		pl.Invincible = math.Max(pl.Invincible, st.ShieldDuration())
	case world.PickupMedkit:
		pl.Heal(st.MedkitHeal(), st.MaxHealth())
	case world.PickupPower:
		pl.DamageBoost = s.sess.Params.PowerDuration
	}
}
