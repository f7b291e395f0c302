package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// PlayerSystem moves the ship and collects the bullets it fires.
// Phase 2 (Update).
type PlayerSystem struct {
	sess *world.Session
}

func NewPlayerSystem(sess *world.Session) *PlayerSystem {
	return &PlayerSystem{sess: sess}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PlayerSystem) Update(dt time.Duration) {
	shots := s.sess.Player.Update(seconds(dt), s.sess.Input, s.sess.Stats(), s.sess.Playfield())
	if len(shots) == 0 {
		return
	}
	s.sess.Bullets = append(s.sess.Bullets, shots...)
	s.sess.Play(world.CueShot)
}

// DroneSystem keeps the helper drone beside the ship and fires it.
// Phase 2 (Update).
type DroneSystem struct {
	sess *world.Session
}

func NewDroneSystem(sess *world.Session) *DroneSystem {
	return &DroneSystem{sess: sess}
}

func (s *DroneSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *DroneSystem) Update(dt time.Duration) {
	d := s.sess.Drone
	if d == nil {
		return
	}
	if b := d.Update(seconds(dt), s.sess.Player, s.sess.Stats().ShotSpeed()); b != nil {
		s.sess.Bullets = append(s.sess.Bullets, b)
		s.sess.Play(world.CueDroneShot)
	}
}

// DropShipSystem lowers the entry ship with the player and removes it once
// the drop-in is over. Phase 2 (Update).
type DropShipSystem struct {
	sess *world.Session
}

func NewDropShipSystem(sess *world.Session) *DropShipSystem {
	return &DropShipSystem{sess: sess}
}

func (s *DropShipSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *DropShipSystem) Update(dt time.Duration) {
	if s.sess.DropShip == nil {
		return
	}
	s.sess.DropShip.Update(seconds(dt), s.sess.Player.Y-50)
	if !s.sess.Player.DropIn {
		s.sess.DropShip = nil
	}
}
