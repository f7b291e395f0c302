package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// TriggerSystem consumes the fire-once triggers of the input snapshot.
// Phase 0 (Input).
type TriggerSystem struct {
	sess   *world.Session
	ctrl   Controller
	cheats bool
}

func NewTriggerSystem(sess *world.Session, ctrl Controller, cheats bool) *TriggerSystem {
	return &TriggerSystem{sess: sess, ctrl: ctrl, cheats: cheats}
}

func (s *TriggerSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *TriggerSystem) Update(_ time.Duration) {
	in := s.sess.Input
	if in.CloseShop {
		s.ctrl.CloseShop()
	}
	if !s.cheats {
		return
	}
	if in.SkipLevel {
		s.ctrl.JumpToLevel(s.sess.Level + 1)
	}
	if in.AddCredit {
		s.ctrl.AddCredit()
	}
}
