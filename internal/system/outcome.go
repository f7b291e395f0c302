package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// OutcomeSystem checks for the ship's death first and a cleared wave second.
// Damage and kills from this frame are already applied. Phase 5 (Outcome).
type OutcomeSystem struct {
	sess *world.Session
	ctrl Controller
}

func NewOutcomeSystem(sess *world.Session, ctrl Controller) *OutcomeSystem {
	return &OutcomeSystem{sess: sess, ctrl: ctrl}
}

func (s *OutcomeSystem) Phase() coresys.Phase { return coresys.PhaseOutcome }

func (s *OutcomeSystem) Update(_ time.Duration) {
	if s.sess.Player.Health <= 0 {
		s.ctrl.PlayerDied()
		return
	}
	if s.sess.State == world.StatePlaying && s.sess.LivingInvaders() == 0 {
		s.ctrl.WaveCleared()
	}
}
