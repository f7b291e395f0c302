package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// OutputSystem delivers the frame's events and publishes the HUD. The game
// runs it every frame, gated or not. Phase 6 (Output).
type OutputSystem struct {
	sess    *world.Session
	publish func(world.HUD)
}

func NewOutputSystem(sess *world.Session, publish func(world.HUD)) *OutputSystem {
	return &OutputSystem{sess: sess, publish: publish}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(_ time.Duration) {
	s.sess.Bus.Flush()
	if s.publish != nil {
		s.publish(s.sess.HUD())
	}
}
