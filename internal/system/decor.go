package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// DecorSystem drifts the starfield and ages explosions. It runs in every
// state, including the start screen. Phase 1 (Decor).
type DecorSystem struct {
	sess *world.Session
}

func NewDecorSystem(sess *world.Session) *DecorSystem {
	return &DecorSystem{sess: sess}
}

func (s *DecorSystem) Phase() coresys.Phase { return coresys.PhaseDecor }

func (s *DecorSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	pf := s.sess.Playfield()
	for i := range s.sess.Stars {
		s.sess.Stars[i].Update(sec, pf, s.sess.Rand)
	}

	alive := s.sess.Explosions[:0]
	for _, e := range s.sess.Explosions {
		e.Update(sec)
		if e.Active() {
			alive = append(alive, e)
		}
	}
	s.sess.Explosions = alive
}
