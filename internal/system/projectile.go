package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/world"
)

// ProjectileSystem moves bullets, leader bombs and ages the elite's beam.
// Last of Phase 2 (Update).
type ProjectileSystem struct {
	sess *world.Session
}

func NewProjectileSystem(sess *world.Session) *ProjectileSystem {
	return &ProjectileSystem{sess: sess}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ProjectileSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	pf := s.sess.Playfield()
	for _, b := range s.sess.Bullets {
		if b.Active {
			b.Update(sec, pf)
		}
	}
	for _, b := range s.sess.Bombs {
		if b.Active {
			b.Update(sec, pf)
		}
	}
	if l := s.sess.Laser; l != nil {
		l.Time -= sec
		if l.Time <= 0 {
			s.sess.Laser = nil
		}
	}
}
