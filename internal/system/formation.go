package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/wave"
	"github.com/l1jgo/invaders/internal/world"
)

// FormationSystem drives the shared sweep, flyer release and the marching
// beat. First system of Phase 2 (Update).
type FormationSystem struct {
	sess *world.Session
}

func NewFormationSystem(sess *world.Session) *FormationSystem {
	return &FormationSystem{sess: sess}
}

func (s *FormationSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *FormationSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	wave.Sweep(s.sess, sec)
	wave.ConvertFlyers(s.sess, sec)
	wave.Beat(s.sess, sec)
}

// RoleSystem runs every living invader's role hook. Phase 2 (Update).
type RoleSystem struct {
	sess *world.Session
}

func NewRoleSystem(sess *world.Session) *RoleSystem {
	return &RoleSystem{sess: sess}
}

func (s *RoleSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *RoleSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	for _, iv := range s.sess.Invaders {
		if iv.Role != nil && iv.Alive() {
			iv.Role.OnUpdate(s.sess, iv, sec)
		}
	}
}
