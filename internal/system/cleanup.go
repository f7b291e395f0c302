package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/world"
)

// CleanupSystem purges dead and inactive entities, then flushes the deferred
// entity destruction queue. Phase 4 (Cleanup).
type CleanupSystem struct {
	sess *world.Session
}

func NewCleanupSystem(sess *world.Session) *CleanupSystem {
	return &CleanupSystem{sess: sess}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	sess := s.sess

	invaders := sess.Invaders[:0]
	for _, iv := range sess.Invaders {
		if iv.Alive() && geom.Finite(iv.X) && geom.Finite(iv.Y) {
			invaders = append(invaders, iv)
			continue
		}
		// covers NaN health and anything killed outside collisions
		sess.Retire(iv, false)
	}
	clear(sess.Invaders[len(invaders):])
	sess.Invaders = invaders

	bullets := sess.Bullets[:0]
	for _, b := range sess.Bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	clear(sess.Bullets[len(bullets):])
	sess.Bullets = bullets

	bombs := sess.Bombs[:0]
	for _, b := range sess.Bombs {
		if b.Active {
			bombs = append(bombs, b)
		}
	}
	clear(sess.Bombs[len(bombs):])
	sess.Bombs = bombs

	bombers := sess.Bombers[:0]
	for _, b := range sess.Bombers {
		if b.Active {
			bombers = append(bombers, b)
		}
	}
	clear(sess.Bombers[len(bombers):])
	sess.Bombers = bombers

	sess.Entities.FlushDestroyQueue()
}
