package system

import (
	"math"
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/wave"
	"github.com/l1jgo/invaders/internal/world"
)

const (
	burstWindup   = 0.3
	burstInterval = 0.22
)

// EnemySystem ticks stuns, moves flyers and runs invader fire: a roll per
// frame starts a burst, the burst then fires aimed shots on its own timer.
// Phase 2 (Update).
type EnemySystem struct {
	sess *world.Session
}

func NewEnemySystem(sess *world.Session) *EnemySystem {
	return &EnemySystem{sess: sess}
}

func (s *EnemySystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *EnemySystem) Update(dt time.Duration) {
	sec := seconds(dt)
	pf := s.sess.Playfield()
	for _, iv := range s.sess.Invaders {
		if !iv.Alive() {
			continue
		}
		iv.Stun = math.Max(0, iv.Stun-sec)
		if iv.Mode == world.ModeFlyer {
			wave.MoveFlyer(iv, sec, pf)
		}
		if iv.Elite() || iv.Stunned() {
			continue
		}
		if iv.BurstShots > 0 {
			s.advanceBurst(iv, sec)
			continue
		}
		chance := iv.Tuning.FireChance * s.sess.FireMultiplier(iv) * sec
		if s.sess.Rand.Float64() < chance {
			iv.BurstShots = s.sess.Params.EnemyBurstCount
			iv.BurstDelay = burstWindup
		}
	}
}

func (s *EnemySystem) advanceBurst(iv *world.Invader, dt float64) {
	iv.BurstDelay -= dt
	if iv.BurstDelay > 0 {
		return
	}
	tx, ty := s.sess.Player.Center()
	ox := iv.X + iv.W/2
	oy := iv.Y + iv.H + 6
	vx, vy := geom.Aim(ox, oy, tx, ty, iv.Tuning.BulletSpeed)
	s.sess.Bullets = append(s.sess.Bullets, &world.Bullet{
		X:           ox,
		Y:           oy,
		VX:          vx,
		VY:          vy,
		Radius:      4,
		Owner:       world.OwnerEnemy,
		DamageScale: 1,
		Active:      true,
	})
	s.sess.Play(world.CueEnemyShot)
	iv.BurstShots--
	iv.BurstDelay = burstInterval
}

// BomberSystem steers bombers at the ship. Phase 2 (Update).
type BomberSystem struct {
	sess *world.Session
}

func NewBomberSystem(sess *world.Session) *BomberSystem {
	return &BomberSystem{sess: sess}
}

func (s *BomberSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *BomberSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	tx, ty := s.sess.Player.Center()
	for _, b := range s.sess.Bombers {
		if b.Active {
			b.Update(sec, tx, ty, s.sess.Playfield())
		}
	}
}
