package system

import (
	"time"

	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/world"
)

// CollisionSystem resolves every pairwise contact of the frame and applies
// damage. Nothing moves here. Phase 3 (Collide).
type CollisionSystem struct {
	sess *world.Session
}

func NewCollisionSystem(sess *world.Session) *CollisionSystem {
	return &CollisionSystem{sess: sess}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollide }

func (s *CollisionSystem) Update(dt time.Duration) {
	sec := seconds(dt)
	s.playerBullets()
	s.enemyBullets()
	s.laser()
	s.contact(sec)
	s.bombers()
	s.bombs()
	s.landings()
}

// playerDamage is the damage of one full-strength player bullet right now.
func (s *CollisionSystem) playerDamage() float64 {
	d := s.sess.Stats().Damage()
	if s.sess.Player.DamageBoost > 0 {
		d *= 2
	}
	return d
}

func (s *CollisionSystem) playerBullets() {
	base := s.playerDamage()
	shock := s.sess.Stats().ShockChance()
	for _, b := range s.sess.Bullets {
		if !b.Active || b.Owner != world.OwnerPlayer {
			continue
		}
		for _, iv := range s.sess.Invaders {
			if !b.Active {
				break
			}
			if !iv.Alive() || b.HasHit(iv.ID) || !iv.Rect().ContainsPoint(b.X, b.Y) {
				continue
			}
			killed := iv.Damage(base * b.DamageScale)
			if shock > 0 && s.sess.Rand.Float64() < shock {
				iv.Stun = world.StunDuration
			}
			b.RecordHit(iv.ID)
			s.sess.Play(world.CueInvaderHit)
			if killed {
				s.sess.Retire(iv, true)
			}
		}
		for _, bm := range s.sess.Bombers {
			if !b.Active {
				break
			}
			if !bm.Active || !bm.Rect().ContainsPoint(b.X, b.Y) {
				continue
			}
			bm.Active = false
			b.Spend()
			s.sess.Score += s.sess.Params.BomberScore
			cx, cy := bm.Rect().Center()
			s.sess.Explode(cx, cy)
		}
	}
}

func (s *CollisionSystem) enemyBullets() {
	pr := s.sess.Player.Rect()
	for _, b := range s.sess.Bullets {
		if !b.Active || b.Owner != world.OwnerEnemy || !pr.ContainsPoint(b.X, b.Y) {
			continue
		}
		if s.sess.DamagePlayer(s.sess.Params.EnemyDamage) > 0 {
			s.sess.Play(world.CueHit)
		}
		b.Active = false
	}
}

func (s *CollisionSystem) laser() {
	l := s.sess.Laser
	if l == nil || l.Applied || !l.Touches(s.sess.Player.Rect()) {
		return
	}
	if s.sess.DamagePlayer(s.sess.Params.LaserDamage) > 0 {
		l.Applied = true
		s.sess.Play(world.CueLaserHit)
	}
}

func (s *CollisionSystem) contact(dt float64) {
	pr := s.sess.Player.Rect()
	for _, iv := range s.sess.Invaders {
		if iv.Alive() && iv.Rect().Overlaps(pr) {
			s.sess.DamagePlayer(s.sess.Params.ContactDPS * dt)
		}
	}
}

func (s *CollisionSystem) bombers() {
	pr := s.sess.Player.Rect()
	for _, bm := range s.sess.Bombers {
		if !bm.Active || !bm.Rect().Overlaps(pr) {
			continue
		}
		if s.sess.DamagePlayer(s.sess.Params.BomberDamage) > 0 {
			s.sess.Play(world.CueBomberHit)
		}
		bm.Active = false
		cx, cy := bm.Rect().Center()
		s.sess.Explode(cx, cy)
	}
}

func (s *CollisionSystem) bombs() {
	for _, b := range s.sess.Bombs {
		if !b.Active || !geom.CircleTouchesRect(b.X, b.Y, b.Radius, s.sess.Player.Rect()) {
			continue
		}
		if s.sess.DamagePlayer(s.sess.Params.BombDamage) > 0 {
			s.sess.Play(world.CueBomberHit)
		}
		b.Active = false
		s.sess.Explode(b.X, b.Y)
	}
}

// landings removes invaders that slipped past the bottom edge. They cost
// the ship health and score nothing.
func (s *CollisionSystem) landings() {
	for _, iv := range s.sess.Invaders {
		if !iv.Alive() || iv.Y <= s.sess.Params.Height {
			continue
		}
		if s.sess.DamagePlayer(s.sess.Params.LandingDamage) > 0 {
			s.sess.Play(world.CueHit)
		}
		s.sess.Retire(iv, false)
	}
}
