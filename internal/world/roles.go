package world

import (
	"sort"

	"github.com/l1jgo/invaders/internal/core/ecs"
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/rng"
)

// RoleKind tags the special behaviour an invader carries.
type RoleKind int

const (
	RoleNone RoleKind = iota
	RoleLeader
	RoleShieldBuffer
	RoleHealer
	RoleElite
)

func (k RoleKind) String() string {
	switch k {
	case RoleNone:
		return "none"
	case RoleLeader:
		return "leader"
	case RoleShieldBuffer:
		return "shield_buffer"
	case RoleHealer:
		return "healer"
	case RoleElite:
		return "elite"
	}
	return "unknown"
}

// Role is the capability an invader gains when a wave assigns it. Hooks run
// on the update goroutine with the owning session.
type Role interface {
	Kind() RoleKind
	OnSpawn(s *Session, self *Invader)
	OnUpdate(s *Session, self *Invader, dt float64)
	OnDeath(s *Session, self *Invader)
}

const (
	LeaderW            = 48
	LeaderH            = 30
	leaderBombInterval = 3.5
	leaderBombSpeed    = 120
	leaderRadius       = 140 // ally count and nearby fire bonus
	leaderAllyBonus    = 0.15
	leaderMaxBoost     = 2
	leaderNearbyBoost  = 1.5

	shieldTargets = 5
	shieldBonus   = 0.25

	healTargets     = 8
	healThreshold   = 0.5
	healFraction    = 0.25
	healCooldownMin = 1.4
	healCooldownMax = 2.2

	EliteW             = 72
	EliteH             = 44
	EliteHealthScale   = 5000
	eliteLaserInterval = 2
	eliteLaserLifetime = 0.2
	eliteLaserAim      = 90
	EliteDamageBoost   = 1.35
	EliteFireBoost     = 1.15

	leaderScore  = 250
	supportScore = 150
	eliteScore   = 1000
)

// LeaderRole commands the front row and drops slow bombs.
type LeaderRole struct {
	bombTimer float64
}

func NewLeaderRole() *LeaderRole { return &LeaderRole{bombTimer: leaderBombInterval} }

func (r *LeaderRole) Kind() RoleKind { return RoleLeader }

func (r *LeaderRole) OnSpawn(_ *Session, self *Invader) {
	self.Resize(LeaderW, LeaderH)
	self.BaseMaxHealth *= 2
	self.MaxHealth = self.BaseMaxHealth
	self.Health = self.BaseMaxHealth
	self.ScoreValue = leaderScore
}

func (r *LeaderRole) OnUpdate(s *Session, self *Invader, dt float64) {
	if self.Stunned() {
		return
	}
	r.bombTimer -= dt
	if r.bombTimer > 0 {
		return
	}
	r.bombTimer = leaderBombInterval
	cx := self.X + self.W/2
	s.Bombs = append(s.Bombs, &LeaderBomb{
		X:      cx,
		Y:      self.Y + self.H,
		VY:     leaderBombSpeed,
		Radius: 7,
		Active: true,
	})
	s.Play(CueBomb)
}

func (r *LeaderRole) OnDeath(*Session, *Invader) {}

// FireBoost is the leader's own multiplier from allies within range.
func (r *LeaderRole) FireBoost(s *Session, self *Invader) float64 {
	cx, cy := self.Center()
	allies := 0
	for _, iv := range s.Invaders {
		if iv == self || !iv.Alive() {
			continue
		}
		ox, oy := iv.Center()
		if geom.DistSq(cx, cy, ox, oy) <= leaderRadius*leaderRadius {
			allies++
		}
	}
	boost := 1 + leaderAllyBonus*float64(allies)
	if boost > leaderMaxBoost {
		boost = leaderMaxBoost
	}
	return boost
}

// shieldGrant records the invader a shield-buffer currently covers.
type shieldGrant struct {
	target *Invader
}

// ShieldRole keeps its nearest allies' max health raised.
type ShieldRole struct {
	grants *ecs.PtrComponentStore[shieldGrant]
}

func NewShieldRole() *ShieldRole {
	return &ShieldRole{grants: ecs.NewPtrComponentStore[shieldGrant]()}
}

func (r *ShieldRole) Kind() RoleKind { return RoleShieldBuffer }

func (r *ShieldRole) OnSpawn(s *Session, self *Invader) {
	s.Entities.Registry().Register(r.grants)
	self.ScoreValue = supportScore
}

func (r *ShieldRole) OnUpdate(s *Session, self *Invader, _ float64) {
	want := make(map[ecs.EntityID]*Invader, shieldTargets)
	for _, iv := range s.nearestAllies(self, shieldTargets, nil) {
		want[iv.ID] = iv
	}

	r.grants.Each(func(id ecs.EntityID, g *shieldGrant) {
		if _, keep := want[id]; !keep {
			revokeShield(g.target)
			r.grants.Remove(id)
		}
	})
	for id, iv := range want {
		if r.grants.Has(id) {
			continue
		}
		iv.SetMaxHealth(iv.BaseMaxHealth * (1 + shieldBonus))
		iv.Heal(iv.BaseMaxHealth * shieldBonus)
		r.grants.Set(id, &shieldGrant{target: iv})
	}
}

func (r *ShieldRole) OnDeath(_ *Session, _ *Invader) {
	r.grants.Each(func(id ecs.EntityID, g *shieldGrant) {
		revokeShield(g.target)
		r.grants.Remove(id)
	})
}

// Covers reports whether iv is currently buffed by this role.
func (r *ShieldRole) Covers(iv *Invader) bool { return r.grants.Has(iv.ID) }

// Covered returns how many invaders hold a grant.
func (r *ShieldRole) Covered() int { return r.grants.Len() }

func revokeShield(iv *Invader) {
	iv.SetMaxHealth(iv.BaseMaxHealth)
}

// HealerRole periodically patches up badly damaged allies.
type HealerRole struct {
	cooldown float64
}

func NewHealerRole() *HealerRole { return &HealerRole{} }

func (r *HealerRole) Kind() RoleKind { return RoleHealer }

func (r *HealerRole) OnSpawn(s *Session, self *Invader) {
	r.cooldown = rng.Range(s.Rand, healCooldownMin, healCooldownMax)
	self.ScoreValue = supportScore
}

func (r *HealerRole) OnUpdate(s *Session, self *Invader, dt float64) {
	if self.Stunned() {
		return
	}
	r.cooldown -= dt
	if r.cooldown > 0 {
		return
	}
	r.cooldown = rng.Range(s.Rand, healCooldownMin, healCooldownMax)

	wounded := func(iv *Invader) bool { return iv.Health < iv.MaxHealth*healThreshold }
	targets := s.nearestAllies(self, healTargets, wounded)
	for _, iv := range targets {
		iv.Heal(iv.MaxHealth * healFraction)
	}
	if len(targets) > 0 {
		s.Play(CueHeal)
	}
}

func (r *HealerRole) OnDeath(*Session, *Invader) {}

// EliteRole is the mini-boss of every fifth level. It fires beams instead
// of bullets and strengthens every other enemy while alive.
type EliteRole struct {
	laserTimer float64
}

func NewEliteRole() *EliteRole { return &EliteRole{laserTimer: eliteLaserInterval} }

func (r *EliteRole) Kind() RoleKind { return RoleElite }

func (r *EliteRole) OnSpawn(_ *Session, self *Invader) {
	self.Resize(EliteW, EliteH)
	self.BaseMaxHealth = EliteHealthScale * self.Tuning.HealthMultiplier
	self.MaxHealth = self.BaseMaxHealth
	self.Health = self.BaseMaxHealth
	self.ScoreValue = eliteScore
}

func (r *EliteRole) OnUpdate(s *Session, self *Invader, dt float64) {
	if self.Stunned() {
		return
	}
	r.laserTimer -= dt
	if r.laserTimer > 0 {
		return
	}
	r.laserTimer = eliteLaserInterval

	px, _ := s.Player.Center()
	x := geom.Clamp(px+rng.Range(s.Rand, -eliteLaserAim, eliteLaserAim), 10, s.Params.Width-10)
	top := self.Y + self.H
	s.Laser = &Laser{
		X:      x,
		Y:      top,
		Width:  6,
		Length: s.Params.Height - top,
		Time:   eliteLaserLifetime,
	}
	s.Play(CueLaser)
}

func (r *EliteRole) OnDeath(s *Session, self *Invader) {
	s.Laser = nil
	cx, cy := self.Center()
	s.Explode(cx, cy)
}

// nearestAllies returns up to n living non-elite invaders other than self,
// nearest first, optionally filtered.
func (s *Session) nearestAllies(self *Invader, n int, keep func(*Invader) bool) []*Invader {
	cx, cy := self.Center()
	type cand struct {
		iv *Invader
		d  float64
	}
	cands := make([]cand, 0, len(s.Invaders))
	for _, iv := range s.Invaders {
		if iv == self || !iv.Alive() || iv.Elite() {
			continue
		}
		if keep != nil && !keep(iv) {
			continue
		}
		ox, oy := iv.Center()
		cands = append(cands, cand{iv, geom.DistSq(cx, cy, ox, oy)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]*Invader, len(cands))
	for i, c := range cands {
		out[i] = c.iv
	}
	return out
}
