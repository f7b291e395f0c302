package world

import (
	"math"

	"github.com/l1jgo/invaders/internal/core/ecs"
	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/upgrade"
)

const starCount = 80

// Timers are the countdowns that survive between frames of one wave.
type Timers struct {
	Shield float64
	Medkit float64
	Power  float64
	Bomber float64
	Flyer  float64 // next flyer conversion
	Beat   float64 // next music beat
}

// Formation is the shared sweep state of every formation-mode invader.
type Formation struct {
	Dir     float64 // +1 right, -1 left
	BeatLow bool    // alternates the two beat pitches
}

// Session is the single owned aggregate of one play session. Only the game
// facade and the systems it runs mutate it, all on one goroutine.
type Session struct {
	Params Params
	Input  Input

	State   State
	Won     bool
	Credits int
	Score   int
	Level   int

	GameOverTimer      float64
	TransitionTimer    float64
	DeathProcessed     bool
	ExplosionTriggered bool

	Timers    Timers
	Formation Formation
	Tuning    LevelTuning

	Player     *Player
	Invaders   []*Invader
	Initial    int // roster size at wave start
	Bullets    []*Bullet
	Bombs      []*LeaderBomb
	Bombers    []*Bomber
	Pickups    [pickupKinds]*Pickup
	Drone      *Drone
	DropShip   *DropShip
	Laser      *Laser
	Explosions []*Explosion
	Stars      []Star

	Upgrades *upgrade.State
	Shop     upgrade.Shop

	Rand     rng.Source
	Bus      *event.Bus
	Entities *ecs.World
}

// NewSession builds a session waiting on the start screen.
func NewSession(p Params, cat *upgrade.Catalog, src rng.Source, bus *event.Bus) *Session {
	s := &Session{
		Params:   p,
		State:    StateStart,
		Credits:  p.StartCredits,
		Level:    1,
		Upgrades: upgrade.NewState(cat),
		Rand:     src,
		Bus:      bus,
		Entities: ecs.NewWorld(),
	}
	s.Player = NewPlayer(p, false)
	s.Stars = make([]Star, starCount)
	for i := range s.Stars {
		s.Stars[i] = NewStar(s.Playfield(), src)
	}
	s.ResetTimers()
	return s
}

func (s *Session) Playfield() Playfield { return Playfield{W: s.Params.Width, H: s.Params.Height} }

// Stats derives the ship's live numbers from the current upgrades.
func (s *Session) Stats() upgrade.Stats {
	return upgrade.Stats{Base: s.Params.PlayerBase(), State: s.Upgrades}
}

func (s *Session) MaxHealth() float64 { return s.Stats().MaxHealth() }

// ResetTimers restores the pickup and bomber intervals.
func (s *Session) ResetTimers() {
	s.Timers.Shield = s.Params.ShieldInterval
	s.Timers.Medkit = s.Params.MedkitInterval
	s.Timers.Power = s.Params.PowerInterval
	s.Timers.Bomber = s.Params.BomberInterval
}

// ClearTransients drops every projectile, bomb, bomber, pickup and beam and
// restarts the spawn timers.
func (s *Session) ClearTransients() {
	s.Bullets = nil
	s.Bombs = nil
	s.Bombers = nil
	s.Pickups = [pickupKinds]*Pickup{}
	s.Laser = nil
	s.ResetTimers()
}

// Reset reinitialises everything a new run needs except the wave itself.
func (s *Session) Reset(dropIn bool) {
	s.Player = NewPlayer(s.Params, dropIn)
	s.DropShip = nil
	if dropIn {
		s.DropShip = NewDropShip(s.Playfield())
	}
	s.Drone = nil
	s.Invaders = nil
	s.Initial = 0
	s.ClearTransients()
	s.Upgrades.Reset()
	s.Shop.Close()
	s.Score = 0
	s.Level = 1
	s.Won = false
	s.GameOverTimer = 0
	s.TransitionTimer = 0
	s.DeathProcessed = false
	s.ExplosionTriggered = false
}

// BeginWave installs an empty roster for level. IDs restart with it.
func (s *Session) BeginWave(level int, t LevelTuning) {
	s.Level = level
	s.Tuning = t
	s.Entities = ecs.NewWorld()
	s.Invaders = s.Invaders[:0]
	s.Initial = 0
	s.Formation = Formation{Dir: 1}
	s.Laser = nil
}

// AddInvader assigns iv an ID and appends it to the roster.
func (s *Session) AddInvader(iv *Invader) {
	iv.ID = s.Entities.CreateEntity()
	s.Invaders = append(s.Invaders, iv)
	s.Initial = len(s.Invaders)
}

func (s *Session) LivingInvaders() int {
	n := 0
	for _, iv := range s.Invaders {
		if iv.Alive() {
			n++
		}
	}
	return n
}

// EliteAlive reports whether the mini-boss still stands.
func (s *Session) EliteAlive() bool {
	for _, iv := range s.Invaders {
		if iv.Elite() && iv.Alive() {
			return true
		}
	}
	return false
}

// Leader returns the living command-leader, or nil.
func (s *Session) Leader() *Invader {
	for _, iv := range s.Invaders {
		if iv.Is(RoleLeader) && iv.Alive() {
			return iv
		}
	}
	return nil
}

// FireMultiplier scales iv's fire chance for leader proximity and the
// elite's presence.
func (s *Session) FireMultiplier(iv *Invader) float64 {
	mult := 1.0
	if lr, ok := iv.Role.(*LeaderRole); ok {
		mult *= lr.FireBoost(s, iv)
	} else if leader := s.Leader(); leader != nil {
		lx, ly := leader.Center()
		cx, cy := iv.Center()
		if geom.DistSq(lx, ly, cx, cy) <= leaderRadius*leaderRadius {
			mult *= leaderNearbyBoost
		}
	}
	if s.EliteAlive() {
		mult *= EliteFireBoost
	}
	return mult
}

// EnemyDamage turns a base enemy damage into what the ship actually loses.
func (s *Session) EnemyDamage(base float64) float64 {
	d := base * s.Tuning.DamageMultiplier
	if s.EliteAlive() {
		d *= EliteDamageBoost
	}
	return d * s.Stats().DamageTaken()
}

// DamagePlayer applies base enemy damage unless the ship is invincible and
// returns the amount lost.
func (s *Session) DamagePlayer(base float64) float64 {
	if s.Player.Invincible > 0 {
		return 0
	}
	before := s.Player.Health
	s.Player.ApplyDamage(s.EnemyDamage(base), s.MaxHealth())
	return before - s.Player.Health
}

// Retire runs iv's death hook once and queues its ID for destruction. With
// award the kill scores.
func (s *Session) Retire(iv *Invader, award bool) {
	if iv.retired {
		return
	}
	if iv.Health > 0 || math.IsNaN(iv.Health) {
		iv.Health = 0
	}
	if iv.Role != nil {
		iv.Role.OnDeath(s, iv)
	}
	iv.retired = true
	if award {
		s.Score += iv.ScoreValue
	}
	s.Entities.MarkForDestruction(iv.ID)
}

// Explode spawns an explosion effect with its sound.
func (s *Session) Explode(x, y float64) {
	s.Explosions = append(s.Explosions, NewExplosion(x, y, s.Rand))
	s.Play(CueExplosion)
}

// Play emits an audio cue on the bus.
func (s *Session) Play(c Cue) {
	if s.Bus == nil {
		return
	}
	event.Emit(s.Bus, c)
}

// HUD summarises the session for display.
func (s *Session) HUD() HUD {
	return HUD{
		Health:     s.Player.Health,
		MaxHealth:  s.MaxHealth(),
		Score:      s.Score,
		Level:      s.Level,
		Credits:    s.Credits,
		State:      s.State,
		Won:        s.Won,
		CanRespawn: s.State == StateGameOver && s.GameOverTimer <= 0 && s.Credits > 0,
	}
}
