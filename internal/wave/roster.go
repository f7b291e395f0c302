package wave

import (
	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/world"
)

const (
	StartX = 120
	StartY = 80
	GapX   = 60
	GapY   = 50
)

// Manager spawns waves using a tuning source.
type Manager struct {
	tuning TuningSource
}

func NewManager(src TuningSource) *Manager {
	return &Manager{tuning: src}
}

func (m *Manager) Tuning(level int) world.LevelTuning {
	return sanitize(m.tuning.LevelTuning(level), level)
}

// Spawn replaces the session's roster with a fresh wave for level.
func (m *Manager) Spawn(s *world.Session, level int) {
	t := m.Tuning(level)
	s.BeginWave(level, t)
	BuildRoster(s, t)
	s.Timers.Flyer = FlyerInterval
	s.Timers.Beat = beatInterval(1)
	event.Emit(s.Bus, event.WaveStarted{Level: level, Invaders: len(s.Invaders), Elite: s.EliteAlive()})
}

// BuildRoster lays out a Columns × Rows grid and assigns roles once.
func BuildRoster(s *world.Session, t world.LevelTuning) {
	health := s.Params.EnemyHealth * t.HealthMultiplier
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Columns; col++ {
			s.AddInvader(&world.Invader{
				X:             StartX + float64(col*GapX),
				Y:             StartY + float64(row*GapY),
				W:             world.InvaderW,
				H:             world.InvaderH,
				Row:           row,
				Col:           col,
				Health:        health,
				BaseMaxHealth: health,
				MaxHealth:     health,
				Mode:          world.ModeFormation,
				Tuning:        t,
				ScoreValue:    s.Params.InvaderScore,
			})
		}
	}
	assignRoles(s, t)
}

func assignRoles(s *world.Session, t world.LevelTuning) {
	n := len(s.Invaders)
	if n == 0 {
		return
	}
	leader := s.Invaders[(t.Rows-1)*t.Columns+t.Columns/2]
	give(s, leader, world.NewLeaderRole())

	if t.Elite {
		if iv := randomPlain(s); iv != nil {
			give(s, iv, world.NewEliteRole())
		}
	}
	if n > 3 {
		if iv := randomPlain(s); iv != nil {
			give(s, iv, world.NewShieldRole())
		}
	}
	if n > 4 {
		if iv := randomPlain(s); iv != nil {
			give(s, iv, world.NewHealerRole())
		}
	}
}

func give(s *world.Session, iv *world.Invader, r world.Role) {
	iv.Role = r
	r.OnSpawn(s, iv)
}

func randomPlain(s *world.Session) *world.Invader {
	plain := make([]*world.Invader, 0, len(s.Invaders))
	for _, iv := range s.Invaders {
		if iv.Role == nil {
			plain = append(plain, iv)
		}
	}
	if len(plain) == 0 {
		return nil
	}
	return plain[rng.Intn(s.Rand, len(plain))]
}
