package world

import "github.com/l1jgo/invaders/internal/rng"

const (
	explosionParticles = 30
	explosionGravity   = 120
)

type Particle struct {
	X, Y, VX, VY float64
	Size         float64
	Life         float64
	MaxLife      float64
}

// Explosion is a burst of falling sparks.
type Explosion struct {
	Particles []Particle
}

func NewExplosion(x, y float64, src rng.Source) *Explosion {
	e := &Explosion{Particles: make([]Particle, explosionParticles)}
	for i := range e.Particles {
		life := rng.Range(src, 0.5, 0.9)
		e.Particles[i] = Particle{
			X:       x,
			Y:       y,
			VX:      rng.Range(src, -180, 180),
			VY:      rng.Range(src, -200, 80),
			Size:    rng.Range(src, 3, 6),
			Life:    life,
			MaxLife: life,
		}
	}
	return e
}

func (e *Explosion) Update(dt float64) {
	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += explosionGravity * dt
		p.Life -= dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.Particles = alive
}

func (e *Explosion) Active() bool { return len(e.Particles) > 0 }

// Star is a background dot drifting down.
type Star struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Alpha  float64
}

func NewStar(pf Playfield, src rng.Source) Star {
	var s Star
	s.reset(pf, src)
	s.Y = rng.Range(src, 0, pf.H)
	return s
}

func (s *Star) reset(pf Playfield, src rng.Source) {
	s.X = rng.Range(src, 0, pf.W)
	s.Y = -10
	s.Radius = rng.Range(src, 0.6, 1.8)
	s.Speed = rng.Range(src, 12, 40)
	s.Alpha = rng.Range(src, 0.4, 1)
}

func (s *Star) Update(dt float64, pf Playfield, src rng.Source) {
	s.Y += s.Speed * dt
	if s.Y > pf.H+10 {
		s.reset(pf, src)
	}
}
