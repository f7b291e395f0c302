package wave

import (
	"math"

	"github.com/l1jgo/invaders/internal/geom"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/world"
)

const (
	EdgeMargin = 20
	DropStep   = 16

	FlyerInterval   = 17
	FlyerBatch      = 2
	FlyerMinSpacing = 120
	flyerSpeedMin   = 1.5
	flyerSpeedMax   = 2
)

// Sweep moves every formation invader one step and, if the aggregate
// bounding box reached an edge, flips direction, pulls the formation back
// inside and drops it once. It reports whether a drop happened.
func Sweep(s *world.Session, dt float64) bool {
	step := s.Tuning.EnemySpeed * s.Formation.Dir * dt
	var box geom.Rect
	found := false
	for _, iv := range s.Invaders {
		if !iv.Alive() || iv.Mode != world.ModeFormation {
			continue
		}
		if !iv.Stunned() {
			iv.X += step
		}
		if !found {
			box, found = iv.Rect(), true
		} else {
			box = box.Union(iv.Rect())
		}
	}
	if !found {
		return false
	}

	var shift float64
	switch {
	case s.Formation.Dir > 0 && box.Right() >= s.Params.Width-EdgeMargin:
		shift = s.Params.Width - EdgeMargin - box.Right()
	case s.Formation.Dir < 0 && box.X <= EdgeMargin:
		shift = EdgeMargin - box.X
	default:
		return false
	}
	for _, iv := range s.Invaders {
		if !iv.Alive() || iv.Mode != world.ModeFormation {
			continue
		}
		iv.X += shift
		iv.Y += DropStep
	}
	s.Formation.Dir = -s.Formation.Dir
	return true
}

// ConvertFlyers counts down the flyer timer and, when it fires, releases up
// to FlyerBatch spaced-out invaders from the formation for good.
func ConvertFlyers(s *world.Session, dt float64) []*world.Invader {
	s.Timers.Flyer -= dt
	if s.Timers.Flyer > 0 {
		return nil
	}
	s.Timers.Flyer = FlyerInterval

	eligible := make([]*world.Invader, 0, len(s.Invaders))
	for _, iv := range s.Invaders {
		if iv.Alive() && iv.Mode == world.ModeFormation && !iv.Elite() && !iv.Stunned() {
			eligible = append(eligible, iv)
		}
	}
	rng.Shuffle(s.Rand, len(eligible), func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] })

	var picked []*world.Invader
	for _, iv := range eligible {
		if len(picked) == FlyerBatch {
			break
		}
		if !spacedFrom(iv, picked) {
			continue
		}
		angle := rng.Range(s.Rand, 0, 2*math.Pi)
		speed := s.Tuning.EnemySpeed * rng.Range(s.Rand, flyerSpeedMin, flyerSpeedMax)
		iv.Mode = world.ModeFlyer
		iv.VX = math.Cos(angle) * speed
		iv.VY = math.Sin(angle) * speed
		picked = append(picked, iv)
	}
	return picked
}

func spacedFrom(iv *world.Invader, others []*world.Invader) bool {
	cx, cy := iv.Center()
	for _, o := range others {
		ox, oy := o.Center()
		if geom.DistSq(cx, cy, ox, oy) < FlyerMinSpacing*FlyerMinSpacing {
			return false
		}
	}
	return true
}

// MoveFlyer advances a flyer and reflects it off the playfield edges.
func MoveFlyer(iv *world.Invader, dt float64, pf world.Playfield) {
	if iv.Stunned() {
		return
	}
	iv.X += iv.VX * dt
	iv.Y += iv.VY * dt
	if iv.X < 0 {
		iv.X, iv.VX = 0, math.Abs(iv.VX)
	} else if iv.X+iv.W > pf.W {
		iv.X, iv.VX = pf.W-iv.W, -math.Abs(iv.VX)
	}
	if iv.Y < 0 {
		iv.Y, iv.VY = 0, math.Abs(iv.VY)
	} else if iv.Y+iv.H > pf.H {
		iv.Y, iv.VY = pf.H-iv.H, -math.Abs(iv.VY)
	}
}

// Beat emits the marching beat, faster as the roster thins out.
func Beat(s *world.Session, dt float64) bool {
	s.Timers.Beat -= dt
	if s.Timers.Beat > 0 {
		return false
	}
	ratio := 0.0
	if s.Initial > 0 {
		ratio = float64(s.LivingInvaders()) / float64(s.Initial)
	}
	s.Timers.Beat = beatInterval(ratio)
	cue := world.CueBeatHigh
	if s.Formation.BeatLow {
		cue = world.CueBeatLow
	}
	s.Formation.BeatLow = !s.Formation.BeatLow
	s.Play(cue)
	return true
}

func beatInterval(aliveRatio float64) float64 {
	return 0.25 + 0.75*aliveRatio
}
