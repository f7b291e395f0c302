package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput   Phase = iota // 0: event dispatch, fire-once triggers
	PhaseDecor                // 1: stars, explosions
	PhaseUpdate               // 2: motion, spawners, firing
	PhaseCollide              // 3: pairwise collisions and damage
	PhaseCleanup              // 4: purge dead entities, flush destroy queue
	PhaseOutcome              // 5: death and wave-clear checks
	PhaseOutput               // 6: HUD publish
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseDecor:
		return "decor"
	case PhaseUpdate:
		return "update"
	case PhaseCollide:
		return "collide"
	case PhaseCleanup:
		return "cleanup"
	case PhaseOutcome:
		return "outcome"
	case PhaseOutput:
		return "output"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
