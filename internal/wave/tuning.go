package wave

import "github.com/l1jgo/invaders/internal/world"

// escalationCap is the level after which speed and fire chance stop rising
// and only health and damage keep scaling.
const escalationCap = 50

// TuningSource yields the difficulty of a level.
type TuningSource interface {
	LevelTuning(level int) world.LevelTuning
}

// FormulaSource computes tuning in Go for a playfield of the given height.
type FormulaSource struct {
	Height float64
}

func (f FormulaSource) LevelTuning(level int) world.LevelTuning {
	return FormulaTuning(level, f.Height)
}

// FormulaTuning is the built-in difficulty curve.
func FormulaTuning(level int, height float64) world.LevelTuning {
	if level < 1 {
		level = 1
	}
	l := float64(min(level, escalationCap) - 1)
	x := float64(max(0, level-escalationCap))
	return world.LevelTuning{
		Level:            level,
		Columns:          8,
		Rows:             2 + min(level-1, 8)/2,
		EnemySpeed:       30 + 4*l,
		BulletSpeed:      height/2.5 + 6*l,
		FireChance:       0.25 + 0.02*l,
		HealthMultiplier: 1 + 0.12*l + 0.25*x,
		DamageMultiplier: 1 + 0.05*l + 0.1*x,
		Elite:            level%5 == 0,
	}
}

// sanitize keeps a scripted tuning usable.
func sanitize(t world.LevelTuning, level int) world.LevelTuning {
	t.Level = level
	t.Columns = max(1, t.Columns)
	t.Rows = max(1, t.Rows)
	if t.HealthMultiplier <= 0 {
		t.HealthMultiplier = 1
	}
	if t.DamageMultiplier <= 0 {
		t.DamageMultiplier = 1
	}
	if t.FireChance < 0 {
		t.FireChance = 0
	}
	return t
}
