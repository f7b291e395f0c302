package upgrade

import "math"

const (
	// ArmorFloor is the smallest fraction of enemy damage the player can take.
	ArmorFloor = 0.5
	// MinFireCooldown bounds how fast bursts can repeat.
	MinFireCooldown = 0.12
)

// Base holds the un-upgraded player numbers.
type Base struct {
	MaxHealth      float64
	Damage         float64
	FireCooldown   float64
	BurstCount     int
	ShotSpeed      float64
	ShieldDuration float64
	MedkitHeal     float64
}

// Stats derives live player numbers from a base and an upgrade state. It
// holds no copies, so every call reflects the latest purchase.
type Stats struct {
	Base  Base
	State *State
}

func (s Stats) MaxHealth() float64 {
	return s.Base.MaxHealth + s.State.Total(StatMaxHealth)
}

// DamageMultiplier scales outgoing player damage.
func (s Stats) DamageMultiplier() float64 {
	return 1 + s.State.Total(StatDamage)
}

// Damage is the per-projectile player damage before power-up doubling.
func (s Stats) Damage() float64 {
	return s.Base.Damage * s.DamageMultiplier()
}

func (s Stats) FireCooldown() float64 {
	return math.Max(MinFireCooldown, s.Base.FireCooldown+s.State.Total(StatCooldown))
}

func (s Stats) BurstCount() int {
	n := s.Base.BurstCount + int(math.Round(s.State.Total(StatBurst)))
	if n < 1 {
		return 1
	}
	return n
}

// Pierce is the number of extra invaders a player bullet may pass through.
func (s Stats) Pierce() int {
	return int(math.Round(s.State.Total(StatPierce)))
}

// Spread returns the fan half-angle in radians, 0 when shots are single.
func (s Stats) Spread() float64 {
	return s.State.Total(StatSpread)
}

func (s Stats) ShotSpeed() float64 {
	return s.Base.ShotSpeed * (1 + s.State.Total(StatShotSpeed))
}

func (s Stats) ShieldDuration() float64 {
	return s.Base.ShieldDuration + s.State.Total(StatShieldDuration)
}

func (s Stats) MedkitHeal() float64 {
	return s.Base.MedkitHeal + s.State.Total(StatMedkitHeal)
}

// DamageTaken is the armor multiplier applied to enemy-origin damage.
func (s Stats) DamageTaken() float64 {
	return ArmorReduction(s.State.Total(StatArmor))
}

func (s Stats) ShockChance() float64 {
	return math.Min(1, s.State.Total(StatShock))
}

func (s Stats) Drone() bool {
	return s.State.Total(StatDrone) > 0
}

// ArmorReduction maps a summed armor value to a damage multiplier, never
// below ArmorFloor.
func ArmorReduction(armor float64) float64 {
	return math.Max(ArmorFloor, 1-armor)
}
