package world

import "github.com/l1jgo/invaders/internal/upgrade"

// Params holds the tunable constants of one session. Config fills it; the
// zero value is not usable, start from DefaultParams.
type Params struct {
	Width  float64
	Height float64

	PlayerHealth float64
	PlayerDamage float64 // per bullet, before upgrades and power-up
	PlayerSpeed  float64

	EnemyHealth     float64
	EnemyDamage     float64 // enemy bullet base damage
	EnemyBurstCount int
	ContactDPS      float64 // invader body contact, per second
	BombDamage      float64
	LaserDamage     float64
	LandingDamage   float64

	ShieldInterval float64
	ShieldDuration float64
	MedkitInterval float64
	MedkitHeal     float64
	PowerInterval  float64
	PowerDuration  float64

	BomberInterval float64
	BomberDamage   float64
	BomberSpeed    float64
	BomberScore    int
	InvaderScore   int

	StartCredits   int
	CreditsPerWave int
	MaxLevel       int
	ShopDelay      float64
	GameOverDelay  float64
}

func DefaultParams() Params {
	return Params{
		Width:  800,
		Height: 600,

		PlayerHealth: 1000,
		PlayerDamage: 25,
		PlayerSpeed:  280,

		EnemyHealth:     100,
		EnemyDamage:     50,
		EnemyBurstCount: 1,
		ContactDPS:      600,
		BombDamage:      120,
		LaserDamage:     50,
		LandingDamage:   150,

		ShieldInterval: 9,
		ShieldDuration: 5,
		MedkitInterval: 15,
		MedkitHeal:     150,
		PowerInterval:  15,
		PowerDuration:  5,

		BomberInterval: 20,
		BomberDamage:   150,
		BomberSpeed:    120,
		BomberScore:    150,
		InvaderScore:   100,

		StartCredits:   3,
		CreditsPerWave: 2,
		MaxLevel:       100,
		ShopDelay:      1,
		GameOverDelay:  3,
	}
}

// BulletSpeedBase is the speed that crosses the playfield in 2.5 seconds.
func (p Params) BulletSpeedBase() float64 { return p.Height / 2.5 }

// PlayerBase is the un-upgraded stat block the upgrade economy folds into.
func (p Params) PlayerBase() upgrade.Base {
	return upgrade.Base{
		MaxHealth:      p.PlayerHealth,
		Damage:         p.PlayerDamage,
		FireCooldown:   0.45,
		BurstCount:     2,
		ShotSpeed:      p.BulletSpeedBase() * 1.25,
		ShieldDuration: p.ShieldDuration,
		MedkitHeal:     p.MedkitHeal,
	}
}
