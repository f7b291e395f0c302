package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/invaders/internal/core/event"
	coresys "github.com/l1jgo/invaders/internal/core/system"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

const frame = time.Second / 60

type fakeController struct {
	closed, jumps, credits, deaths, clears int
	lastJump                               int
}

func (c *fakeController) CloseShop() bool { c.closed++; return true }
func (c *fakeController) JumpToLevel(level int) bool {
	c.jumps++
	c.lastJump = level
	return true
}
func (c *fakeController) AddCredit()   { c.credits++ }
func (c *fakeController) PlayerDied()  { c.deaths++ }
func (c *fakeController) WaveCleared() { c.clears++ }

func newSession(t *testing.T, draws ...float64) *world.Session {
	t.Helper()
	cat, err := upgrade.NewCatalog([]upgrade.Definition{
		{ID: "pierce", Price: 2, MaxStacks: 3, Stat: upgrade.StatPierce, PerStack: 1},
		{ID: "shock", Price: 2, MaxStacks: 1, Stat: upgrade.StatShock, PerStack: 1},
		{ID: "armor", Price: 1, MaxStacks: 8, Stat: upgrade.StatArmor, PerStack: 0.1},
		{ID: "medkit", Price: 1, MaxStacks: 3, Stat: upgrade.StatMedkitHeal, PerStack: 50},
	})
	require.NoError(t, err)
	s := world.NewSession(world.DefaultParams(), cat, rng.NewSequence(draws...), event.NewBus())
	s.BeginWave(1, world.LevelTuning{Level: 1, Columns: 1, Rows: 1, EnemySpeed: 30, BulletSpeed: 240, FireChance: 0.25, HealthMultiplier: 1, DamageMultiplier: 1})
	s.State = world.StatePlaying
	return s
}

func addInvader(s *world.Session, x, y, health float64) *world.Invader {
	iv := &world.Invader{X: x, Y: y, W: world.InvaderW, H: world.InvaderH, Health: health, BaseMaxHealth: health, MaxHealth: health, ScoreValue: 100, Tuning: s.Tuning}
	s.AddInvader(iv)
	return iv
}

func TestPierceBulletHitsThreeAlignedInvaders(t *testing.T) {
	s := newSession(t, 0.99)
	col := NewCollisionSystem(s)
	ivs := []*world.Invader{
		addInvader(s, 100, 100, 20),
		addInvader(s, 100, 130, 20),
		addInvader(s, 100, 160, 20),
	}
	b := &world.Bullet{X: 118, Y: 170, Pierce: 2, DamageScale: 1, Owner: world.OwnerPlayer, Active: true}
	s.Bullets = append(s.Bullets, b)

	col.Update(frame)
	assert.False(t, ivs[2].Alive())
	assert.True(t, b.Active)

	b.Y = 140
	col.Update(frame)
	assert.False(t, ivs[1].Alive())
	assert.True(t, b.Active, "one pierce left")

	b.Y = 110
	col.Update(frame)
	assert.False(t, ivs[0].Alive())
	assert.False(t, b.Active, "deactivates only after the third hit")
	assert.Equal(t, 300, s.Score)
}

func TestBulletNeverHitsSameInvaderTwice(t *testing.T) {
	s := newSession(t, 0.99)
	col := NewCollisionSystem(s)
	iv := addInvader(s, 100, 100, 1000)
	b := &world.Bullet{X: 118, Y: 110, Pierce: 3, DamageScale: 1, Owner: world.OwnerPlayer, Active: true}
	s.Bullets = append(s.Bullets, b)

	col.Update(frame)
	col.Update(frame)
	assert.Equal(t, 975.0, iv.Health)
	assert.Equal(t, 2, b.Pierce)
}

func TestDroneAndPowerDamageScale(t *testing.T) {
	s := newSession(t, 0.99)
	col := NewCollisionSystem(s)
	iv := addInvader(s, 100, 100, 1000)
	s.Player.DamageBoost = 1
	s.Bullets = append(s.Bullets, &world.Bullet{X: 118, Y: 110, DamageScale: 0.5, Owner: world.OwnerPlayer, Active: true})

	col.Update(frame)
	assert.Equal(t, 975.0, iv.Health, "half damage doubled by the power-up")
}

func TestShockStunsOnRoll(t *testing.T) {
	s := newSession(t, 0.1)
	_, err := s.Upgrades.Add("shock")
	require.NoError(t, err)
	iv := addInvader(s, 100, 100, 1000)
	s.Bullets = append(s.Bullets, &world.Bullet{X: 118, Y: 110, DamageScale: 1, Owner: world.OwnerPlayer, Active: true})

	NewCollisionSystem(s).Update(frame)
	assert.Equal(t, world.StunDuration, iv.Stun)
}

func TestEnemyBulletDamageUsesFormula(t *testing.T) {
	s := newSession(t, 0.99)
	s.Tuning.DamageMultiplier = 2
	for i := 0; i < 3; i++ {
		_, err := s.Upgrades.Add("armor")
		require.NoError(t, err)
	}
	px, py := s.Player.Center()
	b := &world.Bullet{X: px, Y: py, Owner: world.OwnerEnemy, Active: true}
	s.Bullets = append(s.Bullets, b)

	NewCollisionSystem(s).Update(frame)
	assert.InDelta(t, 1000-50*2*0.7, s.Player.Health, 1e-9)
	assert.False(t, b.Active)
}

func TestInvincibleShipTakesNoDamage(t *testing.T) {
	s := newSession(t, 0.99)
	s.Player.Invincible = 1
	px, py := s.Player.Center()
	s.Bullets = append(s.Bullets, &world.Bullet{X: px, Y: py, Owner: world.OwnerEnemy, Active: true})
	addInvader(s, s.Player.X, s.Player.Y, 100)

	NewCollisionSystem(s).Update(frame)
	assert.Equal(t, 1000.0, s.Player.Health)
}

func TestLaserHitsOncePerBeam(t *testing.T) {
	s := newSession(t, 0.99)
	px, _ := s.Player.Center()
	s.Laser = &world.Laser{X: px, Y: 0, Width: 6, Length: s.Params.Height, Time: 0.2}
	col := NewCollisionSystem(s)

	col.Update(frame)
	col.Update(frame)
	assert.Equal(t, 950.0, s.Player.Health)
}

func TestLandingCostsHealthAndNoScore(t *testing.T) {
	s := newSession(t, 0.99)
	iv := addInvader(s, 400, s.Params.Height+1, 100)

	NewCollisionSystem(s).Update(frame)
	assert.False(t, iv.Alive())
	assert.Zero(t, s.Score)
	assert.Equal(t, 850.0, s.Player.Health)
}

func TestPickupsAreIndependent(t *testing.T) {
	s := newSession(t, 0.5)
	pl := s.Player
	pl.Health = 500
	cx, cy := pl.Center()
	s.Pickups[world.PickupMedkit] = &world.Pickup{Kind: world.PickupMedkit, X: cx, Y: cy, Radius: 9}
	require.Nil(t, s.Pickups[world.PickupShield])

	NewPickupSystem(s).Update(frame)
	assert.Equal(t, 650.0, pl.Health, "medkit works without a shield on screen")
	assert.Nil(t, s.Pickups[world.PickupMedkit])

	s.Pickups[world.PickupShield] = &world.Pickup{Kind: world.PickupShield, X: cx, Y: cy, Radius: 14}
	s.Pickups[world.PickupPower] = &world.Pickup{Kind: world.PickupPower, X: cx + 500, Y: cy, Radius: 9}
	NewPickupSystem(s).Update(frame)
	assert.Equal(t, s.Params.ShieldDuration, pl.Invincible)
	require.NotNil(t, s.Pickups[world.PickupPower], "out of reach")
	assert.Greater(t, s.Pickups[world.PickupPower].Pulse, 0.0)
}

func TestSpawnerKeepsOnePerKind(t *testing.T) {
	s := newSession(t, 0.5)
	sp := NewSpawnerSystem(s)
	sp.Update(time.Duration(s.Params.ShieldInterval * float64(time.Second)))
	first := s.Pickups[world.PickupShield]
	require.NotNil(t, first)
	assert.Equal(t, s.Params.ShieldInterval, s.Timers.Shield)

	sp.Update(time.Duration(s.Params.ShieldInterval * float64(time.Second)))
	assert.NotSame(t, first, s.Pickups[world.PickupShield])
	assert.Len(t, s.Bombers, 0)

	sp.Update(time.Duration(s.Params.BomberInterval * float64(time.Second)))
	assert.Len(t, s.Bombers, 1)
}

func TestEnemyBurst(t *testing.T) {
	s := newSession(t, 0)
	iv := addInvader(s, 300, 100, 100)
	en := NewEnemySystem(s)

	en.Update(frame)
	require.Equal(t, 1, iv.BurstShots)
	assert.Empty(t, s.Bullets)

	for i := 0; i < 20; i++ {
		en.Update(frame)
	}
	require.Len(t, s.Bullets, 1)
	b := s.Bullets[0]
	assert.Equal(t, world.OwnerEnemy, b.Owner)
	assert.Greater(t, b.VY, 0.0, "aimed down at the ship")
}

func TestStunnedAndEliteInvadersHoldFire(t *testing.T) {
	s := newSession(t, 0)
	stunned := addInvader(s, 100, 100, 100)
	stunned.Stun = 1
	elite := addInvader(s, 300, 100, 100)
	elite.Role = world.NewEliteRole()

	NewEnemySystem(s).Update(frame)
	assert.Zero(t, stunned.BurstShots)
	assert.Zero(t, elite.BurstShots)
	assert.InDelta(t, 1-1.0/60, stunned.Stun, 1e-9)
}

func TestCleanupPurgesAndFlushes(t *testing.T) {
	s := newSession(t, 0.5)
	live := addInvader(s, 0, 0, 100)
	dead := addInvader(s, 50, 0, 0)
	nan := addInvader(s, 100, 0, 100)
	nan.Health = math.NaN()
	s.Bullets = []*world.Bullet{{Active: true}, {Active: false}}

	NewCleanupSystem(s).Update(frame)
	assert.Equal(t, []*world.Invader{live}, s.Invaders)
	assert.Len(t, s.Bullets, 1)
	assert.False(t, s.Entities.Alive(dead.ID))
	assert.False(t, s.Entities.Alive(nan.ID))
	assert.True(t, s.Entities.Alive(live.ID))
	assert.Zero(t, s.Score)
}

func TestOutcomeChecksDeathBeforeClear(t *testing.T) {
	s := newSession(t)
	ctrl := &fakeController{}
	out := NewOutcomeSystem(s, ctrl)

	out.Update(frame)
	assert.Equal(t, 1, ctrl.clears, "empty roster clears")

	s.Player.Health = 0
	out.Update(frame)
	assert.Equal(t, 1, ctrl.deaths)
	assert.Equal(t, 1, ctrl.clears, "no clear on the frame the ship dies")
}

func TestTriggersRespectCheatFlag(t *testing.T) {
	s := newSession(t)
	ctrl := &fakeController{}
	s.Input = world.Input{CloseShop: true, SkipLevel: true, AddCredit: true}

	NewTriggerSystem(s, ctrl, false).Update(frame)
	assert.Equal(t, 1, ctrl.closed)
	assert.Zero(t, ctrl.jumps)
	assert.Zero(t, ctrl.credits)

	NewTriggerSystem(s, ctrl, true).Update(frame)
	assert.Equal(t, 1, ctrl.jumps)
	assert.Equal(t, 2, ctrl.lastJump)
	assert.Equal(t, 1, ctrl.credits)
}

func TestKillAndClearVisibleInSameFrame(t *testing.T) {
	s := newSession(t, 0.99)
	ctrl := &fakeController{}
	r := coresys.NewRunner()
	r.Register(NewOutcomeSystem(s, ctrl))
	r.Register(NewCleanupSystem(s))
	r.Register(NewCollisionSystem(s))
	r.Register(NewProjectileSystem(s))

	iv := addInvader(s, 100, 100, 10)
	s.Bullets = append(s.Bullets, &world.Bullet{X: 118, Y: 125, VY: -300, DamageScale: 1, Owner: world.OwnerPlayer, Active: true})

	r.Tick(frame)
	assert.False(t, iv.Alive())
	assert.Empty(t, s.Invaders)
	assert.Equal(t, 1, ctrl.clears)
}

func TestOutputFlushesBusAndPublishes(t *testing.T) {
	s := newSession(t)
	var cues []world.Cue
	event.Subscribe(s.Bus, func(c event.Cue) { cues = append(cues, c) })
	var hud world.HUD
	s.Play(world.CueShot)

	NewOutputSystem(s, func(h world.HUD) { hud = h }).Update(frame)
	assert.Equal(t, []world.Cue{world.CueShot}, cues)
	assert.Equal(t, s.Params.StartCredits, hud.Credits)
	assert.Equal(t, world.StatePlaying, hud.State)
}
