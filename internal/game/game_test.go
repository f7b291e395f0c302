package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/rng"
	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

const frame = 16 * time.Millisecond

type cueRecorder struct{ cues []world.Cue }

func (r *cueRecorder) PlayCue(c world.Cue) { r.cues = append(r.cues, c) }

type hudRecorder struct{ huds []world.HUD }

func (r *hudRecorder) UpdateHUD(h world.HUD) { r.huds = append(r.huds, h) }

func testCatalog(t *testing.T) *upgrade.Catalog {
	t.Helper()
	cat, err := upgrade.NewCatalog([]upgrade.Definition{
		{ID: "hull", Name: "Hull", Price: 1, MaxStacks: 2, Stat: upgrade.StatMaxHealth, PerStack: 200},
		{ID: "drone", Name: "Drone", Price: 3, MaxStacks: 1, Stat: upgrade.StatDrone, PerStack: 1},
		{ID: "damage", Name: "Damage", Price: 1, MaxStacks: 5, Stat: upgrade.StatDamage, PerStack: 0.2},
		{ID: "armor", Name: "Armor", Price: 1, MaxStacks: 8, Stat: upgrade.StatArmor, PerStack: 0.1},
	})
	require.NoError(t, err)
	return cat
}

// newTestGame uses draws of 0.99: enemies never fire and the offer
// shuffle keeps catalog order.
func newTestGame(t *testing.T, mutate func(*world.Params)) *Game {
	t.Helper()
	p := world.DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	g, err := New(Options{
		Params:  p,
		Catalog: testCatalog(t),
		Rand:    rng.NewSequence(0.99),
		Log:     zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return g
}

func advance(g *Game, frames int) {
	for i := 0; i < frames; i++ {
		g.Advance(frame, world.Input{})
	}
}

func killWave(g *Game) {
	for _, iv := range g.World().Invaders {
		iv.Health = 0
	}
}

func clearToShop(t *testing.T, g *Game) {
	t.Helper()
	killWave(g)
	advance(g, 1)
	require.Equal(t, world.StateIntermission, g.World().State)
	advance(g, 80)
	require.Equal(t, world.StateShop, g.World().State)
}

func TestNewRequiresCatalog(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestStartSpendsCreditAndDropsIn(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.World()
	require.Equal(t, world.StateStart, s.State)
	require.Equal(t, 3, s.Credits)

	require.True(t, g.Start())
	assert.Equal(t, world.StatePlaying, s.State)
	assert.Equal(t, 2, s.Credits)
	assert.Equal(t, 1, s.Level)
	assert.True(t, s.Player.DropIn)
	assert.NotNil(t, s.DropShip)
	assert.Len(t, s.Invaders, 16)
	assert.Equal(t, 16, s.Initial)

	assert.False(t, g.Start(), "already playing")
}

func TestStartWithoutCredits(t *testing.T) {
	g := newTestGame(t, func(p *world.Params) { p.StartCredits = 0 })
	assert.False(t, g.Start())
	assert.Equal(t, world.StateStart, g.World().State)
}

func TestStartScreenOnlyPublishesHUD(t *testing.T) {
	huds := &hudRecorder{}
	g, err := New(Options{Catalog: testCatalog(t), Rand: rng.NewSequence(0.99), HUD: huds})
	require.NoError(t, err)
	before := g.World().Invaders[0].X

	advance(g, 30)
	assert.Len(t, huds.huds, 30)
	assert.Equal(t, world.StateStart, huds.huds[29].State)
	assert.Equal(t, before, g.World().Invaders[0].X, "formation frozen on the start screen")
}

func TestAdvanceClampsStep(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	s := g.World()
	x := s.Player.X
	s.Player.DropIn = false

	g.Advance(5*time.Second, world.Input{Right: true})
	moved := s.Player.X - x
	assert.Greater(t, moved, 0.0)
	assert.LessOrEqual(t, moved, s.Player.Speed*MaxStep.Seconds()+1e-9)

	x = s.Player.X
	g.Advance(-time.Second, world.Input{Right: true})
	assert.Equal(t, x, s.Player.X)
}

func TestWaveClearOpensShopOnce(t *testing.T) {
	g := newTestGame(t, nil)
	var opened, cleared int
	event.Subscribe(g.Bus(), func(event.ShopOpened) { opened++ })
	event.Subscribe(g.Bus(), func(event.WaveCleared) { cleared++ })
	require.True(t, g.Start())

	clearToShop(t, g)
	advance(g, 60)

	s := g.World()
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, cleared)
	assert.Equal(t, 4, s.Credits)
	assert.Len(t, g.CurrentOffers(), upgrade.OfferCount)
	assert.False(t, g.OpenShop(), "already in the shop")
}

func TestOpenShopSkipsDelay(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	killWave(g)
	advance(g, 1)
	require.Equal(t, world.StateIntermission, g.World().State)

	assert.True(t, g.OpenShop())
	assert.Equal(t, world.StateShop, g.World().State)
}

func TestCloseShopSpawnsNextLevel(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	clearToShop(t, g)

	require.True(t, g.CloseShop())
	s := g.World()
	assert.Equal(t, world.StatePlaying, s.State)
	assert.Equal(t, 2, s.Level)
	assert.NotEmpty(t, s.Invaders)
	assert.Equal(t, s.Params.ShieldInterval, s.Timers.Shield)
	assert.Empty(t, g.CurrentOffers())
	assert.False(t, g.CloseShop())
}

func TestCloseShopFromInput(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	clearToShop(t, g)

	g.Advance(frame, world.Input{CloseShop: true})
	assert.Equal(t, world.StatePlaying, g.World().State)
	assert.Equal(t, 2, g.World().Level)
}

func TestPurchase(t *testing.T) {
	cues := &cueRecorder{}
	g, err := New(Options{Catalog: testCatalog(t), Rand: rng.NewSequence(0.99), Cues: cues, Log: zaptest.NewLogger(t)})
	require.NoError(t, err)
	var bought []event.UpgradePurchased
	event.Subscribe(g.Bus(), func(e event.UpgradePurchased) { bought = append(bought, e) })
	require.True(t, g.Start())
	clearToShop(t, g)
	s := g.World()
	require.Equal(t, 4, s.Credits)

	offers := g.CurrentOffers()
	require.Len(t, offers, 3)
	assert.Equal(t, []string{"hull", "drone", "damage"}, []string{offers[0].ID, offers[1].ID, offers[2].ID})

	s.Player.Health = 500
	require.NoError(t, g.Purchase("hull"))
	assert.Equal(t, 3, s.Credits)
	assert.Equal(t, 1200.0, s.MaxHealth())
	assert.Equal(t, 700.0, s.Player.Health, "healed by the max-health delta")

	require.NoError(t, g.Purchase("drone"))
	assert.Equal(t, 0, s.Credits)
	assert.NotNil(t, s.Drone)

	assert.ErrorIs(t, g.Purchase("damage"), upgrade.ErrInsufficientCredits)
	assert.ErrorIs(t, g.Purchase("armor"), upgrade.ErrNotOffered)
	assert.ErrorIs(t, g.Purchase("nope"), upgrade.ErrUnknownUpgrade)
	assert.Equal(t, 0, s.Credits)
	assert.Equal(t, 0, s.Upgrades.Stacks("damage"))

	advance(g, 1)
	require.Len(t, bought, 2)
	assert.Equal(t, event.UpgradePurchased{ID: "hull", Stacks: 1, Price: 1}, bought[0])
	assert.Contains(t, cues.cues, world.CuePurchase)
}

func TestPurchaseMaxedBinary(t *testing.T) {
	g := newTestGame(t, func(p *world.Params) { p.StartCredits = 10 })
	require.True(t, g.Start())
	clearToShop(t, g)

	require.NoError(t, g.Purchase("drone"))
	credits := g.World().Credits
	assert.ErrorIs(t, g.Purchase("drone"), upgrade.ErrMaxed)
	assert.Equal(t, credits, g.World().Credits)
}

func TestPurchaseOutsideShop(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	assert.ErrorIs(t, g.Purchase("hull"), upgrade.ErrShopClosed)
	assert.Equal(t, 2, g.World().Credits)
}

func TestDeathConsumesOneCredit(t *testing.T) {
	g := newTestGame(t, nil)
	var died int
	event.Subscribe(g.Bus(), func(event.PlayerDied) { died++ })
	require.True(t, g.Start())
	s := g.World()

	s.Player.Health = 0
	advance(g, 1)
	assert.Equal(t, world.StateGameOver, s.State)
	assert.Equal(t, 1, s.Credits)
	assert.Len(t, s.Explosions, 1)

	g.PlayerDied()
	advance(g, 10)
	assert.Equal(t, 1, s.Credits)
	assert.Equal(t, 1, died)
	assert.Len(t, s.Explosions, 1)
	assert.False(t, g.HUD().CanRespawn, "countdown still running")
}

func TestRespawnAfterDeathIsFree(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	s := g.World()
	s.Score = 900
	s.Player.Health = 0
	advance(g, 1)
	require.Equal(t, 1, s.Credits)

	assert.False(t, g.Respawn(), "countdown still running")
	advance(g, 200)
	require.True(t, g.HUD().CanRespawn)

	require.True(t, g.Respawn())
	assert.Equal(t, world.StatePlaying, s.State)
	assert.Equal(t, 1, s.Credits)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.False(t, s.Player.DropIn)
	assert.False(t, s.DeathProcessed)
}

func TestRespawnNeedsCredits(t *testing.T) {
	g := newTestGame(t, func(p *world.Params) { p.StartCredits = 1 })
	require.True(t, g.Start())
	g.World().Player.Health = 0
	advance(g, 200)
	assert.Equal(t, 0, g.World().Credits)
	assert.False(t, g.Respawn())
}

func TestWinAfterLastLevel(t *testing.T) {
	g := newTestGame(t, func(p *world.Params) { p.MaxLevel = 2 })
	var won int
	event.Subscribe(g.Bus(), func(event.SessionWon) { won++ })
	require.True(t, g.Start())
	clearToShop(t, g)
	require.True(t, g.CloseShop())

	killWave(g)
	advance(g, 1)
	s := g.World()
	assert.Equal(t, world.StateGameOver, s.State)
	assert.True(t, s.Won)
	assert.Equal(t, 1, won)
	assert.Equal(t, 6, s.Credits)

	advance(g, 200)
	require.True(t, g.Respawn())
	assert.Equal(t, 5, s.Credits, "a new run after a win costs a credit")
	assert.False(t, s.Won)
}

func TestJumpToLevelClearsTransients(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	s := g.World()
	s.Bullets = append(s.Bullets, &world.Bullet{})
	s.Bombs = append(s.Bombs, &world.LeaderBomb{})
	s.Bombers = append(s.Bombers, &world.Bomber{})
	s.Pickups[world.PickupMedkit] = &world.Pickup{}
	s.Laser = &world.Laser{}
	s.Timers.Shield = 0.1

	require.True(t, g.JumpToLevel(500))
	assert.Equal(t, s.Params.MaxLevel, s.Level)
	assert.Empty(t, s.Bullets)
	assert.Empty(t, s.Bombs)
	assert.Empty(t, s.Bombers)
	assert.Nil(t, s.Pickups[world.PickupMedkit])
	assert.Nil(t, s.Laser)
	assert.Nil(t, s.DropShip)
	assert.Equal(t, s.Params.ShieldInterval, s.Timers.Shield)
	assert.NotEmpty(t, s.Invaders)

	require.True(t, g.JumpToLevel(0))
	assert.Equal(t, 1, s.Level)
}

func TestJumpToLevelFromShop(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	clearToShop(t, g)

	require.True(t, g.JumpToLevel(7))
	assert.Equal(t, world.StatePlaying, g.World().State)
	assert.Equal(t, 7, g.World().Level)
	assert.Empty(t, g.CurrentOffers())
}

func TestJumpToLevelRejectedBeforeStart(t *testing.T) {
	g := newTestGame(t, nil)
	assert.False(t, g.JumpToLevel(3))
	assert.Equal(t, 1, g.World().Level)
}

func TestCheatTriggersNeedCheats(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.Start())
	g.Advance(frame, world.Input{AddCredit: true, SkipLevel: true})
	assert.Equal(t, 2, g.World().Credits)
	assert.Equal(t, 1, g.World().Level)

	g2, err := New(Options{Catalog: testCatalog(t), Rand: rng.NewSequence(0.99), Cheats: true})
	require.NoError(t, err)
	require.True(t, g2.Start())
	g2.Advance(frame, world.Input{AddCredit: true, SkipLevel: true})
	assert.Equal(t, 3, g2.World().Credits)
	assert.Equal(t, 2, g2.World().Level)
}
