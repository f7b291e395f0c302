package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

func TestStatusGroupsDigits(t *testing.T) {
	f := NewFormatter(language.English)
	s := f.Status(world.HUD{Health: 849.2, MaxHealth: 1200, Score: 1234567, Level: 12, Credits: 3})
	assert.Equal(t, "HP 850 / 1,200", s.Health)
	assert.Equal(t, "SCORE 1,234,567", s.Score)
	assert.Equal(t, "LEVEL 12", s.Level)
	assert.Equal(t, "CREDITS 3", s.Credits)
}

func TestStatusGermanGrouping(t *testing.T) {
	f := NewFormatter(language.German)
	assert.Equal(t, "SCORE 12.500", f.Status(world.HUD{Score: 12500}).Score)
}

func TestBanner(t *testing.T) {
	f := NewFormatter(language.English)

	title, hint := f.Banner(world.HUD{State: world.StatePlaying})
	assert.Empty(t, title)
	assert.Empty(t, hint)

	_, hint = f.Banner(world.HUD{State: world.StateStart, Credits: 0})
	assert.Equal(t, "INSERT CREDIT", hint)

	title, _ = f.Banner(world.HUD{State: world.StateIntermission, Level: 4})
	assert.Equal(t, "LEVEL 4 CLEARED", title)

	title, hint = f.Banner(world.HUD{State: world.StateGameOver, Credits: 2})
	assert.Equal(t, "GAME OVER", title)
	assert.Empty(t, hint)

	title, hint = f.Banner(world.HUD{State: world.StateGameOver, Won: true, CanRespawn: true, Credits: 2})
	assert.Equal(t, "VICTORY", title)
	assert.Equal(t, "PRESS R TO PLAY AGAIN", hint)
}

func TestOfferLine(t *testing.T) {
	f := NewFormatter(language.English)
	stacking := upgrade.Offer{
		Definition: upgrade.Definition{ID: "hull", Name: "Reinforced Hull", MaxStacks: 5},
		Price:      2,
		Stacks:     1,
	}
	binary := upgrade.Offer{
		Definition: upgrade.Definition{ID: "drone", Name: "Escort Drone", MaxStacks: 1},
		Price:      3,
	}
	assert.Equal(t, "[1] Reinforced Hull  2 CR  (1/5)", f.Offer(1, stacking))
	assert.Equal(t, "[3] Escort Drone  3 CR", f.Offer(3, binary))
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, "GAME_OVER", NewFormatter(language.English).StateLabel(world.StateGameOver))
}

func TestHealthFraction(t *testing.T) {
	assert.Equal(t, 0.5, HealthFraction(world.HUD{Health: 500, MaxHealth: 1000}))
	assert.Equal(t, 0.0, HealthFraction(world.HUD{Health: -5, MaxHealth: 1000}))
	assert.Equal(t, 0.0, HealthFraction(world.HUD{Health: 5}))
}
