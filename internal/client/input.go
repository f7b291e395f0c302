package client

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

var buyKeys = [upgrade.OfferCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handleKeys samples held keys into the frame input and runs the one-shot
// session actions for keys pressed this tick.
func (c *Client) handleKeys() world.Input {
	in := world.Input{
		Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:  pressed(ebiten.KeySpace),

		SkipLevel: inpututil.IsKeyJustPressed(ebiten.KeyN),
		AddCredit: inpututil.IsKeyJustPressed(ebiten.KeyC),
	}

	state := c.game.World().State
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch state {
		case world.StateStart:
			c.game.Start()
		case world.StateIntermission:
			c.game.OpenShop()
		case world.StateShop:
			in.CloseShop = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && state == world.StateGameOver {
		c.game.Respawn()
	}
	if state == world.StateShop {
		offers := c.game.CurrentOffers()
		for i, k := range buyKeys {
			if i >= len(offers) || !inpututil.IsKeyJustPressed(k) {
				continue
			}
			if err := c.game.Purchase(offers[i].ID); err != nil && !errors.Is(err, upgrade.ErrInsufficientCredits) {
				c.log.Warn("purchase failed", zap.String("id", offers[i].ID), zap.Error(err))
			}
		}
	}
	return in
}
