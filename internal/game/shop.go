package game

import (
	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

// OpenShop skips the rest of the intermission delay. It is a no-op outside
// the intermission.
func (g *Game) OpenShop() bool {
	s := g.sess
	if s.State != world.StateIntermission {
		return false
	}
	if !s.Shop.Open(s.Upgrades, s.Level, s.Rand) {
		return false
	}
	s.State = world.StateShop
	s.TransitionTimer = 0

	offers := s.Shop.Offers(s.Upgrades)
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	event.Emit(s.Bus, event.ShopOpened{Level: s.Level, Offers: ids})
	g.log.Info("shop opened", zap.Int("level", s.Level), zap.Strings("offers", ids))
	return true
}

// CurrentOffers lists the open shop's offers, empty when closed.
func (g *Game) CurrentOffers() []upgrade.Offer {
	return g.sess.Shop.Offers(g.sess.Upgrades)
}

// Purchase buys one stack of an offered upgrade. A rejected purchase
// changes nothing and returns one of the upgrade package's sentinel errors.
func (g *Game) Purchase(id string) error {
	s := g.sess
	healthBefore := s.MaxHealth()
	r, err := s.Shop.Purchase(s.Upgrades, id, s.Credits)
	if err != nil {
		g.log.Debug("purchase rejected", zap.String("id", id), zap.Int("credits", s.Credits), zap.Error(err))
		return err
	}
	s.Credits -= r.Price

	switch r.Stat {
	case upgrade.StatMaxHealth:
		s.Player.Heal(s.MaxHealth()-healthBefore, s.MaxHealth())
	case upgrade.StatDrone:
		if s.Drone == nil {
			s.Drone = world.NewDrone(s.Player)
		}
	}

	event.Emit(s.Bus, event.UpgradePurchased{ID: r.ID, Stacks: r.Stacks, Price: r.Price})
	s.Play(world.CuePurchase)
	g.log.Info("upgrade purchased",
		zap.String("id", r.ID),
		zap.Int("stacks", r.Stacks),
		zap.Int("price", r.Price),
		zap.Int("credits", s.Credits),
	)
	return nil
}

// CloseShop leaves the shop and spawns the next wave.
func (g *Game) CloseShop() bool {
	s := g.sess
	if s.State != world.StateShop || !s.Shop.Close() {
		return false
	}
	g.waves.Spawn(s, s.Level+1)
	s.ResetTimers()
	s.State = world.StatePlaying
	g.log.Info("shop closed", zap.Int("level", s.Level))
	return true
}
