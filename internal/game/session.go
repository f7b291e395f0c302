package game

import (
	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/world"
)

// Start leaves the start screen. It spends one credit and drops the ship in.
func (g *Game) Start() bool {
	s := g.sess
	if s.State != world.StateStart || s.Credits <= 0 {
		return false
	}
	s.Credits--
	g.reset(true)
	s.State = world.StatePlaying
	g.log.Info("session started", zap.Int("credits", s.Credits))
	return true
}

// Respawn restarts from wave 1 once the game-over countdown has finished.
// After a death it is free because the death already took a credit; after
// a win it costs one.
func (g *Game) Respawn() bool {
	s := g.sess
	if s.State != world.StateGameOver || s.GameOverTimer > 0 || s.Credits <= 0 {
		return false
	}
	if s.Won {
		s.Credits--
	}
	g.reset(false)
	s.State = world.StatePlaying
	g.log.Info("session respawned", zap.Int("credits", s.Credits))
	return true
}

// PlayerDied ends the run. The credit and the explosion happen once per death.
func (g *Game) PlayerDied() {
	s := g.sess
	s.Player.Health = 0
	if s.State != world.StateGameOver {
		s.State = world.StateGameOver
		s.GameOverTimer = s.Params.GameOverDelay
	}
	if !s.DeathProcessed {
		s.Credits = max(0, s.Credits-1)
		s.DeathProcessed = true
		event.Emit(s.Bus, event.PlayerDied{Level: s.Level, Score: s.Score, Credits: s.Credits})
		g.log.Info("player died",
			zap.Int("level", s.Level),
			zap.Int("score", s.Score),
			zap.Int("credits", s.Credits),
		)
	}
	if !s.ExplosionTriggered {
		s.Explode(s.Player.Center())
		s.ExplosionTriggered = true
	}
}

// WaveCleared pays out and moves to the shop, or ends the session with a
// win after the last level.
func (g *Game) WaveCleared() {
	s := g.sess
	if s.State != world.StatePlaying {
		return
	}
	s.Credits += s.Params.CreditsPerWave
	s.ClearTransients()
	event.Emit(s.Bus, event.WaveCleared{Level: s.Level, Credits: s.Credits})
	g.log.Info("wave cleared", zap.Int("level", s.Level), zap.Int("credits", s.Credits))

	if s.Level >= s.Params.MaxLevel {
		s.State = world.StateGameOver
		s.Won = true
		s.GameOverTimer = s.Params.GameOverDelay
		event.Emit(s.Bus, event.SessionWon{Score: s.Score})
		g.log.Info("session won", zap.Int("score", s.Score))
		return
	}
	s.State = world.StateIntermission
	s.TransitionTimer = s.Params.ShopDelay
}

// JumpToLevel is the level-skip cheat. It wipes every transient entity and
// pending timer before spawning the clamped level.
func (g *Game) JumpToLevel(level int) bool {
	s := g.sess
	if s.State == world.StateStart || s.State == world.StateGameOver {
		return false
	}
	level = max(1, min(level, s.Params.MaxLevel))
	s.Shop.Close()
	s.ClearTransients()
	s.TransitionTimer = 0
	s.DropShip = nil
	s.Player.BurstShots = 0
	s.Player.BurstDelay = 0
	g.waves.Spawn(s, level)
	s.State = world.StatePlaying
	g.log.Info("level jump", zap.Int("level", level))
	return true
}

// AddCredit is the free-credit cheat.
func (g *Game) AddCredit() {
	g.sess.Credits++
	g.log.Info("credit added", zap.Int("credits", g.sess.Credits))
}
