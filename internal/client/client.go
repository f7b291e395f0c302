// Package client adapts a game.Game to ebiten: it samples the keyboard,
// advances the simulation once per tick and draws the world with vector
// shapes and debug text.
package client

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/l1jgo/invaders/internal/game"
	"github.com/l1jgo/invaders/internal/hud"
)

// Client implements ebiten.Game.
type Client struct {
	game   *game.Game
	text   *hud.Formatter
	log    *zap.Logger
	width  int
	height int
}

func New(g *game.Game, log *zap.Logger) *Client {
	p := g.World().Params
	return &Client{
		game:   g,
		text:   hud.NewFormatter(language.English),
		log:    log,
		width:  int(p.Width),
		height: int(p.Height),
	}
}

// Run opens the window and blocks until it closes.
func (c *Client) Run(title string, scale float64, tps int) error {
	ebiten.SetWindowSize(int(float64(c.width)*scale), int(float64(c.height)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(c)
}

func (c *Client) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}
	in := c.handleKeys()
	c.game.Advance(time.Second/time.Duration(ebiten.TPS()), in)
	return nil
}

func (c *Client) Draw(screen *ebiten.Image) {
	c.drawWorld(screen)
	c.drawHUD(screen)
}

func (c *Client) Layout(_, _ int) (int, int) {
	return c.width, c.height
}
