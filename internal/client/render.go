package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/l1jgo/invaders/internal/hud"
	"github.com/l1jgo/invaders/internal/world"
)

var (
	colorBackground = color.RGBA{8, 8, 20, 255}
	colorPlayer     = color.RGBA{80, 220, 120, 255}
	colorShielded   = color.RGBA{120, 200, 255, 255}
	colorBoosted    = color.RGBA{255, 200, 60, 255}
	colorInvader    = color.RGBA{220, 220, 220, 255}
	colorLeader     = color.RGBA{255, 140, 40, 255}
	colorShieldRole = color.RGBA{80, 160, 255, 255}
	colorHealer     = color.RGBA{120, 255, 160, 255}
	colorElite      = color.RGBA{220, 50, 220, 255}
	colorStunned    = color.RGBA{255, 255, 120, 255}
	colorShotPlayer = color.RGBA{140, 255, 140, 255}
	colorShotEnemy  = color.RGBA{255, 90, 90, 255}
	colorBomb       = color.RGBA{255, 120, 0, 255}
	colorBomber     = color.RGBA{180, 60, 60, 255}
	colorLaser      = color.RGBA{255, 60, 255, 200}
	colorDrone      = color.RGBA{100, 255, 220, 255}
	colorDropShip   = color.RGBA{90, 90, 120, 255}
	colorSpark      = color.RGBA{255, 180, 80, 255}
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealthFill = color.RGBA{0, 220, 0, 255}
	colorPanel      = color.RGBA{0, 0, 0, 180}

	pickupColors = map[world.PickupKind]color.RGBA{
		world.PickupShield: {120, 200, 255, 255},
		world.PickupMedkit: {255, 80, 80, 255},
		world.PickupPower:  {255, 220, 60, 255},
	}
)

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func fillCircle(dst *ebiten.Image, x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), clr, true)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := uint8(float64(c.A) * max(0, min(1, alpha)))
	return color.RGBA{uint8(uint16(c.R) * uint16(a) / 255), uint8(uint16(c.G) * uint16(a) / 255), uint8(uint16(c.B) * uint16(a) / 255), a}
}

func (c *Client) drawWorld(screen *ebiten.Image) {
	s := c.game.World()
	screen.Fill(colorBackground)

	for _, st := range s.Stars {
		fillCircle(screen, st.X, st.Y, st.Radius, fade(color.RGBA{255, 255, 255, 255}, st.Alpha))
	}

	for _, iv := range s.Invaders {
		if !iv.Alive() {
			continue
		}
		clr := invaderColor(iv)
		if iv.MaxHealth > iv.BaseMaxHealth {
			fillRect(screen, iv.X-2, iv.Y-2, iv.W+4, iv.H+4, colorShieldRole)
		}
		fillRect(screen, iv.X, iv.Y, iv.W, iv.H, clr)
		if iv.Health < iv.MaxHealth {
			fillRect(screen, iv.X, iv.Y-5, iv.W, 3, colorHealthBack)
			fillRect(screen, iv.X, iv.Y-5, iv.W*iv.Health/iv.MaxHealth, 3, colorHealthFill)
		}
	}

	if l := s.Laser; l != nil {
		fillRect(screen, l.X-l.Width/2, l.Y, l.Width, l.Length, colorLaser)
	}
	for _, b := range s.Bombers {
		fillRect(screen, b.X, b.Y, b.W, b.H, colorBomber)
	}
	for _, b := range s.Bombs {
		fillCircle(screen, b.X, b.Y, b.Radius, colorBomb)
	}
	for _, b := range s.Bullets {
		clr := colorShotEnemy
		if b.Owner == world.OwnerPlayer {
			clr = colorShotPlayer
		}
		fillCircle(screen, b.X, b.Y, b.Radius, clr)
	}
	for _, p := range s.Pickups {
		if p != nil {
			fillCircle(screen, p.X, p.Y, p.Radius, pickupColors[p.Kind])
		}
	}

	if d := s.DropShip; d != nil {
		fillRect(screen, d.X, d.Y, d.W, d.H, colorDropShip)
	}
	if s.Player.Health > 0 {
		c.drawPlayer(screen, s)
	}

	for _, e := range s.Explosions {
		for _, p := range e.Particles {
			fillCircle(screen, p.X, p.Y, p.Size/2, fade(colorSpark, p.Life/p.MaxLife))
		}
	}
}

func (c *Client) drawPlayer(screen *ebiten.Image, s *world.Session) {
	p := s.Player
	clr := colorPlayer
	if p.DamageBoost > 0 {
		clr = colorBoosted
	}
	if p.Invincible > 0 {
		cx, cy := p.Center()
		fillCircle(screen, cx, cy, p.W*0.7, fade(colorShielded, 0.35))
	}
	fillRect(screen, p.X, p.Y, p.W, p.H, clr)
	fillRect(screen, p.X+p.W/2-3, p.Y-6, 6, 6, clr)
	if d := s.Drone; d != nil {
		fillCircle(screen, d.X, d.Y, 6, colorDrone)
	}
}

func invaderColor(iv *world.Invader) color.RGBA {
	switch {
	case iv.Stunned():
		return colorStunned
	case iv.Elite():
		return colorElite
	case iv.Is(world.RoleLeader):
		return colorLeader
	case iv.Is(world.RoleShieldBuffer):
		return colorShieldRole
	case iv.Is(world.RoleHealer):
		return colorHealer
	}
	return colorInvader
}

func (c *Client) drawHUD(screen *ebiten.Image) {
	h := c.game.HUD()
	st := c.text.Status(h)

	ebitenutil.DebugPrintAt(screen, st.Score, 10, 8)
	ebitenutil.DebugPrintAt(screen, st.Level, c.width/2-30, 8)
	ebitenutil.DebugPrintAt(screen, st.Credits, c.width-100, 8)

	barW := 200.0
	fillRect(screen, 10, 26, barW, 8, colorHealthBack)
	fillRect(screen, 10, 26, barW*hud.HealthFraction(h), 8, colorHealthFill)
	ebitenutil.DebugPrintAt(screen, st.Health, 220, 22)

	title, hint := c.text.Banner(h)
	if title == "" {
		return
	}
	panelY := float64(c.height)/2 - 70
	fillRect(screen, 0, panelY, float64(c.width), 140, colorPanel)
	ebitenutil.DebugPrintAt(screen, title, c.width/2-len(title)*3, int(panelY)+16)
	ebitenutil.DebugPrintAt(screen, hint, c.width/2-len(hint)*3, int(panelY)+112)

	if h.State == world.StateShop {
		for i, o := range c.game.CurrentOffers() {
			ebitenutil.DebugPrintAt(screen, c.text.Offer(i+1, o), c.width/2-180, int(panelY)+42+i*20)
		}
	}
}
