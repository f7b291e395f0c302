// Package hud formats the session summary and shop offers for display.
package hud

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/l1jgo/invaders/internal/upgrade"
	"github.com/l1jgo/invaders/internal/world"
)

// Formatter renders HUD text with locale-aware number grouping.
type Formatter struct {
	p     *message.Printer
	upper cases.Caser
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag), upper: cases.Upper(tag)}
}

// Status is the always-visible top line content.
type Status struct {
	Health  string
	Score   string
	Level   string
	Credits string
}

func (f *Formatter) Status(h world.HUD) Status {
	return Status{
		Health:  f.p.Sprintf("HP %d / %d", int(math.Ceil(h.Health)), int(math.Round(h.MaxHealth))),
		Score:   f.p.Sprintf("SCORE %d", h.Score),
		Level:   f.p.Sprintf("LEVEL %d", h.Level),
		Credits: f.p.Sprintf("CREDITS %d", h.Credits),
	}
}

// Banner returns the centred title and hint for non-playing states. Both
// are empty while playing.
func (f *Formatter) Banner(h world.HUD) (title, hint string) {
	switch h.State {
	case world.StateStart:
		if h.Credits <= 0 {
			return "INVADERS", "INSERT CREDIT"
		}
		return "INVADERS", "PRESS ENTER TO START"
	case world.StateIntermission:
		return f.p.Sprintf("LEVEL %d CLEARED", h.Level), "SHOP OPENING"
	case world.StateShop:
		return "SHOP", "1-3 TO BUY, ENTER TO CONTINUE"
	case world.StateGameOver:
		title = "GAME OVER"
		if h.Won {
			title = "VICTORY"
		}
		switch {
		case h.CanRespawn:
			hint = "PRESS R TO PLAY AGAIN"
		case h.Credits <= 0:
			hint = "NO CREDITS LEFT"
		}
		return title, hint
	}
	return "", ""
}

// StateLabel is the upper-cased state name, used in debug overlays.
func (f *Formatter) StateLabel(s world.State) string {
	return f.upper.String(s.String())
}

// Offer renders one shop line; slot is 1-based.
func (f *Formatter) Offer(slot int, o upgrade.Offer) string {
	if o.Binary() {
		return f.p.Sprintf("[%d] %s  %d CR", slot, o.Name, o.Price)
	}
	return f.p.Sprintf("[%d] %s  %d CR  (%d/%d)", slot, o.Name, o.Price, o.Stacks, o.MaxStacks)
}

// HealthFraction is the health bar fill in [0, 1].
func HealthFraction(h world.HUD) float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, h.Health/h.MaxHealth))
}
