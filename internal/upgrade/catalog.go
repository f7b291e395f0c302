package upgrade

import (
	"errors"
	"fmt"
)

// Stat names the gameplay number an upgrade folds into.
type Stat string

const (
	StatDamage         Stat = "damage"
	StatCooldown       Stat = "cooldown"
	StatBurst          Stat = "burst"
	StatPierce         Stat = "pierce"
	StatSpread         Stat = "spread"
	StatShotSpeed      Stat = "shot_speed"
	StatMaxHealth      Stat = "max_health"
	StatArmor          Stat = "armor"
	StatShieldDuration Stat = "shield_duration"
	StatMedkitHeal     Stat = "medkit_heal"
	StatShock          Stat = "shock"
	StatDrone          Stat = "drone"
)

var knownStats = map[Stat]bool{
	StatDamage: true, StatCooldown: true, StatBurst: true, StatPierce: true,
	StatSpread: true, StatShotSpeed: true, StatMaxHealth: true, StatArmor: true,
	StatShieldDuration: true, StatMedkitHeal: true, StatShock: true, StatDrone: true,
}

// Valid reports whether s is a stat the derived-stat functions understand.
func (s Stat) Valid() bool { return knownStats[s] }

// Definition is one purchasable catalog entry. PerStack is added to the
// stat's running total for every owned stack.
type Definition struct {
	ID          string
	Name        string
	Description string
	Price       int
	MaxStacks   int
	Stat        Stat
	PerStack    float64
}

// Binary reports whether the upgrade can only be owned once.
func (d Definition) Binary() bool { return d.MaxStacks == 1 }

// Catalog is an immutable, ordered set of definitions.
type Catalog struct {
	defs []Definition
	byID map[string]int
}

var ErrEmptyCatalog = errors.New("upgrade catalog is empty")

// NewCatalog validates defs and returns a catalog preserving their order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		defs: make([]Definition, 0, len(defs)),
		byID: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("upgrade %q: empty id", d.Name)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("upgrade %s: duplicate id", d.ID)
		}
		if d.Price < 0 {
			return nil, fmt.Errorf("upgrade %s: negative price %d", d.ID, d.Price)
		}
		if d.MaxStacks < 1 {
			return nil, fmt.Errorf("upgrade %s: max_stacks must be at least 1", d.ID)
		}
		if !d.Stat.Valid() {
			return nil, fmt.Errorf("upgrade %s: unknown stat %q", d.ID, d.Stat)
		}
		c.byID[d.ID] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

// Get returns the definition for id.
func (c *Catalog) Get(id string) (Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// All returns a copy of every definition in catalog order.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

func (c *Catalog) Len() int { return len(c.defs) }
