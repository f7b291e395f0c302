package data

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/l1jgo/invaders/internal/upgrade"
)

//go:embed upgrades.yaml
var defaultUpgrades []byte

// --- YAML loading ---

type upgradeEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       int     `yaml:"price"`
	MaxStacks   int     `yaml:"max_stacks"`
	Stat        string  `yaml:"stat"`
	PerStack    float64 `yaml:"per_stack"`
}

type upgradeListFile struct {
	Upgrades []upgradeEntry `yaml:"upgrades"`
}

// LoadUpgradeCatalog loads upgrade definitions from YAML.
func LoadUpgradeCatalog(path string) (*upgrade.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upgrades: %w", err)
	}
	return ParseUpgradeCatalog(raw)
}

// ParseUpgradeCatalog decodes and validates a YAML catalog.
func ParseUpgradeCatalog(raw []byte) (*upgrade.Catalog, error) {
	var f upgradeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse upgrades: %w", err)
	}
	defs := make([]upgrade.Definition, 0, len(f.Upgrades))
	for _, e := range f.Upgrades {
		defs = append(defs, upgrade.Definition{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Price:       e.Price,
			MaxStacks:   e.MaxStacks,
			Stat:        upgrade.Stat(e.Stat),
			PerStack:    e.PerStack,
		})
	}
	cat, err := upgrade.NewCatalog(defs)
	if err != nil {
		return nil, fmt.Errorf("parse upgrades: %w", err)
	}
	return cat, nil
}

// DefaultUpgradeCatalog returns the built-in catalog.
func DefaultUpgradeCatalog() *upgrade.Catalog {
	cat, err := ParseUpgradeCatalog(defaultUpgrades)
	if err != nil {
		panic(err) // embedded file is fixed at build time
	}
	return cat
}
