package upgrade

// State maps upgrade id to owned stacks. Stacks only grow until Reset.
type State struct {
	catalog *Catalog
	stacks  map[string]int
}

func NewState(c *Catalog) *State {
	return &State{
		catalog: c,
		stacks:  make(map[string]int, c.Len()),
	}
}

func (s *State) Catalog() *Catalog { return s.catalog }

func (s *State) Stacks(id string) int { return s.stacks[id] }

// Maxed reports whether id is at its stack limit. Unknown ids count as maxed.
func (s *State) Maxed(id string) bool {
	d, ok := s.catalog.Get(id)
	if !ok {
		return true
	}
	return s.stacks[id] >= d.MaxStacks
}

// Add grants one stack of id and returns the new count.
func (s *State) Add(id string) (int, error) {
	if _, ok := s.catalog.Get(id); !ok {
		return 0, ErrUnknownUpgrade
	}
	if s.Maxed(id) {
		return s.stacks[id], ErrMaxed
	}
	s.stacks[id]++
	return s.stacks[id], nil
}

// Purchasable returns the definitions not yet maxed, in catalog order.
func (s *State) Purchasable() []Definition {
	out := make([]Definition, 0, s.catalog.Len())
	for _, d := range s.catalog.defs {
		if s.stacks[d.ID] < d.MaxStacks {
			out = append(out, d)
		}
	}
	return out
}

// Reset drops every stack.
func (s *State) Reset() {
	for id := range s.stacks {
		delete(s.stacks, id)
	}
}

// Total folds stacks × PerStack over every definition bound to stat.
func (s *State) Total(stat Stat) float64 {
	var sum float64
	for _, d := range s.catalog.defs {
		if d.Stat == stat {
			sum += float64(s.stacks[d.ID]) * d.PerStack
		}
	}
	return sum
}
