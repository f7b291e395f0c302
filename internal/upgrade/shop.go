package upgrade

import (
	"errors"

	"github.com/l1jgo/invaders/internal/rng"
)

var (
	ErrShopClosed          = errors.New("shop is closed")
	ErrNotOffered          = errors.New("upgrade not offered")
	ErrMaxed               = errors.New("upgrade already at max stacks")
	ErrInsufficientCredits = errors.New("not enough credits")
	ErrUnknownUpgrade      = errors.New("unknown upgrade")
)

// OfferCount is how many entries the shop samples when it opens.
const OfferCount = 3

// Offer is a catalog entry priced for the current level.
type Offer struct {
	Definition
	Price  int
	Stacks int
}

// Price scales the base price by one credit every five levels.
func Price(d Definition, level int) int {
	if level < 1 {
		level = 1
	}
	return d.Price + (level-1)/5
}

// DrawOffers samples up to n distinct purchasable definitions.
func DrawOffers(st *State, level int, src rng.Source, n int) []Offer {
	pool := st.Purchasable()
	rng.Shuffle(src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if n > len(pool) {
		n = len(pool)
	}
	offers := make([]Offer, 0, n)
	for _, d := range pool[:n] {
		offers = append(offers, Offer{Definition: d, Price: Price(d, level), Stacks: st.Stacks(d.ID)})
	}
	return offers
}

// Receipt describes an accepted purchase; Stacks is the count after it.
// The caller deducts Price.
type Receipt struct {
	Offer
}

// Shop holds the offers of one between-wave visit.
type Shop struct {
	open   bool
	offers []Offer
}

func (sh *Shop) IsOpen() bool { return sh.open }

// Open samples fresh offers. It returns false if the shop is already open.
func (sh *Shop) Open(st *State, level int, src rng.Source) bool {
	if sh.open {
		return false
	}
	sh.open = true
	sh.offers = DrawOffers(st, level, src, OfferCount)
	return true
}

// Close returns false if the shop was not open.
func (sh *Shop) Close() bool {
	if !sh.open {
		return false
	}
	sh.open = false
	sh.offers = nil
	return true
}

// Offers returns the current offers with up-to-date stack counts.
func (sh *Shop) Offers(st *State) []Offer {
	out := make([]Offer, len(sh.offers))
	for i, o := range sh.offers {
		o.Stacks = st.Stacks(o.ID)
		out[i] = o
	}
	return out
}

// Purchase validates and applies one stack of id. On error nothing changes.
func (sh *Shop) Purchase(st *State, id string, credits int) (Receipt, error) {
	if !sh.open {
		return Receipt{}, ErrShopClosed
	}
	if _, ok := st.Catalog().Get(id); !ok {
		return Receipt{}, ErrUnknownUpgrade
	}
	var offer *Offer
	for i := range sh.offers {
		if sh.offers[i].ID == id {
			offer = &sh.offers[i]
			break
		}
	}
	if offer == nil {
		return Receipt{}, ErrNotOffered
	}
	if st.Maxed(id) {
		return Receipt{}, ErrMaxed
	}
	if credits < offer.Price {
		return Receipt{}, ErrInsufficientCredits
	}
	stacks, err := st.Add(id)
	if err != nil {
		return Receipt{}, err
	}
	r := Receipt{Offer: *offer}
	r.Stacks = stacks
	return r, nil
}
