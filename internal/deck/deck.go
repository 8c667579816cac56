package deck

import "math/rand/v2"

// Deck is one of the two card piles. Cards holds the remaining draw
// order explicitly, so deck ordering survives a save/load round-trip
// exactly (spec.md §4.5's serialization requirement) rather than
// relying on hidden RNG state.
type Deck struct {
	Kind  Kind   `json:"kind"`
	Cards []Card `json:"cards"`
}

// New creates a deck of the given kind, populated with a freshly
// shuffled copy of its fixed card set.
func New(kind Kind) *Deck {
	d := &Deck{Kind: kind}
	d.reshuffle()
	return d
}

// Draw removes and returns the top card. An empty deck is
// transparently repopulated and reshuffled before the draw, per
// spec.md §4.3 — the deck is never observably empty to a caller.
func (d *Deck) Draw() Card {
	if len(d.Cards) == 0 {
		d.reshuffle()
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c
}

func (d *Deck) reshuffle() {
	template := templateFor(d.Kind)
	cards := make([]Card, len(template))
	copy(cards, template)
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	d.Cards = cards
}
