package deck

import (
	rand "math/rand/v2"
)

// Deck is the 52-card universe minus an exclusion set, supporting
// draw-without-replacement. A Deck is scoped to a single simulation trial
// or hand-completion context; it is never shared mutably across trials.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds a deck containing every card not in excluded. The RNG is
// injected so draws are reproducible with a seeded source.
func NewDeck(rng *rand.Rand, excluded ...Card) *Deck {
	skip := make(map[Card]bool, len(excluded))
	for _, card := range excluded {
		skip[card] = true
	}

	d := &Deck{
		cards: make([]Card, 0, 52-len(skip)),
		rng:   rng,
	}
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			card := Card{Rank: rank, Suit: suit}
			if !skip[card] {
				d.cards = append(d.cards, card)
			}
		}
	}
	return d
}

// Draw removes and returns a uniformly random remaining card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrInsufficientCards
	}

	i := d.rng.IntN(len(d.cards))
	card := d.cards[i]
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// DrawN draws n random cards without replacement
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrInsufficientCards
	}

	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Remaining returns the number of cards left in the pool
func (d *Deck) Remaining() int {
	return len(d.cards)
}
