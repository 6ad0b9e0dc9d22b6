package poker

import (
	"math/rand/v2"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// OrderedCards returns all 52 cards in deck order (2c, 2d, 2h, 2s, 3c, ...).
func OrderedCards() [DeckSize]Card {
	var cards [DeckSize]Card
	for i := range cards {
		cards[i] = CardFromIndex(i)
	}
	return cards
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: OrderedCards(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealHeadsUp shuffles and deals two hands and a complete board.
func (d *Deck) DealHeadsUp() (hero, vill Hand, board Board) {
	d.Shuffle()
	c := d.Deal(2*2 + MaxBoardCards)
	hero = Hand{Primary: c[0], Secondary: c[1]}
	vill = Hand{Primary: c[2], Secondary: c[3]}
	for _, card := range c[4:] {
		board.Push(card)
	}
	return hero, vill, board
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
