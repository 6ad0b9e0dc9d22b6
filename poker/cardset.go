package poker

import (
	"fmt"
	"math/bits"
)

// CardSet is a set of cards using one bit per deck-order index.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// HandSet returns the set of both hole cards.
func HandSet(h Hand) CardSet {
	return NewCardSet(h.Primary, h.Secondary)
}

// Add adds a card to the set.
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << c.Index()
}

// Contains checks if a card is in the set.
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<c.Index()) != 0
}

// Union returns the cards in either set.
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Intersects reports whether the two sets share a card.
func (cs CardSet) Intersects(other CardSet) bool {
	return cs&other != 0
}

// Len returns the number of cards in the set.
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// ValidateDeal checks that hero, villain and board hold no card twice.
func ValidateDeal(hero, vill Hand, board Board) error {
	var seen CardSet
	check := func(owner string, c Card) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %s card %s", ErrInvalidCard, owner, c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s card %s is already dealt", ErrCardCollision, owner, c)
		}
		seen.Add(c)
		return nil
	}
	for _, c := range hero.Cards() {
		if err := check("hero", c); err != nil {
			return err
		}
	}
	for _, c := range vill.Cards() {
		if err := check("villain", c); err != nil {
			return err
		}
	}
	for i := 0; i < board.Len(); i++ {
		if err := check("board", board.At(i)); err != nil {
			return err
		}
	}
	return nil
}
