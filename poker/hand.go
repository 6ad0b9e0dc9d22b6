package poker

import (
	"fmt"
	"math"
)

// NumHands is the number of distinct two-card combinations in a deck.
const NumHands = DeckSize * (DeckSize - 1) / 2

// Hand is a pair of hole cards. The two cards are in no particular order.
type Hand struct {
	Primary   Card
	Secondary Card
}

// NewHand builds a hand from two distinct cards.
func NewHand(primary, secondary Card) (Hand, error) {
	if primary == secondary {
		return Hand{}, fmt.Errorf("%w: %s appears twice in hand", ErrDuplicateCard, primary)
	}
	return Hand{Primary: primary, Secondary: secondary}, nil
}

// ParseHand parses four-character notation such as "Ac5c".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("%w: got %d in %q", ErrHandSize, len(cards), s)
	}
	return NewHand(cards[0], cards[1])
}

// MustParseHand parses a hand and panics on error (for tests).
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return h
}

// Cards returns both hole cards.
func (h Hand) Cards() [2]Card {
	return [2]Card{h.Primary, h.Secondary}
}

// Contains reports whether c is one of the hole cards.
func (h Hand) Contains(c Card) bool {
	return h.Primary == c || h.Secondary == c
}

// IsSuited reports whether both cards share a suit.
func (h Hand) IsSuited() bool {
	return h.Primary.Suit() == h.Secondary.Suit()
}

// IsPair reports whether both cards share a rank.
func (h Hand) IsPair() bool {
	return h.Primary.Rank() == h.Secondary.Rank()
}

// Index maps the hand onto a dense index in [0, NumHands). For card
// indices i > j the index is i*(i-1)/2 + j, so the order of the two
// cards does not matter.
func (h Hand) Index() int {
	return PairIndex(h.Primary.Index(), h.Secondary.Index())
}

// PairIndex is the triangular bijection behind Hand.Index for two
// distinct deck indices.
func PairIndex(a, b int) int {
	if a < b {
		a, b = b, a
	}
	return a*(a-1)/2 + b
}

// HandFromIndex inverts Hand.Index. The higher card is returned as Primary.
func HandFromIndex(idx int) Hand {
	// Largest i with i*(i-1)/2 <= idx.
	i := int((1 + math.Sqrt(float64(1+8*idx))) / 2)
	for i*(i-1)/2 > idx {
		i--
	}
	for (i+1)*i/2 <= idx {
		i++
	}
	j := idx - i*(i-1)/2
	return Hand{Primary: CardFromIndex(i), Secondary: CardFromIndex(j)}
}

// String returns four-character notation such as "Ac5c".
func (h Hand) String() string {
	return h.Primary.String() + h.Secondary.String()
}
