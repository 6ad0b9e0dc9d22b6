package poker

import (
	"fmt"
	"strings"
)

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single-character rank symbol.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Suit is a card suit. The numeric order matches deck order.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

const suitChars = "cdhs"

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single-character suit symbol.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitChars[s])
}

// Card is an immutable playing card. Two cards are the same card only
// when rank and suit both match, which is what == compares.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card suit.
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether the card has a legal rank and suit.
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// Less orders cards by rank only.
func (c Card) Less(other Card) bool {
	return c.rank < other.rank
}

// Compare orders cards by rank only: 1 if c ranks higher, -1 if lower, 0 if equal.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank > other.rank:
		return 1
	case c.rank < other.rank:
		return -1
	}
	return 0
}

// String returns two-character notation such as "Ac" or "Td".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Index returns the card's position in deck order: (rank-2)*4 + suit.
func (c Card) Index() int {
	return int(c.rank-Two)*NumSuits + int(c.suit)
}

// CardFromIndex returns the card at deck-order position i (0-51).
func CardFromIndex(i int) Card {
	return Card{rank: Rank(i/NumSuits) + Two, suit: Suit(i % NumSuits)}
}

// SlimCard is a one-byte card holding the deck-order index. The
// precomputed tables store cards in this form.
type SlimCard uint8

// Slim returns the compact form of c.
func (c Card) Slim() SlimCard {
	return SlimCard(c.Index())
}

// Card expands the compact form back into a Card.
func (s SlimCard) Card() Card {
	return CardFromIndex(int(s))
}

// Rank returns the rank of the compact card.
func (s SlimCard) Rank() Rank {
	return Rank(s/NumSuits) + Two
}

// Suit returns the suit of the compact card.
func (s SlimCard) Suit() Suit {
	return Suit(s % NumSuits)
}

// String returns two-character notation for the compact card.
func (s SlimCard) String() string {
	return s.Card().String()
}

// ParseCard parses two-character notation: rank (2-9, T, J, Q, K, A)
// followed by suit (c, d, h, s).
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidCard, s)
	}
	r := strings.IndexByte(rankChars, upper(s[0]))
	if r < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank '%c' in %q", ErrInvalidCard, s[0], s)
	}
	su := strings.IndexByte(suitChars, lower(s[1]))
	if su < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit '%c' in %q", ErrInvalidCard, s[1], s)
	}
	return NewCard(Rank(r)+Two, Suit(su)), nil
}

// ParseCards parses concatenated card notation such as "AcKd7h".
// Spaces are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d of %q is odd", ErrInvalidCard, len(s), s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCard parses a card and panics on error (for tests).
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", s, err))
	}
	return card
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
