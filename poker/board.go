package poker

import (
	"fmt"
	"strings"
)

// MaxBoardCards is the number of community cards on a complete board.
const MaxBoardCards = 5

// Street is the stage of community-card reveal. Its value is the number
// of cards on the board.
type Street int

const (
	Preflop Street = 0
	Flop    Street = 3
	Turn    Street = 4
	River   Street = 5
)

// String returns the street name.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return fmt.Sprintf("street(%d)", int(s))
	}
}

// Board is an ordered sequence of up to five community cards. Cards are
// added and removed at the end only.
type Board struct {
	cards [MaxBoardCards]Card
	n     int
}

// NewBoard builds a board from at most five distinct cards.
func NewBoard(cards ...Card) (Board, error) {
	var b Board
	if len(cards) > MaxBoardCards {
		return b, fmt.Errorf("%w: got %d", ErrBoardTooLong, len(cards))
	}
	var seen CardSet
	for _, c := range cards {
		if seen.Contains(c) {
			return Board{}, fmt.Errorf("%w: %s appears twice on board", ErrDuplicateCard, c)
		}
		seen.Add(c)
		b.Push(c)
	}
	return b, nil
}

// ParseBoard parses concatenated notation of 0-5 cards, e.g. "2c7d9hJsTc".
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// MustParseBoard parses a board and panics on error (for tests).
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse board %q: %v", s, err))
	}
	return b
}

// Push appends a card. Pushing onto a complete board panics.
func (b *Board) Push(c Card) {
	b.cards[b.n] = c
	b.n++
}

// Pop removes the most recently added card.
func (b *Board) Pop() {
	b.n--
}

// Len returns the number of cards on the board.
func (b Board) Len() int {
	return b.n
}

// At returns the i-th card in insertion order.
func (b Board) At(i int) Card {
	return b.cards[i]
}

// Cards returns the board cards in insertion order.
func (b Board) Cards() []Card {
	out := make([]Card, b.n)
	copy(out, b.cards[:b.n])
	return out
}

// Street returns the street implied by the number of cards.
func (b Board) Street() Street {
	return Street(b.n)
}

// Complete reports whether all five cards are dealt.
func (b Board) Complete() bool {
	return b.n == MaxBoardCards
}

// Count returns how many board cards have the given rank.
func (b Board) Count(rank Rank) int {
	n := 0
	for _, c := range b.cards[:b.n] {
		if c.Rank() == rank {
			n++
		}
	}
	return n
}

// CountSuit returns how many board cards have the given suit.
func (b Board) CountSuit(suit Suit) int {
	n := 0
	for _, c := range b.cards[:b.n] {
		if c.Suit() == suit {
			n++
		}
	}
	return n
}

// Set returns the board cards as a CardSet.
func (b Board) Set() CardSet {
	var cs CardSet
	for _, c := range b.cards[:b.n] {
		cs.Add(c)
	}
	return cs
}

// String returns concatenated notation, e.g. "2c7d9h".
func (b Board) String() string {
	var sb strings.Builder
	for _, c := range b.cards[:b.n] {
		sb.WriteString(c.String())
	}
	return sb.String()
}
