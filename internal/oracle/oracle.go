// Package oracle scores showdowns with github.com/paulhankin/poker, an
// evaluator written independently of this module, for cross-checking.
package oracle

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/poker"
)

// Score returns the reference strength of the best five of hand plus
// board. Higher scores are stronger.
func Score(hand poker.Hand, board poker.Board) (int16, error) {
	cards, err := sevenCards(hand, board)
	if err != nil {
		return 0, err
	}
	return ph.Eval7(&cards), nil
}

// Showdown decides a heads-up showdown on a complete board.
func Showdown(hero, vill poker.Hand, board poker.Board) (evaluator.Winner, error) {
	h, err := Score(hero, board)
	if err != nil {
		return evaluator.Split, fmt.Errorf("hero: %w", err)
	}
	v, err := Score(vill, board)
	if err != nil {
		return evaluator.Split, fmt.Errorf("villain: %w", err)
	}
	return evaluator.Sign(int(h) - int(v)), nil
}

// Describe names the hand made by hand plus board.
func Describe(hand poker.Hand, board poker.Board) (string, error) {
	cards, err := sevenCards(hand, board)
	if err != nil {
		return "", err
	}
	return ph.Describe(cards[:])
}

func sevenCards(hand poker.Hand, board poker.Board) ([7]ph.Card, error) {
	var out [7]ph.Card
	if !board.Complete() {
		return out, fmt.Errorf("board has %d cards, need %d", board.Len(), poker.MaxBoardCards)
	}
	for i := 0; i < poker.MaxBoardCards; i++ {
		c, err := convert(board.At(i))
		if err != nil {
			return out, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		out[i] = c
	}
	for i, hc := range hand.Cards() {
		c, err := convert(hc)
		if err != nil {
			return out, fmt.Errorf("invalid hole card: %w", err)
		}
		out[poker.MaxBoardCards+i] = c
	}
	return out, nil
}

// convert maps onto the library's card, where the ace is rank 1.
func convert(c poker.Card) (ph.Card, error) {
	var (
		s    ph.Suit
		none ph.Card
	)
	switch c.Suit() {
	case poker.Clubs:
		s = ph.Club
	case poker.Diamonds:
		s = ph.Diamond
	case poker.Hearts:
		s = ph.Heart
	case poker.Spades:
		s = ph.Spade
	default:
		return none, fmt.Errorf("unknown suit %d", c.Suit())
	}

	r := ph.Rank(c.Rank())
	if c.Rank() == poker.Ace {
		r = 1
	}
	return ph.MakeCard(s, r)
}
