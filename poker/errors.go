package poker

import "errors"

var (
	// ErrInvalidCard is returned for malformed card notation.
	ErrInvalidCard = errors.New("invalid card")
	// ErrHandSize is returned when a hand does not hold exactly two cards.
	ErrHandSize = errors.New("hand must contain exactly 2 cards")
	// ErrBoardTooLong is returned when a board holds more than five cards.
	ErrBoardTooLong = errors.New("board cannot have more than 5 cards")
	// ErrDuplicateCard is returned when a card repeats within a hand or board.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrCardCollision is returned when hero, villain and board share a card.
	ErrCardCollision = errors.New("card collision")
)
