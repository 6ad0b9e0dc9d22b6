package tables

import "github.com/lox/holdem-equity/poker"

// RankCount is one board rank and how many board cards carry it.
type RankCount struct {
	Rank  poker.Rank
	Count uint8
}

// BoardEntry holds the precomputed features of one five-card board.
// Entries are immutable once built.
type BoardEntry struct {
	Cards     [poker.MaxBoardCards]poker.SlimCard // rank descending
	Set       poker.CardSet
	Straights *StraightTable

	Ranks    [poker.MaxBoardCards]RankCount // rank descending
	NumRanks uint8

	Suits [poker.NumSuits]uint8
	// FlushSuit is the most frequent board suit. Only it can complete a
	// flush, and only when FlushCount is at least three.
	FlushSuit  poker.Suit
	FlushCount uint8
	FlushRanks RankMask // ranks of the board cards in FlushSuit
}

// NewBoardEntry builds the entry for one complete board, in any card order.
func NewBoardEntry(board poker.Board) BoardEntry {
	var cards [poker.MaxBoardCards]poker.Card
	for i := range cards {
		cards[i] = board.At(i)
	}
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		j := i - 1
		for j >= 0 && cards[j].Less(c) {
			cards[j+1] = cards[j]
			j--
		}
		cards[j+1] = c
	}
	return newBoardEntry(cards, newStraightTable)
}

// newBoardEntry expects cards sorted by rank, highest first.
func newBoardEntry(sorted [poker.MaxBoardCards]poker.Card, straights func(RankMask) *StraightTable) BoardEntry {
	var e BoardEntry
	var mask RankMask
	for i, c := range sorted {
		e.Cards[i] = c.Slim()
		e.Set.Add(c)
		e.Suits[c.Suit()]++
		mask = mask.Add(c.Rank())

		if e.NumRanks > 0 && e.Ranks[e.NumRanks-1].Rank == c.Rank() {
			e.Ranks[e.NumRanks-1].Count++
			continue
		}
		e.Ranks[e.NumRanks] = RankCount{Rank: c.Rank(), Count: 1}
		e.NumRanks++
	}

	for s, n := range e.Suits {
		if n > e.FlushCount {
			e.FlushSuit = poker.Suit(s)
			e.FlushCount = n
		}
	}
	for _, c := range sorted {
		if c.Suit() == e.FlushSuit {
			e.FlushRanks = e.FlushRanks.Add(c.Rank())
		}
	}

	e.Straights = straights(mask)
	return e
}

// HandEntry holds the per-rank and per-suit tallies of one pair of hole cards.
type HandEntry struct {
	Cards     [2]poker.SlimCard // rank descending
	Set       poker.CardSet
	Ranks     [poker.Ace + 1]uint8
	Suits     [poker.NumSuits]uint8
	SuitRanks [poker.NumSuits]RankMask
}

// NewHandEntry builds the entry for one hand.
func NewHandEntry(h poker.Hand) HandEntry {
	hi, lo := h.Primary, h.Secondary
	if hi.Less(lo) {
		hi, lo = lo, hi
	}
	var e HandEntry
	e.Cards = [2]poker.SlimCard{hi.Slim(), lo.Slim()}
	for _, c := range [2]poker.Card{hi, lo} {
		e.Set.Add(c)
		e.Ranks[c.Rank()]++
		e.Suits[c.Suit()]++
		e.SuitRanks[c.Suit()] = e.SuitRanks[c.Suit()].Add(c.Rank())
	}
	return e
}

// HoleRanks returns the two hole ranks, highest first.
func (e *HandEntry) HoleRanks() (poker.Rank, poker.Rank) {
	return e.Cards[0].Rank(), e.Cards[1].Rank()
}
