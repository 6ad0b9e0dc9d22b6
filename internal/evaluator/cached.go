package evaluator

import (
	"github.com/lox/holdem-equity/internal/tables"
	"github.com/lox/holdem-equity/poker"
)

// entryProps is the cached counterpart of props, derived from precomputed
// board and hand entries instead of the raw cards.
type entryProps struct {
	isFlush      bool
	flushRanks   tables.RankMask
	isStraight   bool
	straightRank poker.Rank
	isRoyal      bool
	isStrFlush   bool
	strFlushRank poker.Rank

	// matches[n-1] lists, highest first, the ranks held exactly n times.
	matches [4][sevenCards]poker.Rank
	counts  [4]int
}

// EvaluateCached decides a showdown from precomputed entries. The result is
// positive when hero wins, negative when villain wins and zero on a split.
// The entries are only read for the duration of the call.
func EvaluateCached(hero, vill *tables.HandEntry, board *tables.BoardEntry) int {
	h := newEntryProps(hero, board)
	v := newEntryProps(vill, board)
	return resolveCached(&h, &v)
}

// ClassifyCached returns the category the hand makes on the board.
func ClassifyCached(hand *tables.HandEntry, board *tables.BoardEntry) Category {
	p := newEntryProps(hand, board)
	return p.category()
}

func newEntryProps(hand *tables.HandEntry, board *tables.BoardEntry) entryProps {
	var p entryProps

	suit := board.FlushSuit
	if int(board.FlushCount)+int(hand.Suits[suit]) >= 5 {
		p.isFlush = true
		p.flushRanks = board.FlushRanks | hand.SuitRanks[suit]
		if high := tables.StraightHigh(p.flushRanks); high != 0 {
			p.isStrFlush = true
			p.strFlushRank = high
			p.isRoyal = high == poker.Ace
		}
	}

	r1, r2 := hand.HoleRanks()
	if high := board.Straights.Lookup(r1, r2); high != tables.NoStraight {
		p.isStraight = true
		p.straightRank = high
	}

	p.processMatches(hand, board)
	return p
}

// processMatches merges the board ranks with the hole ranks, both highest
// first, and buckets each rank by its total number of occurrences.
func (p *entryProps) processMatches(hand *tables.HandEntry, board *tables.BoardEntry) {
	hi, lo := hand.HoleRanks()
	holes := [2]poker.Rank{hi, lo}
	nh := len(holes)
	if hi == lo {
		nh = 1
	}
	nb := int(board.NumRanks)

	i, j := 0, 0
	for i < nb || j < nh {
		var r poker.Rank
		var n uint8
		switch {
		case j == nh || (i < nb && board.Ranks[i].Rank > holes[j]):
			r, n = board.Ranks[i].Rank, board.Ranks[i].Count
			i++
		case i == nb || holes[j] > board.Ranks[i].Rank:
			r, n = holes[j], hand.Ranks[holes[j]]
			j++
		default:
			r, n = holes[j], board.Ranks[i].Count+hand.Ranks[holes[j]]
			i++
			j++
		}
		bucket := n - 1
		p.matches[bucket][p.counts[bucket]] = r
		p.counts[bucket]++
	}
}

func (p *entryProps) quads() poker.Rank       { return p.matches[3][0] }
func (p *entryProps) hasQuads() bool          { return p.counts[3] > 0 }
func (p *entryProps) hasTrips() bool          { return p.counts[2] > 0 }
func (p *entryProps) hasTwoPair() bool        { return p.counts[1] >= 2 }
func (p *entryProps) hasPair() bool           { return p.counts[1] > 0 }
func (p *entryProps) single(i int) poker.Rank { return p.matches[0][i] }

func (p *entryProps) isFullHouse() bool {
	return p.counts[2] >= 2 || (p.counts[2] == 1 && p.counts[1] >= 1)
}

func (p *entryProps) fullHouseLow() poker.Rank {
	return maxRank(p.matches[2][1], p.matches[1][0])
}

func (p *entryProps) category() Category {
	switch {
	case p.isRoyal:
		return RoyalFlush
	case p.isStrFlush:
		return StraightFlush
	case p.hasQuads():
		return FourOfAKind
	case p.isFullHouse():
		return FullHouse
	case p.isFlush:
		return Flush
	case p.isStraight:
		return Straight
	case p.hasTrips():
		return ThreeOfAKind
	case p.hasTwoPair():
		return TwoPair
	case p.hasPair():
		return Pair
	}
	return HighCard
}

func resolveCached(h, v *entryProps) int {
	if result, decided := compareFlags(h.isRoyal, v.isRoyal); decided {
		return result
	}

	if result, decided := compareFlags(h.isStrFlush, v.isStrFlush); decided {
		if result != 0 {
			return result
		}
		return compareRank(h.strFlushRank, v.strFlushRank)
	}

	if result, decided := compareFlags(h.hasQuads(), v.hasQuads()); decided {
		if result != 0 {
			return result
		}
		if result = compareRank(h.quads(), v.quads()); result != 0 {
			return result
		}
		return compareRank(h.quadsKicker(), v.quadsKicker())
	}

	if result, decided := compareFlags(h.isFullHouse(), v.isFullHouse()); decided {
		if result != 0 {
			return result
		}
		if result = compareRank(h.matches[2][0], v.matches[2][0]); result != 0 {
			return result
		}
		return compareRank(h.fullHouseLow(), v.fullHouseLow())
	}

	if result, decided := compareFlags(h.isFlush, v.isFlush); decided {
		if result != 0 {
			return result
		}
		hf, vf := h.flushRanks.Top(5), v.flushRanks.Top(5)
		return compareRanks(hf[:], vf[:])
	}

	if result, decided := compareFlags(h.isStraight, v.isStraight); decided {
		if result != 0 {
			return result
		}
		return compareRank(h.straightRank, v.straightRank)
	}

	if result, decided := compareFlags(h.hasTrips(), v.hasTrips()); decided {
		if result != 0 {
			return result
		}
		if result = compareRank(h.matches[2][0], v.matches[2][0]); result != 0 {
			return result
		}
		return compareRanks(h.matches[0][:2], v.matches[0][:2])
	}

	if result, decided := compareFlags(h.hasTwoPair(), v.hasTwoPair()); decided {
		if result != 0 {
			return result
		}
		if result = compareRanks(h.matches[1][:2], v.matches[1][:2]); result != 0 {
			return result
		}
		return compareRank(h.twoPairKicker(), v.twoPairKicker())
	}

	if result, decided := compareFlags(h.hasPair(), v.hasPair()); decided {
		if result != 0 {
			return result
		}
		if result = compareRank(h.matches[1][0], v.matches[1][0]); result != 0 {
			return result
		}
		return compareRanks(h.matches[0][:3], v.matches[0][:3])
	}

	for i := 0; i < 5; i++ {
		if result := compareRank(h.single(i), v.single(i)); result != 0 {
			return result
		}
	}
	return 0
}

// quadsKicker is the best card left beside the quads, whatever its multiplicity.
func (p *entryProps) quadsKicker() poker.Rank {
	return maxRank(p.matches[2][0], maxRank(p.matches[1][0], p.matches[0][0]))
}

// twoPairKicker is the best card beside the top two pairs; a third pair
// can play as the kicker.
func (p *entryProps) twoPairKicker() poker.Rank {
	return maxRank(p.matches[1][2], p.matches[0][0])
}
