package tables

import (
	"math/bits"

	"github.com/lox/holdem-equity/poker"
)

// NoStraight marks a straight lookup with no straight available.
const NoStraight poker.Rank = 1

// RankMask is a set of ranks with bit r set for rank r (bits 2-14).
type RankMask uint16

// Add sets the bit for r.
func (m RankMask) Add(r poker.Rank) RankMask {
	return m | 1<<r
}

// Has reports whether r is in the mask.
func (m RankMask) Has(r poker.Rank) bool {
	return m&(1<<r) != 0
}

// Top returns the n highest ranks in the mask, highest first. Missing
// positions are left zero.
func (m RankMask) Top(n int) [5]poker.Rank {
	var out [5]poker.Rank
	for i := 0; i < n && m != 0; i++ {
		r := poker.Rank(bits.Len16(uint16(m)) - 1)
		out[i] = r
		m &^= 1 << r
	}
	return out
}

// StraightHigh returns the high rank of the best straight in the mask, or
// zero when there is none. The wheel (A-2-3-4-5) is five high.
func StraightHigh(m RankMask) poker.Rank {
	mask := uint16(m)
	if m.Has(poker.Ace) {
		mask |= 1 << 1 // ace also plays below the deuce
	}

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq == 0 {
		return 0
	}
	return poker.Rank(bits.Len16(seq) - 1 + 4)
}

// StraightTable gives, for one board rank set, the best straight reachable
// with two more hole ranks. It is indexed by [rank-2][rank-2] and holds
// NoStraight when no straight is possible.
type StraightTable [poker.NumRanks][poker.NumRanks]poker.Rank

// Lookup returns the best straight for the two hole ranks.
func (t *StraightTable) Lookup(r1, r2 poker.Rank) poker.Rank {
	return t[r1-poker.Two][r2-poker.Two]
}

func newStraightTable(board RankMask) *StraightTable {
	var t StraightTable
	for r1 := poker.Two; r1 <= poker.Ace; r1++ {
		for r2 := poker.Two; r2 <= poker.Ace; r2++ {
			high := StraightHigh(board.Add(r1).Add(r2))
			if high == 0 {
				high = NoStraight
			}
			t[r1-poker.Two][r2-poker.Two] = high
		}
	}
	return &t
}

// straightPool shares one StraightTable between all boards with the same
// rank set.
type straightPool struct {
	tables [1 << (poker.Ace + 1)]*StraightTable
	size   int
}

func (p *straightPool) get(m RankMask) *StraightTable {
	if t := p.tables[m]; t != nil {
		return t
	}
	t := newStraightTable(m)
	p.tables[m] = t
	p.size++
	return t
}
