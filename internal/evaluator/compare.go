package evaluator

import "github.com/lox/holdem-equity/poker"

func compareRank(a, b poker.Rank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// compareRanks compares two equal-length rank sequences position by position.
func compareRanks(a, b []poker.Rank) int {
	for i := range a {
		if c := compareRank(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareFlags resolves a category by who holds it. decided is false when
// neither side holds it; when both do, result is 0 and the caller breaks
// the tie.
func compareFlags(hero, vill bool) (result int, decided bool) {
	switch {
	case hero && vill:
		return 0, true
	case hero:
		return 1, true
	case vill:
		return -1, true
	}
	return 0, false
}

func maxRank(a, b poker.Rank) poker.Rank {
	if a > b {
		return a
	}
	return b
}
