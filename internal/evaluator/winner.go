package evaluator

// Winner is the outcome of a heads-up showdown.
type Winner int8

const (
	HeroWins Winner = iota
	VillWins
	Split
)

// String returns a readable outcome.
func (w Winner) String() string {
	switch w {
	case HeroWins:
		return "hero"
	case VillWins:
		return "villain"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Sign converts a signed comparison (positive hero, negative villain,
// zero split) into a Winner.
func Sign(result int) Winner {
	switch {
	case result > 0:
		return HeroWins
	case result < 0:
		return VillWins
	}
	return Split
}

// Sign returns 1 for a hero win, -1 for a villain win and 0 for a split.
func (w Winner) Sign() int {
	switch w {
	case HeroWins:
		return 1
	case VillWins:
		return -1
	}
	return 0
}

// Swap returns the outcome seen from the other side.
func (w Winner) Swap() Winner {
	switch w {
	case HeroWins:
		return VillWins
	case VillWins:
		return HeroWins
	}
	return w
}

// Category is a poker hand category, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}
