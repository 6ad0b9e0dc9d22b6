package poker

// HoleCardCategory represents the preflop strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// Categorize provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors), Trash (everything else).
func (h Hand) Categorize() HoleCardCategory {
	if !h.Primary.Valid() || !h.Secondary.Valid() {
		return CategoryUnknown
	}

	small, big := h.Primary.Rank(), h.Secondary.Rank()
	if small > big {
		small, big = big, small
	}
	pair := h.IsPair()
	suited := h.IsSuited()

	switch {
	case pair && small >= Jack, small == King && big == Ace:
		return CategoryPremium
	case pair && small == Ten, big == Ace && (small == Queen || small == Jack):
		return CategoryStrong
	case pair && small >= Seven, suited && small >= Ten:
		return CategoryMedium
	case pair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
