package poker

import (
	"testing"
)

func TestCategorize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hand     string
		expected HoleCardCategory
	}{
		// Premium hands
		{"Pocket Aces", "AsAh", CategoryPremium},
		{"Pocket Kings", "KhKd", CategoryPremium},
		{"Pocket Jacks", "JhJd", CategoryPremium},
		{"Ace King suited", "AsKs", CategoryPremium},
		{"King Ace offsuit", "KhAc", CategoryPremium},

		// Strong hands
		{"Pocket Tens", "TcTh", CategoryStrong},
		{"Ace Queen suited", "AsQs", CategoryStrong},
		{"Ace Jack offsuit", "AdJc", CategoryStrong},

		// Medium hands
		{"Pocket Nines", "9c9h", CategoryMedium},
		{"Pocket Sevens", "7h7c", CategoryMedium},
		{"King Queen suited", "KsQs", CategoryMedium},
		{"Queen Jack suited", "QdJd", CategoryMedium},

		// Weak hands
		{"Pocket Sixes", "6c6h", CategoryWeak},
		{"Pocket Twos", "2c2h", CategoryWeak},
		{"Suited connectors 76s", "7h6h", CategoryWeak},
		{"Suited gapper 53s", "5d3d", CategoryWeak},

		// Trash hands
		{"Seven Two offsuit", "7c2h", CategoryTrash},
		{"Jack Four offsuit", "Jh4c", CategoryTrash},
		{"Suited wide gap", "Kh4h", CategoryTrash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := MustParseHand(tt.hand)
			if result := h.Categorize(); result != tt.expected {
				t.Errorf("%s.Categorize() = %s, want %s", tt.hand, result, tt.expected)
			}
		})
	}
}

func TestCategorizeInvalid(t *testing.T) {
	t.Parallel()
	var h Hand
	if result := h.Categorize(); result != CategoryUnknown {
		t.Errorf("zero hand categorized as %s, want %s", result, CategoryUnknown)
	}
}
