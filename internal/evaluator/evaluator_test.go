package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/internal/tables"
	"github.com/lox/holdem-equity/poker"
)

type showdownCase struct {
	name    string
	hero    string
	vill    string
	board   string
	want    Winner
	heroCat Category
	villCat Category
}

var showdownCases = []showdownCase{
	{"royal beats straight flush", "AsKs", "8s7c", "TsJsQs9s2d", HeroWins, RoyalFlush, StraightFlush},
	{"steel wheel beats flush", "5h9c", "KhKd", "Ah2h3h4hKc", HeroWins, StraightFlush, Flush},
	{"straight flush beats straight", "8d9d", "8c9c", "5d6d7dKcAc", HeroWins, StraightFlush, Straight},
	{"quads kicker", "Ah3d", "KhQd", "9c9d9h9s2c", HeroWins, FourOfAKind, FourOfAKind},
	{"quads on board with ace kicker", "KhQd", "2h3d", "9c9d9h9sAc", Split, FourOfAKind, FourOfAKind},
	{"full house trips rank", "Kh3d", "7cAd", "KcKd7h7s2c", HeroWins, FullHouse, FullHouse},
	{"second trips plays as the pair", "Jh4d", "Js2d", "JcJd4h4s2c", Split, FullHouse, FullHouse},
	{"flush kicker", "Qh3c", "JhTc", "Ah9h5h2hKc", HeroWins, Flush, Flush},
	{"six suited cards use top five", "3h4c", "QcJc", "AhKh9h5h2h", HeroWins, Flush, Flush},
	{"flush without straight flush", "3c8h", "3hAs", "4h5h6c7h2h", HeroWins, Flush, Flush},
	{"higher straight", "9h2d", "4d3c", "5c6d7h8sKc", HeroWins, Straight, Straight},
	{"wheel beats pair", "4h5d", "AdQh", "Ah2c3d9sKc", HeroWins, Straight, Pair},
	{"six high beats wheel", "Ah5d", "5c6h", "2c3d4h9sKc", VillWins, Straight, Straight},
	{"board straight splits", "2c3d", "4h5s", "AcKcQdJhTs", Split, Straight, Straight},
	{"trips kickers", "Ah3d", "QhJd", "7c7d7hKs2c", HeroWins, ThreeOfAKind, ThreeOfAKind},
	{"two pair second pair", "QdQc", "Ad3c", "KcKd6h6s2c", HeroWins, TwoPair, TwoPair},
	{"third pair plays as kicker", "5d5h", "4d3h", "KcKd6h6s2c", HeroWins, TwoPair, TwoPair},
	{"pair kickers", "AhKd", "AdQc", "Ac9d6h4s2c", HeroWins, Pair, Pair},
	{"pocket pair off the board", "QhQd", "JhTd", "Ac9d7h4s2c", HeroWins, Pair, HighCard},
	{"high card ignores sixth card", "5h3d", "5d4c", "AcKd9h7s2c", Split, HighCard, HighCard},
	{"high card fifth card", "6h3d", "5d4c", "AcKd9h7s2c", HeroWins, HighCard, HighCard},
}

func TestEvaluateRuntime(t *testing.T) {
	for _, tt := range showdownCases {
		t.Run(tt.name, func(t *testing.T) {
			hero := poker.MustParseHand(tt.hero)
			vill := poker.MustParseHand(tt.vill)
			board := poker.MustParseBoard(tt.board)
			require.NoError(t, poker.ValidateDeal(hero, vill, board))

			assert.Equal(t, tt.want, Evaluate(hero, vill, board))
			assert.Equal(t, tt.want.Swap(), Evaluate(vill, hero, board))
			assert.Equal(t, tt.heroCat, Classify(hero, board))
			assert.Equal(t, tt.villCat, Classify(vill, board))
		})
	}
}

func TestEvaluateCached(t *testing.T) {
	for _, tt := range showdownCases {
		t.Run(tt.name, func(t *testing.T) {
			hero := tables.NewHandEntry(poker.MustParseHand(tt.hero))
			vill := tables.NewHandEntry(poker.MustParseHand(tt.vill))
			board := tables.NewBoardEntry(poker.MustParseBoard(tt.board))

			assert.Equal(t, tt.want, Sign(EvaluateCached(&hero, &vill, &board)))
			assert.Equal(t, tt.want.Swap(), Sign(EvaluateCached(&vill, &hero, &board)))
			assert.Equal(t, tt.heroCat, ClassifyCached(&hero, &board))
			assert.Equal(t, tt.villCat, ClassifyCached(&vill, &board))
		})
	}
}

func TestEvaluatorsAgreeOnRandomDeals(t *testing.T) {
	deals := 20000
	if testing.Short() {
		deals = 2000
	}
	deck := poker.NewDeck(randutil.New(7))

	var seen [RoyalFlush + 1]int
	for i := 0; i < deals; i++ {
		hero, vill, board := deck.DealHeadsUp()
		he := tables.NewHandEntry(hero)
		ve := tables.NewHandEntry(vill)
		be := tables.NewBoardEntry(board)

		runtime := Evaluate(hero, vill, board)
		cached := Sign(EvaluateCached(&he, &ve, &be))
		require.Equal(t, runtime, cached, "hero %s vill %s board %s", hero, vill, board)

		cat := Classify(hero, board)
		require.Equal(t, cat, ClassifyCached(&he, &be), "hero %s board %s", hero, board)
		seen[cat]++
	}

	// Random deals reach every common category.
	for _, cat := range []Category{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse} {
		assert.Positive(t, seen[cat], "no %s dealt", cat)
	}
}

func TestWinner(t *testing.T) {
	assert.Equal(t, HeroWins, Sign(3))
	assert.Equal(t, VillWins, Sign(-1))
	assert.Equal(t, Split, Sign(0))

	for _, w := range []Winner{HeroWins, VillWins, Split} {
		assert.Equal(t, w, Sign(w.Sign()))
		assert.Equal(t, w, w.Swap().Swap())
	}
	assert.Equal(t, "villain", VillWins.String())
}

func TestCategoriesOrder(t *testing.T) {
	for i := 1; i < len(Categories); i++ {
		assert.Greater(t, Categories[i-1], Categories[i])
	}
	assert.Equal(t, "Royal Flush", RoyalFlush.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
}

func BenchmarkEvaluate(b *testing.B) {
	hero := poker.MustParseHand("AhKh")
	vill := poker.MustParseHand("QcQd")
	board := poker.MustParseBoard("2h7hJdQsKc")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Evaluate(hero, vill, board)
	}
}

func BenchmarkEvaluateCached(b *testing.B) {
	hero := tables.NewHandEntry(poker.MustParseHand("AhKh"))
	vill := tables.NewHandEntry(poker.MustParseHand("QcQd"))
	board := tables.NewBoardEntry(poker.MustParseBoard("2h7hJdQsKc"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EvaluateCached(&hero, &vill, &board)
	}
}
