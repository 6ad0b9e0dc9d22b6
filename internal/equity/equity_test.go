package equity

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/tables"
	"github.com/lox/holdem-equity/poker"
)

var (
	fullTablesOnce sync.Once
	fullTables     *tables.Tables
)

// sharedTables builds the board table once for every test that needs it.
func sharedTables(t *testing.T) *tables.Tables {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping board table build in short mode")
	}
	fullTablesOnce.Do(func() {
		fullTables = tables.Build()
	})
	return fullTables
}

func TestResult(t *testing.T) {
	var r Result
	assert.Zero(t, r.Equity())
	assert.Zero(t, r.WinRate())

	r.Add(evaluator.HeroWins)
	r.Add(evaluator.HeroWins)
	r.Add(evaluator.Split)
	r.AddSign(-4)

	assert.Equal(t, uint64(4), r.Total())
	assert.InDelta(t, 0.625, r.Equity(), 1e-12)
	assert.InDelta(t, 0.5, r.WinRate(), 1e-12)
	assert.InDelta(t, 0.25, r.SplitRate(), 1e-12)
	assert.InDelta(t, 0.25, r.LossRate(), 1e-12)

	inv := r.Invert()
	assert.Equal(t, Result{Wins: 1, Splits: 1, Losses: 2}, inv)
	assert.InDelta(t, 1.0, r.Equity()+inv.Equity(), 1e-12)
}

func TestRuntimeCompletionCounts(t *testing.T) {
	hero := poker.MustParseHand("AhKh")
	vill := poker.MustParseHand("QcQd")
	s := NewRuntimeSolver()

	tests := []struct {
		name  string
		board string
		want  uint64
	}{
		{"river", "2h7hJd3s9c", 1},
		{"turn", "2h7hJd3s", 44},
		{"flop", "2h7hJd", 990},
		{"two cards", "2h7h", 15180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Enumerate(hero, vill, poker.MustParseBoard(tt.board))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Total())
		})
	}
}

func TestRuntimeRiverMatchesShowdown(t *testing.T) {
	tests := []struct {
		hero, vill, board string
		want              float64
	}{
		{"AhKh", "QcQd", "2h7hJd3s9c", 0.0},
		{"AhKh", "QcQd", "2h7hJd3h9c", 1.0},
		{"2c3d", "4h5s", "AcKcQdJhTs", 0.5},
	}
	s := NewRuntimeSolver()
	for _, tt := range tests {
		hero := poker.MustParseHand(tt.hero)
		vill := poker.MustParseHand(tt.vill)
		board := poker.MustParseBoard(tt.board)

		eq, err := Equity(s, hero, vill, board)
		require.NoError(t, err)
		assert.Equal(t, tt.want, eq)

		res, err := s.Enumerate(hero, vill, board)
		require.NoError(t, err)
		var direct Result
		direct.Add(evaluator.Evaluate(hero, vill, board))
		assert.Equal(t, direct, res)
	}
}

func TestRuntimeSymmetryAndIdempotence(t *testing.T) {
	hero := poker.MustParseHand("AhKh")
	vill := poker.MustParseHand("8c8d")
	board := poker.MustParseBoard("2h7hJd")
	s := NewRuntimeSolver()

	first, err := s.Enumerate(hero, vill, board)
	require.NoError(t, err)
	second, err := s.Enumerate(hero, vill, board)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	swapped, err := s.Enumerate(vill, hero, board)
	require.NoError(t, err)
	assert.Equal(t, first.Invert(), swapped)
	assert.InDelta(t, 1.0, first.Equity()+swapped.Equity(), 1e-12)
}

func TestRuntimeCollisions(t *testing.T) {
	s := NewRuntimeSolver()
	tests := []struct {
		name              string
		hero, vill, board string
	}{
		{"shared hole card", "AhKh", "AhQd", ""},
		{"hole card on board", "AhKh", "QcQd", "Ah7c2d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Enumerate(poker.MustParseHand(tt.hero), poker.MustParseHand(tt.vill), poker.MustParseBoard(tt.board))
			assert.True(t, errors.Is(err, poker.ErrCardCollision), "got %v", err)
		})
	}
}

func TestCachedSolverTestMode(t *testing.T) {
	s := NewCachedSolver(true)
	hero := poker.MustParseHand("AhAd")
	vill := poker.MustParseHand("KsKc")

	assert.Empty(t, s.Tables().Boards)

	_, err := s.Enumerate(hero, vill, poker.Board{})
	assert.ErrorIs(t, err, ErrNoBoards)

	_, err = s.Enumerate(hero, vill, poker.MustParseBoard("2h7hJd"))
	assert.ErrorIs(t, err, ErrPartialBoard)

	_, err = s.Showdown(hero, vill, poker.MustParseBoard("2h7hJd"))
	assert.ErrorIs(t, err, ErrIncompleteBoard)

	_, err = s.Showdown(hero, vill, poker.MustParseBoard("Ah7hJd3s9c"))
	assert.ErrorIs(t, err, poker.ErrCardCollision)
}

func TestCachedShowdownMatchesRuntime(t *testing.T) {
	s := NewCachedSolver(true)
	deals := []struct{ hero, vill, board string }{
		{"AhKh", "QcQd", "2h7hJd3s9c"},
		{"AhKh", "QcQd", "2h7hJd3h9c"},
		{"5h9c", "KhKd", "Ah2h3h4hKc"},
		{"5d5h", "4d3h", "KcKd6h6s2c"},
		{"2c3d", "4h5s", "AcKcQdJhTs"},
	}
	for _, d := range deals {
		hero := poker.MustParseHand(d.hero)
		vill := poker.MustParseHand(d.vill)
		board := poker.MustParseBoard(d.board)

		got, err := s.Showdown(hero, vill, board)
		require.NoError(t, err)
		assert.Equal(t, evaluator.Evaluate(hero, vill, board), got, "%s vs %s on %s", hero, vill, board)
	}
}

func TestCachedMatchesRuntimePreflop(t *testing.T) {
	cached := NewCachedSolverWithTables(sharedTables(t))
	runtime := NewRuntimeSolver()

	matchups := []struct{ hero, vill string }{
		{"AhAd", "KsKc"},
		{"AhKh", "QcQd"},
		{"7c2d", "8h9h"},
		{"AsKd", "AcKh"},
	}
	for _, m := range matchups {
		hero := poker.MustParseHand(m.hero)
		vill := poker.MustParseHand(m.vill)

		want, err := runtime.Enumerate(hero, vill, poker.Board{})
		require.NoError(t, err)
		got, err := cached.Enumerate(hero, vill, poker.Board{})
		require.NoError(t, err)

		assert.Equal(t, uint64(1712304), got.Total())
		assert.InDelta(t, want.Equity(), got.Equity(), 1e-9, "%s vs %s", hero, vill)
		assert.Equal(t, want, got)
	}
}

func TestAcesVersusKings(t *testing.T) {
	cached := NewCachedSolverWithTables(sharedTables(t))
	hero := poker.MustParseHand("AhAd")
	vill := poker.MustParseHand("KsKc")

	eq, err := Equity(cached, hero, vill, poker.Board{})
	require.NoError(t, err)
	assert.InDelta(t, 0.82, eq, 0.01)

	again, err := Equity(cached, hero, vill, poker.Board{})
	require.NoError(t, err)
	assert.Equal(t, eq, again)

	back, err := Equity(cached, vill, hero, poker.Board{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, eq+back, 1e-12)
}

func BenchmarkRuntimeFlop(b *testing.B) {
	s := NewRuntimeSolver()
	hero := poker.MustParseHand("AhKh")
	vill := poker.MustParseHand("QcQd")
	board := poker.MustParseBoard("2h7hJd")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.Enumerate(hero, vill, board)
	}
}
