package crosscheck

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/poker"
)

func TestRunAgrees(t *testing.T) {
	deals := 5000
	if testing.Short() {
		deals = 500
	}
	progressed := 0
	c := New(
		WithClock(quartz.NewMock(t)),
		WithProgress(func(delta int) { progressed += delta }),
	)

	report, err := c.Run(context.Background(), poker.NewDeck(randutil.New(1)), deals)
	require.NoError(t, err)

	assert.True(t, report.OK(), "mismatches: %v", report.Mismatches)
	assert.Equal(t, deals, report.Deals)
	assert.Equal(t, deals, progressed)
	assert.Zero(t, report.Elapsed)

	total := 0
	for _, n := range report.Categories {
		total += n
	}
	assert.Equal(t, deals, total)
	assert.Positive(t, report.Categories[evaluator.Pair])
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New().Run(ctx, poker.NewDeck(randutil.New(1)), 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Deals)
}

func TestCheck(t *testing.T) {
	c := New()

	m, ok, err := c.Check(poker.MustParseHand("Ah5d"), poker.MustParseHand("5c6h"), poker.MustParseBoard("2c3d4h9sKc"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, evaluator.VillWins, m.Runtime)
	assert.Equal(t, evaluator.VillWins, m.Cached)
	assert.Equal(t, evaluator.VillWins, m.Oracle)
	assert.Contains(t, m.String(), "runtime=villain")

	_, _, err = c.Check(poker.MustParseHand("AhAd"), poker.MustParseHand("KsKc"), poker.MustParseBoard("2c3d4h"))
	assert.Error(t, err)

	_, _, err = c.Check(poker.MustParseHand("AhAd"), poker.MustParseHand("AhKc"), poker.MustParseBoard("2c3d4h9sKd"))
	assert.ErrorIs(t, err, poker.ErrCardCollision)
}
