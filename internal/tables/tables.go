// Package tables precomputes board and hole-card features over the whole
// deck so that equity queries can skip rescanning raw cards.
package tables

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/logging"
	"github.com/lox/holdem-equity/poker"
)

// NumBoards is C(52,5), the number of distinct five-card boards.
const NumBoards = 2598960

// progressStep is how many boards are built between progress callbacks.
const progressStep = 1 << 16

// Tables owns the board and hand tables. Both are read-only after Build.
type Tables struct {
	Boards []BoardEntry
	Hands  [poker.NumHands]HandEntry

	straightTables int
}

// Hand returns the entry for h.
func (t *Tables) Hand(h poker.Hand) *HandEntry {
	return &t.Hands[h.Index()]
}

// StraightTables returns how many distinct straight tables back the boards.
func (t *Tables) StraightTables() int {
	return t.straightTables
}

type options struct {
	skipBoards bool
	progress   func(delta int)
	logger     *log.Logger
	clock      quartz.Clock
}

// Option configures Build.
type Option func(*options)

// WithoutBoards leaves the board table empty. The hand table is still
// built, which is enough for single-showdown evaluation in tests.
func WithoutBoards() Option {
	return func(o *options) { o.skipBoards = true }
}

// WithProgress reports the number of boards built since the last call.
func WithProgress(fn func(delta int)) Option {
	return func(o *options) { o.progress = fn }
}

// WithLogger sets the logger used to report build timings.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock used to time the build.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// Build constructs the hand table and, unless WithoutBoards is given, the
// table of every five-card board.
func Build(opts ...Option) *Tables {
	o := options{
		logger: logging.Discard(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tables{}
	buildHands(&t.Hands)

	if o.skipBoards {
		o.logger.Debug("Skipping board table")
		return t
	}

	o.logger.Info("Building board table", "boards", NumBoards)
	elapsed := bench.Measure(o.clock, func() {
		t.Boards, t.straightTables = buildBoards(o.progress)
	})
	o.logger.Info("Board table built",
		"boards", len(t.Boards),
		"straight_tables", t.straightTables,
		"elapsed", elapsed.Truncate(time.Millisecond))
	return t
}

func buildHands(hands *[poker.NumHands]HandEntry) {
	for i := 1; i < poker.DeckSize; i++ {
		for j := 0; j < i; j++ {
			h := poker.Hand{Primary: poker.CardFromIndex(i), Secondary: poker.CardFromIndex(j)}
			hands[poker.PairIndex(i, j)] = NewHandEntry(h)
		}
	}
}

// buildBoards enumerates every five-card combination in increasing deck
// order. Deck order sorts by rank, so reversing a combination yields the
// cards rank-descending.
func buildBoards(progress func(int)) ([]BoardEntry, int) {
	boards := make([]BoardEntry, 0, NumBoards)
	pool := &straightPool{}
	pending := 0

	const n = poker.DeckSize
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						sorted := [poker.MaxBoardCards]poker.Card{
							poker.CardFromIndex(e),
							poker.CardFromIndex(d),
							poker.CardFromIndex(c),
							poker.CardFromIndex(b),
							poker.CardFromIndex(a),
						}
						boards = append(boards, newBoardEntry(sorted, pool.get))

						pending++
						if progress != nil && pending == progressStep {
							progress(pending)
							pending = 0
						}
					}
				}
			}
		}
	}
	if pending > 0 && progress != nil {
		progress(pending)
	}
	return boards, pool.size
}
