// Package equity computes exact heads-up showdown equity by enumerating
// every completion of the board.
package equity

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/logging"
	"github.com/lox/holdem-equity/poker"
)

var (
	// ErrNoCompletions is returned when a query leaves no board to evaluate.
	ErrNoCompletions = errors.New("no board completions")
	// ErrPartialBoard is returned by the cached solver for a non-empty board.
	ErrPartialBoard = errors.New("cached solver only enumerates from an empty board")
	// ErrNoBoards is returned when the board table was not built.
	ErrNoBoards = errors.New("board table not built")
	// ErrIncompleteBoard is returned by Showdown for a board of fewer than five cards.
	ErrIncompleteBoard = errors.New("showdown needs a complete board")
)

// Solver enumerates every completion of board and tallies the showdowns.
type Solver interface {
	Enumerate(hero, vill poker.Hand, board poker.Board) (Result, error)
}

// Equity returns hero's equity against villain from board.
func Equity(s Solver, hero, vill poker.Hand, board poker.Board) (float64, error) {
	res, err := s.Enumerate(hero, vill, board)
	if err != nil {
		return 0, err
	}
	return res.Equity(), nil
}

type options struct {
	logger   *log.Logger
	clock    quartz.Clock
	progress func(delta int)
}

func newOptions(opts []Option) options {
	o := options{
		logger: logging.Discard(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a solver.
type Option func(*options)

// WithLogger sets the logger for query and build timings.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock used for timings.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithProgress receives board table build progress. Only the cached
// solver builds tables.
func WithProgress(fn func(delta int)) Option {
	return func(o *options) { o.progress = fn }
}
