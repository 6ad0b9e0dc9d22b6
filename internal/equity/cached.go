package equity

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/tables"
	"github.com/lox/holdem-equity/poker"
)

// CachedSolver evaluates every five-card board from precomputed tables.
// Building the tables is expensive; queries are a single pass over them.
type CachedSolver struct {
	tables *tables.Tables
	logger *log.Logger
	clock  quartz.Clock
}

// NewCachedSolver builds the tables. In test mode the board table is
// skipped, leaving only Showdown usable.
func NewCachedSolver(testMode bool, opts ...Option) *CachedSolver {
	o := newOptions(opts)

	build := []tables.Option{
		tables.WithLogger(o.logger),
		tables.WithClock(o.clock),
	}
	if testMode {
		build = append(build, tables.WithoutBoards())
	}
	if o.progress != nil {
		build = append(build, tables.WithProgress(o.progress))
	}

	return &CachedSolver{
		tables: tables.Build(build...),
		logger: o.logger,
		clock:  o.clock,
	}
}

// NewCachedSolverWithTables wraps tables that were already built, so
// several solvers can share them.
func NewCachedSolverWithTables(t *tables.Tables, opts ...Option) *CachedSolver {
	o := newOptions(opts)
	return &CachedSolver{tables: t, logger: o.logger, clock: o.clock}
}

// Tables returns the tables backing the solver.
func (s *CachedSolver) Tables() *tables.Tables {
	return s.tables
}

// Enumerate tallies every board that avoids the four hole cards. Only
// preflop queries are supported.
func (s *CachedSolver) Enumerate(hero, vill poker.Hand, board poker.Board) (Result, error) {
	if board.Len() != 0 {
		return Result{}, fmt.Errorf("%w: board %s", ErrPartialBoard, board)
	}
	if len(s.tables.Boards) == 0 {
		return Result{}, ErrNoBoards
	}
	if err := poker.ValidateDeal(hero, vill, board); err != nil {
		return Result{}, fmt.Errorf("cached enumerate: %w", err)
	}

	he := s.tables.Hand(hero)
	ve := s.tables.Hand(vill)
	holes := he.Set.Union(ve.Set)

	var res Result
	elapsed := bench.Measure(s.clock, func() {
		for i := range s.tables.Boards {
			b := &s.tables.Boards[i]
			if b.Set.Intersects(holes) {
				continue
			}
			res.AddSign(evaluator.EvaluateCached(he, ve, b))
		}
	})
	if res.Total() == 0 {
		return Result{}, ErrNoCompletions
	}

	s.logger.Debug("Cached enumeration complete",
		"hero", hero, "villain", vill,
		"completions", res.Total(), "elapsed", elapsed.Truncate(time.Microsecond))
	return res, nil
}

// Showdown evaluates a single complete board through the cached
// evaluator. The board entry is built on demand, so this works in test
// mode.
func (s *CachedSolver) Showdown(hero, vill poker.Hand, board poker.Board) (evaluator.Winner, error) {
	if !board.Complete() {
		return evaluator.Split, fmt.Errorf("%w: got %d cards", ErrIncompleteBoard, board.Len())
	}
	if err := poker.ValidateDeal(hero, vill, board); err != nil {
		return evaluator.Split, fmt.Errorf("cached showdown: %w", err)
	}

	entry := tables.NewBoardEntry(board)
	return evaluator.Sign(evaluator.EvaluateCached(s.tables.Hand(hero), s.tables.Hand(vill), &entry)), nil
}
