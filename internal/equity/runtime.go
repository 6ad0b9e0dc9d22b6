package equity

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/poker"
)

// RuntimeSolver enumerates completions recursively and evaluates each
// river from the raw cards. It needs no setup and accepts a board at any
// street.
type RuntimeSolver struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewRuntimeSolver creates a runtime solver.
func NewRuntimeSolver(opts ...Option) *RuntimeSolver {
	o := newOptions(opts)
	return &RuntimeSolver{logger: o.logger, clock: o.clock}
}

// Enumerate tallies every way to complete board to the river.
func (s *RuntimeSolver) Enumerate(hero, vill poker.Hand, board poker.Board) (Result, error) {
	if err := poker.ValidateDeal(hero, vill, board); err != nil {
		return Result{}, fmt.Errorf("runtime enumerate: %w", err)
	}

	e := runtimeEnum{
		hero: hero,
		vill: vill,
		used: poker.HandSet(hero).Union(poker.HandSet(vill)).Union(board.Set()),
	}
	elapsed := bench.Measure(s.clock, func() {
		e.enumerate(&board, 0)
	})
	if e.res.Total() == 0 {
		return Result{}, ErrNoCompletions
	}

	s.logger.Debug("Runtime enumeration complete",
		"hero", hero, "villain", vill, "street", board.Street(),
		"completions", e.res.Total(), "elapsed", elapsed.Truncate(time.Microsecond))
	return e.res, nil
}

type runtimeEnum struct {
	hero, vill poker.Hand
	used       poker.CardSet
	res        Result
}

// enumerate pushes each unused card from start upwards, so every
// combination of the missing cards is visited once.
func (e *runtimeEnum) enumerate(board *poker.Board, start int) {
	if board.Complete() {
		e.res.Add(evaluator.Evaluate(e.hero, e.vill, *board))
		return
	}
	for i := start; i < poker.DeckSize; i++ {
		c := poker.CardFromIndex(i)
		if e.used.Contains(c) {
			continue
		}
		board.Push(c)
		e.enumerate(board, i+1)
		board.Pop()
	}
}
