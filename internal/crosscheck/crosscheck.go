// Package crosscheck deals random heads-up showdowns and checks that the
// runtime evaluator, the cached evaluator and the reference oracle agree.
package crosscheck

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/logging"
	"github.com/lox/holdem-equity/internal/oracle"
	"github.com/lox/holdem-equity/internal/tables"
	"github.com/lox/holdem-equity/poker"
)

// maxRecorded caps how many mismatches a report keeps in full.
const maxRecorded = 16

// checkInterval is how many deals run between cancellation checks and
// progress callbacks.
const checkInterval = 1024

// Mismatch is one deal the evaluators disagreed on.
type Mismatch struct {
	Hero, Vill poker.Hand
	Board      poker.Board
	Runtime    evaluator.Winner
	Cached     evaluator.Winner
	Oracle     evaluator.Winner
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s vs %s on %s: runtime=%s cached=%s oracle=%s",
		m.Hero, m.Vill, m.Board, m.Runtime, m.Cached, m.Oracle)
}

// Report summarises a run.
type Report struct {
	Deals      int
	Mismatched int
	Mismatches []Mismatch // at most maxRecorded
	// Categories counts hero's category on each deal.
	Categories [evaluator.RoyalFlush + 1]int
	Elapsed    time.Duration
}

// OK reports whether every deal agreed.
func (r Report) OK() bool {
	return r.Mismatched == 0
}

// Checker compares evaluators deal by deal.
type Checker struct {
	hands    *tables.Tables
	logger   *log.Logger
	clock    quartz.Clock
	progress func(delta int)
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger for mismatches and the run summary.
func WithLogger(logger *log.Logger) Option {
	return func(c *Checker) { c.logger = logger }
}

// WithClock sets the clock used to time the run.
func WithClock(clock quartz.Clock) Option {
	return func(c *Checker) { c.clock = clock }
}

// WithProgress receives the number of deals checked since the last call.
func WithProgress(fn func(delta int)) Option {
	return func(c *Checker) { c.progress = fn }
}

// New creates a Checker. Only the hand table is built.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger: logging.Discard(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.hands = tables.Build(tables.WithoutBoards(), tables.WithLogger(c.logger), tables.WithClock(c.clock))
	return c
}

// Check evaluates one deal three ways. ok is false when any two disagree.
func (c *Checker) Check(hero, vill poker.Hand, board poker.Board) (m Mismatch, ok bool, err error) {
	if err := poker.ValidateDeal(hero, vill, board); err != nil {
		return Mismatch{}, false, err
	}
	if !board.Complete() {
		return Mismatch{}, false, fmt.Errorf("board %s is not complete", board)
	}

	entry := tables.NewBoardEntry(board)
	m = Mismatch{
		Hero:    hero,
		Vill:    vill,
		Board:   board,
		Runtime: evaluator.Evaluate(hero, vill, board),
		Cached:  evaluator.Sign(evaluator.EvaluateCached(c.hands.Hand(hero), c.hands.Hand(vill), &entry)),
	}
	if m.Oracle, err = oracle.Showdown(hero, vill, board); err != nil {
		return m, false, err
	}
	return m, m.Runtime == m.Cached && m.Cached == m.Oracle, nil
}

// Run checks deals random showdowns dealt from deck. It stops early with
// ctx's error when ctx is cancelled.
func (c *Checker) Run(ctx context.Context, deck *poker.Deck, deals int) (Report, error) {
	var report Report
	var runErr error

	report.Elapsed = bench.Measure(c.clock, func() {
		pending := 0
		for i := 0; i < deals; i++ {
			if i%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					runErr = err
					return
				}
			}

			hero, vill, board := deck.DealHeadsUp()
			m, ok, err := c.Check(hero, vill, board)
			if err != nil {
				runErr = fmt.Errorf("deal %d: %w", i, err)
				return
			}
			report.Deals++
			report.Categories[evaluator.Classify(hero, board)]++
			if !ok {
				report.Mismatched++
				if len(report.Mismatches) < maxRecorded {
					report.Mismatches = append(report.Mismatches, m)
				}
				c.logger.Warn("Evaluators disagree", "deal", i, "mismatch", m)
			}

			pending++
			if c.progress != nil && pending == checkInterval {
				c.progress(pending)
				pending = 0
			}
		}
		if c.progress != nil && pending > 0 {
			c.progress(pending)
		}
	})

	if runErr != nil {
		return report, runErr
	}
	c.logger.Info("Cross-check complete",
		"deals", report.Deals,
		"mismatches", report.Mismatched,
		"elapsed", report.Elapsed.Truncate(time.Millisecond))
	return report, nil
}
