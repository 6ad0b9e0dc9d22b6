package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/tables"
)

// EnumerateCmd computes exact equity for one matchup.
type EnumerateCmd struct {
	Hero     string `arg:"" help:"Hero hole cards, e.g. 'AhAd'"`
	Villain  string `arg:"" help:"Villain hole cards, e.g. 'KsKc'"`
	Board    string `short:"b" help:"Community cards already dealt (0-5), e.g. 'Td7s8h'"`
	Solver   string `short:"s" help:"Solver to use (default from config)" enum:",runtime,cached" default:""`
	Repeat   int    `short:"r" help:"Run the same query this many times on one solver" default:"1"`
	Progress bool   `short:"p" help:"Show a progress bar while building tables"`
}

func (cmd *EnumerateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if cmd.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", cmd.Repeat)
	}

	hero, vill, board, err := parseDeal(cmd.Hero, cmd.Villain, cmd.Board)
	if err != nil {
		return err
	}

	name := cmd.Solver
	if name == "" {
		name = cfg.Solver
	}
	// Fail before the expensive table build.
	if name == config.SolverCached && board.Len() > 0 {
		return fmt.Errorf("%w: board %s", equity.ErrPartialBoard, board)
	}
	solver := g.newSolver(name, cmd.Progress || cfg.Progress, logger)

	var res equity.Result
	var total time.Duration
	for i := 0; i < cmd.Repeat; i++ {
		var qerr error
		elapsed := bench.Measure(g.clock, func() {
			res, qerr = solver.Enumerate(hero, vill, board)
		})
		if qerr != nil {
			return qerr
		}
		total += elapsed
		logger.Debug("Query complete", "run", i+1, "equity", res.Equity(), "elapsed", elapsed)
	}

	if board.Len() > 0 {
		fmt.Fprintf(g.stdout, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(g.stdout, "%s (%s)\n\n", board, board.Street())
	}

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("equity"))
	for _, row := range []struct {
		hand string
		res  equity.Result
	}{
		{hero.String(), res},
		{vill.String(), res.Invert()},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			handStyle.Render(row.hand),
			winStyle.Render(percent(row.res.WinRate())),
			tieStyle.Render(percent(row.res.SplitRate())),
			lossStyle.Render(percent(row.res.LossRate())),
			percent(row.res.Equity()))
	}
	w.Flush()

	fmt.Fprintf(g.stdout, "\n%s boards with %s solver", humanize.Comma(int64(res.Total())), name)
	if cmd.Repeat > 1 {
		fmt.Fprintf(g.stdout, ", %d runs in %v (%v/run)\n", cmd.Repeat,
			total.Truncate(time.Millisecond), (total / time.Duration(cmd.Repeat)).Truncate(time.Microsecond))
	} else {
		fmt.Fprintf(g.stdout, " in %v\n", total.Truncate(time.Microsecond))
	}
	return nil
}

func (g *Globals) newSolver(name string, progress bool, logger *log.Logger) equity.Solver {
	opts := []equity.Option{equity.WithLogger(logger), equity.WithClock(g.clock)}
	if name != config.SolverCached {
		return equity.NewRuntimeSolver(opts...)
	}

	if progress {
		bar := g.newProgressBar(tables.NumBoards, "building boards")
		defer bar.Finish()
		opts = append(opts, equity.WithProgress(func(delta int) {
			_ = bar.Add(delta)
		}))
	}
	return equity.NewCachedSolver(false, opts...)
}
