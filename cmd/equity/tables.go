package main

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/lox/holdem-equity/internal/bench"
	"github.com/lox/holdem-equity/internal/tables"
)

// TablesCmd builds the precomputed tables and reports what they hold.
type TablesCmd struct {
	Progress bool `short:"p" help:"Show a progress bar while building"`
}

func (cmd *TablesCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	opts := []tables.Option{tables.WithLogger(logger), tables.WithClock(g.clock)}
	if cmd.Progress || cfg.Progress {
		bar := g.newProgressBar(tables.NumBoards, "building boards")
		opts = append(opts, tables.WithProgress(func(delta int) {
			_ = bar.Add(delta)
		}))
		defer bar.Finish()
	}

	var t *tables.Tables
	elapsed := bench.Measure(g.clock, func() {
		t = tables.Build(opts...)
	})

	boardBytes := uint64(len(t.Boards)) * uint64(unsafe.Sizeof(tables.BoardEntry{}))
	straightBytes := uint64(t.StraightTables()) * uint64(unsafe.Sizeof(tables.StraightTable{}))

	fmt.Fprintf(g.stdout, "%s\n", headerStyle.Render("tables"))
	fmt.Fprintf(g.stdout, "boards           %s (%s)\n", humanize.Comma(int64(len(t.Boards))), humanize.IBytes(boardBytes))
	fmt.Fprintf(g.stdout, "hands            %s\n", humanize.Comma(int64(len(t.Hands))))
	fmt.Fprintf(g.stdout, "straight tables  %s (%s)\n", humanize.Comma(int64(t.StraightTables())), humanize.IBytes(straightBytes))
	fmt.Fprintf(g.stdout, "built in         %v (%s boards/s)\n",
		elapsed.Truncate(time.Millisecond), humanize.Comma(int64(bench.Rate(len(t.Boards), elapsed))))
	return nil
}
