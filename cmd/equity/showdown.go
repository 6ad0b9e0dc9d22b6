package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/lox/holdem-equity/internal/equity"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/oracle"
	"github.com/lox/holdem-equity/poker"
)

// ShowdownCmd decides one river showdown with the runtime evaluator,
// the cached evaluator and the reference oracle.
type ShowdownCmd struct {
	Hero    string `arg:"" help:"Hero hole cards, e.g. 'AhAd'"`
	Villain string `arg:"" help:"Villain hole cards, e.g. 'KsKc'"`
	Board   string `arg:"" help:"Complete five-card board, e.g. 'Td7s8h2c3d'"`
}

func (cmd *ShowdownCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	hero, vill, board, err := parseDeal(cmd.Hero, cmd.Villain, cmd.Board)
	if err != nil {
		return err
	}
	if !board.Complete() {
		return fmt.Errorf("%w: got %d cards", equity.ErrIncompleteBoard, board.Len())
	}

	runtime := evaluator.Evaluate(hero, vill, board)
	cached, err := equity.NewCachedSolver(true, equity.WithLogger(logger)).Showdown(hero, vill, board)
	if err != nil {
		return err
	}
	reference, err := oracle.Showdown(hero, vill, board)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.stdout, "%s\n%s\n\n", headerStyle.Render("board"), board)

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("preflop"),
		headerStyle.Render("category"),
		headerStyle.Render("oracle"))
	for _, h := range []poker.Hand{hero, vill} {
		desc, err := oracle.Describe(h, board)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(h.String()),
			h.Categorize(),
			categoryStyle.Render(evaluator.Classify(h, board).String()),
			desc)
	}
	w.Flush()

	fmt.Fprintf(g.stdout, "\nwinner: %s (runtime) %s (cached) %s (oracle)\n",
		winStyle.Render(runtime.String()), cached, reference)
	if runtime != cached || cached != reference {
		logger.Error("Evaluators disagree", "runtime", runtime, "cached", cached, "oracle", reference)
		return errors.New("evaluators disagree")
	}
	return nil
}
