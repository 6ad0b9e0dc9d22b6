package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lox/holdem-equity/internal/crosscheck"
	"github.com/lox/holdem-equity/internal/evaluator"
	"github.com/lox/holdem-equity/internal/fileutil"
	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/poker"
)

// VerifyCmd deals random showdowns and checks the evaluators agree.
type VerifyCmd struct {
	Deals    int    `short:"n" help:"Number of random deals (default from config)"`
	Seed     int64  `help:"Random seed for reproducible deals (default from config, else the clock)"`
	Progress bool   `short:"p" help:"Show a progress bar"`
	Report   string `help:"Write a JSON report to this path" type:"path"`
}

// verifyReport is the JSON form of a cross-check run.
type verifyReport struct {
	Seed       int64          `json:"seed"`
	Deals      int            `json:"deals"`
	Mismatched int            `json:"mismatched"`
	Categories map[string]int `json:"categories"`
	Mismatches []string       `json:"mismatches,omitempty"`
	ElapsedMS  int64          `json:"elapsed_ms"`
}

func newVerifyReport(seed int64, r crosscheck.Report) verifyReport {
	out := verifyReport{
		Seed:       seed,
		Deals:      r.Deals,
		Mismatched: r.Mismatched,
		Categories: make(map[string]int),
		ElapsedMS:  r.Elapsed.Milliseconds(),
	}
	for _, cat := range evaluator.Categories {
		if n := r.Categories[cat]; n > 0 {
			out.Categories[cat.String()] = n
		}
	}
	for _, m := range r.Mismatches {
		out.Mismatches = append(out.Mismatches, m.String())
	}
	return out
}

func (cmd *VerifyCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	deals := cmd.Deals
	if deals == 0 {
		deals = cfg.Verify.Deals
	}
	if deals < 1 {
		return fmt.Errorf("deals must be positive, got %d", deals)
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = cfg.Verify.Seed
	}
	if seed == 0 {
		seed = randutil.Seed(g.clock)
	}
	logger.Info("Cross-checking evaluators", "deals", deals, "seed", seed)

	opts := []crosscheck.Option{crosscheck.WithLogger(logger), crosscheck.WithClock(g.clock)}
	if cmd.Progress || cfg.Progress {
		bar := g.newProgressBar(int64(deals), "checking deals")
		opts = append(opts, crosscheck.WithProgress(func(delta int) {
			_ = bar.Add(delta)
		}))
		defer bar.Finish()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := crosscheck.New(opts...).Run(ctx, poker.NewDeck(randutil.New(seed)), deals)
	if err != nil {
		return err
	}

	if cmd.Report != "" {
		if err := fileutil.WriteJSON(cmd.Report, newVerifyReport(seed, report)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Report written", "path", cmd.Report)
	}

	w := tabwriter.NewWriter(g.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("deals"),
		headerStyle.Render("share"))
	for _, cat := range evaluator.Categories {
		n := report.Categories[cat]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			categoryStyle.Render(cat.String()),
			humanize.Comma(int64(n)),
			percent(float64(n)/float64(report.Deals)))
	}
	w.Flush()

	fmt.Fprintf(g.stdout, "\n%s deals (seed %d) in %v: ", humanize.Comma(int64(report.Deals)), seed,
		report.Elapsed.Truncate(time.Millisecond))
	if report.OK() {
		fmt.Fprintln(g.stdout, winStyle.Render("all evaluators agree"))
		return nil
	}

	fmt.Fprintln(g.stdout, lossStyle.Render(fmt.Sprintf("%d mismatches", report.Mismatched)))
	for _, m := range report.Mismatches {
		fmt.Fprintf(g.stdout, "  %s\n", m)
	}
	return fmt.Errorf("%d of %d deals mismatched", report.Mismatched, report.Deals)
}
