package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/schollz/progressbar/v3"

	"github.com/lox/holdem-equity/internal/config"
	"github.com/lox/holdem-equity/internal/logging"
	"github.com/lox/holdem-equity/poker"
)

// version is set by ldflags during build
var version = "dev"

// Globals are shared by every command.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file (missing file uses defaults)" default:"equity.hcl" type:"path"`
	LogLevel string `help:"Override the configured log level" enum:",debug,info,warn,error" default:""`

	stdout io.Writer    `kong:"-"`
	stderr io.Writer    `kong:"-"`
	clock  quartz.Clock `kong:"-"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Enumerate EnumerateCmd     `cmd:"" help:"Exact heads-up equity over every board completion"`
	Showdown  ShowdownCmd      `cmd:"" help:"Decide one showdown with every evaluator"`
	Tables    TablesCmd        `cmd:"" help:"Build the precomputed board and hand tables and report their size"`
	Verify    VerifyCmd        `cmd:"" help:"Cross-check the evaluators on random deals"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	cli := CLI{Globals: Globals{
		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  quartz.NewReal(),
	}}
	ctx := kong.Parse(&cli,
		kong.Name("equity"),
		kong.Description("Exact heads-up Texas Hold'em equity"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads configuration and builds the logger for a command.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	w := g.stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
	}

	logger, err := logging.New(*cfg.Log, w)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// newProgressBar draws progress on stderr and clears itself when done.
func (g *Globals) newProgressBar(max int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(g.stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func parseDeal(hero, vill, board string) (poker.Hand, poker.Hand, poker.Board, error) {
	h, err := poker.ParseHand(hero)
	if err != nil {
		return poker.Hand{}, poker.Hand{}, poker.Board{}, fmt.Errorf("hero: %w", err)
	}
	v, err := poker.ParseHand(vill)
	if err != nil {
		return poker.Hand{}, poker.Hand{}, poker.Board{}, fmt.Errorf("villain: %w", err)
	}
	b, err := poker.ParseBoard(board)
	if err != nil {
		return poker.Hand{}, poker.Hand{}, poker.Board{}, fmt.Errorf("board: %w", err)
	}
	if err := poker.ValidateDeal(h, v, b); err != nil {
		return poker.Hand{}, poker.Hand{}, poker.Board{}, err
	}
	return h, v, b, nil
}

func percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}
