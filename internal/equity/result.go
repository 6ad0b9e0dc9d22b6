package equity

import "github.com/lox/holdem-equity/internal/evaluator"

// Result tallies showdown outcomes from hero's point of view.
type Result struct {
	Wins   uint64
	Splits uint64
	Losses uint64
}

// Add records one showdown.
func (r *Result) Add(w evaluator.Winner) {
	switch w {
	case evaluator.HeroWins:
		r.Wins++
	case evaluator.VillWins:
		r.Losses++
	default:
		r.Splits++
	}
}

// AddSign records one signed showdown result.
func (r *Result) AddSign(result int) {
	switch {
	case result > 0:
		r.Wins++
	case result < 0:
		r.Losses++
	default:
		r.Splits++
	}
}

// Total returns the number of showdowns recorded.
func (r Result) Total() uint64 {
	return r.Wins + r.Splits + r.Losses
}

// Equity returns hero's share of the pot in [0, 1]. Splits count half.
func (r Result) Equity() float64 {
	if r.Total() == 0 {
		return 0.0
	}
	return (float64(r.Wins) + float64(r.Splits)*0.5) / float64(r.Total())
}

// WinRate returns the fraction of showdowns hero wins outright.
func (r Result) WinRate() float64 {
	return r.rate(r.Wins)
}

// SplitRate returns the fraction of showdowns that split.
func (r Result) SplitRate() float64 {
	return r.rate(r.Splits)
}

// LossRate returns the fraction of showdowns villain wins.
func (r Result) LossRate() float64 {
	return r.rate(r.Losses)
}

// Invert returns the same tally from villain's point of view.
func (r Result) Invert() Result {
	return Result{Wins: r.Losses, Splits: r.Splits, Losses: r.Wins}
}

func (r Result) rate(n uint64) float64 {
	if r.Total() == 0 {
		return 0.0
	}
	return float64(n) / float64(r.Total())
}
