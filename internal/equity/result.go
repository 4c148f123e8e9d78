package equity

import "math"

// Result accumulates win/tie credit over a run of hand-strength trials
type Result struct {
	Wins   uint32
	Ties   uint32
	Trials uint32
}

// WinRate returns the fraction of trials won outright (0.0 to 1.0)
func (r Result) WinRate() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return float64(r.Wins) / float64(r.Trials)
}

// TieRate returns the fraction of trials tied (0.0 to 1.0)
func (r Result) TieRate() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return float64(r.Ties) / float64(r.Trials)
}

// Equity returns the overall equity (0.0 to 1.0); wins count 1.0, ties 0.5
func (r Result) Equity() float64 {
	if r.Trials == 0 {
		return 0.0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(r.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for the equity
// estimate, clamped to [0,1].
func (r Result) ConfidenceInterval() (lower, upper float64) {
	if r.Trials == 0 {
		return 0.0, 0.0
	}

	equity := r.Equity()
	se := math.Sqrt((equity * (1.0 - equity)) / float64(r.Trials))
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}
