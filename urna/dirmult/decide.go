package dirmult

import (
	"github.com/pkg/errors"
)

// Decision describes the outcome of the top-category rule for one observation vector.
type Decision struct {
	// KeepTop indicates the top category is statistically distinguishable from the runner-up
	// at the requested credible level.
	KeepTop bool

	// Top and RunnerUp are the original indices of the largest and second-largest posterior
	// concentrations. Ties prefer the lowest original index.
	Top      int
	RunnerUp int

	// TopInterval and RunnerUpInterval are the two categories' credible intervals, both
	// computed from the same total posterior mass.
	TopInterval      Interval
	RunnerUpInterval Interval
}

// Decide computes the posterior for the given counts and prior, ranks the categories by
// posterior concentration, and compares the credible intervals of the top two. A nil prior
// denotes the uniform add-one prior. The call is pure: identical inputs always produce
// identical decisions.
func Decide(counts []int, prior []float64, q Quantiles) (*Decision, error) {
	post, err := Posterior(counts, prior)
	if err != nil {
		return nil, err
	}
	if len(post) < 2 {
		return nil, errors.Wrap(ErrInvalidInput, "single category has no runner-up")
	}
	top, runnerUp := topTwo(post)
	topIv, err := intervalFor(post, top, q)
	if err != nil {
		return nil, err
	}
	runnerUpIv, err := intervalFor(post, runnerUp, q)
	if err != nil {
		return nil, err
	}
	return &Decision{
		KeepTop:          topIv.Lower > runnerUpIv.Upper,
		Top:              top,
		RunnerUp:         runnerUp,
		TopInterval:      topIv,
		RunnerUpInterval: runnerUpIv,
	}, nil
}

// KeepTop reports whether only the top category should be kept, i.e., whether the lower bound
// of its credible interval strictly exceeds the upper bound of the runner-up's. A false result
// means the sample is ambiguous and the runner-up(s) should not be discarded.
func KeepTop(counts []int, prior []float64, q Quantiles) (bool, error) {
	decision, err := Decide(counts, prior, q)
	if err != nil {
		return false, err
	}
	return decision.KeepTop, nil
}

func intervalFor(c Concentration, i int, q Quantiles) (Interval, error) {
	m, err := c.Marginal(i)
	if err != nil {
		return Interval{}, err
	}
	return CredibleInterval(m, q)
}

// topTwo returns the indices of the largest and second-largest entries, breaking ties toward
// the lowest original index. Assumes len(c) >= 2.
func topTwo(c Concentration) (int, int) {
	top, runnerUp := 0, -1
	for i := 1; i < len(c); i++ {
		switch {
		case c[i] > c[top]:
			top, runnerUp = i, top
		case runnerUp == -1 || c[i] > c[runnerUp]:
			runnerUp = i
		}
	}
	return top, runnerUp
}
