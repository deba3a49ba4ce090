package dirmult

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidInput indicates a malformed observation vector, prior, category index, or
	// quantile pair.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericFailure indicates that a quantile inversion did not produce a finite value.
	// It is surfaced immediately and never silently corrected or retried.
	ErrNumericFailure = errors.New("quantile computation failed")
)

// Concentration is an ordered vector of positive Dirichlet concentration parameters, one per
// category.
type Concentration []float64

// Posterior computes the Dirichlet posterior concentration for the given category counts and
// prior concentration. A nil prior denotes the uniform add-one prior. The result is a fresh
// vector with entries prior[i] + counts[i]; no state is shared between calls.
func Posterior(counts []int, prior []float64) (Concentration, error) {
	if len(counts) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no categories")
	}
	if prior == nil {
		prior = uniformPrior(len(counts))
	}
	if len(prior) != len(counts) {
		return nil, errors.Wrapf(ErrInvalidInput, "%d categories but %d prior entries",
			len(counts), len(prior))
	}
	post := make(Concentration, len(counts))
	for i, count := range counts {
		if count < 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "count %d is negative (%d)", i, count)
		}
		if prior[i] <= 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "prior entry %d is non-positive (%v)",
				i, prior[i])
		}
		post[i] = prior[i] + float64(count)
	}
	return post, nil
}

func uniformPrior(n int) []float64 {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return ones
}

// Total returns the total concentration mass of the vector.
func (c Concentration) Total() float64 {
	return floats.Sum(c)
}

// Means returns each category's expected proportion under the Dirichlet with this
// concentration, i.e., c[i] / Total().
func (c Concentration) Means() []float64 {
	total := c.Total()
	means := make([]float64, len(c))
	for i, v := range c {
		means[i] = v / total
	}
	return means
}
