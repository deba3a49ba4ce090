package dirmult

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Marginal contains the Beta parameters of a single category's marginal distribution under a
// Dirichlet, integrating out all other categories.
type Marginal struct {
	Alpha float64
	Beta  float64
}

// Dist returns a Beta distribution instance from the marginal's parameters.
func (m *Marginal) Dist() *distuv.Beta {
	return &distuv.Beta{
		Alpha: m.Alpha,
		Beta:  m.Beta,
	}
}

// Marginal returns the Beta marginal of the category at the given index: Alpha is that
// category's concentration and Beta the remaining mass, so Alpha + Beta equals Total()
// regardless of the index. This conjugacy identity is what makes the marginal available in
// closed form, without any iterative inference.
func (c Concentration) Marginal(i int) (*Marginal, error) {
	if len(c) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "empty concentration vector")
	}
	if i < 0 || i >= len(c) {
		return nil, errors.Wrapf(ErrInvalidInput, "category %d outside [0, %d)", i, len(c))
	}
	return &Marginal{
		Alpha: c[i],
		Beta:  c.Total() - c[i],
	}, nil
}

// Quantiles is a pair of two-sided CDF levels bounding a credible interval.
type Quantiles struct {
	Lower float64
	Upper float64
}

// DefaultQuantiles bound the central 95% credible interval.
var DefaultQuantiles = Quantiles{Lower: 0.025, Upper: 0.975}

// TwoSided returns the quantile pair bounding the central credible interval at the given
// level, e.g., 0.95 -> (0.025, 0.975).
func TwoSided(level float64) (Quantiles, error) {
	if level <= 0 || level >= 1 {
		return Quantiles{}, errors.Wrapf(ErrInvalidInput, "credible level %v outside (0, 1)",
			level)
	}
	tail := (1 - level) / 2
	return Quantiles{Lower: tail, Upper: 1 - tail}, nil
}

func (q Quantiles) validate() error {
	if q.Lower <= 0 || q.Lower >= 1 || q.Upper <= 0 || q.Upper >= 1 {
		return errors.Wrapf(ErrInvalidInput, "quantiles (%v, %v) outside (0, 1)",
			q.Lower, q.Upper)
	}
	if q.Lower >= q.Upper {
		return errors.Wrapf(ErrInvalidInput, "lower quantile %v not below upper quantile %v",
			q.Lower, q.Upper)
	}
	return nil
}

// Interval is a credible interval of a marginal distribution, with Lower <= Upper and both
// bounds in [0, 1].
type Interval struct {
	Lower float64
	Upper float64
}

// CredibleInterval computes the credible interval of a Beta marginal at the given quantile
// pair by exact inversion of the regularized incomplete Beta function. Degenerate marginals
// (a parameter <= 0, e.g., from a single-category vector) are rejected.
func CredibleInterval(m *Marginal, q Quantiles) (Interval, error) {
	if m == nil {
		return Interval{}, errors.Wrap(ErrInvalidInput, "nil marginal")
	}
	if m.Alpha <= 0 || m.Beta <= 0 {
		return Interval{}, errors.Wrapf(ErrInvalidInput, "degenerate marginal Beta(%v, %v)",
			m.Alpha, m.Beta)
	}
	if err := q.validate(); err != nil {
		return Interval{}, err
	}
	dist := m.Dist()
	lower, err := quantile(dist, q.Lower)
	if err != nil {
		return Interval{}, err
	}
	upper, err := quantile(dist, q.Upper)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Lower: lower, Upper: upper}, nil
}

// quantile guards the inverse incomplete Beta evaluation, converting panics escaping the
// numeric routine and non-finite results into ErrNumericFailure.
func quantile(dist *distuv.Beta, p float64) (x float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrNumericFailure, "Beta(%v, %v) quantile at %v: %v",
				dist.Alpha, dist.Beta, p, r)
		}
	}()
	x = dist.Quantile(p)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrNumericFailure, "Beta(%v, %v) quantile at %v not finite",
			dist.Alpha, dist.Beta, p)
	}
	return x, nil
}
