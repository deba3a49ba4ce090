//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/amplicon-labs/urna/urna/common/logging"
	"github.com/amplicon-labs/urna/urna/dirmult"
)

// things to add later
// - counts drawn from a simulated multinomial with a known true proportion vector

const (
	nTrials       = 128
	maxCategories = 8
	maxCount      = 500
)

func TestPosteriorPipeline(t *testing.T) {
	logger := logging.NewDevInfoLogger()
	rng := rand.New(rand.NewSource(0))
	for trial := 0; trial < nTrials; trial++ {
		counts, prior := randomSample(rng)
		info := fmt.Sprintf("trial: %d, counts: %v, prior: %v", trial, counts, prior)

		post, err := dirmult.Posterior(counts, prior)
		assert.Nil(t, err, info)
		assert.Equal(t, len(counts), len(post), info)
		total := post.Total()
		for i := range post {
			expected := 1 + float64(counts[i])
			if prior != nil {
				expected = prior[i] + float64(counts[i])
			}
			assert.Equal(t, expected, post[i], info)

			m, err := post.Marginal(i)
			assert.Nil(t, err, info)

			// the marginal splits the same total mass regardless of category
			assert.Equal(t, total, m.Alpha+m.Beta, info)

			iv, err := dirmult.CredibleInterval(m, dirmult.DefaultQuantiles)
			assert.Nil(t, err, info)
			assert.True(t, 0 <= iv.Lower, info)
			assert.True(t, iv.Lower <= iv.Upper, info)
			assert.True(t, iv.Upper <= 1, info)
		}

		d1, err := dirmult.Decide(counts, prior, dirmult.DefaultQuantiles)
		assert.Nil(t, err, info)
		assert.NotEqual(t, d1.Top, d1.RunnerUp, info)

		// decisions are pure functions of their inputs
		d2, err := dirmult.Decide(counts, prior, dirmult.DefaultQuantiles)
		assert.Nil(t, err, info)
		assert.Equal(t, d1, d2, info)
	}
	logger.Info("posterior pipeline ok", zap.Int("n_trials", nTrials))
}

func TestDecide_dominantCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for trial := 0; trial < nTrials; trial++ {
		counts, _ := randomSample(rng)
		for i := range counts {
			counts[i] = rng.Intn(10)
		}
		top := rng.Intn(len(counts))
		counts[top] = 1000
		info := fmt.Sprintf("trial: %d, counts: %v", trial, counts)

		d, err := dirmult.Decide(counts, nil, dirmult.DefaultQuantiles)
		assert.Nil(t, err, info)
		assert.True(t, d.KeepTop, info)
		assert.Equal(t, top, d.Top, info)
	}
}

func TestDecide_flatCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for trial := 0; trial < nTrials; trial++ {
		n := 2 + rng.Intn(maxCategories-1)
		count := rng.Intn(maxCount + 1)
		counts := make([]int, n)
		for i := range counts {
			counts[i] = count
		}
		info := fmt.Sprintf("trial: %d, n: %d, count: %d", trial, n, count)

		// identical counts can never separate the top category
		d, err := dirmult.Decide(counts, nil, dirmult.DefaultQuantiles)
		assert.Nil(t, err, info)
		assert.False(t, d.KeepTop, info)
		assert.Equal(t, 0, d.Top, info)
		assert.Equal(t, 1, d.RunnerUp, info)
	}
}

func TestCredibleInterval_nestedLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	inner, err := dirmult.TwoSided(0.5)
	assert.Nil(t, err)
	outer, err := dirmult.TwoSided(0.99)
	assert.Nil(t, err)
	for trial := 0; trial < nTrials; trial++ {
		counts, prior := randomSample(rng)
		post, err := dirmult.Posterior(counts, prior)
		assert.Nil(t, err)
		m, err := post.Marginal(rng.Intn(len(post)))
		assert.Nil(t, err)
		info := fmt.Sprintf("trial: %d, marginal: %+v", trial, m)

		narrow, err := dirmult.CredibleInterval(m, inner)
		assert.Nil(t, err, info)
		wide, err := dirmult.CredibleInterval(m, outer)
		assert.Nil(t, err, info)

		// a higher credible level always widens the interval
		assert.True(t, wide.Lower < narrow.Lower, info)
		assert.True(t, narrow.Upper < wide.Upper, info)
	}
}

func randomSample(rng *rand.Rand) ([]int, []float64) {
	n := 2 + rng.Intn(maxCategories-1)
	counts := make([]int, n)
	for i := range counts {
		counts[i] = rng.Intn(maxCount + 1)
	}
	if rng.Intn(2) == 0 {
		return counts, nil
	}
	prior := make([]float64, n)
	for i := range prior {
		// quarter-unit grid keeps concentration sums exact in floating point
		prior[i] = float64(4+rng.Intn(8)) * 0.25
	}
	return counts, prior
}
