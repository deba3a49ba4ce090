package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amplicon-labs/urna/urna/dirmult"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "print each category's posterior marginal and credible interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newReporter().report()
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

type reporter interface {
	report() error
}

func newReporter() reporter {
	return &reporterImpl{out: os.Stdout}
}

type reporterImpl struct {
	out io.Writer
}

func (r *reporterImpl) report() error {
	params, logger, err := getDecisionParams()
	if err != nil {
		return err
	}
	post, err := dirmult.Posterior(params.counts, params.prior)
	if err != nil {
		logger.Error("unable to compute posterior", zap.Error(err))
		return err
	}
	means := post.Means()
	if _, err = fmt.Fprintln(r.out, "category\tconcentration\tmean\tlower\tupper"); err != nil {
		return err
	}
	for i := range post {
		m, err := post.Marginal(i)
		if err != nil {
			return err
		}
		iv, err := dirmult.CredibleInterval(m, params.q)
		if err != nil {
			logger.Error("unable to compute credible interval",
				zap.Int("category", i),
				zap.Error(err),
			)
			return err
		}
		_, err = fmt.Fprintf(r.out, "%d\t%g\t%.6f\t%.6f\t%.6f\n",
			i, post[i], means[i], iv.Lower, iv.Upper)
		if err != nil {
			return err
		}
	}
	return nil
}
