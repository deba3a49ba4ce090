package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amplicon-labs/urna/urna/dirmult"
)

const (
	keepOutput      = "keep"
	ambiguousOutput = "ambiguous"
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call",
	Short: "decide whether the top category stands alone",
	Long: `call applies the top-category rule: keep only the most frequent category when the
lower bound of its credible interval clears the upper bound of the runner-up's, and otherwise
declare the sample ambiguous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newCaller().call()
	},
}

func init() {
	RootCmd.AddCommand(callCmd)
}

type caller interface {
	call() error
}

func newCaller() caller {
	return &callerImpl{out: os.Stdout}
}

type callerImpl struct {
	out io.Writer
}

func (c *callerImpl) call() error {
	params, logger, err := getDecisionParams()
	if err != nil {
		return err
	}
	decision, err := dirmult.Decide(params.counts, params.prior, params.q)
	if err != nil {
		logger.Error("unable to decide top category", zap.Error(err))
		return err
	}
	logger.Info("top category decision",
		zap.Bool("keep_top", decision.KeepTop),
		zap.Int("top", decision.Top),
		zap.Int("runner_up", decision.RunnerUp),
		zap.Float64("top_lower", decision.TopInterval.Lower),
		zap.Float64("runner_up_upper", decision.RunnerUpInterval.Upper),
	)
	output := ambiguousOutput
	if decision.KeepTop {
		output = keepOutput
	}
	_, err = fmt.Fprintln(c.out, output)
	return err
}
