package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amplicon-labs/urna/urna/common/logging"
	"github.com/amplicon-labs/urna/urna/common/parse"
	"github.com/amplicon-labs/urna/urna/dirmult"
)

const (
	countsFlag   = "counts"
	priorFlag    = "prior"
	levelFlag    = "level"
	logLevelFlag = "logLevel"

	envVarPrefix = "URNA"

	defaultLevel = 0.95
)

var errMissingCounts = errors.New("missing category counts")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "urna",
	Short: "urna computes Dirichlet-Multinomial posteriors for categorical count data",
}

// Execute is the main entrypoint for the urna CLI.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringP(countsFlag, "c", "",
		"comma-separated non-negative category counts")
	RootCmd.PersistentFlags().StringP(priorFlag, "p", "",
		"comma-separated positive prior concentrations (default: 1 per category)")
	RootCmd.PersistentFlags().Float64P(levelFlag, "q", defaultLevel,
		"two-sided credible level in (0, 1)")
	RootCmd.PersistentFlags().StringP(logLevelFlag, "l", zap.InfoLevel.String(),
		"log level")

	// bind viper flags
	viper.SetEnvPrefix(envVarPrefix) // look for env vars with "URNA_" prefix
	viper.AutomaticEnv()             // read in environment variables that match
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

// decisionParams collects the parsed inputs shared by the posterior commands.
type decisionParams struct {
	counts []int
	prior  []float64
	q      dirmult.Quantiles
}

func getDecisionParams() (*decisionParams, *zap.Logger, error) {
	logger := getLogger()
	countsStr := viper.GetString(countsFlag)
	if countsStr == "" {
		return nil, logger, errMissingCounts
	}
	counts, err := parse.Counts(countsStr)
	if err != nil {
		logger.Error("unable to parse category counts", zap.Error(err))
		return nil, logger, err
	}
	var prior []float64
	if priorStr := viper.GetString(priorFlag); priorStr != "" {
		if prior, err = parse.Weights(priorStr); err != nil {
			logger.Error("unable to parse prior concentrations", zap.Error(err))
			return nil, logger, err
		}
	}
	level := viper.GetFloat64(levelFlag)
	q, err := dirmult.TwoSided(level)
	if err != nil {
		logger.Error("unable to set credible level", zap.Error(err))
		return nil, logger, err
	}
	logger.Info("posterior parameters",
		zap.Ints(countsFlag, counts),
		zap.Float64s(priorFlag, prior),
		zap.Float64(levelFlag, level),
	)
	return &decisionParams{counts: counts, prior: prior, q: q}, logger, nil
}

func getLogger() *zap.Logger {
	return logging.NewDevLogger(getLogLevel())
}

func getLogLevel() zapcore.Level {
	var ll zapcore.Level
	err := ll.Set(viper.GetString(logLevelFlag))
	if err != nil {
		panic(err)
	}
	return ll
}
