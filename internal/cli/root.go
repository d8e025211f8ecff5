// Package cli implements the profilectl terminal commands.
package cli

import (
	"fmt"

	"moneybrief/internal/advice"
	"moneybrief/internal/report"
	"moneybrief/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	logger  *zap.Logger
	reports *service.ReportService
}

// NewRootCmd builds the profilectl command tree
func NewRootCmd() *cobra.Command {
	a := &app{
		logger:  zap.NewNop(),
		reports: service.NewReportService(report.NewBuilder(advice.Default())),
	}

	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Investor risk profile questionnaire",
		Long:          "Take the investor profile questionnaire in the terminal, or score a set of answers directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			config := zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(a.questionsCmd(), a.surveyCmd(), a.scoreCmd())
	return root
}
