package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlpeek/sqlpeek/internal/reporter"
	"github.com/sqlpeek/sqlpeek/internal/suite"
)

var suiteFile string
var suiteOut outputFlags

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run a YAML expectation suite against the engine",
	Long:  "Load a YAML file of queries with expected column names (or expected error messages) and compare each against the engine's prediction. Exits non-zero if any case does not match.",
	RunE:  runSuite,
}

func init() {
	suiteCmd.Flags().StringVar(&suiteFile, "file", "", "Path to the suite YAML file (required)")
	suiteCmd.MarkFlagRequired("file")
	addOutputFlags(suiteCmd, &suiteOut)
}

func runSuite(cmd *cobra.Command, args []string) error {
	cases, err := suite.Load(suiteFile)
	if err != nil {
		return fmt.Errorf("load suite: %w", err)
	}

	report := suite.Run(cases, suiteFile)

	output, err := reporter.RenderSuite(report, suiteOut.Format)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := writeOutput(output, suiteOut); err != nil {
		return err
	}

	if !report.AllMatched() {
		failed := len(report.Results) - report.MatchCount()
		return fmt.Errorf("%d of %d case(s) did not match", failed, len(report.Results))
	}
	return nil
}
