package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlpeek/sqlpeek/internal/connection"
	"github.com/sqlpeek/sqlpeek/internal/models"
	"github.com/sqlpeek/sqlpeek/internal/reporter"
	"github.com/sqlpeek/sqlpeek/internal/verifier"
)

var verifyConn connFlags
var verifyOut outputFlags
var verifyFile string
var verifyVerbose bool

var verifyCmd = &cobra.Command{
	Use:   "verify [query]",
	Short: "Check a prediction against a live PostgreSQL server",
	Long:  "Predict column names for a SELECT statement, then execute it on the server without fetching rows and compare against the result-set names the server reports. Exits non-zero on mismatch.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerify,
}

func init() {
	addConnFlags(verifyCmd, &verifyConn)
	addOutputFlags(verifyCmd, &verifyOut)
	verifyCmd.Flags().StringVar(&verifyFile, "file", "", "Read the query text from a file instead of the argument")
	verifyCmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false, "Print progress")
}

func runVerify(cmd *cobra.Command, args []string) error {
	query, err := queryFromArgs(args, verifyFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	conn, err := connection.Connect(ctx, connection.Config{
		DSN:      verifyConn.DSN,
		Host:     verifyConn.Host,
		Port:     verifyConn.Port,
		DBName:   verifyConn.DBName,
		User:     verifyConn.User,
		Password: verifyConn.Password,
	})
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	report, err := verifier.Verify(ctx, conn, query, verifier.Options{
		Database: verifyConn.DBName,
		Verbose:  verifyVerbose,
	})
	if err != nil {
		return err
	}

	output, err := reporter.RenderVerify(report, verifyOut.Format)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := writeOutput(output, verifyOut); err != nil {
		return err
	}

	if report.Outcome != models.OutcomeMatch {
		return fmt.Errorf("prediction mismatch: %d/%d positions agree",
			report.MatchCount(), len(report.Diff))
	}
	return nil
}
