package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlpeek/sqlpeek/internal/models"
	"github.com/sqlpeek/sqlpeek/internal/parser"
	"github.com/sqlpeek/sqlpeek/internal/reporter"
)

var columnsFile string
var columnsOut outputFlags
var columnsVerbose bool

var columnsCmd = &cobra.Command{
	Use:   "columns [query]",
	Short: "Predict result-set column names for a SELECT query",
	Long:  "Analyze a single SELECT statement and print the ordered column names it would produce, one naming rule per column.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runColumns,
}

func init() {
	columnsCmd.Flags().StringVar(&columnsFile, "file", "", "Read the query text from a file instead of the argument")
	addOutputFlags(columnsCmd, &columnsOut)
	columnsCmd.Flags().BoolVarP(&columnsVerbose, "verbose", "v", false, "Print progress")
}

func runColumns(cmd *cobra.Command, args []string) error {
	query, err := queryFromArgs(args, columnsFile)
	if err != nil {
		return err
	}

	columns, err := parser.AnalyzeColumns(query)
	if err != nil {
		return err
	}

	if columnsVerbose {
		fmt.Fprintf(os.Stderr, "predicted %d column(s)\n", len(columns))
	}

	report := models.NewQueryReport(parser.Normalize(query))
	for _, c := range columns {
		report.Columns = append(report.Columns, models.ColumnPrediction{
			Position:   c.Position,
			Name:       c.Name,
			Expression: c.Expression,
			Rule:       c.Rule,
		})
	}

	output, err := reporter.RenderQuery(report, columnsOut.Format)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return writeOutput(output, columnsOut)
}

// queryFromArgs resolves the query text from the positional argument or a
// --file flag.
func queryFromArgs(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read query file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("provide a query argument or --file")
}
