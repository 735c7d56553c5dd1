// Package verifier checks engine predictions against the column names a live
// PostgreSQL server reports for the same query.
package verifier

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sqlpeek/sqlpeek/internal/connection"
	"github.com/sqlpeek/sqlpeek/internal/models"
	"github.com/sqlpeek/sqlpeek/internal/parser"
)

// Options configures a verification run.
type Options struct {
	Database string
	Verbose  bool
}

// Verify predicts the column names for query, executes the query against the
// server without fetching rows, and reports position-by-position agreement.
// The engine runs first: its two error conditions abort verification before
// anything is sent to the server.
func Verify(ctx context.Context, conn *pgx.Conn, query string, opts Options) (*models.VerifyReport, error) {
	predicted, err := parser.ExtractColumns(query)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "predicted %d column(s): %s\n",
			len(predicted), strings.Join(predicted, ", "))
	}

	serverVer, err := connection.ServerVersion(ctx, conn)
	if err != nil {
		return nil, err
	}

	actual, err := resultNames(ctx, conn, query)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "server reported %d column(s): %s\n",
			len(actual), strings.Join(actual, ", "))
	}

	report := &models.VerifyReport{
		Query:     parser.Normalize(query),
		Database:  opts.Database,
		ServerVer: serverVer,
		Timestamp: time.Now().UTC(),
		Predicted: predicted,
		Actual:    actual,
		Diff:      Diff(predicted, actual),
	}
	report.Outcome = models.OutcomeMatch
	if report.MatchCount() != len(report.Diff) || len(predicted) != len(actual) {
		report.Outcome = models.OutcomeMismatch
	}
	return report, nil
}

// resultNames executes the query wrapped so that no rows are produced and
// returns the result-set field names the server describes.
func resultNames(ctx context.Context, conn *pgx.Conn, query string) ([]string, error) {
	probe := fmt.Sprintf("SELECT * FROM (%s) AS sqlpeek_probe LIMIT 0",
		strings.TrimRight(strings.TrimSpace(query), ";"))

	rows, err := conn.Query(ctx, probe)
	if err != nil {
		return nil, fmt.Errorf("execute probe query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f.Name)
	}

	// Drain to surface any deferred execution error.
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("probe query: %w", err)
	}
	return names, nil
}

// Diff aligns predicted and actual name lists position by position. When the
// lists differ in length the longer side is padded against empty strings, so
// every position appears in the result.
func Diff(predicted, actual []string) []models.ColumnDiff {
	n := len(predicted)
	if len(actual) > n {
		n = len(actual)
	}
	diffs := make([]models.ColumnDiff, 0, n)
	for i := 0; i < n; i++ {
		d := models.ColumnDiff{Position: i + 1}
		if i < len(predicted) {
			d.Predicted = predicted[i]
		}
		if i < len(actual) {
			d.Actual = actual[i]
		}
		d.Match = i < len(predicted) && i < len(actual) && d.Predicted == d.Actual
		diffs = append(diffs, d)
	}
	return diffs
}
