package reporter

import (
	"fmt"
	"strings"

	"github.com/sqlpeek/sqlpeek/internal/models"
)

func renderQueryMarkdown(report *models.QueryReport) string {
	var b strings.Builder
	b.WriteString("# sqlpeek Column Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "```sql\n%s\n```\n\n", report.Query)
	if len(report.Columns) == 0 {
		b.WriteString("No columns.\n")
		return b.String()
	}
	b.WriteString("| # | Name | Rule | Expression |\n")
	b.WriteString("|---|------|------|------------|\n")
	for _, c := range report.Columns {
		fmt.Fprintf(&b, "| %d | `%s` | %s | `%s` |\n",
			c.Position, c.Name, c.Rule, mdEscape(c.Expression))
	}
	return b.String()
}

func renderSuiteMarkdown(report *models.SuiteReport) string {
	var b strings.Builder
	b.WriteString("# sqlpeek Suite Report\n\n")
	fmt.Fprintf(&b, "Suite: `%s`\n\n", report.File)
	fmt.Fprintf(&b, "**%d** case(s): %d matched, %d mismatched, %d errored\n\n",
		len(report.Results), report.MatchCount(), report.MismatchCount(), report.ErrorCount())
	b.WriteString("| Case | Outcome | Expected | Actual | Detail |\n")
	b.WriteString("|------|---------|----------|--------|--------|\n")
	for _, res := range report.Results {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			res.Name, res.Outcome,
			mdEscape(strings.Join(res.Expected, ", ")),
			mdEscape(strings.Join(res.Actual, ", ")),
			mdEscape(res.Detail))
	}
	return b.String()
}

func renderVerifyMarkdown(report *models.VerifyReport) string {
	var b strings.Builder
	b.WriteString("# sqlpeek Verification Report\n\n")
	fmt.Fprintf(&b, "```sql\n%s\n```\n\n", report.Query)
	if report.Database != "" {
		fmt.Fprintf(&b, "Database: `%s`\n\n", report.Database)
	}
	fmt.Fprintf(&b, "Outcome: **%s** (%d/%d positions agree)\n\n",
		report.Outcome, report.MatchCount(), len(report.Diff))
	b.WriteString("| # | Predicted | Actual | Match |\n")
	b.WriteString("|---|-----------|--------|-------|\n")
	for _, d := range report.Diff {
		mark := "yes"
		if !d.Match {
			mark = "no"
		}
		fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s |\n", d.Position, d.Predicted, d.Actual, mark)
	}
	return b.String()
}

// mdEscape keeps pipe characters from breaking table cells.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
