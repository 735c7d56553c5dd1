// Package reporter renders query, suite, and verification reports into
// text, json, and markdown output formats.
package reporter

import (
	"fmt"

	"github.com/sqlpeek/sqlpeek/internal/models"
)

// Formats accepted by the Render functions.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// RenderQuery dispatches to the appropriate query-report renderer.
func RenderQuery(report *models.QueryReport, format string) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(report)
	case FormatMarkdown:
		return renderQueryMarkdown(report), nil
	case FormatText:
		return renderQueryText(report), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// RenderSuite dispatches to the appropriate suite-report renderer.
func RenderSuite(report *models.SuiteReport, format string) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(report)
	case FormatMarkdown:
		return renderSuiteMarkdown(report), nil
	case FormatText:
		return renderSuiteText(report), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// RenderVerify dispatches to the appropriate verify-report renderer.
func RenderVerify(report *models.VerifyReport, format string) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(report)
	case FormatMarkdown:
		return renderVerifyMarkdown(report), nil
	case FormatText:
		return renderVerifyText(report), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
