package parser

import "errors"

// The two error conditions the engine reports. Anything else that looks like
// odd SQL gets best-effort names rather than an error.
var (
	// ErrInvalidInput is returned for empty or whitespace-only query text.
	ErrInvalidInput = errors.New("Query must be a non-empty string")

	// ErrUnsupportedStatement is returned when the statement is not a SELECT.
	ErrUnsupportedStatement = errors.New("Only SELECT queries are supported")
)

// Column describes one predicted result-set column.
type Column struct {
	// Position is the 1-based position of the column in the result set.
	Position int
	// Expression is the trimmed source expression the name was derived from.
	Expression string
	// Name is the derived output name.
	Name string
	// Rule identifies the naming rule that produced the name.
	Rule string
}
