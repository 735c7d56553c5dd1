// Package parser infers result-set column names from the text of a single
// SQL SELECT statement, without a database connection and without a schema.
//
// The engine does not implement an SQL grammar. It isolates the SELECT list
// by scanning with parenthesis-depth and quote tracking, splits it on
// top-level commas, and names each column expression through an ordered set
// of heuristics (see namer.go). Malformed SQL is never rejected; the engine
// produces best-effort names for anything that begins with SELECT.
//
// Double-quoted aliases (SELECT sum(x) AS "Total Amount") are not matched by
// the identifier-based rules and fall through to the later heuristics.
package parser

import "strings"

const selectKeyword = "SELECT"

// Normalize collapses every whitespace run (spaces, tabs, newlines) to a
// single space and trims both ends.
func Normalize(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

// tracker holds the scanning state shared by clause extraction and column
// splitting: current parenthesis depth and the active quote character
// (0 when outside quotes).
type tracker struct {
	depth int
	quote byte
}

// step consumes s[i]. Parentheses are only counted outside quotes, and a
// quote character preceded by a backslash does not toggle quote state.
func (t *tracker) step(s string, i int) {
	c := s[i]
	escaped := i > 0 && s[i-1] == '\\'
	if t.quote != 0 {
		if c == t.quote && !escaped {
			t.quote = 0
		}
		return
	}
	switch c {
	case '\'', '"':
		if !escaped {
			t.quote = c
		}
	case '(':
		t.depth++
	case ')':
		t.depth--
	}
}

// topLevel reports whether the scanner is outside all parentheses and quotes.
func (t *tracker) topLevel() bool {
	return t.depth == 0 && t.quote == 0
}

// indexTopLevel returns the index of the first top-level boundary in s.
// The boundary predicate returns the length of a delimiter starting at the
// given offset, or 0 for no match; it is only consulted at parenthesis depth
// zero outside quoted literals. Returns -1 when no boundary occurs.
func indexTopLevel(s string, boundary func(s string, i int) int) int {
	var t tracker
	for i := 0; i < len(s); i++ {
		if t.topLevel() && boundary(s, i) > 0 {
			return i
		}
		t.step(s, i)
	}
	return -1
}

// splitTopLevel splits s at every top-level boundary, trimming each segment
// and dropping segments that are empty after trimming. Scanning state is
// always clean immediately after a top-level boundary, so the remainder can
// be rescanned from scratch.
func splitTopLevel(s string, boundary func(s string, i int) int) []string {
	var segments []string
	rest := s
	for {
		i := indexTopLevel(rest, boundary)
		if i < 0 {
			break
		}
		if seg := strings.TrimSpace(rest[:i]); seg != "" {
			segments = append(segments, seg)
		}
		rest = rest[i+boundary(rest, i):]
	}
	if seg := strings.TrimSpace(rest); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}

// fromBoundary matches the clause-terminating FROM keyword: a space-wrapped
// " FROM ", case-insensitive.
func fromBoundary(s string, i int) int {
	if i+6 <= len(s) && strings.EqualFold(s[i:i+6], " FROM ") {
		return 6
	}
	return 0
}

// commaBoundary matches a column-list separator.
func commaBoundary(s string, i int) int {
	if s[i] == ',' {
		return 1
	}
	return 0
}

// isSelect reports whether the normalized query begins with the SELECT
// keyword as a whole token.
func isSelect(normalized string) bool {
	if len(normalized) < len(selectKeyword) {
		return false
	}
	if !strings.EqualFold(normalized[:len(selectKeyword)], selectKeyword) {
		return false
	}
	return len(normalized) == len(selectKeyword) || normalized[len(selectKeyword)] == ' '
}

// selectClause returns the text between the leading SELECT keyword and the
// first top-level FROM. A FROM inside parentheses (subqueries) or inside
// quoted literals never terminates the clause. Queries without a top-level
// FROM yield the remainder of the statement.
func selectClause(normalized string) string {
	rest := normalized[len(selectKeyword):]
	if i := indexTopLevel(rest, fromBoundary); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// splitColumns splits a SELECT clause into its column expressions at
// top-level commas, using the same quote and escape semantics as clause
// extraction.
func splitColumns(clause string) []string {
	return splitTopLevel(clause, commaBoundary)
}

// AnalyzeColumns predicts the result-set columns of a SELECT statement.
// It returns ErrInvalidInput for blank input and ErrUnsupportedStatement
// when the statement is not a SELECT; any other text yields best-effort
// predictions in source order.
func AnalyzeColumns(query string) ([]Column, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}
	normalized := Normalize(query)
	if !isSelect(normalized) {
		return nil, ErrUnsupportedStatement
	}

	expressions := splitColumns(selectClause(normalized))
	columns := make([]Column, 0, len(expressions))
	for i, expr := range expressions {
		name, rule := deriveName(expr)
		columns = append(columns, Column{
			Position:   i + 1,
			Expression: expr,
			Name:       name,
			Rule:       rule,
		})
	}
	return columns, nil
}

// ExtractColumns is AnalyzeColumns reduced to the ordered name list.
func ExtractColumns(query string) ([]string, error) {
	columns, err := AnalyzeColumns(query)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names, nil
}
