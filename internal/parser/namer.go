package parser

import (
	"regexp"
	"strings"
)

// Fallback names for expressions no structural name can be derived from.
const (
	subqueryFallback = "subquery_result"
	computedFallback = "calculated_field"
)

// Keywords that can trail a column expression but never serve as an alias.
var reservedKeywords = map[string]bool{
	"FROM":      true,
	"WHERE":     true,
	"GROUP":     true,
	"HAVING":    true,
	"ORDER":     true,
	"LIMIT":     true,
	"OFFSET":    true,
	"UNION":     true,
	"INTERSECT": true,
	"EXCEPT":    true,
	"JOIN":      true,
	"INNER":     true,
	"LEFT":      true,
	"RIGHT":     true,
	"FULL":      true,
	"OUTER":     true,
	"ON":        true,
	"USING":     true,
}

// Compiled regex patterns
var (
	reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// <anything> AS <identifier>, greedy so the rightmost AS wins
	// (CAST(x AS int) AS y names y).
	reExplicitAlias = regexp.MustCompile(`(?i)^(.+)\s+AS\s+([A-Za-z_][A-Za-z0-9_]*)$`)

	// optional AS followed by a single identifier, or a bare identifier
	reSubqueryAlias = regexp.MustCompile(`(?i)^(?:AS\s+)?([A-Za-z_][A-Za-z0-9_]*)$`)

	// identifier followed by an opening parenthesis, spaces allowed between
	reFunctionCall = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
)

// namingRule pairs a rule label with its matcher. The rules are evaluated in
// a fixed order and the first match wins; bareColumn at the end always
// matches, so every expression gets exactly one name.
type namingRule struct {
	label string
	apply func(expr string) (name string, ok bool)
}

var namingRules = []namingRule{
	{"subquery", subqueryName},
	{"explicit_alias", explicitAlias},
	{"implicit_alias", implicitAlias},
	{"function", functionName},
	{"qualified_column", qualifiedColumn},
	{"calculated", computedExpression},
	{"bare_column", bareColumn},
}

// deriveName maps one trimmed column expression to its output name and the
// label of the rule that produced it.
func deriveName(expr string) (string, string) {
	for _, r := range namingRules {
		if name, ok := r.apply(expr); ok {
			return name, r.label
		}
	}
	// unreachable: bareColumn always matches
	return expr, "bare_column"
}

// ColumnName derives the output name for a single column expression.
func ColumnName(expr string) string {
	name, _ := deriveName(strings.TrimSpace(expr))
	return name
}

// subqueryName handles expressions that open with a parenthesis. The last
// closing parenthesis is its matching close, since the splitter only emits
// segments with balanced nesting; whatever trails it is the alias.
func subqueryName(expr string) (string, bool) {
	if expr == "" || expr[0] != '(' {
		return "", false
	}
	closing := strings.LastIndexByte(expr, ')')
	if closing < 0 {
		return subqueryFallback, true
	}
	tail := strings.TrimSpace(expr[closing+1:])
	if m := reSubqueryAlias.FindStringSubmatch(tail); m != nil {
		return m[1], true
	}
	return subqueryFallback, true
}

// explicitAlias matches "<anything> AS <identifier>".
func explicitAlias(expr string) (string, bool) {
	if m := reExplicitAlias.FindStringSubmatch(expr); m != nil {
		return m[2], true
	}
	return "", false
}

// implicitAlias takes a trailing identifier as the alias when the expression
// has at least two space-separated tokens. Reserved keywords never alias,
// and neither does an identifier that directly follows a bare arithmetic
// operator ("price * quantity" is a computation, not "quantity" aliased).
func implicitAlias(expr string) (string, bool) {
	fields := strings.Fields(expr)
	if len(fields) < 2 {
		return "", false
	}
	last := fields[len(fields)-1]
	if isOperatorToken(fields[len(fields)-2]) {
		return "", false
	}
	if reservedKeywords[strings.ToUpper(last)] || !reIdent.MatchString(last) {
		return "", false
	}
	return last, true
}

// functionName names a leading function call after the function, lower-cased.
func functionName(expr string) (string, bool) {
	if m := reFunctionCall.FindStringSubmatch(expr); m != nil {
		return strings.ToLower(m[1]), true
	}
	return "", false
}

// qualifiedColumn strips the table qualifier from "t.col" or "db.t.col".
func qualifiedColumn(expr string) (string, bool) {
	first := firstField(expr)
	if i := strings.LastIndexByte(first, '.'); i >= 0 {
		return first[i+1:], true
	}
	return "", false
}

// computedExpression catches arithmetic that no earlier rule could name.
func computedExpression(expr string) (string, bool) {
	if strings.ContainsAny(expr, "+-*/") {
		return computedFallback, true
	}
	return "", false
}

// bareColumn returns the first token unchanged. Always matches.
func bareColumn(expr string) (string, bool) {
	return firstField(expr), true
}

func firstField(expr string) string {
	if fields := strings.Fields(expr); len(fields) > 0 {
		return fields[0]
	}
	return expr
}

// isOperatorToken reports whether tok consists solely of arithmetic
// operator characters.
func isOperatorToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '+', '-', '*', '/':
		default:
			return false
		}
	}
	return true
}
