package sqlexpr

import (
	"errors"
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// ErrInvalidExpression is returned when a value cannot be coerced into the
// expression role it was given for.
var ErrInvalidExpression = errors.New("sqlexpr: invalid expression")

// Text is a SQL fragment supplied as a string that has passed ParseText.
type Text string

// SQL renders the fragment as-is.
func (t Text) SQL() string {
	return string(t)
}

// ParseText validates that s is a single boolean-valued SQL expression and
// returns it as Text. Statement separators, trailing clauses and comments
// are rejected.
func ParseText(s string) (Text, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty predicate", ErrInvalidExpression)
	}

	result, err := pg_query.Parse("SELECT 1 WHERE " + trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidExpression, trimmed, err)
	}
	if len(result.Stmts) != 1 {
		return "", fmt.Errorf("%w: %q is not a single expression", ErrInvalidExpression, trimmed)
	}

	sel := result.Stmts[0].GetStmt().GetSelectStmt()
	if sel == nil || sel.GetWhereClause() == nil {
		return "", fmt.Errorf("%w: %q is not a predicate", ErrInvalidExpression, trimmed)
	}
	// Anything that extends the statement past WHERE (GROUP BY, ORDER BY,
	// LIMIT, set operations) means the text was not a bare predicate.
	if len(sel.GetGroupClause()) > 0 || sel.GetHavingClause() != nil ||
		len(sel.GetSortClause()) > 0 || sel.GetLimitCount() != nil ||
		sel.GetLimitOffset() != nil || len(sel.GetLockingClause()) > 0 {
		return "", fmt.Errorf("%w: %q is not a predicate", ErrInvalidExpression, trimmed)
	}

	scanned, err := pg_query.Scan(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidExpression, trimmed, err)
	}
	for _, tok := range scanned.GetTokens() {
		switch tok.GetToken() {
		case pg_query.Token_SQL_COMMENT, pg_query.Token_C_COMMENT:
			return "", fmt.Errorf("%w: %q contains a comment", ErrInvalidExpression, trimmed)
		}
	}

	return Text(trimmed), nil
}

// ExpectWhere coerces v for use as a WHERE predicate.
// nil yields a nil Expr so optional filters stay unset.
func ExpectWhere(v any) (Expr, error) {
	switch w := v.(type) {
	case nil:
		return nil, nil
	case Expr:
		return w, nil
	case bool:
		return Bool(w), nil
	case string:
		return ParseText(w)
	default:
		return nil, fmt.Errorf("%w: %T is not a predicate", ErrInvalidExpression, v)
	}
}

// ExpectValue coerces v for use as an assigned value. Expressions are kept,
// nil becomes NULL and anything else is bound as a parameter.
func ExpectValue(v any) Expr {
	switch val := v.(type) {
	case nil:
		return Null{}
	case Expr:
		return val
	default:
		return Bind{Value: val}
	}
}
