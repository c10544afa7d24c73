package schema

import (
	"fmt"

	"github.com/pthm/vertica/pkg/sqlexpr"
)

// ExpectDMLColumn coerces key into a column reference usable as the target
// of an INSERT value or UPDATE assignment.
//
// Strings become bare identifiers; columns and column expressions are kept.
func ExpectDMLColumn(key any) (sqlexpr.Expr, error) {
	switch k := key.(type) {
	case string:
		if k == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrNotAColumn)
		}
		return sqlexpr.Ident(k), nil
	case *Column:
		if k == nil {
			return nil, fmt.Errorf("%w: nil column", ErrNotAColumn)
		}
		return k, nil
	case *AliasedColumn:
		if k == nil || k.Column == nil {
			return nil, fmt.Errorf("%w: nil column", ErrNotAColumn)
		}
		return k, nil
	case ColumnElement:
		return k, nil
	case sqlexpr.Ident:
		if k == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrNotAColumn)
		}
		return k, nil
	case sqlexpr.Col:
		return k, nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrNotAColumn)
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotAColumn, key)
	}
}

// ExpectDDLElement coerces v into an index element: a column name or any
// expression.
func ExpectDDLElement(v any) (sqlexpr.Expr, error) {
	switch e := v.(type) {
	case string:
		if e == "" {
			return nil, fmt.Errorf("%w: empty column name", ErrNotAColumn)
		}
		return sqlexpr.Ident(e), nil
	case *Column:
		if e == nil {
			return nil, fmt.Errorf("%w: nil column", ErrNotAColumn)
		}
		return e, nil
	case *AliasedColumn:
		if e == nil || e.Column == nil {
			return nil, fmt.Errorf("%w: nil column", ErrNotAColumn)
		}
		return e, nil
	case sqlexpr.Expr:
		return e, nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrNotAColumn)
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotAColumn, v)
	}
}
