package schema

import (
	"github.com/pthm/vertica/pkg/sqlexpr"
)

// DialectOptions holds per-dialect keyword options, e.g.
// DialectOptions{"vertica": {"where": "deleted_at IS NULL"}}.
type DialectOptions map[string]map[string]any

// Get returns the option for dialect and key, or nil.
func (o DialectOptions) Get(dialect, key string) any {
	if o == nil {
		return nil
	}
	return o[dialect][key]
}

// ConstraintLike is implemented by the inputs accepted as a conflict
// target. The set is closed: ConstraintName, *Constraint,
// *ExcludeConstraint and *Index.
type ConstraintLike interface {
	constraintLike()
}

// ConstraintName names a unique or exclusion constraint directly.
type ConstraintName string

func (ConstraintName) constraintLike() {}

// ConstraintKind distinguishes table constraints.
type ConstraintKind int

const (
	// ConstraintGeneric is a constraint known only by its columns.
	ConstraintGeneric ConstraintKind = iota
	// ConstraintPrimaryKey is a PRIMARY KEY constraint.
	ConstraintPrimaryKey
	// ConstraintUnique is a UNIQUE constraint.
	ConstraintUnique
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintPrimaryKey:
		return "primary key"
	case ConstraintUnique:
		return "unique"
	default:
		return "constraint"
	}
}

// Constraint is a table constraint over a list of columns.
type Constraint struct {
	Name           string
	Kind           ConstraintKind
	Columns        []*Column
	DialectOptions DialectOptions
}

func (*Constraint) constraintLike() {}

// PrimaryKey returns a primary key constraint over cols.
func PrimaryKey(name string, cols ...*Column) *Constraint {
	return &Constraint{Name: name, Kind: ConstraintPrimaryKey, Columns: cols}
}

// Unique returns a unique constraint over cols.
func Unique(name string, cols ...*Column) *Constraint {
	return &Constraint{Name: name, Kind: ConstraintUnique, Columns: cols}
}

// ExcludeElement is one column / operator pair of an exclusion constraint.
type ExcludeElement struct {
	Column   *Column
	Operator string
}

// ExcludeConstraint is an EXCLUDE constraint with an optional predicate.
type ExcludeConstraint struct {
	Name     string
	Using    string
	Elements []ExcludeElement
	Where    sqlexpr.Expr
}

func (*ExcludeConstraint) constraintLike() {}

// Columns returns the constrained columns in order.
func (e *ExcludeConstraint) Columns() []*Column {
	out := make([]*Column, len(e.Elements))
	for i, el := range e.Elements {
		out[i] = el.Column
	}
	return out
}

// Index is a (possibly partial, possibly expression) index.
type Index struct {
	Name           string
	Unique         bool
	Expressions    []sqlexpr.Expr
	DialectOptions DialectOptions
}

func (*Index) constraintLike() {}

// ColumnExprs converts columns into expressions.
func ColumnExprs(cols []*Column) []sqlexpr.Expr {
	if len(cols) == 0 {
		return nil
	}
	out := make([]sqlexpr.Expr, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
