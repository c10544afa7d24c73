package vertica

import (
	"fmt"

	"github.com/pthm/vertica/pkg/schema"
	"github.com/pthm/vertica/pkg/sqlexpr"
)

// Target is the caller-supplied description of which conflicts a clause
// responds to. Constraint and IndexElements are mutually exclusive; leaving
// every field zero means "any conflict", which only DO NOTHING accepts.
type Target struct {
	// Constraint identifies the arbiter by name or by a constraint / index
	// object. Named constraints resolve to their name; unnamed ones and
	// indexes resolve to their columns and partial-index predicate.
	Constraint schema.ConstraintLike

	// IndexElements infers the arbiter index from column names (string),
	// columns or expressions.
	IndexElements []any

	// IndexWhere restricts inference to a partial index. It accepts an
	// sqlexpr.Expr, a bool or a SQL predicate string and is ignored unless
	// IndexElements is set.
	IndexWhere any
}

// OnConstraint returns a Target naming a constraint.
func OnConstraint(name string) Target {
	return Target{Constraint: schema.ConstraintName(name)}
}

// OnColumns returns a Target inferring the arbiter index from elements.
func OnColumns(elements ...any) Target {
	return Target{IndexElements: elements}
}

// Where returns a copy of t restricted to the partial index matching where.
func (t Target) Where(where any) Target {
	t.IndexWhere = where
	return t
}

// ConflictTarget is a resolved conflict target. At most one of
// ConstraintName and InferredElements is set; neither means any conflict.
type ConflictTarget struct {
	ConstraintName   string
	InferredElements []sqlexpr.Expr
	InferredWhere    sqlexpr.Expr
}

// IsSet reports whether the target names a constraint or infers an index.
func (c ConflictTarget) IsSet() bool {
	return c.HasConstraint() || c.HasInferredElements()
}

// HasConstraint reports whether the target is a named constraint.
func (c ConflictTarget) HasConstraint() bool {
	return c.ConstraintName != ""
}

// HasInferredElements reports whether the target infers an index.
func (c ConflictTarget) HasInferredElements() bool {
	return len(c.InferredElements) > 0
}

// ResolveTarget turns caller input into a ConflictTarget.
//
// Resolution is pure: identical input always yields an identical target.
// An empty constraint name, or an IndexWhere without IndexElements, leaves
// the target unset.
func ResolveTarget(t Target) (ConflictTarget, error) {
	if t.Constraint != nil {
		if len(t.IndexElements) > 0 {
			return ConflictTarget{}, fmt.Errorf("%w: 'constraint' and 'index_elements' are mutually exclusive", ErrValidation)
		}
		return resolveConstraint(t.Constraint)
	}

	if len(t.IndexElements) == 0 {
		return ConflictTarget{}, nil
	}

	elements := make([]sqlexpr.Expr, len(t.IndexElements))
	for i, el := range t.IndexElements {
		e, err := schema.ExpectDDLElement(el)
		if err != nil {
			return ConflictTarget{}, fmt.Errorf("%w: index element %d: %w", ErrValidation, i, err)
		}
		elements[i] = e
	}
	return inferred(elements, t.IndexWhere)
}

func resolveConstraint(c schema.ConstraintLike) (ConflictTarget, error) {
	switch con := c.(type) {
	case schema.ConstraintName:
		return ConflictTarget{ConstraintName: string(con)}, nil

	case *schema.Constraint:
		if con == nil {
			return ConflictTarget{}, fmt.Errorf("%w: nil constraint", ErrValidation)
		}
		if con.Name != "" {
			return ConflictTarget{ConstraintName: con.Name}, nil
		}
		return inferred(schema.ColumnExprs(con.Columns), con.DialectOptions.Get(DialectName, "where"))

	case *schema.ExcludeConstraint:
		if con == nil {
			return ConflictTarget{}, fmt.Errorf("%w: nil exclude constraint", ErrValidation)
		}
		if con.Name != "" {
			return ConflictTarget{ConstraintName: con.Name}, nil
		}
		return inferred(schema.ColumnExprs(con.Columns()), con.Where)

	case *schema.Index:
		// Indexes are not constraints; ON CONSTRAINT cannot name them, so
		// they always resolve by their expressions.
		if con == nil {
			return ConflictTarget{}, fmt.Errorf("%w: nil index", ErrValidation)
		}
		return inferred(con.Expressions, con.DialectOptions.Get(DialectName, "where"))

	default:
		return ConflictTarget{}, fmt.Errorf("%w: unsupported constraint %T", ErrValidation, c)
	}
}

func inferred(elements []sqlexpr.Expr, where any) (ConflictTarget, error) {
	if len(elements) == 0 {
		return ConflictTarget{}, fmt.Errorf("%w: constraint has neither a name nor columns", ErrValidation)
	}
	w, err := sqlexpr.ExpectWhere(where)
	if err != nil {
		return ConflictTarget{}, fmt.Errorf("%w: index where: %w", ErrValidation, err)
	}
	return ConflictTarget{
		InferredElements: append([]sqlexpr.Expr(nil), elements...),
		InferredWhere:    w,
	}, nil
}
