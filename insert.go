package vertica

import (
	"fmt"

	"github.com/pthm/vertica/pkg/schema"
	"github.com/pthm/vertica/pkg/sqlexpr"
)

// ExcludedName is the alias of the row proposed for insertion.
const ExcludedName = "excluded"

// InsertStmt is an INSERT that may carry one ON CONFLICT clause.
//
// Configuring methods never modify the receiver: they return a shallow copy
// with one field replaced, so a base statement can be shared and extended
// along several branches. A finished statement is safe for concurrent reads.
type InsertStmt struct {
	table      *schema.Table
	values     []Assignment
	returning  []sqlexpr.Expr
	postValues OnConflictClause

	excluded *schema.ColumnCollection
}

// Table returns the target table.
func (s *InsertStmt) Table() *schema.Table {
	return s.table
}

// Dialect returns DialectName.
func (s *InsertStmt) Dialect() string {
	return DialectName
}

// OnConflict returns the attached clause, or nil.
func (s *InsertStmt) OnConflict() OnConflictClause {
	return s.postValues
}

// InsertValues returns the VALUES assignments in column order.
func (s *InsertStmt) InsertValues() []Assignment {
	out := make([]Assignment, len(s.values))
	copy(out, s.values)
	return out
}

// ReturningColumns returns the RETURNING list.
func (s *InsertStmt) ReturningColumns() []sqlexpr.Expr {
	out := make([]sqlexpr.Expr, len(s.returning))
	copy(out, s.returning)
	return out
}

// Excluded returns the columns of the "excluded" row, the values that would
// have been inserted, for use in DO UPDATE assignments and filters:
//
//	ex := stmt.Excluded()
//	stmt, err = stmt.OnConflictDoUpdate(
//		vertica.OnColumns("sku"),
//		[]vertica.Pair{vertica.Set("price", ex.MustGet("price"))},
//		nil,
//	)
func (s *InsertStmt) Excluded() *schema.ColumnCollection {
	return s.excluded
}

// Values returns a copy of s inserting the given row. values accepts the
// same shapes as the SET argument of OnConflictDoUpdate, except column
// collections.
func (s *InsertStmt) Values(values any) (*InsertStmt, error) {
	if _, ok := values.(*schema.ColumnCollection); ok {
		return nil, fmt.Errorf("%w: values parameter cannot be a column collection", ErrValidation)
	}
	assignments, err := normalizeAssignments(values, "values")
	if err != nil {
		return nil, err
	}
	stmt := s.generate()
	stmt.values = assignments
	return stmt, nil
}

// Returning returns a copy of s with the RETURNING list replaced.
func (s *InsertStmt) Returning(cols ...sqlexpr.Expr) *InsertStmt {
	stmt := s.generate()
	stmt.returning = append([]sqlexpr.Expr(nil), cols...)
	return stmt
}

// OnConflictDoNothing returns a copy of s with ON CONFLICT DO NOTHING.
//
// The constraint and index elements of target are optional, but only one
// may be given. It fails with ErrConfiguration if s already has an ON
// CONFLICT clause.
func (s *InsertStmt) OnConflictDoNothing(target Target) (*InsertStmt, error) {
	if err := s.onConflictExclusive(); err != nil {
		return nil, err
	}
	clause, err := NewOnConflictDoNothing(target)
	if err != nil {
		return nil, err
	}
	stmt := s.generate()
	stmt.postValues = clause
	return stmt, nil
}

// OnConflictDoUpdate returns a copy of s with ON CONFLICT DO UPDATE SET.
//
// Exactly one of the constraint or the index elements of target is required.
// See NewOnConflictDoUpdate for the accepted set shapes. Defaults declared
// for updates elsewhere are not applied; every updated column must appear
// in set. It fails with ErrConfiguration if s already has an ON CONFLICT
// clause.
func (s *InsertStmt) OnConflictDoUpdate(target Target, set any, where any) (*InsertStmt, error) {
	if err := s.onConflictExclusive(); err != nil {
		return nil, err
	}
	clause, err := NewOnConflictDoUpdate(target, set, where)
	if err != nil {
		return nil, err
	}
	stmt := s.generate()
	stmt.postValues = clause
	return stmt, nil
}

func (s *InsertStmt) onConflictExclusive() error {
	if s.postValues != nil {
		return fmt.Errorf("%w: this INSERT already has an ON CONFLICT clause established", ErrConfiguration)
	}
	return nil
}

func (s *InsertStmt) generate() *InsertStmt {
	c := *s
	return &c
}
