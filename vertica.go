// Package vertica provides Vertica-specific statement constructs for the
// SQL toolkit, most notably INSERT ... ON CONFLICT.
//
// # Module Structure
//
//   - github.com/pthm/vertica: INSERT builder and ON CONFLICT clauses.
//   - github.com/pthm/vertica/pkg/sqlexpr: expression types and coercion.
//   - github.com/pthm/vertica/pkg/schema: tables, columns, constraints.
//   - github.com/pthm/vertica/pkg/catalog: declarations of the v_catalog
//     system tables with server-version gates.
//
// The builder produces an intermediate representation only. Rendering it to
// SQL is the job of a renderer that selects rules by Dialect() and walks the
// clause through its Visitor.
//
// # Basic Usage
//
//	stmt := vertica.Insert(products)
//	stmt, err := stmt.Values(map[string]any{"sku": "A-1", "price": 9.5})
//	if err != nil {
//		return err
//	}
//	stmt, err = stmt.OnConflictDoUpdate(
//		vertica.OnColumns("sku"),
//		[]vertica.Pair{vertica.Set("price", stmt.Excluded().MustGet("price"))},
//		nil,
//	)
//
// # Conflict Targets
//
// A target either names a constraint or infers an arbiter index from
// columns, optionally restricted to a partial index:
//
//	vertica.OnConstraint("products_pkey")
//	vertica.OnColumns("sku").Where("deleted_at IS NULL")
//	vertica.Target{Constraint: schema.Unique("", skuCol)} // resolves to (sku)
//
// DO NOTHING accepts an empty Target, meaning any conflict. DO UPDATE
// requires a concrete target.
//
// # One Clause Per Statement
//
// Each configuring method returns a new statement and leaves the receiver
// unchanged. Once a statement carries an ON CONFLICT clause, both
// OnConflictDoNothing and OnConflictDoUpdate fail with ErrConfiguration:
//
//	base := vertica.Insert(products)
//	ignore, _ := base.OnConflictDoNothing(vertica.Target{})
//	_, err := ignore.OnConflictDoUpdate(...) // ErrConfiguration
//	upsert, _ := base.OnConflictDoUpdate(...) // fine, base is untouched
//
// # Errors
//
// Argument problems are reported as ErrValidation and wrap the underlying
// coercion error. Use IsValidationErr and IsConfigurationErr to classify.
package vertica

import (
	"github.com/pthm/vertica/pkg/schema"
)

// DialectName tags every construct in this package so renderers can select
// Vertica emission rules.
const DialectName = "vertica"

// Insert returns an INSERT into table with no values and no ON CONFLICT
// clause.
func Insert(table *schema.Table) *InsertStmt {
	stmt := &InsertStmt{table: table}
	if table != nil {
		stmt.excluded = schema.Alias(table, ExcludedName).C()
	}
	return stmt
}
