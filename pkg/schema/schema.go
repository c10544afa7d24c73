// Package schema provides the table metadata model used by the vertica
// statement builder and the v_catalog declarations.
//
// # Key Types
//
// MetaData is a registry of tables sharing a schema (namespace). Tables hold
// an ordered set of columns; both carry an Info map for dialect-specific
// annotations such as minimum server versions.
//
//	meta := schema.NewMetaData("public")
//	users := meta.MustTable("users", []*schema.Column{
//		schema.NewColumn("id", schema.Integer),
//		schema.NewColumn("email", schema.String(255)),
//	})
//	users.C().MustGet("email") // *schema.Column
//
// Alias produces a renamed view of a table whose columns render against the
// alias, which is how the INSERT builder exposes the "excluded" row.
//
// # Constraints
//
// ConstraintLike is a closed set of conflict-target inputs: a bare
// ConstraintName, a *Constraint (primary key, unique or generic), an
// *ExcludeConstraint, or an *Index. Consumers switch over the concrete types;
// no other implementations exist outside this package.
//
// # Coercion
//
// ExpectDMLColumn and ExpectDDLElement turn loosely typed keys (strings,
// columns, expressions) into canonical column expressions, rejecting
// anything that cannot name a column.
package schema

// Info carries free-form annotations on tables and columns.
type Info map[string]any

// Get returns the value stored under key, or nil.
func (i Info) Get(key string) any {
	if i == nil {
		return nil
	}
	return i[key]
}

