package catalog

import "github.com/pthm/vertica/pkg/sqlexpr"

// Catalog functions. Attach arguments with Call:
//
//	catalog.FormatType.Call(sqlexpr.Ident("atttypid"), sqlexpr.Ident("atttypmod"))
var (
	QuoteIdent        = vCatalogFunc("quote_ident")
	TableIsVisible    = vCatalogFunc("v_table_is_visible")
	TypeIsVisible     = vCatalogFunc("v_type_is_visible")
	GetViewDef        = vCatalogFunc("v_get_viewdef")
	GetSerialSequence = vCatalogFunc("v_get_serial_sequence")
	FormatType        = vCatalogFunc("format_type")
	GetExpr           = vCatalogFunc("v_get_expr")
	GetConstraintDef  = vCatalogFunc("v_get_constraintdef")
	GetIndexDef       = vCatalogFunc("v_get_indexdef")
)

func vCatalogFunc(name string) sqlexpr.Func {
	return sqlexpr.Func{Name: SchemaName + "." + name}
}

// relkind values of v_class.
var (
	RelkindsTableNoForeign = []string{"r", "p"}
	RelkindsTable          = concat(RelkindsTableNoForeign, []string{"f"})
	RelkindsView           = []string{"v"}
	RelkindsMatView        = []string{"m"}
	RelkindsAllTableLike   = concat(RelkindsTable, RelkindsView, RelkindsMatView)
)

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// RelkindIn builds "relkind IN (...)" for one of the Relkinds groups.
func RelkindIn(col sqlexpr.Expr, kinds []string) sqlexpr.In {
	values := make([]sqlexpr.Expr, len(kinds))
	for i, k := range kinds {
		values[i] = sqlexpr.Lit(k)
	}
	return sqlexpr.In{Expr: col, Values: values}
}
