// Package sqlexpr provides the typed expression building blocks shared by the
// vertica statement builder and the catalog declarations.
//
// # Overview
//
// Values passed to the builder (assignment values, partial-index predicates,
// inferred index elements, UPDATE filters) are normalized into Expr values
// before they are stored. Every Expr renders a PostgreSQL-compatible
// fragment through SQL(), which is what renderers and tests use to inspect
// a clause.
//
// # Expression Types
//
// Basic expressions:
//
//	Ident("id")                       // Bare column identifier: id
//	Col{Table: "t", Column: "id"}     // Qualified column: t.id
//	Lit("document")                   // String literal: 'document'
//	Int(42)                           // Integer literal: 42
//	Bool(true)                        // Boolean literal: TRUE
//	Null{}                            // NULL literal
//	Bind{Key: "x", Value: 1}          // Bound parameter: :x
//	Raw("CURRENT_TIMESTAMP")          // Raw SQL (escape hatch)
//	Func{Name: "lower", Args: ...}    // Function call
//
// Operators:
//
//	Eq{Left: col, Right: value}       // col = value
//	And(expr1, expr2, expr3)          // (expr1 AND expr2 AND expr3)
//	Or(expr1, expr2)                  // (expr1 OR expr2)
//	Not(expr)                         // NOT (expr)
//	IsNull{Expr: col}                 // col IS NULL
//
// # Coercion
//
// The Expect* functions turn loosely typed input into expressions. Strings
// given where a predicate is expected are parsed with the PostgreSQL parser
// and rejected when they are not a single valid boolean expression:
//
//	where, err := sqlexpr.ExpectWhere("price > 0")
//	value := sqlexpr.ExpectValue(42) // Bind{Value: 42}
package sqlexpr
