package sqlexpr

import (
	"testing"
)

func TestExpr_SQL(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "ident", expr: Ident("id"), want: "id"},
		{name: "ident needing quotes", expr: Ident("Order Total"), want: `"Order Total"`},
		{name: "ident with embedded quote", expr: Ident(`a"b`), want: `"a""b"`},
		{name: "qualified column", expr: Col{Table: "excluded", Column: "price"}, want: "excluded.price"},
		{name: "unqualified column", expr: Col{Column: "price"}, want: "price"},
		{name: "literal", expr: Lit("it's"), want: "'it''s'"},
		{name: "int", expr: Int(42), want: "42"},
		{name: "bool true", expr: Bool(true), want: "TRUE"},
		{name: "bool false", expr: Bool(false), want: "FALSE"},
		{name: "null", expr: Null{}, want: "NULL"},
		{name: "anonymous bind", expr: Bind{Value: 1}, want: "?"},
		{name: "named bind", expr: Bind{Key: "x", Value: 1}, want: ":x"},
		{name: "raw", expr: Raw("CURRENT_TIMESTAMP"), want: "CURRENT_TIMESTAMP"},
		{
			name: "function",
			expr: Func{Name: "v_catalog.quote_ident", Args: []Expr{Lit("t")}},
			want: "v_catalog.quote_ident('t')",
		},
		{name: "alias", expr: Alias{Expr: Int(1), Name: "one"}, want: "1 AS one"},
		{name: "paren", expr: Paren{Expr: Raw("a + b")}, want: "(a + b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunc_Call(t *testing.T) {
	base := Func{Name: "v_catalog.format_type"}
	call := base.Call(Ident("atttypid"), Ident("atttypmod"))

	if got, want := call.SQL(), "v_catalog.format_type(atttypid, atttypmod)"; got != want {
		t.Errorf("Call().SQL() = %q, want %q", got, want)
	}
	if len(base.Args) != 0 {
		t.Error("Call should not modify the receiver")
	}
}

func TestOperators_SQL(t *testing.T) {
	price := Col{Table: "excluded", Column: "price"}
	current := Ident("price")

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "eq", expr: Eq{Left: current, Right: price}, want: "price = excluded.price"},
		{name: "ne", expr: Ne{Left: current, Right: Int(0)}, want: "price <> 0"},
		{name: "lt", expr: Lt{Left: current, Right: Int(1)}, want: "price < 1"},
		{name: "gt", expr: Gt{Left: current, Right: Int(1)}, want: "price > 1"},
		{name: "lte", expr: Lte{Left: current, Right: Int(1)}, want: "price <= 1"},
		{name: "gte", expr: Gte{Left: current, Right: Int(1)}, want: "price >= 1"},
		{name: "add", expr: Add{Left: current, Right: Int(1)}, want: "price + 1"},
		{name: "sub", expr: Sub{Left: current, Right: Int(1)}, want: "price - 1"},
		{name: "in", expr: In{Expr: Ident("kind"), Values: []Expr{Lit("r"), Lit("p")}}, want: "kind IN ('r', 'p')"},
		{name: "empty in", expr: In{Expr: Ident("kind")}, want: "FALSE"},
		{name: "and", expr: And(Bool(true), nil, Ident("active")), want: "(TRUE AND active)"},
		{name: "single and", expr: And(Ident("active")), want: "active"},
		{name: "empty and", expr: And(), want: "TRUE"},
		{name: "or", expr: Or(Ident("a"), Ident("b")), want: "(a OR b)"},
		{name: "empty or", expr: Or(), want: "FALSE"},
		{name: "not", expr: Not(Ident("active")), want: "NOT (active)"},
		{name: "is null", expr: IsNull{Expr: current}, want: "price IS NULL"},
		{name: "is not null", expr: IsNotNull{Expr: current}, want: "price IS NOT NULL"},
		{
			name: "is distinct from",
			expr: IsDistinctFrom{Left: current, Right: price},
			want: "price IS DISTINCT FROM excluded.price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.SQL(); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
