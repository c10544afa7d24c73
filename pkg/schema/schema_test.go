package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/vertica/pkg/sqlexpr"
)

func productsTable(t *testing.T) *Table {
	t.Helper()
	meta := NewMetaData("shop")
	return meta.MustTable("products", []*Column{
		NewColumn("id", Integer),
		NewColumn("sku", String(32)),
		NewColumn("price", Float, WithColumnInfo("unit", "EUR")),
	})
}

func TestNewTable(t *testing.T) {
	products := productsTable(t)

	assert.Equal(t, "shop", products.Schema)
	assert.Equal(t, "shop.products", products.FullName())
	assert.Equal(t, "shop.products", products.TableSQL())
	assert.Equal(t, []string{"id", "sku", "price"}, products.C().Keys())

	price, ok := products.Column("price")
	require.True(t, ok)
	assert.Same(t, products, price.Table())
	assert.Equal(t, 2, price.Position())
	assert.Equal(t, "EUR", price.Info.Get("unit"))
	assert.Equal(t, "products.price", price.SQL())

	_, ok = products.Column("missing")
	assert.False(t, ok)
}

func TestNewTable_DuplicateColumn(t *testing.T) {
	_, err := NewTable("t", []*Column{NewColumn("a", Integer), NewColumn("a", Text)})
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestNewTable_ColumnAlreadyAttached(t *testing.T) {
	col := NewColumn("a", Integer)
	MustNewTable("t1", []*Column{col})

	_, err := NewTable("t2", []*Column{col})
	require.ErrorIs(t, err, ErrColumnAttached)
}

func TestNewTable_FailureLeavesColumnsDetached(t *testing.T) {
	a := NewColumn("a", Integer)
	_, err := NewTable("t", []*Column{a, NewColumn("a", Integer)})
	require.Error(t, err)
	assert.Nil(t, a.Table())
}

func TestMetaData(t *testing.T) {
	meta := NewMetaData("v_catalog")
	meta.MustTable("v_type", []*Column{NewColumn("oid", Integer)})
	meta.MustTable("v_class", []*Column{NewColumn("oid", Integer)},
		WithTableInfo("server_version", "10"))

	_, err := meta.Table("v_type", nil)
	require.ErrorIs(t, err, ErrDuplicateTable)

	tables := meta.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "v_class", tables[0].Name)
	assert.Equal(t, "v_type", tables[1].Name)
	assert.Equal(t, "10", tables[0].Info.Get("server_version"))

	got, ok := meta.Lookup("v_class")
	require.True(t, ok)
	assert.Same(t, tables[0], got)

	_, ok = meta.Lookup("v_nope")
	assert.False(t, ok)
}

func TestMetaData_ZeroValue(t *testing.T) {
	var meta MetaData
	_, err := meta.Table("t", []*Column{NewColumn("a", Integer)})
	require.NoError(t, err)
}

func TestAlias(t *testing.T) {
	products := productsTable(t)
	excluded := Alias(products, "excluded")

	assert.Equal(t, "shop.products AS excluded", excluded.TableSQL())
	assert.Equal(t, products.C().Keys(), excluded.C().Keys())

	price := excluded.C().MustGet("price")
	assert.Equal(t, "excluded.price", price.SQL())

	aliased, ok := price.(*AliasedColumn)
	require.True(t, ok)
	assert.Same(t, products.C().MustGet("price"), aliased.Column)
}

func TestColumnCollection(t *testing.T) {
	products := productsTable(t)
	c := products.C()

	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains("sku"))
	assert.False(t, c.Contains("SKU"))

	all := c.All()
	all[0] = nil
	assert.NotNil(t, c.All()[0], "All should return a copy")

	assert.Panics(t, func() { c.MustGet("nope") })

	var empty *ColumnCollection
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Keys())
}

func TestTypes(t *testing.T) {
	name := Decorate("NAME", String(64).Collate("C"))
	vector := Decorate("INT2VECTOR", Array(SmallInteger))

	tests := []struct {
		name    string
		typ     Type
		str     string
		ddl     string
		isArray bool
	}{
		{name: "integer", typ: Integer, str: "INTEGER", ddl: "INTEGER"},
		{name: "varchar", typ: String(64), str: "VARCHAR(64)", ddl: "VARCHAR(64)"},
		{name: "collated text", typ: Text.Collate("C"), str: `TEXT COLLATE "C"`, ddl: `TEXT COLLATE "C"`},
		{name: "array", typ: Array(Text), str: "TEXT[]", ddl: "TEXT[]", isArray: true},
		{name: "decorated", typ: name, str: "NAME", ddl: `VARCHAR(64) COLLATE "C"`},
		{name: "decorated array", typ: vector, str: "INT2VECTOR", ddl: "SMALLINT[]", isArray: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.typ.String())
			assert.Equal(t, tt.ddl, tt.typ.DDL())
			assert.Equal(t, tt.isArray, tt.typ.IsArray())
		})
	}
}

func TestDialectOptions(t *testing.T) {
	opts := DialectOptions{"vertica": {"where": "active"}}
	assert.Equal(t, "active", opts.Get("vertica", "where"))
	assert.Nil(t, opts.Get("vertica", "using"))
	assert.Nil(t, opts.Get("postgresql", "where"))

	var none DialectOptions
	assert.Nil(t, none.Get("vertica", "where"))
}

func TestExcludeConstraint_Columns(t *testing.T) {
	products := productsTable(t)
	id, _ := products.Column("id")
	sku, _ := products.Column("sku")

	ex := &ExcludeConstraint{
		Using: "gist",
		Elements: []ExcludeElement{
			{Column: id, Operator: "="},
			{Column: sku, Operator: "&&"},
		},
	}
	assert.Equal(t, []*Column{id, sku}, ex.Columns())
	assert.Equal(t, []sqlexpr.Expr{id, sku}, ColumnExprs(ex.Columns()))
	assert.Nil(t, ColumnExprs(nil))
}

func TestConstraintKind_String(t *testing.T) {
	assert.Equal(t, "primary key", PrimaryKey("pk").Kind.String())
	assert.Equal(t, "unique", Unique("uq").Kind.String())
	assert.Equal(t, "constraint", ConstraintGeneric.String())
}

func TestExpectDMLColumn(t *testing.T) {
	products := productsTable(t)
	price := products.C().MustGet("price")
	excludedPrice := Alias(products, "excluded").C().MustGet("price")

	valid := []struct {
		name string
		in   any
		want sqlexpr.Expr
	}{
		{name: "string", in: "price", want: sqlexpr.Ident("price")},
		{name: "column", in: price, want: price},
		{name: "aliased column", in: excludedPrice, want: excludedPrice},
		{name: "ident", in: sqlexpr.Ident("x"), want: sqlexpr.Ident("x")},
		{name: "col", in: sqlexpr.Col{Table: "t", Column: "x"}, want: sqlexpr.Col{Table: "t", Column: "x"}},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpectDMLColumn(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []struct {
		name string
		in   any
	}{
		{name: "nil", in: nil},
		{name: "empty string", in: ""},
		{name: "empty ident", in: sqlexpr.Ident("")},
		{name: "integer", in: 3},
		{name: "literal expression", in: sqlexpr.Lit("x")},
		{name: "function", in: sqlexpr.Func{Name: "lower"}},
		{name: "nil column", in: (*Column)(nil)},
		{name: "nil aliased column", in: (*AliasedColumn)(nil)},
		{name: "aliased column without column", in: &AliasedColumn{Alias: "excluded"}},
	}
	for _, tt := range invalid {
		t.Run("invalid/"+tt.name, func(t *testing.T) {
			_, err := ExpectDMLColumn(tt.in)
			require.ErrorIs(t, err, ErrNotAColumn)
			assert.True(t, IsNotAColumnErr(err))
		})
	}
}

func TestExpectDDLElement(t *testing.T) {
	got, err := ExpectDDLElement("sku")
	require.NoError(t, err)
	assert.Equal(t, sqlexpr.Ident("sku"), got)

	lower := sqlexpr.Func{Name: "lower", Args: []sqlexpr.Expr{sqlexpr.Ident("sku")}}
	got, err = ExpectDDLElement(lower)
	require.NoError(t, err)
	assert.Equal(t, lower, got)

	for _, bad := range []any{nil, "", 7, (*Column)(nil), (*AliasedColumn)(nil)} {
		_, err := ExpectDDLElement(bad)
		require.ErrorIs(t, err, ErrNotAColumn)
	}
}
