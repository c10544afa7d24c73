package schema

import (
	"fmt"

	"github.com/pthm/vertica/pkg/sqlexpr"
)

// ColumnElement is an expression that names a column: a table column or a
// column of an aliased table.
type ColumnElement interface {
	sqlexpr.Expr
	ColumnName() string
}

// ColumnCollection is an ordered, read-only collection of columns keyed by
// name.
type ColumnCollection struct {
	elems []ColumnElement
	index map[string]int
}

func newColumnCollection(elems []ColumnElement) *ColumnCollection {
	index := make(map[string]int, len(elems))
	for i, e := range elems {
		index[e.ColumnName()] = i
	}
	return &ColumnCollection{elems: elems, index: index}
}

// Len returns the number of columns.
func (c *ColumnCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.elems)
}

// Get returns the named column.
func (c *ColumnCollection) Get(name string) (ColumnElement, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.elems[i], true
}

// MustGet returns the named column and panics when it does not exist.
func (c *ColumnCollection) MustGet(name string) ColumnElement {
	e, ok := c.Get(name)
	if !ok {
		panic(fmt.Sprintf("schema: no column %q", name))
	}
	return e
}

// Contains reports whether the collection has a column called name.
func (c *ColumnCollection) Contains(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Keys returns the column names in order.
func (c *ColumnCollection) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.elems))
	for i, e := range c.elems {
		keys[i] = e.ColumnName()
	}
	return keys
}

// All returns the columns in order. The returned slice is a copy.
func (c *ColumnCollection) All() []ColumnElement {
	if c == nil {
		return nil
	}
	out := make([]ColumnElement, len(c.elems))
	copy(out, c.elems)
	return out
}

// TableAlias is a table referenced under another name, e.g. the
// "excluded" pseudo-table of an ON CONFLICT clause.
type TableAlias struct {
	Name  string
	Table *Table

	columns *ColumnCollection
}

// AliasedColumn is a column of a TableAlias.
type AliasedColumn struct {
	Alias  string
	Column *Column
}

// ColumnName implements ColumnElement.
func (a *AliasedColumn) ColumnName() string {
	return a.Column.Name
}

// SQL renders the column qualified by the alias.
func (a *AliasedColumn) SQL() string {
	return sqlexpr.Col{Table: a.Alias, Column: a.Column.Name}.SQL()
}

// Alias returns t referenced as name.
func Alias(t *Table, name string) *TableAlias {
	cols := t.Columns()
	elems := make([]ColumnElement, len(cols))
	for i, c := range cols {
		elems[i] = &AliasedColumn{Alias: name, Column: c}
	}
	return &TableAlias{Name: name, Table: t, columns: newColumnCollection(elems)}
}

// C returns the aliased columns.
func (a *TableAlias) C() *ColumnCollection {
	return a.columns
}

// TableSQL renders "table AS alias".
func (a *TableAlias) TableSQL() string {
	return a.Table.TableSQL() + " AS " + sqlexpr.QuoteIdent(a.Name)
}
