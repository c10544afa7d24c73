package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pthm/vertica/pkg/sqlexpr"
)

// Column is a table column. Columns are created detached and bound to
// exactly one table by NewTable.
type Column struct {
	Name string
	Type Type
	Info Info

	table    *Table
	position int
}

// ColumnOption configures a Column.
type ColumnOption func(*Column)

// WithColumnInfo sets an Info entry on the column.
func WithColumnInfo(key string, value any) ColumnOption {
	return func(c *Column) {
		if c.Info == nil {
			c.Info = Info{}
		}
		c.Info[key] = value
	}
}

// NewColumn creates a detached column.
func NewColumn(name string, typ Type, opts ...ColumnOption) *Column {
	c := &Column{Name: name, Type: typ}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table returns the owning table, or nil for a detached column.
func (c *Column) Table() *Table {
	return c.table
}

// Position returns the zero-based position within the owning table.
func (c *Column) Position() int {
	return c.position
}

// ColumnName implements ColumnElement.
func (c *Column) ColumnName() string {
	return c.Name
}

// SQL renders the column qualified by its table name.
func (c *Column) SQL() string {
	if c.table == nil {
		return sqlexpr.Ident(c.Name).SQL()
	}
	return sqlexpr.Col{Table: c.table.Name, Column: c.Name}.SQL()
}

// Table is a named, ordered set of columns.
type Table struct {
	Name   string
	Schema string
	Info   Info

	columns *ColumnCollection
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithTableInfo sets an Info entry on the table.
func WithTableInfo(key string, value any) TableOption {
	return func(t *Table) {
		if t.Info == nil {
			t.Info = Info{}
		}
		t.Info[key] = value
	}
}

// NewTable creates a table owning cols. Each column must be detached and
// column names must be unique.
func NewTable(name string, cols []*Column, opts ...TableOption) (*Table, error) {
	t := &Table{Name: name}
	for _, opt := range opts {
		opt(t)
	}

	elems := make([]ColumnElement, 0, len(cols))
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c.table != nil {
			return nil, fmt.Errorf("%w: %s.%s", ErrColumnAttached, c.table.Name, c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateColumn, name, c.Name)
		}
		seen[c.Name] = true
		elems = append(elems, c)
	}
	for i, c := range cols {
		c.table = t
		c.position = i
	}
	t.columns = newColumnCollection(elems)
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
// Intended for package-level declarations.
func MustNewTable(name string, cols []*Column, opts ...TableOption) *Table {
	t, err := NewTable(name, cols, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// C returns the table's column collection.
func (t *Table) C() *ColumnCollection {
	return t.columns
}

// Columns returns the table's columns in declaration order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, 0, t.columns.Len())
	for _, e := range t.columns.All() {
		out = append(out, e.(*Column))
	}
	return out
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	e, ok := t.columns.Get(name)
	if !ok {
		return nil, false
	}
	return e.(*Column), true
}

// FullName returns schema.name, or just the name when no schema is set.
func (t *Table) FullName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// TableSQL renders the table reference for FROM / INTO positions.
func (t *Table) TableSQL() string {
	if t.Schema == "" {
		return sqlexpr.QuoteIdent(t.Name)
	}
	return sqlexpr.QuoteIdent(t.Schema) + "." + sqlexpr.QuoteIdent(t.Name)
}

// MetaData is a registry of tables in one schema.
// It is safe for concurrent use.
type MetaData struct {
	Schema string

	mu     sync.RWMutex
	tables map[string]*Table
}

// NewMetaData creates an empty registry for schemaName.
func NewMetaData(schemaName string) *MetaData {
	return &MetaData{Schema: schemaName, tables: make(map[string]*Table)}
}

// Table creates a table in the registry.
func (m *MetaData) Table(name string, cols []*Column, opts ...TableOption) (*Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tables == nil {
		m.tables = make(map[string]*Table)
	}
	if _, exists := m.tables[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTable, name)
	}
	t, err := NewTable(name, cols, opts...)
	if err != nil {
		return nil, err
	}
	t.Schema = m.Schema
	m.tables[name] = t
	return t, nil
}

// MustTable is like Table but panics on error.
func (m *MetaData) MustTable(name string, cols []*Column, opts ...TableOption) *Table {
	t, err := m.Table(name, cols, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the named table.
func (m *MetaData) Lookup(name string) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[name]
	return t, ok
}

// Tables returns all tables sorted by name.
func (m *MetaData) Tables() []*Table {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
