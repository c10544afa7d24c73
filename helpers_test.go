package vertica_test

import (
	"testing"

	"github.com/pthm/vertica/pkg/schema"
)

// productsTable returns a fresh table so tests never share column state.
func productsTable(t *testing.T) *schema.Table {
	t.Helper()
	meta := schema.NewMetaData("shop")
	return meta.MustTable("products", []*schema.Column{
		schema.NewColumn("id", schema.Integer),
		schema.NewColumn("sku", schema.String(32)),
		schema.NewColumn("price", schema.Float),
		schema.NewColumn("deleted_at", schema.Integer),
	})
}

func column(t *testing.T, table *schema.Table, name string) *schema.Column {
	t.Helper()
	c, ok := table.Column(name)
	if !ok {
		t.Fatalf("table %s has no column %s", table.Name, name)
	}
	return c
}
