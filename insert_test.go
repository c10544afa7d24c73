package vertica_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/vertica"
	"github.com/pthm/vertica/pkg/schema"
	"github.com/pthm/vertica/pkg/sqlexpr"
)

func TestInsert(t *testing.T) {
	products := productsTable(t)
	stmt := vertica.Insert(products)

	assert.Same(t, products, stmt.Table())
	assert.Equal(t, "vertica", stmt.Dialect())
	assert.Nil(t, stmt.OnConflict())
	assert.Empty(t, stmt.InsertValues())
	assert.Empty(t, stmt.ReturningColumns())
}

func TestInsert_OnConflictDoNothing_AnyConflict(t *testing.T) {
	stmt, err := vertica.Insert(productsTable(t)).OnConflictDoNothing(vertica.Target{})
	require.NoError(t, err)

	clause, ok := stmt.OnConflict().(*vertica.OnConflictDoNothing)
	require.True(t, ok)
	assert.Equal(t, "on_conflict_do_nothing", clause.VisitName())
	assert.Equal(t, "vertica", clause.Dialect())
	assert.False(t, clause.Target().IsSet())
}

func TestInsert_OnConflictDoUpdate_Constraint(t *testing.T) {
	stmt, err := vertica.Insert(productsTable(t)).OnConflictDoUpdate(
		vertica.OnConstraint("T_pk"),
		map[string]any{"x": 1},
		nil,
	)
	require.NoError(t, err)

	clause, ok := stmt.OnConflict().(*vertica.OnConflictDoUpdate)
	require.True(t, ok)
	assert.Equal(t, "on_conflict_do_update", clause.VisitName())
	assert.Equal(t, "T_pk", clause.Target().ConstraintName)
	assert.Nil(t, clause.Target().InferredElements)
	assert.Equal(t, []vertica.Assignment{
		{Column: sqlexpr.Ident("x"), Value: sqlexpr.Bind{Value: 1}},
	}, clause.Assignments())
	assert.Nil(t, clause.Where())
}

func TestInsert_OnConflictDoUpdate_EmptySet(t *testing.T) {
	base := vertica.Insert(productsTable(t))
	stmt, err := base.OnConflictDoUpdate(vertica.OnColumns("id"), map[string]any{}, nil)
	require.ErrorIs(t, err, vertica.ErrValidation)
	assert.Nil(t, stmt)
	assert.Nil(t, base.OnConflict())
}

func TestInsert_OnConflictDoUpdate_ConstraintAndElements(t *testing.T) {
	_, err := vertica.Insert(productsTable(t)).OnConflictDoUpdate(
		vertica.Target{Constraint: schema.ConstraintName("c"), IndexElements: []any{"id"}},
		map[string]any{"x": 1},
		nil,
	)
	require.ErrorIs(t, err, vertica.ErrValidation)
}

func TestInsert_OnConflictExclusive(t *testing.T) {
	products := productsTable(t)
	set := map[string]any{"price": 1}

	doNothing := func(s *vertica.InsertStmt) (*vertica.InsertStmt, error) {
		return s.OnConflictDoNothing(vertica.Target{})
	}
	doUpdate := func(s *vertica.InsertStmt) (*vertica.InsertStmt, error) {
		return s.OnConflictDoUpdate(vertica.OnColumns("id"), set, nil)
	}

	tests := []struct {
		name   string
		first  func(*vertica.InsertStmt) (*vertica.InsertStmt, error)
		second func(*vertica.InsertStmt) (*vertica.InsertStmt, error)
		want   string
	}{
		{name: "nothing then update", first: doNothing, second: doUpdate, want: vertica.VisitOnConflictDoNothing},
		{name: "update then nothing", first: doUpdate, second: doNothing, want: vertica.VisitOnConflictDoUpdate},
		{name: "nothing twice", first: doNothing, second: doNothing, want: vertica.VisitOnConflictDoNothing},
		{name: "update twice", first: doUpdate, second: doUpdate, want: vertica.VisitOnConflictDoUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := tt.first(vertica.Insert(products))
			require.NoError(t, err)

			again, err := tt.second(stmt)
			require.ErrorIs(t, err, vertica.ErrConfiguration)
			assert.True(t, vertica.IsConfigurationErr(err))
			assert.Nil(t, again)
			assert.Equal(t, tt.want, stmt.OnConflict().VisitName())
		})
	}
}

func TestInsert_ExclusiveCheckedBeforeValidation(t *testing.T) {
	stmt, err := vertica.Insert(productsTable(t)).OnConflictDoNothing(vertica.Target{})
	require.NoError(t, err)

	// Invalid arguments on a configured statement still report the
	// configuration problem.
	_, err = stmt.OnConflictDoUpdate(vertica.Target{}, nil, nil)
	require.ErrorIs(t, err, vertica.ErrConfiguration)
	assert.False(t, vertica.IsValidationErr(err))
}

func TestInsert_CopyOnWrite(t *testing.T) {
	base := vertica.Insert(productsTable(t))

	ignore, err := base.OnConflictDoNothing(vertica.OnColumns("sku"))
	require.NoError(t, err)
	upsert, err := base.OnConflictDoUpdate(vertica.OnColumns("sku"), map[string]any{"price": 2}, nil)
	require.NoError(t, err)

	assert.NotSame(t, base, ignore)
	assert.NotSame(t, base, upsert)
	assert.Nil(t, base.OnConflict())
	assert.Equal(t, vertica.VisitOnConflictDoNothing, ignore.OnConflict().VisitName())
	assert.Equal(t, vertica.VisitOnConflictDoUpdate, upsert.OnConflict().VisitName())
	assert.Same(t, base.Table(), upsert.Table())
}

func TestInsert_Excluded(t *testing.T) {
	products := productsTable(t)
	stmt := vertica.Insert(products)

	ex := stmt.Excluded()
	require.NotNil(t, ex)
	assert.Same(t, ex, stmt.Excluded(), "excluded is shared by every read of a statement")
	assert.Equal(t, products.C().Keys(), ex.Keys())
	assert.Equal(t, "excluded.price", ex.MustGet("price").SQL())

	assert.Nil(t, vertica.Insert(nil).Excluded())
}

func TestInsert_ExcludedConcurrentReads(t *testing.T) {
	stmt := vertica.Insert(productsTable(t)).Returning(sqlexpr.Ident("id"))

	var wg sync.WaitGroup
	got := make([]*schema.ColumnCollection, 8)
	for i := range got {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = stmt.Excluded()
		}()
	}
	wg.Wait()

	for _, ex := range got {
		assert.Same(t, got[0], ex)
	}
}

func TestInsert_ExcludedInAssignmentsAndFilter(t *testing.T) {
	products := productsTable(t)
	stmt := vertica.Insert(products)
	ex := stmt.Excluded()
	price := column(t, products, "price")

	stmt, err := stmt.OnConflictDoUpdate(
		vertica.OnColumns("sku"),
		[]vertica.Pair{vertica.Set(price, ex.MustGet("price"))},
		sqlexpr.IsDistinctFrom{Left: price, Right: ex.MustGet("price")},
	)
	require.NoError(t, err)

	clause := stmt.OnConflict().(*vertica.OnConflictDoUpdate)
	require.Len(t, clause.Assignments(), 1)
	assert.Equal(t, "products.price", clause.Assignments()[0].Column.SQL())
	assert.Equal(t, "excluded.price", clause.Assignments()[0].Value.SQL())
	assert.Equal(t, "products.price IS DISTINCT FROM excluded.price", clause.Where().SQL())
}

func TestInsert_Values(t *testing.T) {
	base := vertica.Insert(productsTable(t))

	stmt, err := base.Values(map[string]any{"sku": "A-1", "price": 9.5})
	require.NoError(t, err)
	assert.Equal(t, []vertica.Assignment{
		{Column: sqlexpr.Ident("price"), Value: sqlexpr.Bind{Value: 9.5}},
		{Column: sqlexpr.Ident("sku"), Value: sqlexpr.Bind{Value: "A-1"}},
	}, stmt.InsertValues())
	assert.Empty(t, base.InsertValues())

	// VALUES and ON CONFLICT are independent.
	stmt, err = stmt.OnConflictDoNothing(vertica.Target{})
	require.NoError(t, err)
	stmt, err = stmt.Values(map[string]any{"sku": "A-2"})
	require.NoError(t, err)
	assert.NotNil(t, stmt.OnConflict())
	assert.Len(t, stmt.InsertValues(), 1)
}

func TestInsert_ValuesErrors(t *testing.T) {
	stmt := vertica.Insert(productsTable(t))

	for name, values := range map[string]any{
		"nil":        nil,
		"empty map":  map[string]any{},
		"collection": stmt.Excluded(),
		"bad key":    []vertica.Pair{vertica.Set(1, 2)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := stmt.Values(values)
			require.ErrorIs(t, err, vertica.ErrValidation)
		})
	}
}

func TestInsert_Returning(t *testing.T) {
	products := productsTable(t)
	base := vertica.Insert(products)
	id := column(t, products, "id")

	cols := []sqlexpr.Expr{id}
	stmt := base.Returning(cols...)
	cols[0] = nil

	assert.Equal(t, []sqlexpr.Expr{id}, stmt.ReturningColumns())
	assert.Empty(t, base.ReturningColumns())
}
