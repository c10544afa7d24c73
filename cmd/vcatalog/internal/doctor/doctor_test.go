package doctor

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pthm/vertica/pkg/catalog"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status Status
		name   string
		symbol string
	}{
		{StatusPass, "pass", "✓"},
		{StatusWarn, "warn", "⚠"},
		{StatusFail, "fail", "✗"},
		{Status(42), "unknown", "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.status.String())
		assert.Equal(t, tt.symbol, tt.status.Symbol())
	}
}

func TestReport(t *testing.T) {
	r := &Report{}
	r.AddCheck(CheckResult{Category: CategoryConnection, Name: "ping", Status: StatusPass, Message: "Database is reachable"})
	r.AddCheck(CheckResult{Category: CategoryCatalog, Name: "v_index", Status: StatusPass, Message: "v_catalog.v_index (20/21 columns)", Details: "indnullsnotdistinct requires 15.0"})
	r.AddCheck(CheckResult{Category: CategoryCatalog, Name: "v_sequence", Status: StatusWarn, Message: "v_catalog.v_sequence requires server 10.0"})
	r.AddCheck(CheckResult{Category: CategoryVersion, Name: "detect", Status: StatusFail, Message: "Could not determine the server version", FixHint: "Set catalog.server_version"})

	assert.Equal(t, 2, r.Passed)
	assert.Equal(t, 1, r.Warnings)
	assert.Equal(t, 1, r.Errors)
	assert.True(t, r.HasErrors())

	var quiet bytes.Buffer
	r.Print(&quiet, false)
	assert.Equal(t, `
Connection
  ✓ Database is reachable

Catalog Coverage
  ✓ v_catalog.v_index (20/21 columns)
  ⚠ v_catalog.v_sequence requires server 10.0

Server Version
  ✗ Could not determine the server version
      Fix: Set catalog.server_version

Summary: 2 passed, 1 warnings, 1 errors
`, quiet.String())

	var verbose bytes.Buffer
	r.Print(&verbose, true)
	assert.Contains(t, verbose.String(), "      indnullsnotdistinct requires 15.0\n")
}

type unreachableDB struct{}

func (unreachableDB) PingContext(context.Context) error {
	return errors.New("connection refused")
}

func (unreachableDB) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	panic("unexpected query")
}

func (unreachableDB) QueryRowContext(context.Context, string, ...any) *sql.Row {
	panic("unexpected query")
}

func TestRun_Unreachable(t *testing.T) {
	report, err := New(unreachableDB{}, catalog.Version{}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, StatusFail, report.Checks[0].Status)
	assert.Equal(t, "connection refused", report.Checks[0].Details)
	assert.True(t, report.HasErrors())
}

func TestRun_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("postgres"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `
CREATE SCHEMA v_catalog;
CREATE VIEW v_catalog.v_index AS SELECT * FROM pg_catalog.pg_index;
`)
	require.NoError(t, err)

	t.Run("detected", func(t *testing.T) {
		d := New(db, catalog.Version{})
		report, err := d.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 16, d.Version().Major)

		byName := make(map[string]CheckResult)
		for _, c := range report.Checks {
			byName[c.Name] = c
		}
		assert.Equal(t, StatusPass, byName["ping"].Status)
		assert.Equal(t, StatusPass, byName["detect"].Status)
		assert.Equal(t, StatusPass, byName["v_index"].Status)
		assert.Equal(t, StatusFail, byName["v_class"].Status)
		assert.True(t, report.HasErrors())
	})

	t.Run("pinned mismatch", func(t *testing.T) {
		d := New(db, catalog.V(9, 6))
		report, err := d.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.V(9, 6), d.Version())

		for _, c := range report.Checks {
			switch c.Name {
			case "detect":
				assert.Equal(t, StatusWarn, c.Status)
			case "v_sequence":
				assert.Equal(t, StatusWarn, c.Status)
				assert.Contains(t, c.Message, "requires server 10.0")
			}
		}
	})
}
