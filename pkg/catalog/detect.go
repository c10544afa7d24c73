package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pthm/vertica/pkg/schema"
)

// Querier is the minimal interface needed to introspect a live server.
// Implemented by *sql.DB, *sql.Tx, and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DetectServerVersion asks the server for its version banner and parses it.
// The raw banner is returned alongside the parsed Version.
func DetectServerVersion(ctx context.Context, db Querier) (Version, string, error) {
	var banner string
	if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&banner); err != nil {
		return Version{}, "", fmt.Errorf("query server version: %w", err)
	}
	v, err := ParseServerVersion(banner)
	if err != nil {
		return Version{}, banner, err
	}
	return v, banner, nil
}

// ProbeTable runs SelectAvailable for t with LIMIT 0, confirming that every
// column expected on v exists. Gated tables are skipped and report false.
func ProbeTable(ctx context.Context, db Querier, t *schema.Table, v Version) (bool, error) {
	query := SelectAvailable(t, v)
	if query == "" {
		return false, nil
	}
	rows, err := db.QueryContext(ctx, query+" LIMIT 0")
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", t.FullName(), err)
	}
	defer rows.Close()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("probe %s: %w", t.FullName(), err)
	}
	return true, nil
}
