package main

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/pthm/vertica/cmd/vcatalog/internal/cli"
	"github.com/pthm/vertica/pkg/catalog"
)

// resolveDSN returns the --db flag if set, otherwise the configured DSN.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return "", cli.ConfigError("database configuration", err)
	}
	if dsn == "" {
		return "", cli.ConfigError("database URL is required (use --db or set in config)", nil)
	}
	return dsn, nil
}

// openDB opens the configured driver. The connection is not verified.
func openDB(dsn string) (*sql.DB, error) {
	driver := resolveString(cfg.Database.Driver, cli.DriverPgx)
	logger.Debug("opening database", "driver", driver)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, cli.DBConnectError("connecting to database", err)
	}
	return db, nil
}

// resolveVersion picks the release used for column gating:
// --server-version, then catalog.server_version, then the server itself
// when a DSN is given. ok is false when none is available.
func resolveVersion(ctx context.Context, flagVersion, flagDSN string) (v catalog.Version, ok bool, err error) {
	if flagVersion != "" {
		v, err := catalog.ParseVersion(flagVersion)
		if err != nil {
			return catalog.Version{}, false, cli.ConfigError("--server-version", err)
		}
		return v, true, nil
	}
	if v, ok := cfg.PinnedVersion(); ok {
		logger.Info("using pinned server version", "version", v)
		return v, true, nil
	}
	if flagDSN == "" && cfg.Database.URL == "" && cfg.Database.Host == "" {
		return catalog.Version{}, false, nil
	}

	dsn, err := resolveDSN(flagDSN)
	if err != nil {
		return catalog.Version{}, false, err
	}
	db, err := openDB(dsn)
	if err != nil {
		return catalog.Version{}, false, err
	}
	defer func() { _ = db.Close() }()

	v, banner, err := catalog.DetectServerVersion(ctx, db)
	if err != nil {
		return catalog.Version{}, false, cli.DBConnectError("detecting server version", err)
	}
	logger.Info("detected server version", "version", v, "banner", banner)
	return v, true, nil
}
