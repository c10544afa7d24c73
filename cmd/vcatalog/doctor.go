package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/vertica/cmd/vcatalog/internal/cli"
	"github.com/pthm/vertica/cmd/vcatalog/internal/doctor"
	"github.com/pthm/vertica/pkg/catalog"
)

var (
	doctorDB            string
	doctorServerVersion string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks",
	Long:  `Check connectivity, server version detection, and v_catalog coverage.`,
	Example: `  # Run health checks
  vcatalog doctor --db postgres://dbadmin@localhost:5433/vmart

  # Run with verbose output
  vcatalog doctor --db postgres://dbadmin@localhost:5433/vmart -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verboseFlag := resolveBool(verbose > 0, cfg.Doctor.Verbose)

		pinned, _ := cfg.PinnedVersion()
		if doctorServerVersion != "" {
			v, err := catalog.ParseVersion(doctorServerVersion)
			if err != nil {
				return cli.ConfigError("--server-version", err)
			}
			pinned = v
		}

		dsn, err := resolveDSN(doctorDB)
		if err != nil {
			return err
		}

		return runDoctor(cmd.Context(), dsn, pinned, verboseFlag)
	},
}

func init() {
	f := doctorCmd.Flags()
	f.StringVar(&doctorDB, "db", "", "database URL")
	f.StringVar(&doctorServerVersion, "server-version", "", "gate columns for this release instead of the detected one")
}

func runDoctor(ctx context.Context, dsn string, pinned catalog.Version, verboseFlag bool) error {
	db, err := openDB(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if !quiet {
		fmt.Println("vcatalog doctor - Health Check")
	}

	d := doctor.New(db, pinned)
	report, err := d.Run(ctx)
	if err != nil {
		return cli.GeneralError("running doctor", err)
	}
	logger.Info("doctor finished", "version", d.Version(), "passed", report.Passed, "warnings", report.Warnings, "errors", report.Errors)

	report.Print(os.Stdout, verboseFlag)

	if report.HasErrors() {
		return cli.GeneralError("health checks failed", nil)
	}

	return nil
}
