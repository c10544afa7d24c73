// Package doctor provides health checks for v_catalog introspection.
//
// The doctor command confirms that a server is reachable, that its release
// can be determined, and that every catalog table declared in pkg/catalog
// can be queried with the columns expected for that release.
//
// Example usage:
//
//	d := doctor.New(db, catalog.Version{})
//	report, err := d.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pthm/vertica/pkg/catalog"
	"github.com/pthm/vertica/pkg/schema"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue that will cause failures.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

var (
	passSymbol  = color.New(color.FgGreen).SprintFunc()
	warnSymbol  = color.New(color.FgYellow).SprintFunc()
	failSymbol  = color.New(color.FgRed, color.Bold).SprintFunc()
	categoryFmt = color.New(color.Bold).SprintFunc()
)

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return passSymbol("✓")
	case StatusWarn:
		return warnSymbol("⚠")
	case StatusFail:
		return failSymbol("✗")
	default:
		return "?"
	}
}

// Check categories.
const (
	CategoryConnection = "Connection"
	CategoryVersion    = "Server Version"
	CategoryCatalog    = "Catalog Coverage"
)

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks.
	Category string

	// Name is a short identifier for the check.
	Name string

	// Status is the check outcome.
	Status Status

	// Message is a human-readable description of the result.
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	// Summary counts.
	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer, grouped by category in the
// order categories first appeared.
func (r *Report) Print(w io.Writer, verbose bool) {
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", categoryFmt(cat))
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// DB is the database handle the doctor inspects. *sql.DB satisfies it.
type DB interface {
	catalog.Querier
	PingContext(ctx context.Context) error
}

// Doctor performs health checks against a live server.
type Doctor struct {
	db     DB
	pinned catalog.Version

	// Populated during Run.
	version catalog.Version
	banner  string
}

// New creates a new Doctor. A non-zero pinned version is used for column
// gating instead of the detected one.
func New(db DB, pinned catalog.Version) *Doctor {
	return &Doctor{db: db, pinned: pinned}
}

// Version returns the version used for gating during the last Run.
func (d *Doctor) Version() catalog.Version {
	return d.version
}

// Run executes all health checks and returns a report. Failed checks are
// reported, not returned; the error is reserved for cancellation.
func (d *Doctor) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	if !d.checkConnection(ctx, report) {
		return report, ctx.Err()
	}
	if !d.checkVersion(ctx, report) {
		return report, ctx.Err()
	}
	for _, t := range catalog.Tables() {
		d.checkTable(ctx, report, t)
	}
	return report, ctx.Err()
}

func (d *Doctor) checkConnection(ctx context.Context, report *Report) bool {
	if err := d.db.PingContext(ctx); err != nil {
		report.AddCheck(CheckResult{
			Category: CategoryConnection,
			Name:     "ping",
			Status:   StatusFail,
			Message:  "Cannot reach the database",
			Details:  err.Error(),
			FixHint:  "Check database.url or the database.* settings in vcatalog.yaml",
		})
		return false
	}
	report.AddCheck(CheckResult{
		Category: CategoryConnection,
		Name:     "ping",
		Status:   StatusPass,
		Message:  "Database is reachable",
	})
	return true
}

func (d *Doctor) checkVersion(ctx context.Context, report *Report) bool {
	detected, banner, err := catalog.DetectServerVersion(ctx, d.db)
	d.banner = banner

	switch {
	case err != nil && d.pinned.IsZero():
		report.AddCheck(CheckResult{
			Category: CategoryVersion,
			Name:     "detect",
			Status:   StatusFail,
			Message:  "Could not determine the server version",
			Details:  err.Error(),
			FixHint:  "Set catalog.server_version in vcatalog.yaml",
		})
		return false

	case err != nil:
		d.version = d.pinned
		report.AddCheck(CheckResult{
			Category: CategoryVersion,
			Name:     "detect",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("Could not detect the server version, using pinned %s", d.pinned),
			Details:  err.Error(),
		})

	case d.pinned.IsZero():
		d.version = detected
		report.AddCheck(CheckResult{
			Category: CategoryVersion,
			Name:     "detect",
			Status:   StatusPass,
			Message:  fmt.Sprintf("Server version %s", detected),
			Details:  banner,
		})

	case d.pinned != detected:
		d.version = d.pinned
		report.AddCheck(CheckResult{
			Category: CategoryVersion,
			Name:     "detect",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("Pinned version %s differs from detected %s", d.pinned, detected),
			Details:  banner,
			FixHint:  "Update or remove catalog.server_version",
		})

	default:
		d.version = d.pinned
		report.AddCheck(CheckResult{
			Category: CategoryVersion,
			Name:     "detect",
			Status:   StatusPass,
			Message:  fmt.Sprintf("Server version %s matches pinned version", detected),
			Details:  banner,
		})
	}
	return true
}

func (d *Doctor) checkTable(ctx context.Context, report *Report, t *schema.Table) {
	if !catalog.TableAvailable(t, d.version) {
		since, _ := catalog.TableMinServerVersion(t)
		report.AddCheck(CheckResult{
			Category: CategoryCatalog,
			Name:     t.Name,
			Status:   StatusWarn,
			Message:  fmt.Sprintf("%s requires server %s", t.FullName(), since),
		})
		return
	}

	if _, err := catalog.ProbeTable(ctx, d.db, t, d.version); err != nil {
		report.AddCheck(CheckResult{
			Category: CategoryCatalog,
			Name:     t.Name,
			Status:   StatusFail,
			Message:  fmt.Sprintf("%s cannot be queried", t.FullName()),
			Details:  err.Error(),
			FixHint:  "Check that the connected user can read v_catalog, or pin catalog.server_version",
		})
		return
	}

	available := len(catalog.AvailableColumns(t, d.version))
	check := CheckResult{
		Category: CategoryCatalog,
		Name:     t.Name,
		Status:   StatusPass,
		Message:  fmt.Sprintf("%s (%d/%d columns)", t.FullName(), available, t.C().Len()),
	}
	if gated := catalog.GatedColumns(t, d.version); len(gated) > 0 {
		lines := make([]string, len(gated))
		for i, c := range gated {
			since, _ := catalog.MinServerVersion(c)
			lines[i] = fmt.Sprintf("%s requires %s", c.Name, since)
		}
		check.Details = strings.Join(lines, "\n")
	}
	report.AddCheck(check)
}
