package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pthm/vertica/pkg/schema"
)

// ServerVersionKey is the Info key holding the minimum server Version of a
// gated table or column.
const ServerVersionKey = "server_version"

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = errors.New("catalog: invalid server version")

// Version is a server release, compared by major then minor.
type Version struct {
	Major int
	Minor int
}

// V is shorthand for constructing a Version.
func V(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// Compare returns -1, 0 or +1 as v is older than, equal to or newer than o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		if v.Major < o.Major {
			return -1
		}
		return 1
	case v.Minor < o.Minor:
		return -1
	case v.Minor > o.Minor:
		return 1
	}
	return 0
}

// AtLeast reports whether v is o or newer.
func (v Version) AtLeast(o Version) bool {
	return v.Compare(o) >= 0
}

// IsZero reports whether v is unset.
func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses "MAJOR[.MINOR[.PATCH...]]". Anything past the minor
// component is ignored.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}

	parts := strings.SplitN(s, ".", 3)
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	v := Version{Major: major}
	if len(parts) > 1 {
		minor, err := strconv.Atoi(parts[1])
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		v.Minor = minor
	}
	return v, nil
}

var serverVersionRe = regexp.MustCompile(`(?:Vertica Analytic Database|PostgreSQL|EnterpriseDB) v?(\d+)(?:\.(\d+))?`)

// ParseServerVersion extracts the release from the output of
// SELECT version(), for example
//
//	Vertica Analytic Database v12.0.4-0
//	PostgreSQL 16.2 on x86_64-pc-linux-gnu, compiled by gcc ...
func ParseServerVersion(banner string) (Version, error) {
	m := serverVersionRe.FindStringSubmatch(banner)
	if m == nil {
		return Version{}, fmt.Errorf("%w: unrecognized banner %q", ErrInvalidVersion, banner)
	}
	major, _ := strconv.Atoi(m[1])
	v := Version{Major: major}
	if m[2] != "" {
		v.Minor, _ = strconv.Atoi(m[2])
	}
	return v, nil
}

// MinServerVersion returns the release that introduced col, if gated.
func MinServerVersion(col *schema.Column) (Version, bool) {
	return versionInfo(col.Info)
}

// TableMinServerVersion returns the release that introduced t, if gated.
func TableMinServerVersion(t *schema.Table) (Version, bool) {
	return versionInfo(t.Info)
}

func versionInfo(info schema.Info) (Version, bool) {
	v, ok := info.Get(ServerVersionKey).(Version)
	return v, ok
}

// TableAvailable reports whether t exists on a server running v.
func TableAvailable(t *schema.Table, v Version) bool {
	since, ok := TableMinServerVersion(t)
	return !ok || v.AtLeast(since)
}

// AvailableColumns returns the columns of t that exist on a server running
// v, in declaration order. It returns nil when the table itself is gated.
func AvailableColumns(t *schema.Table, v Version) []*schema.Column {
	if !TableAvailable(t, v) {
		return nil
	}
	var out []*schema.Column
	for _, c := range t.Columns() {
		if since, ok := MinServerVersion(c); ok && !v.AtLeast(since) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// GatedColumns returns the columns of t that a server running v lacks.
// Columns of a gated table are all reported.
func GatedColumns(t *schema.Table, v Version) []*schema.Column {
	if !TableAvailable(t, v) {
		return t.Columns()
	}
	var out []*schema.Column
	for _, c := range t.Columns() {
		if since, ok := MinServerVersion(c); ok && !v.AtLeast(since) {
			out = append(out, c)
		}
	}
	return out
}

// SelectAvailable renders a SELECT of the columns of t that exist on v,
// or "" when the table is gated.
func SelectAvailable(t *schema.Table, v Version) string {
	cols := AvailableColumns(t, v)
	if len(cols) == 0 {
		return ""
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.SQL()
	}
	return "SELECT " + strings.Join(names, ", ") + " FROM " + t.TableSQL()
}
