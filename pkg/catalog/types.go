package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm/vertica/pkg/schema"
)

// Catalog column types.
var (
	OID      = schema.Type{Name: "OID"}
	RegClass = schema.Type{Name: "REGCLASS"}
	// RegProc is stored exactly like RegClass.
	RegProc = RegClass

	Name       = schema.Decorate("NAME", schema.String(64).Collate("C"))
	NodeTree   = schema.Decorate("NODE_TREE", schema.Text.Collate("C"))
	Int2Vector = schema.Decorate("INT2VECTOR", schema.Array(schema.SmallInteger))
	OIDVector  = schema.Decorate("OIDVECTOR", schema.Array(OID))
)

// ParseSpaceVector decodes the text form of int2vector / oidvector values,
// e.g. "1 3 2". An empty string decodes to an empty slice.
func ParseSpaceVector(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, " ")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parse space vector %q: element %d: %w", s, i, err)
		}
		out[i] = n
	}
	return out, nil
}
