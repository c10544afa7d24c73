package vertica

import (
	"fmt"
	"sort"

	"github.com/pthm/vertica/pkg/schema"
	"github.com/pthm/vertica/pkg/sqlexpr"
)

// Visit names used by renderers to dispatch on clause kind.
const (
	VisitOnConflictDoNothing = "on_conflict_do_nothing"
	VisitOnConflictDoUpdate  = "on_conflict_do_update"
)

// OnConflictClause is the ON CONFLICT portion of an INSERT.
// Implementations are *OnConflictDoNothing and *OnConflictDoUpdate.
type OnConflictClause interface {
	// VisitName identifies the clause kind for renderer dispatch.
	VisitName() string
	// Dialect returns the dialect whose rules render the clause.
	Dialect() string
	// Target returns the resolved conflict target.
	Target() ConflictTarget
	// Accept calls the Visitor method matching the clause kind.
	Accept(v Visitor) error
}

// Visitor is implemented by renderers of ON CONFLICT clauses.
type Visitor interface {
	VisitOnConflictDoNothing(c *OnConflictDoNothing) error
	VisitOnConflictDoUpdate(c *OnConflictDoUpdate) error
}

// OnConflictDoNothing is ON CONFLICT [target] DO NOTHING.
type OnConflictDoNothing struct {
	target ConflictTarget
}

// NewOnConflictDoNothing builds a DO NOTHING clause. An empty target is
// allowed and matches any conflict.
func NewOnConflictDoNothing(target Target) (*OnConflictDoNothing, error) {
	resolved, err := ResolveTarget(target)
	if err != nil {
		return nil, err
	}
	return &OnConflictDoNothing{target: resolved}, nil
}

func (c *OnConflictDoNothing) VisitName() string      { return VisitOnConflictDoNothing }
func (c *OnConflictDoNothing) Dialect() string        { return DialectName }
func (c *OnConflictDoNothing) Target() ConflictTarget { return c.target }

func (c *OnConflictDoNothing) Accept(v Visitor) error {
	return v.VisitOnConflictDoNothing(c)
}

// Assignment is one column = value pair of DO UPDATE SET.
type Assignment struct {
	Column sqlexpr.Expr
	Value  sqlexpr.Expr
}

// Pair is an ordered SET entry before coercion. Key is a column name,
// column or column expression; Value is an expression or a literal.
type Pair struct {
	Key   any
	Value any
}

// Set is shorthand for constructing a Pair.
func Set(key, value any) Pair {
	return Pair{Key: key, Value: value}
}

// OnConflictDoUpdate is ON CONFLICT target DO UPDATE SET ... [WHERE ...].
type OnConflictDoUpdate struct {
	target      ConflictTarget
	assignments []Assignment
	where       sqlexpr.Expr
}

// NewOnConflictDoUpdate builds a DO UPDATE clause.
//
// The target must resolve to a constraint name or inferred index elements.
// set accepts []Pair, []Assignment, map[string]any (applied in key order),
// map[*schema.Column]any (applied in table column order) or a
// *schema.ColumnCollection, in which case each column name is assigned
// the collection's column; passing InsertStmt.Excluded() therefore copies
// every proposed value. where optionally limits which conflicting rows are updated; rows
// it rejects are left untouched.
func NewOnConflictDoUpdate(target Target, set any, where any) (*OnConflictDoUpdate, error) {
	resolved, err := ResolveTarget(target)
	if err != nil {
		return nil, err
	}
	if !resolved.IsSet() {
		return nil, fmt.Errorf("%w: either constraint or index_elements, but not both, must be specified unless DO NOTHING", ErrValidation)
	}

	assignments, err := normalizeAssignments(set, "set")
	if err != nil {
		return nil, err
	}

	w, err := sqlexpr.ExpectWhere(where)
	if err != nil {
		return nil, fmt.Errorf("%w: where: %w", ErrValidation, err)
	}

	return &OnConflictDoUpdate{
		target:      resolved,
		assignments: assignments,
		where:       w,
	}, nil
}

func (c *OnConflictDoUpdate) VisitName() string      { return VisitOnConflictDoUpdate }
func (c *OnConflictDoUpdate) Dialect() string        { return DialectName }
func (c *OnConflictDoUpdate) Target() ConflictTarget { return c.target }

func (c *OnConflictDoUpdate) Accept(v Visitor) error {
	return v.VisitOnConflictDoUpdate(c)
}

// Assignments returns the SET pairs in application order.
func (c *OnConflictDoUpdate) Assignments() []Assignment {
	out := make([]Assignment, len(c.assignments))
	copy(out, c.assignments)
	return out
}

// Where returns the update filter, or nil.
func (c *OnConflictDoUpdate) Where() sqlexpr.Expr {
	return c.where
}

// normalizeAssignments converts the accepted SET / VALUES shapes into
// ordered, coerced assignments. param names the argument in errors.
func normalizeAssignments(set any, param string) ([]Assignment, error) {
	var pairs []Pair

	switch s := set.(type) {
	case []Pair:
		pairs = s
	case []Assignment:
		pairs = make([]Pair, len(s))
		for i, a := range s {
			pairs[i] = Pair{Key: a.Column, Value: a.Value}
		}
	case map[string]any:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs = make([]Pair, len(keys))
		for i, k := range keys {
			pairs[i] = Pair{Key: k, Value: s[k]}
		}
	case map[*schema.Column]any:
		cols := make([]*schema.Column, 0, len(s))
		for c := range s {
			if c == nil {
				return nil, fmt.Errorf("%w: %s key: %w: nil column", ErrValidation, param, schema.ErrNotAColumn)
			}
			cols = append(cols, c)
		}
		sortColumns(cols)
		pairs = make([]Pair, len(cols))
		for i, c := range cols {
			pairs[i] = Pair{Key: c, Value: s[c]}
		}
	case *schema.ColumnCollection:
		for _, c := range s.All() {
			pairs = append(pairs, Pair{Key: c.ColumnName(), Value: c})
		}
	default:
		return nil, fmt.Errorf("%w: %s parameter must be a non-empty mapping or a column collection such as a table's C(), got %T", ErrValidation, param, set)
	}

	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: %s parameter must not be empty", ErrValidation, param)
	}

	out := make([]Assignment, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for i, p := range pairs {
		col, err := schema.ExpectDMLColumn(p.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %s key %d: %w", ErrValidation, param, i, err)
		}
		name := assignedName(col)
		if seen[name] {
			return nil, fmt.Errorf("%w: %s assigns column %q more than once", ErrValidation, param, name)
		}
		seen[name] = true
		out[i] = Assignment{Column: col, Value: sqlexpr.ExpectValue(p.Value)}
	}
	return out, nil
}

// assignedName is the column a SET key writes to, ignoring qualification.
func assignedName(col sqlexpr.Expr) string {
	switch c := col.(type) {
	case schema.ColumnElement:
		return c.ColumnName()
	case sqlexpr.Ident:
		return string(c)
	case sqlexpr.Col:
		return c.Column
	default:
		return col.SQL()
	}
}

func sortColumns(cols []*schema.Column) {
	sort.Slice(cols, func(i, j int) bool {
		a, b := cols[i], cols[j]
		ta, tb := tableName(a), tableName(b)
		if ta != tb {
			return ta < tb
		}
		if a.Position() != b.Position() {
			return a.Position() < b.Position()
		}
		return a.Name < b.Name
	})
}

func tableName(c *schema.Column) string {
	if t := c.Table(); t != nil {
		return t.FullName()
	}
	return ""
}
