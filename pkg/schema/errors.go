package schema

import "errors"

var (
	// ErrNotAColumn is returned when a value cannot be coerced to a column.
	ErrNotAColumn = errors.New("vertica/schema: not a column expression")

	// ErrDuplicateTable is returned when a MetaData already holds a table
	// with the same name.
	ErrDuplicateTable = errors.New("vertica/schema: duplicate table")

	// ErrDuplicateColumn is returned when a table declares a column name twice.
	ErrDuplicateColumn = errors.New("vertica/schema: duplicate column")

	// ErrColumnAttached is returned when a column already belongs to a table.
	ErrColumnAttached = errors.New("vertica/schema: column already attached to a table")
)

// IsNotAColumnErr returns true if err is or wraps ErrNotAColumn.
func IsNotAColumnErr(err error) bool {
	return errors.Is(err, ErrNotAColumn)
}
