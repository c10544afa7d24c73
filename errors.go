package vertica

import "errors"

// Sentinel errors returned while configuring statements. Both are raised
// synchronously by the configuring call; a failed call never modifies the
// receiver.
var (
	// ErrConfiguration is returned when a statement is configured in a way
	// its current state does not allow, such as attaching a second ON
	// CONFLICT clause.
	ErrConfiguration = errors.New("vertica: invalid statement configuration")

	// ErrValidation is returned for malformed or contradictory arguments:
	// both a constraint and index elements, no target for DO UPDATE, an
	// empty or unsupported SET argument, or a key that is not a column.
	// The underlying coercion error is wrapped as well, so
	// schema.ErrNotAColumn and sqlexpr.ErrInvalidExpression also match.
	ErrValidation = errors.New("vertica: invalid argument")
)

// IsConfigurationErr returns true if err is or wraps ErrConfiguration.
func IsConfigurationErr(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsValidationErr returns true if err is or wraps ErrValidation.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrValidation)
}
