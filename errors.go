package querytext

import "errors"

// Common errors used throughout the querytext package
var (
	// ErrInvalidQuery is returned when a query that callers were expected to
	// validate upstream fails to scan. It signals a programmer error, not a
	// recoverable runtime condition.
	ErrInvalidQuery = errors.New("query is not syntactically valid")
	// ErrUnbalancedParens indicates an unmatched parenthesis in a query.
	ErrUnbalancedParens = errors.New("unbalanced parentheses in query")
	// ErrUnknownFilter indicates a filter field not present in the registry.
	ErrUnknownFilter = errors.New("unknown filter field")

	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
)
