package promptline

import "errors"

// Fatal configuration and environment errors. Validation failures (bad
// numbers, out-of-range values, non-member choices) are never surfaced as
// errors; they print a diagnostic and the operation asks again. The errors
// below abort the operation immediately instead.
var (
	// ErrNoChoices is returned by the selection operations when the
	// candidate set is empty. No input could ever satisfy the constraint,
	// so the operation refuses to read any.
	ErrNoChoices = errors.New("choices cannot be empty")

	// ErrInvalidPageSize is returned by PaginatedList when items-per-page
	// is less than one.
	ErrInvalidPageSize = errors.New("items per page must be greater than zero")

	// ErrInputClosed is returned when the input stream ends before a valid
	// value was read.
	ErrInputClosed = errors.New("input stream closed before a valid value was read")
)
