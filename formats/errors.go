package formats

import "errors"

// Sentinel errors for format construction and validation. Every message is
// prefixed with "formats: " for consistent grepping; callers match with
// errors.Is.
var (
	// ErrBadShape indicates non-positive matrix dimensions.
	ErrBadShape = errors.New("formats: matrix dimensions must be positive")

	// ErrBadPitch indicates a padded-buffer pitch smaller than the logical
	// row count it must cover.
	ErrBadPitch = errors.New("formats: pitch must cover every logical row")

	// ErrBadBuffer indicates a values buffer whose length disagrees with
	// pitch × diagonal count.
	ErrBadBuffer = errors.New("formats: values buffer size does not match pitch and diagonal count")

	// ErrBadEntryCount indicates a declared entry count outside [0, rows*cols].
	ErrBadEntryCount = errors.New("formats: entry count out of range")

	// ErrOutOfRange indicates a row or diagonal index outside valid bounds.
	// Public indexers return this, never panic.
	ErrOutOfRange = errors.New("formats: index out of range")
)
