package convert

import "errors"

// Error kinds surfaced by a conversion run. All are fatal for the run
// that produced them; none are retried. Callers classify with
// errors.Is.
var (
	// ErrInputNotFound reports a missing or unreadable input file.
	ErrInputNotFound = errors.New("input file not found or unreadable")

	// ErrInvalidJSON reports unparseable input.
	ErrInvalidJSON = errors.New("invalid JSON input")

	// ErrUnsupportedFormat reports a format selector outside the
	// registry. Raised before any conversion work begins.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrSerialization reports a failure rendering the triple set.
	ErrSerialization = errors.New("serialization failed")

	// ErrOutputWrite reports a destination that cannot be written.
	ErrOutputWrite = errors.New("cannot write output")
)
