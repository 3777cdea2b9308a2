package convert

import "errors"

// Sentinel errors for conversion entry points; match with errors.Is.
var (
	// ErrNilMatrix indicates a nil source or destination matrix.
	ErrNilMatrix = errors.New("convert: nil matrix")

	// ErrMalformedSource indicates a source that failed structural
	// validation; the wrapped message names the violated invariant.
	ErrMalformedSource = errors.New("convert: malformed source matrix")

	// ErrUnsupportedPair indicates a (source, destination) format pair no
	// kernel covers.
	ErrUnsupportedPair = errors.New("convert: unsupported format pair")
)
