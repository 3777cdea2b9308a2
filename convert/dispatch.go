package convert

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/formats"
)

// Convert transforms src into dst, selecting the kernel from the dynamic
// (source, destination) format pair. Callers holding concrete types can
// invoke DiaToCoo and friends directly; Convert exists for dispatch layers
// that carry matrices behind the formats.Matrix interface.
//
// Returns ErrNilMatrix for nil operands and ErrUnsupportedPair, annotated
// with both format tags, when no kernel covers the pair.
// Complexity: O(1) dispatch plus the selected kernel.
func Convert(src, dst formats.Matrix, opts Options) error {
	if src == nil || dst == nil {
		return ErrNilMatrix
	}

	s, ok := src.(*formats.Dia)
	if !ok {
		return fmt.Errorf("%w: %s→%s", ErrUnsupportedPair, src.Format(), dst.Format())
	}
	switch d := dst.(type) {
	case *formats.Coo:
		return DiaToCoo(s, d, opts)
	case *formats.Csr:
		return DiaToCsr(s, d, opts)
	case *formats.Ell:
		return DiaToEll(s, d, opts)
	default:
		return fmt.Errorf("%w: %s→%s", ErrUnsupportedPair, src.Format(), dst.Format())
	}
}
