package formats

// Format tags a sparse storage scheme. The convert package dispatches on
// the dynamic (source, destination) pair of tags.
type Format int

const (
	// DIA stores a set of dense padded diagonals addressed by offset.
	DIA Format = iota
	// COO stores unordered (row, column, value) triples.
	COO
	// CSR stores per-row contiguous column/value slices plus row offsets.
	CSR
	// ELL stores dense padded per-row (column, value) pairs with a sentinel
	// column marking unused slots.
	ELL
)

// String returns the conventional short name of the format.
func (f Format) String() string {
	switch f {
	case DIA:
		return "DIA"
	case COO:
		return "COO"
	case CSR:
		return "CSR"
	case ELL:
		return "ELL"
	default:
		return "unknown"
	}
}

// PadColumn is the sentinel column index marking an unused slot in padded
// column-index storage (ELL). A slot whose column equals PadColumn carries
// no entry and its co-located value must never be read.
const PadColumn = -1

// Matrix is the read-only surface shared by every storage format.
// All methods are O(1).
type Matrix interface {
	// Dims returns the logical matrix dimensions.
	Dims() (rows, cols int)

	// NNZ returns the count of logically valid (stored, non-padding) entries.
	NNZ() int

	// Format reports the storage scheme tag.
	Format() Format
}

// Compile-time interface conformance for every format.
var (
	_ Matrix = (*Dia)(nil)
	_ Matrix = (*Coo)(nil)
	_ Matrix = (*Csr)(nil)
	_ Matrix = (*Ell)(nil)
)
