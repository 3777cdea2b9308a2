// Package convert implements the sparse format conversions of sparsemat:
// DIA→COO, DIA→CSR and DIA→ELL.
//
// What:
//
//   - DiaToCoo, DiaToCsr, DiaToEll: typed one-shot transforms from an
//     immutable source into a freshly allocated destination.
//   - Convert: dynamic dispatch over the (source, destination) format
//     pair, for callers holding matrices behind the formats.Matrix
//     interface.
//   - Options: lane count and block grain for the parallel kernels.
//
// How:
//
//	Every conversion shares one coordinate-reconstruction stage: logical
//	slots of the padded diagonal buffer are enumerated row-major over
//	(row, diagonal), so slot t has row t/diagonals, diagonal t%diagonals
//	and column row+Offsets[diagonal]; the stored value is reached through
//	the source's layout.Order. Reconstruction is a pure function of t, so
//	slots are evaluated independently on any number of lanes.
//
//	COO and CSR then drop invalid triples (out-of-range row or column, or
//	zero value) with a fused count→scan→scatter compaction: one blocked
//	pass counts survivors per block, an exclusive scan of the counts gives
//	each block its write offset, and a second blocked pass rebuilds and
//	scatters the survivors. Relative order is preserved and no
//	intermediate triple buffer is materialized. CSR additionally reduces
//	the compacted row indices to row offsets by independent binary
//	searches, one per offset element.
//
//	ELL never compacts: the destination keeps the source's pitch, diagonal
//	count and layout; out-of-range columns become formats.PadColumn and
//	values are copied verbatim.
//
// Complexity: O(pitch × diagonals) work per conversion,
// O(blocks) auxiliary memory (plus the compacted row scratch for CSR).
//
// Errors:
//
//   - ErrNilMatrix: nil source or destination.
//   - ErrMalformedSource: the source failed its structural Validate.
//   - ErrUnsupportedPair: Convert has no kernel for the format pair.
//
// A failed conversion leaves the destination in an unspecified state;
// there is no partial-success contract.
package convert
