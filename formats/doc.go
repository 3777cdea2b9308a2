// Package formats defines the sparse matrix storage types of sparsemat:
// DIA (diagonal), COO (coordinate), CSR (compressed sparse row) and
// ELL (ELLPACK), plus the dense bridge to gonum's mat.Dense.
//
// What:
//
//   - Dia, Coo, Csr, Ell: concrete structs, each owning its own flat
//     sequences. Conversion always allocates a fresh destination and leaves
//     the source untouched.
//   - Matrix: the read-only surface shared by every format (Dims, NNZ,
//     Format), used by the convert package's dynamic dispatch.
//   - Resize on every destination type: the allocation capability the
//     conversion kernels rely on.
//   - Dia.Validate: the pre-condition check guarding the kernels, which
//     themselves assume well-formed input.
//   - ToDense on every format and DiaFromDense for ingestion, bridging to
//     gonum.org/v1/gonum/mat.
//
// Why:
//
//   - DIA excels on banded systems, COO on ingestion, CSR on row-sliced
//     traversal and ELL on uniform-occupancy rows; real pipelines move
//     between them constantly.
//
// Errors:
//
//   - ErrBadShape: non-positive matrix dimensions.
//   - ErrBadPitch: pitch smaller than the logical row count.
//   - ErrBadBuffer: values buffer inconsistent with pitch × diagonal count.
//   - ErrBadEntryCount: declared entry count outside [0, rows*cols].
//   - ErrOutOfRange: indexer given an out-of-bounds index.
//
// All sentinels are matched with errors.Is; no function panics on
// user-triggered conditions.
package formats
