// Package sparsemat is an in-memory toolkit for sparse matrix storage
// formats and the conversions between them.
//
// 🚀 What is sparsemat?
//
//	A small, deterministic library that brings together:
//		• Storage formats: DIA (diagonal), COO (coordinate), CSR (compressed
//		  sparse row) and ELL (ELLPACK), each owning its own flat sequences
//		• Conversions: DIA→COO, DIA→CSR, DIA→ELL as one-shot, non-mutating
//		  transforms, plus a dynamic dispatch entry point over format pairs
//		• Layout control: row-major or column-major physical storage of the
//		  padded diagonal buffers, swappable independent of the algorithms
//		• Dense bridging: import from and export to gonum's mat.Dense
//
// ✨ Why choose sparsemat?
//
//   - Predictable – every conversion is a pure transform from an immutable
//     source into a freshly allocated destination
//   - Scalable – slot-level work is evaluated on parallel lanes; outputs are
//     written disjointly, so no locking is ever involved
//   - Honest errors – sentinel errors matched with errors.Is, no panics on
//     user-triggered conditions
//
// Everything is organized under four subpackages:
//
//	layout/  - invertible addressing strategies for padded 2-D buffers
//	formats/ - the DIA, COO, CSR and ELL matrix types + dense bridging
//	lanes/   - blocked parallel-for and the scan primitive the kernels use
//	convert/ - the conversion kernels and the format-pair dispatcher
//
// Quick example:
//
//	src, _ := formats.NewDia(4, 4, 4, []int{0}, 4, layout.ColMajor)
//	for i := 0; i < 4; i++ {
//		_ = src.SetValue(i, 0, float64(i+1))
//	}
//	var dst formats.Coo
//	_ = convert.DiaToCoo(src, &dst, convert.DefaultOptions())
//
// See each subpackage's doc.go for contracts, complexity and error sets.
package sparsemat
