// Package layout provides invertible addressing strategies for logically
// two-dimensional padded buffers stored in flat slices.
//
// What:
//
//   - Order selects the physical arrangement (RowMajor or ColMajor) of a
//     rows×cols cell grid inside a flat slice.
//   - Address maps a logical (row, col) cell to its physical linear index;
//     Coordinate inverts it; Remap translates between two arrangements.
//
// Why:
//
//   - Diagonal and ELLPACK storage keep a padded 2-D values buffer whose
//     physical arrangement is a locality decision, not a semantic one. The
//     conversion kernels reconstruct coordinates in logical order and reach
//     the stored value through an Order, so the arrangement can change
//     without touching any algorithm.
//
// All functions are pure and side-effect free, so they may be evaluated for
// any cell, in any order, on any number of parallel lanes.
//
// Complexity: every function is O(1).
package layout
