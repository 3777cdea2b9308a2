// Package lanes provides the data-parallel execution primitives the
// conversion kernels are built from.
//
// What:
//
//   - For: a blocked parallel-for: [0, n) is split into consecutive
//     half-open blocks of at most `grain` indices, and each block is handed
//     to fn with bounded concurrency. The block structure depends only on
//     n and grain, never on the worker count, so two For passes over the
//     same range always see identical blocks.
//   - BlockCount: the number of blocks For dispatches for n and grain.
//   - ExclusiveSum: the scan turning per-block survivor counts into
//     per-block write offsets for stable stream compaction.
//
// Why:
//
//   - Slot-level work in the conversion kernels is independent per slot, so
//     it parallelizes as blocked loops; compaction then needs exactly one
//     ordered hand-off between blocks, the exclusive prefix sum over their
//     survivor counts.
//
// Concurrency contract: fn must confine writes to state owned by its block
// (disjoint output ranges, or a per-block cell such as counts[block]); For
// itself performs no locking and blocks until every block has completed.
package lanes
