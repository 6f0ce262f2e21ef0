// Package matrix offers dense row-major float64 matrices and the exact
// textbook operations on them.
//
// The matrix package provides:
//
//   - Dense: a single owned buffer whose capacity may exceed rows*cols, so a
//     destination reused for a smaller result keeps its allocation. Each Dense
//     caches the display width of its widest entry (see FormatEntry).
//   - Lifecycle: NewDense, Copy/Clone, Move, Destroy, Prepare and Assign. A
//     buffer has exactly one owner; a destroyed or moved-from Dense is empty
//     and rejected as an operand with ErrEmptyMatrix.
//   - Algebra: Add and Sub over any number of same-shaped operands, Mul, Pow
//     (k >= 1, repeated multiplication) and Transpose.
//   - Det by cofactor expansion along the first row, Adjugate, Inverse and
//     CanInvert. Inverse reports a singular matrix through its bool result,
//     never through an error.
//   - Allocator: every buffer (results, minors, scratch) comes from the
//     Allocator of the operand. BudgetAllocator caps live cells, which turns
//     "out of memory" into a deterministic ErrAllocation; operations release
//     everything they allocated before returning it.
//
// Every operation writing a result takes a destination first: nil allocates a
// new matrix, an existing one is reshaped in place (growing only when needed),
// and a destination that is also an operand is handled through a scratch copy.
//
// Determinant, adjugate and inverse cost O(n!) and are meant for the small
// matrices people compute by hand.
//
// See the examples in this package for usage patterns.
package matrix
