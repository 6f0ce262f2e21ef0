// Package matcalc is a small dense-matrix calculator: exact textbook linear
// algebra on row-major float64 matrices, driven from Go or from YAML workbooks.
//
// 🚀 What is matcalc?
//
//	A library plus a CLI that bring together:
//		• Dense storage: row-major buffers with reusable capacity and a cached display width
//		• Ownership: Copy, Move, Destroy with one owner per buffer
//		• Algebra: n-ary Add/Sub, Mul, integer Pow, Transpose
//		• Determinants: cofactor (Laplace) expansion, no pivoting
//		• Adjugate & inverse: adj(A)/det(A), "singular" reported as a flag
//		• Workbooks: YAML documents of named matrices and steps, text or YAML reports
//
// ✨ Why choose matcalc?
//
//   - Results match hand computation entry for entry: no pivoting, no reordering
//   - Every allocation goes through a pluggable Allocator, so memory bounds
//     (BudgetAllocator) and allocation failures are testable
//   - No panics on bad input: typed sentinel errors, matched with errors.Is
//
// Packages:
//
//	matrix/       - Dense, lifecycle, algebra, determinant, adjugate/inverse, allocators
//	workbook/     - YAML workbook parsing, step runner (zap logging), table rendering
//	cmd/matcalc/  - cobra CLI around workbook
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a) // -2
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
