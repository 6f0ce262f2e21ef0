// SPDX-License-Identifier: MIT

// Package matrix - buffer allocation policy.
//
// Purpose:
//   - Route every buffer a Dense owns (results, minors, scratch copies) through a
//     single Allocator so that "allocation failed" is an observable, testable outcome.
//   - Give every buffer exactly one Alloc and at most one Free, which makes leaks
//     measurable: a BudgetAllocator's Live() returns to its pre-call value once an
//     operation has finished, whether it succeeded or failed.
//
// Complexity quicksheet:
//   - HeapAllocator.Alloc: O(n) zeroing by runtime; Free: O(1) (left to the GC).
//   - BudgetAllocator: same as heap plus O(1) bookkeeping.

package matrix

import (
	"fmt"
	"math"
)

// MaxHeapCells bounds a single HeapAllocator request. Larger requests are refused
// with ErrAllocation instead of letting make() abort the process.
const MaxHeapCells = math.MaxInt32

// Allocator hands out zero-filled float64 buffers and takes them back.
//
// Contract:
//   - Alloc(n) returns a slice with len == n whose entries are all 0, or an error
//     matching ErrAllocation.
//   - Free receives every buffer at most once, and only buffers this allocator returned.
//
// Allocators are not required to be safe for concurrent use.
type Allocator interface {
	Alloc(n int) ([]float64, error)
	Free(buf []float64)
}

// HeapAllocator is the default Allocator: plain make() with an upper bound.
type HeapAllocator struct{}

// Alloc returns make([]float64, n) or ErrAllocation for n outside [1, MaxHeapCells].
func (HeapAllocator) Alloc(n int) ([]float64, error) {
	if n <= 0 || n > MaxHeapCells {
		return nil, fmt.Errorf("Alloc(%d): %w", n, ErrAllocation)
	}

	return make([]float64, n), nil
}

// Free is a no-op; the garbage collector reclaims the buffer.
func (HeapAllocator) Free([]float64) {}

// defaultAllocator is shared by every Dense created without WithAllocator.
var defaultAllocator Allocator = HeapAllocator{}

// BudgetAllocator caps the number of live float64 cells it has handed out.
// MAIN DESCRIPTION:
//   - Behaves like HeapAllocator while Live()+n <= Limit; refuses otherwise.
//   - Counts allocations and frees so callers can assert leak-freedom.
//
// Behavior highlights:
//   - Limit <= 0 means "no budget" (only the heap bound applies).
//   - Freed capacity is returned to the budget immediately.
//
// Notes:
//   - Not safe for concurrent use; matrices sharing one BudgetAllocator must be
//     used from a single goroutine.
type BudgetAllocator struct {
	Limit int // maximum live cells; <= 0 disables the budget

	live   int
	peak   int
	allocs int
	frees  int
}

// NewBudgetAllocator returns a BudgetAllocator with the given cell limit.
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return &BudgetAllocator{Limit: limit}
}

// Alloc hands out n zeroed cells or fails with ErrAllocation when the budget
// would be exceeded.
func (b *BudgetAllocator) Alloc(n int) ([]float64, error) {
	if b.Limit > 0 && b.live+n > b.Limit {
		return nil, fmt.Errorf("Alloc(%d): budget %d, live %d: %w", n, b.Limit, b.live, ErrAllocation)
	}
	buf, err := HeapAllocator{}.Alloc(n)
	if err != nil {
		return nil, err
	}
	b.live += n
	b.allocs++
	if b.live > b.peak {
		b.peak = b.live
	}

	return buf, nil
}

// Free returns len(buf) cells to the budget.
func (b *BudgetAllocator) Free(buf []float64) {
	if buf == nil {
		return
	}
	b.live -= len(buf)
	b.frees++
}

// Live reports the number of cells currently handed out.
func (b *BudgetAllocator) Live() int { return b.live }

// Peak reports the high-water mark of Live.
func (b *BudgetAllocator) Peak() int { return b.peak }

// Allocs reports the number of successful Alloc calls.
func (b *BudgetAllocator) Allocs() int { return b.allocs }

// Frees reports the number of Free calls with a non-nil buffer.
func (b *BudgetAllocator) Frees() int { return b.frees }
