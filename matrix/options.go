// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options are fixed at construction. Results produced for a nil destination
//     inherit the policy of their first operand, so an allocator chosen once
//     flows through minors, scratch copies and results of the whole computation.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Assign.
	// Arithmetic results (e.g. an overflowing product) are stored as computed.
	DefaultValidateNaNInf = true
)

// Options is the effective configuration of a Dense.
type Options struct {
	allocator      Allocator
	validateNaNInf bool
}

// Option mutates Options; apply via NewDense(rows, cols, opts...).
type Option func(*Options)

// WithAllocator routes every buffer of the matrix (and of results derived from
// it) through a. Panics on nil: that is a programming error, not a runtime condition.
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic("matrix: WithAllocator(nil)")
	}

	return func(o *Options) { o.allocator = a }
}

// WithValidateNaNInf makes Set/Assign reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set/Assign store any IEEE value.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		allocator:      defaultAllocator,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options over the defaults, last writer wins.
// Complexity: O(k) for k=len(opts).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// options reconstructs the Options of an existing matrix so that derived
// results can be created under the same policy.
func (m *Dense) options() Options {
	o := defaultOptions()
	if m != nil && m.alloc != nil {
		o.allocator = m.alloc
		o.validateNaNInf = m.validateNaNInf
	}

	return o
}
