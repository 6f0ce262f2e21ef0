// SPDX-License-Identifier: MIT

// Package workbook drives the matrix engine from a declarative YAML document.
//
// A workbook names a set of matrices and lists steps to run against them:
//
//	matrices:
//	  A: [[1, 2, 3], [4, 5, 6]]
//	  B: [[7, 8], [9, 10], [11, 12]]
//	steps:
//	  - op: mul
//	    args: [A, B]
//	    into: C
//	  - op: det
//	    args: [C]
//
// Supported ops: add, sub (one or more args), mul (two args), pow (one arg
// plus k), transpose, copy, det, adjugate, inverse (one arg each).
//
// Before a step reaches the engine its operands are checked with the shape
// predicates of package matrix (CanAdd, CanSub, CanMult, squareness), so a
// shape problem is reported as ErrIncompatible for that step and the run
// moves on to the next step. Steps with an into name store their result
// under that name; an existing matrix of that name is reused as the
// destination, capacity included.
//
// Results are collected in a Report that renders either as bordered text
// tables (Render, WriteText) or as YAML (WriteYAML).
package workbook
