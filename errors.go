// SPDX-License-Identifier: MIT
// Package parmul: sentinel error set.
// All public operations return these sentinels (optionally wrapped with an
// operation tag via fmt.Errorf("Op: %w", err)); callers match with errors.Is.
// No operation panics on user-triggered conditions.
package parmul

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("parmul: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("parmul: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes for
	// multiplication, i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("parmul: dimension mismatch")

	// ErrInvalidWorkerCount indicates a parallel multiplication was requested
	// with a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("parmul: worker count must be > 0")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed in.
	ErrNilMatrix = errors.New("parmul: nil matrix")

	// ErrNilSource indicates that Fill was given a nil IntSource.
	ErrNilSource = errors.New("parmul: nil random source")
)
