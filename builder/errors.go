// SPDX-License-Identifier: MIT
// Package: lvlref/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// Sentinel errors; constructors wrap them with the method name and the
// offending parameter.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p is outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a random constructor ran without WithSeed
	// or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnsupportedGraphMode indicates the constructor cannot honor the
	// graph's mode, e.g. RandomDAG on a bidirectional graph.
	ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

	// ErrConstructFailed indicates a constructor could not run, e.g. a nil
	// Constructor passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
