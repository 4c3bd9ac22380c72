// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and the constructor name.

package builder

import "errors"

// ErrTooFewPeople indicates that a size parameter (n, k, rows, cols) is
// smaller than the minimum for the requested constructor.
var ErrTooFewPeople = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied,
// e.g. a nil Constructor or a store rejecting an insert.
var ErrConstructFailed = errors.New("builder: construction failed")
