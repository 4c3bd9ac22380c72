// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPrefixes overrides the person and movie ID separators. Empty
// values fall back to ".p" / ".m".
func WithPrefixes(person, movie string) BuilderOption {
	return func(c *builderConfig) {
		c.personSep = person
		c.movieSep = movie
	}
}

// WithYearFn sets the release-year label of the i-th movie of each
// constructor. Panics on nil.
func WithYearFn(fn func(i int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithYearFn(nil)")
	}
	return func(c *builderConfig) {
		c.yearFn = fn
	}
}
