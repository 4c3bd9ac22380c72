// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_chain.go - Chain, Ensemble, Star, Loner and Link constructors.
//
// Contract:
//   • Chain(tag, n): n ≥ 1; people p0..pn, movie mi stars {pi, p(i+1)}.
//   • Ensemble(tag, k): k ≥ 2; one movie m0 starring p0..p(k-1).
//   • Star(tag, k): k ≥ 1; hub p0, spokes p1..pk, movie m(i-1) stars {p0, pi}.
//   • Loner(tag): a single person p0 with no movies.
//   • Link(a, b, tag): one movie tag.m0 starring existing people a and b.
//
// Complexity: linear in the number of people and stars emitted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	methodChain    = "Chain"
	methodEnsemble = "Ensemble"
	methodStar     = "Star"
	methodLoner    = "Loner"
	methodLink     = "Link"

	minChainHops    = 1
	minEnsembleCast = 2
	minStarSpokes   = 1
)

// Chain returns a Constructor for a path of n two-person movies.
func Chain(tag string, n int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if n < minChainHops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainHops, ErrTooFewPeople)
		}
		ids, err := addPeople(methodChain, s, cfg, tag, n+1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addMovie(methodChain, s, cfg, tag, i, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ensemble returns a Constructor for a single movie with k stars.
func Ensemble(tag string, k int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if k < minEnsembleCast {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodEnsemble, k, minEnsembleCast, ErrTooFewPeople)
		}
		ids, err := addPeople(methodEnsemble, s, cfg, tag, k)
		if err != nil {
			return err
		}

		return addMovie(methodEnsemble, s, cfg, tag, 0, ids...)
	}
}

// Star returns a Constructor for a hub person sharing one movie with each
// of k spokes.
func Star(tag string, k int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if k < minStarSpokes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarSpokes, ErrTooFewPeople)
		}
		ids, err := addPeople(methodStar, s, cfg, tag, k+1)
		if err != nil {
			return err
		}
		for i := 1; i <= k; i++ {
			if err := addMovie(methodStar, s, cfg, tag, i-1, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Loner returns a Constructor for a person with no movies.
func Loner(tag string) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		_, err := addPeople(methodLoner, s, cfg, tag, 1)
		return err
	}
}

// Link returns a Constructor that adds movie tag.m0 starring the existing
// people a and b.
func Link(a, b, tag string) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if err := addMovie(methodLink, s, cfg, tag, 0, a, b); err != nil {
			return fmt.Errorf("%w: %v", ErrConstructFailed, err)
		}

		return nil
	}
}
