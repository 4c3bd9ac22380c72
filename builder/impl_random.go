// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_random.go - RandomCasts(tag, people, movies, cast) constructor.
//
// Contract:
//   • people ≥ 2, movies ≥ 1, 2 ≤ cast ≤ people (else ErrTooFewPeople).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • Each movie draws cast distinct people via a partial Fisher–Yates
//     shuffle, so the store is a fixed function of the seed.
//
// Complexity: O(people + movies*cast).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const methodRandomCasts = "RandomCasts"

// RandomCasts returns a Constructor for a random bipartite store.
func RandomCasts(tag string, people, movies, cast int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if people < 2 || movies < 1 || cast < 2 || cast > people {
			return fmt.Errorf("%s: people=%d, movies=%d, cast=%d: %w",
				methodRandomCasts, people, movies, cast, ErrTooFewPeople)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCasts, ErrNeedRandSource)
		}
		ids, err := addPeople(methodRandomCasts, s, cfg, tag, people)
		if err != nil {
			return err
		}

		pool := make([]string, people)
		for i := 0; i < movies; i++ {
			copy(pool, ids)
			for j := 0; j < cast; j++ {
				k := j + cfg.rng.Intn(people-j)
				pool[j], pool[k] = pool[k], pool[j]
			}
			if err := addMovie(methodRandomCasts, s, cfg, tag, i, pool[:cast]...); err != nil {
				return err
			}
		}

		return nil
	}
}
