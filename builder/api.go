// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - public entry point and shared helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Constructor applies a deterministic store mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(s *core.Store, cfg builderConfig) error

// BuildStore creates a new core.Store, resolves the builder configuration
// from bopts, applies all constructors in order and freezes the store.
// Any constructor error is wrapped with "BuildStore: %w" and returned
// immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildStore(bopts []BuilderOption, cons ...Constructor) (*core.Store, error) {
	s := core.NewStore()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildStore: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildStore: %w", err)
		}
	}
	s.Freeze()

	return s, nil
}

// addPeople inserts people tag.p0 … tag.p(n-1) and returns their IDs.
func addPeople(method string, s *core.Store, cfg builderConfig, tag string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id := cfg.personID(tag, i)
		p := core.Person{ID: id, Name: fmt.Sprintf("%s Person %d", tag, i)}
		if err := s.AddPerson(p); err != nil {
			return nil, fmt.Errorf("%s: AddPerson(%s): %w", method, id, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// addMovie inserts movie tag.m<i> starring every person in cast.
func addMovie(method string, s *core.Store, cfg builderConfig, tag string, i int, cast ...string) error {
	id := cfg.movieID(tag, i)
	m := core.Movie{ID: id, Title: fmt.Sprintf("%s Movie %d", tag, i), Year: cfg.yearFn(i)}
	if err := s.AddMovie(m); err != nil {
		return fmt.Errorf("%s: AddMovie(%s): %w", method, id, err)
	}
	for _, pid := range cast {
		if err := s.AddStar(pid, id); err != nil {
			return fmt.Errorf("%s: AddStar(%s,%s): %w", method, pid, id, err)
		}
	}

	return nil
}
