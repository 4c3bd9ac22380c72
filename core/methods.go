// File: methods.go
// Role: Store construction (AddPerson, AddMovie, AddStar) and the Freeze
// lifecycle switch.
// Concurrency:
//   - Every mutator holds mu for writing for its whole duration.
//   - Freeze is one-way; mutators check it under the same lock.

package core

import (
	"fmt"
	"strings"
)

// AddPerson inserts a person record. Any Movies listed on p are ignored;
// edges are added with AddStar so that both sides stay in sync.
//
// Errors:
//   - ErrEmptyID: if p.ID == "".
//   - ErrDuplicateID: if a person with p.ID exists.
//   - ErrFrozen: after Freeze.
//
// Complexity: O(1).
func (s *Store) AddPerson(p Person) error {
	if p.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.people[p.ID]; ok {
		return fmt.Errorf("%w: person %q", ErrDuplicateID, p.ID)
	}

	s.people[p.ID] = &person{
		name:   p.Name,
		birth:  p.Birth,
		movies: make(map[string]struct{}),
	}

	key := nameKey(p.Name)
	ids, ok := s.names[key]
	if !ok {
		ids = make(map[string]struct{}, 1)
		s.names[key] = ids
	}
	ids[p.ID] = struct{}{}

	return nil
}

// AddMovie inserts a movie record. Any Stars listed on m are ignored.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID, ErrFrozen as for AddPerson.
//
// Complexity: O(1).
func (s *Store) AddMovie(m Movie) error {
	if m.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.movies[m.ID]; ok {
		return fmt.Errorf("%w: movie %q", ErrDuplicateID, m.ID)
	}
	s.movies[m.ID] = &movie{
		title: m.Title,
		year:  m.Year,
		stars: make(map[string]struct{}),
	}

	return nil
}

// AddStar records that personID starred in movieID, on both sides of the
// relation at once.
//
// Implementation:
//   - Stage 1: Validate IDs are non-empty.
//   - Stage 2: Under the write lock, reject frozen stores.
//   - Stage 3: Resolve both endpoints; a missing one returns its sentinel
//     and leaves the store untouched.
//   - Stage 4: Insert into p.movies and m.stars; repeated calls are no-ops.
//
// Errors:
//   - ErrEmptyID: if either ID is "".
//   - ErrFrozen: after Freeze.
//   - ErrPersonNotFound / ErrMovieNotFound: unknown endpoint.
//
// Complexity: O(1).
func (s *Store) AddStar(personID, movieID string) error {
	if personID == "" || movieID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	p, ok := s.people[personID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPersonNotFound, personID)
	}
	m, ok := s.movies[movieID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMovieNotFound, movieID)
	}

	if _, dup := p.movies[movieID]; dup {
		return nil
	}
	p.movies[movieID] = struct{}{}
	m.stars[personID] = struct{}{}
	s.stars++

	return nil
}

// Freeze ends the construction phase. It is idempotent.
func (s *Store) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (s *Store) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frozen
}

// nameKey normalizes a display name for case-insensitive lookup.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
