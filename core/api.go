// File: api.go
// Role: Read-only query facade over a Store.
// Policy:
//   - Every query returns fresh slices; callers may keep or mutate them.
//   - Every multi-valued result is sorted, so iteration order is stable.

package core

import (
	"fmt"
	"sort"
)

// HasPerson reports whether a person with the given ID exists.
func (s *Store) HasPerson(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.people[id]
	return ok
}

// PersonIDsByName returns the IDs of every person whose name matches
// name case-insensitively, sorted ascending. An unknown name yields an
// empty, non-nil slice.
//
// Complexity: O(k log k) for k matching people.
func (s *Store) PersonIDsByName(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.names[nameKey(name)]
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Person returns a copy of the person record with the given ID.
//
// Errors:
//   - ErrPersonNotFound: if no such person exists.
//
// Complexity: O(k log k) for k movies.
func (s *Store) Person(id string) (Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return Person{}, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
	}

	return Person{
		ID:     id,
		Name:   p.name,
		Birth:  p.birth,
		Movies: sortedKeys(p.movies),
	}, nil
}

// Movie returns a copy of the movie record with the given ID.
//
// Errors:
//   - ErrMovieNotFound: if no such movie exists.
func (s *Store) Movie(id string) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return Movie{}, fmt.Errorf("%w: %q", ErrMovieNotFound, id)
	}

	return Movie{
		ID:    id,
		Title: m.title,
		Year:  m.year,
		Stars: sortedKeys(m.stars),
	}, nil
}

// Neighbors returns every (movie, co-star) pair reachable from the person
// in a single hop: for each movie the person starred in, every other star
// of that movie. The person never appears as their own neighbor, but the
// same co-star may appear once per shared movie.
//
// Implementation:
//   - Stage 1: Under the read lock, resolve the person (ErrPersonNotFound).
//   - Stage 2: For each movie in ascending ID order, collect its stars in
//     ascending ID order, skipping the person itself.
//
// Determinism:
//   - Sorted by (MovieID, PersonID) ascending.
//
// Complexity:
//   - Time O(Σ s_m log s_m) over the person's movies, Space O(result).
func (s *Store) Neighbors(id string) ([]Credit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
	}

	var out []Credit
	for _, mid := range sortedKeys(p.movies) {
		for _, pid := range sortedKeys(s.movies[mid].stars) {
			if pid == id {
				continue
			}
			out = append(out, Credit{MovieID: mid, PersonID: pid})
		}
	}

	return out, nil
}

// MovieStars returns the sorted star IDs of a movie. It is the
// movie-centric half of Neighbors, used by searches that expand each
// movie at most once.
//
// Errors:
//   - ErrMovieNotFound: if no such movie exists.
func (s *Store) MovieStars(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, id)
	}

	return sortedKeys(m.stars), nil
}

// PersonMovies returns the sorted movie IDs of a person.
//
// Errors:
//   - ErrPersonNotFound: if no such person exists.
func (s *Store) PersonMovies(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
	}

	return sortedKeys(p.movies), nil
}

// Stats returns a snapshot of the store size.
// Complexity: O(1).
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		People: len(s.people),
		Movies: len(s.movies),
		Stars:  s.stars,
		Frozen: s.frozen,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
