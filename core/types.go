// Package core defines the central Store, Person, Movie and Credit types,
// and provides thread-safe primitives for building and querying the
// person–movie graph.
//
// This file declares the record types, sentinel errors, and the NewStore
// constructor.
//
// Errors:
//
//	ErrEmptyID         - person or movie ID is the empty string.
//	ErrDuplicateID     - a person or movie with the same ID already exists.
//	ErrPersonNotFound  - requested person does not exist.
//	ErrMovieNotFound   - requested movie does not exist.
//	ErrFrozen          - mutation attempted after Freeze.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core store operations.
var (
	// ErrEmptyID indicates that a Person or Movie was given an empty ID.
	ErrEmptyID = errors.New("core: id is empty")

	// ErrDuplicateID indicates that the ID is already present in the store.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrPersonNotFound indicates an operation referenced a non-existent person.
	ErrPersonNotFound = errors.New("core: person not found")

	// ErrMovieNotFound indicates an operation referenced a non-existent movie.
	ErrMovieNotFound = errors.New("core: movie not found")

	// ErrFrozen indicates a mutation was attempted on a frozen store.
	ErrFrozen = errors.New("core: store is frozen")
)

// Person is a single actor record.
//
// Movies lists the IDs of every movie the person starred in, sorted
// ascending. Records handed out by the Store are copies.
type Person struct {
	// ID is the opaque identifier of the person.
	ID string

	// Name is the display name, as loaded.
	Name string

	// Birth is the birth year; empty when unknown.
	Birth string

	// Movies holds the IDs of the movies this person starred in.
	Movies []string
}

// Movie is a single film record.
type Movie struct {
	ID    string
	Title string
	Year  string

	// Stars holds the IDs of the people who starred in this movie.
	Stars []string
}

// Credit is one edge of the co-star graph: PersonID starred together with
// the queried person in MovieID.
type Credit struct {
	MovieID  string
	PersonID string
}

// Stats is a point-in-time size snapshot of a Store.
type Stats struct {
	People int
	Movies int
	Stars  int
	Frozen bool
}

// person and movie are the internal, mutable forms of Person and Movie.
// Set membership keeps AddStar idempotent.
type person struct {
	name   string
	birth  string
	movies map[string]struct{}
}

type movie struct {
	title string
	year  string
	stars map[string]struct{}
}

// Store is the in-memory person–movie graph.
//
// mu guards every field below it. frozen flips once and never resets.
type Store struct {
	mu sync.RWMutex

	frozen bool
	stars  int

	names  map[string]map[string]struct{} // lower(name) → person IDs
	people map[string]*person             // person ID → person
	movies map[string]*movie              // movie ID → movie
}

// NewStore creates an empty, mutable Store.
// Complexity: O(1)
func NewStore() *Store {
	return &Store{
		names:  make(map[string]map[string]struct{}),
		people: make(map[string]*person),
		movies: make(map[string]*movie),
	}
}
