// Package core_test verifies core.Store method-level contracts.
//
// Purpose:
//   - Lock in the symmetric starred-in invariant.
//   - Validate sentinel errors for unknown, empty and duplicate IDs.
//   - Anchor the ordering guarantees of Neighbors and PersonIDsByName.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
)

const (
	bacon  = "102"
	cruise = "129"
	hanks  = "158"
	nobody = "999"

	fewGoodMen = "104257"
	apollo13   = "112384"
)

// newFixture builds a small mutable store:
//
//	Kevin Bacon ── A Few Good Men ── Tom Cruise
//	Kevin Bacon ── Apollo 13      ── Tom Hanks
func newFixture(t *testing.T) *core.Store {
	t.Helper()

	s := core.NewStore()
	require.NoError(t, s.AddPerson(core.Person{ID: bacon, Name: "Kevin Bacon", Birth: "1958"}))
	require.NoError(t, s.AddPerson(core.Person{ID: cruise, Name: "Tom Cruise", Birth: "1962"}))
	require.NoError(t, s.AddPerson(core.Person{ID: hanks, Name: "Tom Hanks", Birth: "1956"}))
	require.NoError(t, s.AddMovie(core.Movie{ID: fewGoodMen, Title: "A Few Good Men", Year: "1992"}))
	require.NoError(t, s.AddMovie(core.Movie{ID: apollo13, Title: "Apollo 13", Year: "1995"}))

	require.NoError(t, s.AddStar(bacon, fewGoodMen))
	require.NoError(t, s.AddStar(cruise, fewGoodMen))
	require.NoError(t, s.AddStar(bacon, apollo13))
	require.NoError(t, s.AddStar(hanks, apollo13))

	return s
}

func TestStore_AddPersonErrors(t *testing.T) {
	s := core.NewStore()

	require.ErrorIs(t, s.AddPerson(core.Person{}), core.ErrEmptyID)
	require.NoError(t, s.AddPerson(core.Person{ID: bacon, Name: "Kevin Bacon"}))
	require.ErrorIs(t, s.AddPerson(core.Person{ID: bacon, Name: "Other"}), core.ErrDuplicateID)

	require.ErrorIs(t, s.AddMovie(core.Movie{}), core.ErrEmptyID)
	require.NoError(t, s.AddMovie(core.Movie{ID: apollo13}))
	require.ErrorIs(t, s.AddMovie(core.Movie{ID: apollo13}), core.ErrDuplicateID)
}

// TestStore_AddStarSymmetric verifies both sides of the relation are written
// and that unknown endpoints leave the store untouched.
func TestStore_AddStarSymmetric(t *testing.T) {
	s := newFixture(t)

	p, err := s.Person(bacon)
	require.NoError(t, err)
	assert.Equal(t, []string{fewGoodMen, apollo13}, p.Movies)

	m, err := s.Movie(apollo13)
	require.NoError(t, err)
	assert.Equal(t, []string{bacon, hanks}, m.Stars)

	// unknown endpoints
	require.ErrorIs(t, s.AddStar(nobody, apollo13), core.ErrPersonNotFound)
	require.ErrorIs(t, s.AddStar(hanks, "0"), core.ErrMovieNotFound)
	require.ErrorIs(t, s.AddStar("", apollo13), core.ErrEmptyID)

	m, err = s.Movie(apollo13)
	require.NoError(t, err)
	assert.Len(t, m.Stars, 2, "failed AddStar must not mutate")

	// duplicates are idempotent
	before := s.Stats().Stars
	require.NoError(t, s.AddStar(hanks, apollo13))
	assert.Equal(t, before, s.Stats().Stars)
}

func TestStore_Freeze(t *testing.T) {
	s := newFixture(t)
	require.False(t, s.Frozen())

	s.Freeze()
	s.Freeze()
	require.True(t, s.Frozen())

	require.ErrorIs(t, s.AddPerson(core.Person{ID: nobody}), core.ErrFrozen)
	require.ErrorIs(t, s.AddMovie(core.Movie{ID: "1"}), core.ErrFrozen)
	require.ErrorIs(t, s.AddStar(hanks, fewGoodMen), core.ErrFrozen)

	st := s.Stats()
	assert.Equal(t, core.Stats{People: 3, Movies: 2, Stars: 4, Frozen: true}, st)
}

func TestStore_PersonIDsByName(t *testing.T) {
	s := newFixture(t)
	require.NoError(t, s.AddPerson(core.Person{ID: "001", Name: "tom hanks", Birth: "1990"}))

	assert.Equal(t, []string{"001", hanks}, s.PersonIDsByName("  TOM HANKS "))
	assert.Equal(t, []string{bacon}, s.PersonIDsByName("kevin bacon"))

	ids := s.PersonIDsByName("Emma Watson")
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

// TestStore_Neighbors anchors the (MovieID, PersonID) ordering and the
// self-exclusion rule.
func TestStore_Neighbors(t *testing.T) {
	s := newFixture(t)

	got, err := s.Neighbors(bacon)
	require.NoError(t, err)
	assert.Equal(t, []core.Credit{
		{MovieID: fewGoodMen, PersonID: cruise},
		{MovieID: apollo13, PersonID: hanks},
	}, got)

	got, err = s.Neighbors(hanks)
	require.NoError(t, err)
	assert.Equal(t, []core.Credit{{MovieID: apollo13, PersonID: bacon}}, got)

	_, err = s.Neighbors(nobody)
	require.True(t, errors.Is(err, core.ErrPersonNotFound))
}

func TestStore_Lookups(t *testing.T) {
	s := newFixture(t)

	assert.True(t, s.HasPerson(cruise))
	assert.False(t, s.HasPerson(nobody))

	_, err := s.Person(nobody)
	require.ErrorIs(t, err, core.ErrPersonNotFound)
	_, err = s.Movie("0")
	require.ErrorIs(t, err, core.ErrMovieNotFound)

	stars, err := s.MovieStars(fewGoodMen)
	require.NoError(t, err)
	assert.Equal(t, []string{bacon, cruise}, stars)
	_, err = s.MovieStars("0")
	require.ErrorIs(t, err, core.ErrMovieNotFound)

	movies, err := s.PersonMovies(cruise)
	require.NoError(t, err)
	assert.Equal(t, []string{fewGoodMen}, movies)
	_, err = s.PersonMovies(nobody)
	require.ErrorIs(t, err, core.ErrPersonNotFound)
}

// TestStore_ReturnedSlicesAreCopies ensures callers cannot corrupt the store.
func TestStore_ReturnedSlicesAreCopies(t *testing.T) {
	s := newFixture(t)

	m, err := s.Movie(apollo13)
	require.NoError(t, err)
	m.Stars[0] = "tampered"

	again, err := s.Movie(apollo13)
	require.NoError(t, err)
	assert.Equal(t, []string{bacon, hanks}, again.Stars)
}
