// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// Package builder assembles deterministic core.Store fixtures for tests,
// benchmarks and examples of the path search.
//
// Every topology is a Constructor. BuildStore creates an empty store,
// resolves the BuilderOptions once, runs the constructors in order and
// freezes the result:
//
//	s, err := builder.BuildStore(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Chain("a", 4),             // a.p0 ─ a.p1 ─ … ─ a.p4
//	    builder.Ensemble("b", 5),          // five people in one movie
//	    builder.Link("a.p4", "b.p0", "x"), // stitch the two together
//	)
//
// IDs are "<tag>.p<i>" for people and "<tag>.m<i>" for movies; the
// separators can be changed with WithPrefixes. Distinct tags keep
// constructors from colliding, a repeated tag surfaces core.ErrDuplicateID.
//
// Topologies and their person-to-person distances:
//
//	Chain(tag, n)          p0 … pn, distance(p0, pn) = n
//	Ensemble(tag, k)       one movie, k people, all at distance 1
//	Grid(tag, r, c)        r×c people, a two-person movie per grid edge,
//	                       distance = Manhattan distance
//	Star(tag, k)           hub p0 and k spokes, one movie per spoke
//	RandomCasts(tag,n,m,k) n people, m movies of k random stars (needs RNG)
//	Loner(tag)             one person, no movies
//	Link(a, b, tag)        one extra movie starring existing a and b
//
// Determinism: same constructors, same order, same seed ⇒ identical stores.
// Safety: constructors never panic; option constructors panic on nil input.
package builder
