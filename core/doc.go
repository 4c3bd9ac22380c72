// Package core provides the thread-safe, in-memory person–movie Store that
// every search in lvsearch reads from.
//
// The Store S = (P, M, N) holds three mappings:
//
//   - names:  lower-cased display name → set of person IDs
//   - people: person ID → Person{Name, Birth, Movies}
//   - movies: movie ID  → Movie{Title, Year, Stars}
//
// The "starred in" relation is kept symmetric: AddStar(p, m) records m in
// p.Movies and p in m.Stars under a single write lock, so the two sides can
// never drift apart. A star edge naming an unknown person or movie is
// rejected with ErrPersonNotFound / ErrMovieNotFound; loaders treat those
// as "skip the row" and never abort.
//
// Lifecycle
//
//	s := core.NewStore()
//	_ = s.AddPerson(core.Person{ID: "102", Name: "Kevin Bacon", Birth: "1958"})
//	_ = s.AddMovie(core.Movie{ID: "104257", Title: "A Few Good Men", Year: "1992"})
//	_ = s.AddStar("102", "104257")
//	s.Freeze() // every mutator now returns ErrFrozen
//
// A Store is an explicitly constructed value passed to searches by pointer;
// there is no package-level instance.
//
// Determinism
//
//	Neighbors(id) returns credits sorted by (MovieID, PersonID) and
//	PersonIDsByName returns IDs sorted ascending, so breadth-first search
//	over a Store visits people in a reproducible order.
//
// Concurrency
//
//	A single sync.RWMutex guards all three maps. After Freeze the Store is
//	read-only and may be shared across goroutines without further care.
//
// Core Methods:
//
//	// Construction
//	AddPerson(p Person) error           // O(1)
//	AddMovie(m Movie) error             // O(1)
//	AddStar(personID, movieID) error    // O(1)
//	Freeze()                            // O(1)
//
//	// Queries
//	PersonIDsByName(name) []string      // O(k log k)
//	Person(id) (Person, error)          // O(|movies|)
//	Movie(id) (Movie, error)            // O(|stars|)
//	Neighbors(id) ([]Credit, error)     // O(Σ|stars| log)
//	Stats() Stats                       // O(1)
package core
