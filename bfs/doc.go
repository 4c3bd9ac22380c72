// Package bfs provides breadth-first shortest-path search over a core.Store,
// answering "how many degrees of separation lie between two people?".
//
// What
//
//   - Treats every person as a vertex and every shared movie as an edge
//     labelled with that movie.
//   - Returns a Result containing:
//   - Path: the (movie, person) hops from source to target
//   - Found: false when no connection exists (not an error)
//   - Expanded / Enqueued: work counters
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a person joins the frontier)
//   - OnDequeue (when a person leaves the frontier)
//   - Allows filtering of individual credits via WithFilterCredit.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Algorithm
//
//	The frontier is a FIFO of search nodes kept in an arena: each node
//	stores (person, movie used to reach it, parent index). Three sets bound
//	the work:
//
//	  explored    people whose movies were scanned
//	  traversed   movies whose stars were scanned
//	  inFrontier  people currently queued
//
//	so every person and every movie is expanded at most once: O(P + C)
//	for P people and C co-starring pairs. A person can still be queued by
//	more than one route before its first dequeue; the first dequeue wins
//	and later ones are skipped.
//
// Early exit
//
//	With EarlyExit (default) the target is recognised while the node that
//	reaches it is being expanded, not when it would be dequeued one level
//	later. Nodes are expanded in level order, so the first node that sees
//	the target lies on the shallowest level that can, and the returned
//	path has the same length strict BFS would return. WithEarlyExit(false)
//	switches to dequeue-time detection.
//
// Determinism
//
//	core.Store returns movies and stars sorted by ID, so for a fixed store
//	the same path is returned on every run. Among several shortest paths
//	the one found first in that order wins.
//
// Complexity
//
//   - Time:   O(P + C)
//   - Memory: O(P + M) for the arena, frontier and the three sets
//
// Usage
//
//	res, err := bfs.ShortestPath(store, source, target)
//	switch {
//	case err != nil:
//	    // ErrStoreNil, ErrPersonNotFound, ErrSourceHasNoMovies,
//	    // ErrOptionViolation, or ctx.Err()
//	case !res.Found:
//	    // not connected
//	default:
//	    fmt.Println(res.Degrees(), "degrees of separation")
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, early exit.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithMaxDepth(d):         never return paths longer than d (>0).
//   - WithEarlyExit(b):        toggle neighbor-level target detection.
//   - WithFilterCredit(fn):    skip credits for which fn(c)==false.
//   - WithOnEnqueue(fn):       hook when a person is enqueued.
//   - WithOnDequeue(fn):       hook when a person is dequeued.
package bfs
