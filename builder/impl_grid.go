// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// impl_grid.go - Grid(tag, rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1, rows*cols ≥ 2 (else ErrTooFewPeople).
//   • Person (r,c) gets index r*cols+c.
//   • One two-person movie per 4-neighborhood edge, emitted row-major,
//     right edge before down edge.
//
// Complexity: O(R*C) people + O(2*R*C) movies.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor for a rows×cols lattice of co-stars.
func Grid(tag string, rows, cols int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooFewPeople)
		}
		ids, err := addPeople(methodGrid, s, cfg, tag, rows*cols)
		if err != nil {
			return err
		}

		m := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := ids[r*cols+c]
				if c+1 < cols {
					if err := addMovie(methodGrid, s, cfg, tag, m, here, ids[r*cols+c+1]); err != nil {
						return err
					}
					m++
				}
				if r+1 < rows {
					if err := addMovie(methodGrid, s, cfg, tag, m, here, ids[(r+1)*cols+c]); err != nil {
						return err
					}
					m++
				}
			}
		}

		return nil
	}
}
