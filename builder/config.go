// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go - resolved, immutable builder configuration.

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig is the resolved view of all BuilderOptions.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// ID separators: "<tag><personSep><i>" and "<tag><movieSep><i>".
	personSep string
	movieSep  string

	// yearFn labels movie i with a release year.
	yearFn func(i int) string
}

const (
	defaultPersonSep = ".p"
	defaultMovieSep  = ".m"
	baseYear         = 1980
)

// newBuilderConfig resolves opts left to right over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		personSep: defaultPersonSep,
		movieSep:  defaultMovieSep,
		yearFn:    func(i int) string { return fmt.Sprintf("%d", baseYear+i%40) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.personSep == "" {
		cfg.personSep = defaultPersonSep
	}
	if cfg.movieSep == "" {
		cfg.movieSep = defaultMovieSep
	}

	return cfg
}

// PersonID returns the person ID the builder gives index i under tag with
// default prefixes.
func PersonID(tag string, i int) string {
	return fmt.Sprintf("%s%s%d", tag, defaultPersonSep, i)
}

// MovieID returns the movie ID the builder gives index i under tag with
// default prefixes.
func MovieID(tag string, i int) string {
	return fmt.Sprintf("%s%s%d", tag, defaultMovieSep, i)
}

func (c builderConfig) personID(tag string, i int) string {
	return fmt.Sprintf("%s%s%d", tag, c.personSep, i)
}

func (c builderConfig) movieID(tag string, i int) string {
	return fmt.Sprintf("%s%s%d", tag, c.movieSep, i)
}
