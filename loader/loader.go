package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// File names inside a data directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// ErrMissingColumn is returned when a header lacks a required column.
var ErrMissingColumn = errors.New("loader: missing column")

// Report summarizes a load.
type Report struct {
	People       int
	Movies       int
	Stars        int
	SkippedRows  int // people or movie rows with an empty or repeated ID
	SkippedStars int // star rows naming an unknown person or movie
}

// Option configures a load.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger for the load summary and skipped rows.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// LoadDir loads the tables from directory dir.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*core.Store, Report, error) {
	const op = "loader.LoadDir"

	info, err := os.Stat(dir)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%s: %w", op, err)
	}
	if !info.IsDir() {
		return nil, Report{}, fmt.Errorf("%s: %s is not a directory", op, dir)
	}

	return LoadFS(ctx, os.DirFS(dir), opts...)
}

// LoadFS loads the tables from the root of fsys and freezes the store.
// The context is checked between rows.
func LoadFS(ctx context.Context, fsys fs.FS, opts ...Option) (*core.Store, Report, error) {
	const op = "loader.LoadFS"

	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	l := &load{ctx: ctx, fsys: fsys, log: o.log, store: core.NewStore()}
	steps := []struct {
		file string
		cols []string
		row  func(rec []string) error
	}{
		{PeopleFile, []string{"id", "name", "birth"}, l.person},
		{MoviesFile, []string{"id", "title", "year"}, l.movie},
		{StarsFile, []string{"person_id", "movie_id"}, l.star},
	}
	for _, s := range steps {
		if err := l.readTable(s.file, s.cols, s.row); err != nil {
			return nil, Report{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	l.store.Freeze()

	st := l.store.Stats()
	l.rep.People, l.rep.Movies, l.rep.Stars = st.People, st.Movies, st.Stars
	o.log.Info("data loaded",
		"people", l.rep.People,
		"movies", l.rep.Movies,
		"stars", l.rep.Stars,
		"skipped_rows", l.rep.SkippedRows,
		"skipped_stars", l.rep.SkippedStars,
	)

	return l.store, l.rep, nil
}

// load carries the state of one LoadFS call.
type load struct {
	ctx   context.Context
	fsys  fs.FS
	log   *slog.Logger
	store *core.Store
	rep   Report

	idx  []int // column positions of the current table
	file string
	line int
}

// readTable opens file, maps cols to header positions and calls row for
// each record with the fields reordered to match cols.
func (l *load) readTable(file string, cols []string, row func(rec []string) error) error {
	f, err := l.fsys.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%s: header: %w", file, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	l.idx = l.idx[:0]
	for _, c := range cols {
		pos := -1
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), c) {
				pos = i
				break
			}
		}
		if pos < 0 {
			return fmt.Errorf("%w: %s: %q", ErrMissingColumn, file, c)
		}
		l.idx = append(l.idx, pos)
	}

	l.file, l.line = file, 1
	fields := make([]string, len(cols))
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		l.line++
		if err := l.ctx.Err(); err != nil {
			return err
		}
		for i, pos := range l.idx {
			fields[i] = strings.TrimSpace(rec[pos])
		}
		if err := row(fields); err != nil {
			return fmt.Errorf("%s:%d: %w", file, l.line, err)
		}
	}
}

func (l *load) person(rec []string) error {
	return l.skipBadID(l.store.AddPerson(core.Person{ID: rec[0], Name: rec[1], Birth: rec[2]}))
}

func (l *load) movie(rec []string) error {
	return l.skipBadID(l.store.AddMovie(core.Movie{ID: rec[0], Title: rec[1], Year: rec[2]}))
}

func (l *load) star(rec []string) error {
	err := l.store.AddStar(rec[0], rec[1])
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrPersonNotFound),
		errors.Is(err, core.ErrMovieNotFound),
		errors.Is(err, core.ErrEmptyID):
		l.rep.SkippedStars++
		l.log.Debug("skipping star row", "file", l.file, "line", l.line, "error", err)
		return nil
	default:
		return err
	}
}

// skipBadID counts and drops rows rejected for their ID.
func (l *load) skipBadID(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, core.ErrEmptyID) || errors.Is(err, core.ErrDuplicateID) {
		l.rep.SkippedRows++
		l.log.Debug("skipping row", "file", l.file, "line", l.line, "error", err)
		return nil
	}

	return err
}
