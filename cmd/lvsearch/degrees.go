package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/metrics"
)

// errPersonNotFound is returned when a name or ID does not resolve.
var errPersonNotFound = errors.New("person not found")

type degreesFlags struct {
	dataDir  string
	sourceID string
	targetID string
	maxDepth int
}

func newDegreesCmd(a *app) *cobra.Command {
	var f degreesFlags

	cmd := &cobra.Command{
		Use:   "degrees [SOURCE_NAME [TARGET_NAME]]",
		Short: "Print the shortest chain of co-stars between two people",
		Long: `Loads people.csv, movies.csv and stars.csv from the data directory and
prints the fewest movies linking two people.

Names missing from the command line are read from standard input. When a
name matches several people, their IDs are listed and one is read back.

Examples:
  lvsearch degrees --data small "Kevin Bacon" "Tom Hanks"
  lvsearch degrees --source-id 102 --target-id 158`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDegrees(cmd, args, f)
		},
	}
	cmd.Flags().StringVar(&f.dataDir, "data", "", "directory holding the CSV tables (default from config)")
	cmd.Flags().StringVar(&f.sourceID, "source-id", "", "source person ID, skips name lookup")
	cmd.Flags().StringVar(&f.targetID, "target-id", "", "target person ID, skips name lookup")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "ignore connections longer than this (0 = no limit)")

	return cmd
}

func (a *app) runDegrees(cmd *cobra.Command, args []string, f degreesFlags) error {
	const op = "main.runDegrees"

	dir := a.cfg.DataDir
	if f.dataDir != "" {
		dir = f.dataDir
	}
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Loading data...")
	store, _, err := loader.LoadDir(cmd.Context(), dir, loader.WithLogger(a.log))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Data loaded.")

	var sourceName, targetName string
	if len(args) > 0 {
		sourceName = args[0]
	}
	if len(args) > 1 {
		targetName = args[1]
	}
	source, err := resolvePerson(store, f.sourceID, sourceName, in, out)
	if err != nil {
		return err
	}
	target, err := resolvePerson(store, f.targetID, targetName, in, out)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := bfs.ShortestPath(store, source, target,
		bfs.WithContext(cmd.Context()),
		bfs.WithMaxDepth(f.maxDepth),
	)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObservePath(false, 0, elapsed, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.ObservePath(res.Found, res.Expanded, elapsed, nil)
	a.log.Debug("search finished",
		"source", source, "target", target,
		"found", res.Found, "degrees", res.Degrees(),
		"expanded", res.Expanded, "enqueued", res.Enqueued,
		"elapsed", elapsed)

	if !res.Found {
		fmt.Fprintln(out, "Not connected.")
		return nil
	}
	if err := res.Path.Validate(store, source); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return printPath(out, store, source, res.Path)
}

// printPath writes the "N degrees of separation." report.
func printPath(w io.Writer, store *core.Store, source string, path bfs.Path) error {
	fmt.Fprintf(w, "%d degrees of separation.\n", len(path))
	prev := source
	for i, h := range path {
		a, err := store.Person(prev)
		if err != nil {
			return err
		}
		b, err := store.Person(h.PersonID)
		if err != nil {
			return err
		}
		m, err := store.Movie(h.MovieID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d: %s and %s starred in %s\n", i+1, a.Name, b.Name, m.Title)
		prev = h.PersonID
	}

	return nil
}

// resolvePerson turns an explicit ID, a name, or a name read from in into
// a person ID, asking which one is meant when a name is ambiguous.
func resolvePerson(store *core.Store, id, name string, in *bufio.Reader, out io.Writer) (string, error) {
	if id != "" {
		if !store.HasPerson(id) {
			return "", fmt.Errorf("%w: id %q", errPersonNotFound, id)
		}
		return id, nil
	}

	if name == "" {
		var err error
		if name, err = prompt(in, out, "Name: "); err != nil {
			return "", err
		}
	}

	ids := store.PersonIDsByName(name)
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", errPersonNotFound, name)
	case 1:
		return ids[0], nil
	}

	fmt.Fprintf(out, "Which '%s'?\n", name)
	for _, pid := range ids {
		p, err := store.Person(pid)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "ID: %s, Name: %s, Birth: %s\n", pid, p.Name, p.Birth)
	}
	chosen, err := prompt(in, out, "Intended Person ID: ")
	if err != nil {
		return "", err
	}
	if !slices.Contains(ids, chosen) {
		return "", fmt.Errorf("%w: %q is not one of %v", errPersonNotFound, chosen, ids)
	}

	return chosen, nil
}

// prompt writes label and reads one trimmed line. A final line without a
// newline is accepted; an empty stream is io.ErrUnexpectedEOF.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}
