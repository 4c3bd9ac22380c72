package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/minimax"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// persistent flags
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string
	parallel    bool

	cfg    *config.Config
	log    *slog.Logger
	runID  string
	server *http.Server
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree, which keeps tests isolated.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Degrees of separation and perfect tic-tac-toe",
		Long: `lvsearch bundles two exhaustive searches:

  degrees    breadth-first shortest path between two actors
  tictactoe  play against a minimax opponent that never loses
  bestmove   print the optimal move for a position`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	pf.BoolVar(&a.parallel, "parallel", false, "evaluate root moves of the game search concurrently")

	root.AddCommand(
		newDegreesCmd(a),
		newTicTacToeCmd(a),
		newBestMoveCmd(a),
	)

	return root
}

// setup resolves configuration, applies explicit flags, builds the logger
// and starts the metrics endpoint when asked.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = a.metricsAddr
	}
	if flags.Changed("parallel") {
		cfg.Solver.Parallel = a.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.New().String()
	a.log = newLogger(cfg.Log, cmd.ErrOrStderr()).With("run_id", a.runID, "command", cmd.Name())

	if cfg.MetricsAddr != "" {
		return a.serveMetrics(cfg.MetricsAddr)
	}

	return nil
}

func (a *app) serveMetrics(addr string) error {
	const op = "main.serveMetrics"

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", "op", op, "error", err)
		}
	}()
	a.log.Info("serving metrics", "addr", ln.Addr().String())

	return nil
}

func (a *app) teardown() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.server.Shutdown(ctx)
}

// solver builds a game solver from the resolved configuration.
func (a *app) solver() (*minimax.Solver, error) {
	var opts []minimax.Option
	if a.cfg.Solver.Parallel {
		opts = append(opts, minimax.WithParallel())
	}

	return minimax.NewSolver(a.cfg.Solver.CacheSize, opts...)
}
