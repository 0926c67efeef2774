package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/scenario"
	"github.com/katalvlaran/gridpath/internal/server"
	"github.com/katalvlaran/gridpath/search"
)

// main is the entrypoint for the gridpath application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	opts, shouldExit, err := cli.Parse(args, outW, cfg)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := logging.New(opts.LogLevel, opts.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	if opts.Serve {
		return server.NewEpisodeServer(logger).Run(opts.Addr)
	}

	sc, kind, err := resolveScenario(opts)
	if err != nil {
		return err
	}
	g, err := sc.Build()
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	s, err := search.New(g, kind, search.WithLogger(logger))
	if err != nil {
		return err
	}

	st := search.Continue
	if opts.Step {
		for !st.Done() {
			st = s.Step()
			if err := render.Write(outW, g); err != nil {
				return err
			}
			fmt.Fprintln(outW)
		}
	} else {
		st = s.Run()
	}

	var p search.Path
	if w, ok := s.Witness(); ok {
		p = search.Reconstruct(w)
	}
	if err := render.Write(outW, g); err != nil {
		return err
	}
	fmt.Fprintln(outW, render.Summary(kind, st, s.Expanded(), p))
	logger.Info("search finished", "algorithm", kind.String(), "status", st.String(), "expanded", s.Expanded())

	return nil
}

// resolveScenario loads the scenario file, or describes a blank grid
// searched corner to corner, and picks the algorithm. An explicit
// -algorithm flag wins over the scenario's own algorithm.
func resolveScenario(opts *cli.Options) (*scenario.Scenario, search.Kind, error) {
	kind := opts.Algorithm

	if opts.Scenario == "" {
		h, w := opts.Height, opts.Width
		sc := &scenario.Scenario{Height: h, Width: w, Start: []int{0, 0}, End: []int{h - 1, w - 1}}
		if opts.Maze {
			// Keep the end on a maze room so it is reachable.
			sc.End = []int{(h - 1) / 2 * 2, (w - 1) / 2 * 2}
			sc.Maze = &scenario.Maze{Seed: opts.Seed}
		}
		return sc, kind, nil
	}

	sc, err := scenario.Load(opts.Scenario)
	if err != nil {
		return nil, kind, err
	}
	if opts.Maze && sc.Maze == nil {
		sc.Maze = &scenario.Maze{Seed: opts.Seed}
	}
	if sc.Algorithm != "" && !opts.AlgorithmSet {
		if kind, err = cli.ParseAlgorithm(sc.Algorithm); err != nil {
			return nil, kind, err
		}
	}
	return sc, kind, nil
}
