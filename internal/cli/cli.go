// Package cli parses the gridpath command line on top of the environment
// configuration and maps algorithm names to search kinds.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/search"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unmapped names.
var ErrUnknownAlgorithm = errors.New("cli: unknown algorithm")

// algorithms maps every accepted spelling, including the historical
// "asearch" and "djikstra", to a search kind.
var algorithms = map[string]search.Kind{
	"asearch":              search.AStar,
	"astar":                search.AStar,
	"a*":                   search.AStar,
	"djikstra":             search.Dijkstra,
	"dijkstra":             search.Dijkstra,
	"greedy":               search.Greedy,
	"bfs":                  search.BFS,
	"breadth first search": search.BFS,
	"dfs":                  search.DFS,
	"depth first search":   search.DFS,
}

// ParseAlgorithm maps a user-supplied algorithm name to a search.Kind.
// Matching ignores case and surrounding space.
func ParseAlgorithm(name string) (search.Kind, error) {
	k, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (choose from %s)", ErrUnknownAlgorithm, name, strings.Join(AlgorithmNames(), ", "))
	}
	return k, nil
}

// AlgorithmNames returns every accepted algorithm name, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for n := range algorithms {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the resolved invocation.
type Options struct {
	Algorithm    search.Kind
	AlgorithmSet bool   // -algorithm was given explicitly
	Scenario     string // path to an HCL scenario; empty for a blank grid
	Step         bool   // print the grid after every expansion
	Maze         bool   // overlay a generated maze
	Seed         int64  // maze seed
	Height       int
	Width        int
	LogLevel     string
	LogFormat    string
	Serve        bool // run the HTTP step server instead of a one-shot search
	Addr         string
}

// Parse processes command-line arguments over the defaults in cfg.
// It returns the resolved Options, a boolean indicating if the program
// should exit cleanly (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer, cfg config.Config) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - grid path-finding with A*, Dijkstra, Greedy, BFS and DFS.

Usage:
  gridpath [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to an .hcl scenario file. Without one, a blank grid is searched
    corner to corner.

Options:
`)
		flagSet.PrintDefaults()
	}

	algorithmFlag := flagSet.String("algorithm", cfg.Algorithm, "Search algorithm: "+strings.Join(AlgorithmNames(), ", ")+".")
	scenarioFlag := flagSet.String("scenario", "", "Path to an .hcl scenario file.")
	stepFlag := flagSet.Bool("step", false, "Print the grid after every expansion.")
	mazeFlag := flagSet.Bool("maze", false, "Overlay a generated maze on the grid.")
	seedFlag := flagSet.Int64("seed", 1, "Seed for the maze generator.")
	heightFlag := flagSet.Int("height", cfg.Height, "Grid rows when no scenario is given.")
	widthFlag := flagSet.Int("width", cfg.Width, "Grid columns when no scenario is given.")
	logLevelFlag := flagSet.String("log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	serveFlag := flagSet.Bool("serve", false, "Run the HTTP step server.")
	addrFlag := flagSet.String("addr", cfg.Addr, "Listen address for -serve.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	kind, err := ParseAlgorithm(*algorithmFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *scenarioFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if *heightFlag <= 0 || *widthFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid grid size: height and width must be positive"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if !logging.ValidFormat(logFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := logging.ParseLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	opts := &Options{
		Algorithm: kind,
		Scenario:  path,
		Step:      *stepFlag,
		Maze:      *mazeFlag,
		Seed:      *seedFlag,
		Height:    *heightFlag,
		Width:     *widthFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Serve:     *serveFlag,
		Addr:      *addrFlag,
	}
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "algorithm" {
			opts.AlgorithmSet = true
		}
	})
	slog.Debug("CLI parser finished successfully.", "algorithm", kind.String(), "scenario", path)
	return opts, false, nil
}
