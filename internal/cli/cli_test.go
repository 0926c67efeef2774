package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Kind{
		"asearch":              search.AStar,
		"astar":                search.AStar,
		"djikstra":             search.Dijkstra,
		"Dijkstra":             search.Dijkstra,
		"bfs":                  search.BFS,
		"dfs":                  search.DFS,
		"breadth first search": search.BFS,
		" Depth First Search ": search.DFS,
		"greedy":               search.Greedy,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("bogo")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Contains(t, err.Error(), "asearch")
}

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse(nil, &out, config.Default())
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, search.AStar, opts.Algorithm)
	require.False(t, opts.AlgorithmSet)
	require.Equal(t, 25, opts.Height)
	require.Equal(t, 40, opts.Width)
	require.Equal(t, ":8080", opts.Addr)
	require.Empty(t, opts.Scenario)
}

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-algorithm", "djikstra", "-step", "-maze", "-seed", "9", "-log-level", "DEBUG", "maze.hcl"}
	opts, exit, err := Parse(args, &out, config.Default())
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, search.Dijkstra, opts.Algorithm)
	require.True(t, opts.AlgorithmSet)
	require.True(t, opts.Step)
	require.True(t, opts.Maze)
	require.Equal(t, int64(9), opts.Seed)
	require.Equal(t, "debug", opts.LogLevel)
	require.Equal(t, "maze.hcl", opts.Scenario)

	opts, _, err = Parse([]string{"-scenario", "a.hcl", "b.hcl"}, &out, config.Default())
	require.NoError(t, err)
	require.Equal(t, "a.hcl", opts.Scenario, "-scenario wins over the positional argument")
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := Parse([]string{"-h"}, &out, config.Default())
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, opts)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":      {"-nope"},
		"UnknownAlgorithm": {"-algorithm", "bogo"},
		"BadFormat":        {"-log-format", "xml"},
		"BadLevel":         {"-log-level", "loud"},
		"BadSize":          {"-height", "0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(args, &out, config.Default())
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
