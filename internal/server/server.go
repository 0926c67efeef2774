// Package server exposes search episodes over HTTP so that a remote
// front-end can drive Step and redraw between calls.
//
//	POST   /episodes            create from a scenario JSON body
//	GET    /episodes/:id        current state
//	POST   /episodes/:id/step   expand ?n cells (default 1)
//	POST   /episodes/:id/run    run to a terminal status
//	GET    /episodes/:id/path   reconstructed path, 404 until found
//	DELETE /episodes/:id        discard the episode
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/scenario"
	"github.com/katalvlaran/gridpath/search"
)

const (
	// maxCells bounds the grids a client may allocate.
	maxCells = 1 << 20
	// maxBodyBytes bounds a creation request; a full-size board of rows
	// fits with room to spare.
	maxBodyBytes = 4 << 20

	defaultAlgorithm = "astar"
)

var (
	errNotFound = errors.New("episode not found")
	errNoPath   = errors.New("no path: episode has not found the end")
	errTooLarge = errors.New("grid too large")
	errBadSteps = errors.New("n must be a positive integer")
)

// episode is one searcher plus the lock serialising its requests.
type episode struct {
	mu sync.Mutex
	s  *search.Searcher
}

// EpisodeServer handles HTTP requests that drive search episodes.
type EpisodeServer struct {
	logger *slog.Logger

	mu       sync.RWMutex
	episodes map[uuid.UUID]*episode
}

// NewEpisodeServer creates an EpisodeServer logging to logger.
func NewEpisodeServer(logger *slog.Logger) *EpisodeServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &EpisodeServer{
		logger:   logger,
		episodes: make(map[uuid.UUID]*episode),
	}
}

// Register registers the episode routes on route.
func (c *EpisodeServer) Register(route *gin.RouterGroup) {
	episodes := route.Group("/episodes")
	{
		episodes.POST("", c.create)
		episodes.GET("/:id", c.state)
		episodes.POST("/:id/step", c.step)
		episodes.POST("/:id/run", c.run)
		episodes.GET("/:id/path", c.path)
		episodes.DELETE("/:id", c.remove)
	}
}

// Handler returns a gin engine serving the episode routes.
func (c *EpisodeServer) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), c.requestLogger())
	c.Register(&router.RouterGroup)
	return router
}

// Run serves the episode routes on addr until the listener fails.
func (c *EpisodeServer) Run(addr string) error {
	c.logger.Info("step server listening", "addr", addr)
	return c.Handler().Run(addr)
}

// Len returns the number of live episodes.
func (c *EpisodeServer) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.episodes)
}

// requestLogger logs each request at Info through slog.
func (c *EpisodeServer) requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()
		c.logger.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"elapsed", time.Since(began))
	}
}

// create handles episode creation from a scenario body.
func (c *EpisodeServer) create(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)
	var request scenario.Scenario
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cells(&request) > maxCells {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errTooLarge.Error()})
		return
	}

	name := request.Algorithm
	if name == "" {
		name = defaultAlgorithm
	}
	kind, err := cli.ParseAlgorithm(name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := request.Build()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New()
	s, err := search.New(g, kind, search.WithLogger(c.logger.With("episode", id.String())))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	c.episodes[id] = &episode{s: s}
	c.mu.Unlock()
	c.logger.Info("episode created", "episode", id.String(), "algorithm", kind.String(),
		"height", g.Height(), "width", g.Width())

	ctx.JSON(http.StatusCreated, &CreateResponse{
		ID:        id,
		Algorithm: kind.String(),
		Height:    g.Height(),
		Width:     g.Width(),
		Board:     render.String(g),
	})
}

// cells returns the larger of the declared area and the area spanned by
// rows, whose width is that of the longest row.
func cells(sc *scenario.Scenario) int64 {
	width := 0
	for _, row := range sc.Rows {
		width = max(width, len(row))
	}
	return max(int64(sc.Height)*int64(sc.Width), int64(len(sc.Rows))*int64(width))
}

// state reports the episode without advancing it.
func (c *EpisodeServer) state(ctx *gin.Context) {
	id, ep, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ep.mu.Lock()
	defer ep.mu.Unlock()
	ctx.JSON(http.StatusOK, snapshot(id, ep.s))
}

// step expands up to n cells, stopping early at a terminal status.
func (c *EpisodeServer) step(ctx *gin.Context) {
	n := 1
	if raw := ctx.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": errBadSteps.Error()})
			return
		}
		n = v
	}

	id, ep, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ep.mu.Lock()
	defer ep.mu.Unlock()
	for k := 0; k < n && !ep.s.Step().Done(); k++ {
	}
	ctx.JSON(http.StatusOK, snapshot(id, ep.s))
}

// run steps the episode to completion.
func (c *EpisodeServer) run(ctx *gin.Context) {
	id, ep, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ep.mu.Lock()
	defer ep.mu.Unlock()
	st := ep.s.Run()
	c.logger.Info("episode finished", "episode", id.String(), "status", st.String(), "expanded", ep.s.Expanded())
	ctx.JSON(http.StatusOK, snapshot(id, ep.s))
}

// path returns the reconstructed path once the end has been found.
func (c *EpisodeServer) path(ctx *gin.Context) {
	id, ep, ok := c.lookup(ctx)
	if !ok {
		return
	}
	ep.mu.Lock()
	defer ep.mu.Unlock()
	w, found := ep.s.Witness()
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": errNoPath.Error(), "status": ep.s.Status().String()})
		return
	}
	ctx.JSON(http.StatusOK, newPathResponse(id, search.Reconstruct(w)))
}

// remove discards an episode.
func (c *EpisodeServer) remove(ctx *gin.Context) {
	id, _, ok := c.lookup(ctx)
	if !ok {
		return
	}
	c.mu.Lock()
	delete(c.episodes, id)
	c.mu.Unlock()
	ctx.Status(http.StatusNoContent)
}

// lookup resolves the :id parameter, writing the error response itself.
func (c *EpisodeServer) lookup(ctx *gin.Context) (uuid.UUID, *episode, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return id, nil, false
	}
	c.mu.RLock()
	ep, ok := c.episodes[id]
	c.mu.RUnlock()
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": errNotFound.Error()})
		return id, nil, false
	}
	return id, ep, true
}

// snapshot captures the searcher state for the wire.
func snapshot(id uuid.UUID, s *search.Searcher) *StateResponse {
	g := s.Grid()
	resp := &StateResponse{
		ID:       id,
		Status:   s.Status().String(),
		Expanded: s.Expanded(),
		Open:     toPoints(g.Open()),
		Closed:   toPoints(g.Closed()),
		Board:    render.String(g),
	}
	if cur, ok := s.Current(); ok {
		resp.Current = &point{cur.I, cur.J}
	}
	return resp
}
