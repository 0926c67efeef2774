package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// point is a [row, column] pair on the wire.
type point = [2]int

// CreateResponse is returned when an episode is created.
type CreateResponse struct {
	ID        uuid.UUID `json:"id"`
	Algorithm string    `json:"algorithm"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Board     string    `json:"board"`
}

// StateResponse reports the search state after one or more steps.
type StateResponse struct {
	ID       uuid.UUID `json:"id"`
	Status   string    `json:"status"`
	Current  *point    `json:"current,omitempty"`
	Expanded int       `json:"expanded"`
	Open     []point   `json:"open"`
	Closed   []point   `json:"closed"`
	Board    string    `json:"board"`
}

// PathResponse carries a reconstructed path.
type PathResponse struct {
	ID     uuid.UUID `json:"id"`
	Coords []point   `json:"coords"`
	Edges  int       `json:"edges"`
	Cost   float64   `json:"cost"`
}

// toPoints converts grid coordinates to wire points.
func toPoints(cs []grid.Coord) []point {
	out := make([]point, len(cs))
	for k, c := range cs {
		out[k] = point{c.I, c.J}
	}
	return out
}

// newPathResponse builds the wire form of p.
func newPathResponse(id uuid.UUID, p search.Path) *PathResponse {
	return &PathResponse{ID: id, Coords: toPoints(p.Coords), Edges: p.Edges(), Cost: p.Cost}
}
