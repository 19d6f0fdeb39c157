package core

import "errors"

var (
	// ErrInvalidParameter is returned before any geometry work when a
	// size, distance or count is out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateInput is returned by the triangulator for fewer than 3
	// points, all-collinear points or duplicate points.
	ErrDegenerateInput = errors.New("degenerate input")
)
