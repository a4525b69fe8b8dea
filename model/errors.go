package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is created with a non-positive size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfRange is returned when a cell coordinate lies outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrPatternOutOfBounds is returned when a seed pattern does not fit the grid
	ErrPatternOutOfBounds = errors.New("pattern exceeds grid bounds")
	// ErrQuit is returned by a renderer when the user asks to stop the simulation
	ErrQuit = errors.New("quit requested")
)
