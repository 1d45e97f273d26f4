package roverplan

import "github.com/pkg/errors"

// ErrInvalidObstacle is returned by Solver.AddObstacle when the requested
// position is outside the arena grid.
var ErrInvalidObstacle = errors.New("roverplan: obstacle position is outside the arena grid")
