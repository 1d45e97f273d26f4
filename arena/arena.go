// Package arena models the fixed-size grid and its obstacles, answering
// reachability and turn-clearance queries for the pose-graph search.
package arena

import (
	"sort"

	"github.com/golang/geo/r3"

	"go.viam.com/roverplan/geometry"
)

// Arena holds grid bounds and a sorted list of obstacles. It is constructed
// fresh per solve and discarded afterward; it carries no process-wide state.
type Arena struct {
	width, height int
	padding       int
	turnPadding   int
	midTurnPad    int

	obstacles []geometry.Obstacle
}

// New constructs an empty Arena with the given bounds and clearance radii.
func New(width, height, padding, turnPadding, midTurnPadding int) *Arena {
	return &Arena{
		width:       width,
		height:      height,
		padding:     padding,
		turnPadding: turnPadding,
		midTurnPad:  midTurnPadding,
	}
}

// AddObstacle inserts an obstacle, rejecting it if one already occupies the
// same (x, y, face). The obstacle list is kept sorted by (x, y) after every
// insertion so that obstacle input order never affects the computed path.
func (a *Arena) AddObstacle(o geometry.Obstacle) bool {
	for _, existing := range a.obstacles {
		if existing.Equal(o) {
			return false
		}
	}
	a.obstacles = append(a.obstacles, o)
	sort.Slice(a.obstacles, func(i, j int) bool {
		if a.obstacles[i].X != a.obstacles[j].X {
			return a.obstacles[i].X < a.obstacles[j].X
		}
		return a.obstacles[i].Y < a.obstacles[j].Y
	})
	return true
}

// ClearObstacles removes every obstacle, letting a caller reuse one Arena
// for successive solves without reconstructing it.
func (a *Arena) ClearObstacles() {
	a.obstacles = nil
}

// Obstacles returns a defensive copy of the current obstacle list, sorted by
// (x, y). Callers must not assume the returned slice is shared or mutable.
func (a *Arena) Obstacles() []geometry.Obstacle {
	out := make([]geometry.Obstacle, len(a.obstacles))
	copy(out, a.obstacles)
	return out
}

// FindObstacleByID returns the obstacle with the given id, if present.
func (a *Arena) FindObstacleByID(id int) (geometry.Obstacle, bool) {
	for _, o := range a.obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return geometry.Obstacle{}, false
}

// IsValidCoord reports whether (x, y) lies in the strict interior of the
// grid — the outer ring is never reachable.
func (a *Arena) IsValidCoord(x, y int) bool {
	return x > 0 && x < a.width-1 && y > 0 && y < a.height-1
}

// InGrid reports whether (x, y) lies within the full grid, including the
// outer ring. Obstacles may sit on a wall cell even though no reachable
// pose ever does; this is the bounds check for obstacle placement, not
// pose validity.
func (a *Arena) InGrid(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

// Reachable reports whether (x, y) is interior and, for every obstacle, its
// Manhattan distance exceeds Padding and its Chebyshev distance is at least
// Padding.
func (a *Arena) Reachable(x, y int) bool {
	if !a.IsValidCoord(x, y) {
		return false
	}
	for _, o := range a.obstacles {
		dx := abs(o.X - x)
		dy := abs(o.Y - y)
		if dx+dy <= a.padding {
			return false
		}
		if max(dx, dy) < a.padding {
			return false
		}
	}
	return true
}

// SafeCost returns safeCostValue if any obstacle lies within Padding of
// (x, y) on both axes, else 0 — the proximity shaping term added to an
// edge that lands at (x, y).
func (a *Arena) SafeCost(x, y, safeCostValue int) int {
	for _, o := range a.obstacles {
		if abs(o.X-x) <= a.padding && abs(o.Y-y) <= a.padding {
			return safeCostValue
		}
	}
	return 0
}

// TurnReachable reports whether a 3-point turn arc from (x, y) facing d to
// (nx, ny) can be swept without any obstacle entering TurnPadding of either
// endpoint or MidTurnPadding of the three sampled arc-interior points.
func (a *Arena) TurnReachable(x, y, nx, ny int, d geometry.Direction) bool {
	if !a.IsValidCoord(x, y) || !a.IsValidCoord(nx, ny) {
		return false
	}

	points := turnCheckingPoints(x, y, nx, ny, d)
	start := r3.Vector{X: float64(x), Y: float64(y)}
	end := r3.Vector{X: float64(nx), Y: float64(ny)}

	for _, o := range a.obstacles {
		center := r3.Vector{X: float64(o.X), Y: float64(o.Y)}
		if center.Sub(start).Norm() < float64(a.turnPadding) {
			return false
		}
		if center.Sub(end).Norm() < float64(a.turnPadding) {
			return false
		}
		for _, p := range points {
			if center.Sub(p).Norm() < float64(a.midTurnPad) {
				return false
			}
		}
	}
	return true
}

// turnCheckingPoints returns the three sampled interior points of a turn arc
// from (x, y) to (nx, ny), built from the midpoint M and the right-angle
// vertex R of the enclosing L-shape — R = (x, ny) when turning to/from a
// north/south heading, R = (nx, y) for east/west.
func turnCheckingPoints(x, y, nx, ny int, d geometry.Direction) [3]r3.Vector {
	fx, fy, fnx, fny := float64(x), float64(y), float64(nx), float64(ny)
	midX, midY := (fx+fnx)/2, (fy+fny)/2

	switch d {
	case geometry.North, geometry.South:
		trX, trY := fx, fny
		p1 := r3.Vector{X: (fx + midX) / 2, Y: midY}
		p2 := r3.Vector{X: (trX + midX) / 2, Y: (trY + midY) / 2}
		p3 := r3.Vector{X: midX, Y: (fny + midY) / 2}
		return [3]r3.Vector{p1, p2, p3}
	default: // East, West
		trX, trY := fnx, fy
		p1 := r3.Vector{X: midX, Y: (fy + midY) / 2}
		p2 := r3.Vector{X: (trX + midX) / 2, Y: (trY + midY) / 2}
		p3 := r3.Vector{X: (fnx + midX) / 2, Y: midY}
		return [3]r3.Vector{p1, p2, p3}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
