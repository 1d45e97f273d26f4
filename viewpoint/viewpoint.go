// Package viewpoint enumerates candidate camera poses for photographing
// each obstacle's face.
package viewpoint

import (
	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
)

// Config carries the cost weights and geometric offsets used to build
// candidate viewpoints.
type Config struct {
	MinClearance, ObstacleSize, OffsetCells int
	ScreenshotCost, DistanceCost            int
}

// Option pairs a candidate viewing pose with the id of the obstacle it
// views — a bare geometry.Pose carries no obstacle reference until the pose
// is actually captured and its Screenshot tag is attached.
type Option struct {
	Pose       geometry.Pose
	ObstacleID int
}

// Generate returns the reachable candidate viewing poses for a single
// non-Skip obstacle: offset-left, offset-right, far-ideal, and near-ideal,
// all facing opposite the obstacle's face. Unreachable or out-of-interior
// candidates are filtered out.
func Generate(a *arena.Arena, o geometry.Obstacle, cfg Config) []Option {
	if o.Face == geometry.Skip {
		return nil
	}

	axis := cfg.MinClearance + cfg.ObstacleSize + cfg.OffsetCells
	var opts []Option

	addIfValid := func(x, y int, facing geometry.Direction, cost float64) {
		if !a.IsValidCoord(x, y) || !a.Reachable(x, y) {
			return
		}
		p := geometry.NewPose(x, y, facing)
		p.Penalty = cost
		opts = append(opts, Option{Pose: p, ObstacleID: o.ID})
	}

	bothSidesCost := float64(cfg.ScreenshotCost + cfg.DistanceCost)
	nearCost := float64(cfg.DistanceCost)

	switch o.Face {
	case geometry.North:
		// Robot must face south to see a north-facing symbol.
		addIfValid(o.X-1, o.Y+axis, geometry.South, bothSidesCost)
		addIfValid(o.X+1, o.Y+axis, geometry.South, bothSidesCost)
		addIfValid(o.X, o.Y+axis+1, geometry.South, 0)
		addIfValid(o.X, o.Y+axis, geometry.South, nearCost)
	case geometry.South:
		addIfValid(o.X+1, o.Y-axis, geometry.North, bothSidesCost)
		addIfValid(o.X-1, o.Y-axis, geometry.North, bothSidesCost)
		addIfValid(o.X, o.Y-axis-1, geometry.North, 0)
		addIfValid(o.X, o.Y-axis, geometry.North, nearCost)
	case geometry.East:
		addIfValid(o.X+axis, o.Y+1, geometry.West, bothSidesCost)
		addIfValid(o.X+axis, o.Y-1, geometry.West, bothSidesCost)
		addIfValid(o.X+axis+1, o.Y, geometry.West, 0)
		addIfValid(o.X+axis, o.Y, geometry.West, nearCost)
	case geometry.West:
		addIfValid(o.X-axis, o.Y+1, geometry.East, bothSidesCost)
		addIfValid(o.X-axis, o.Y-1, geometry.East, bothSidesCost)
		addIfValid(o.X-axis-1, o.Y, geometry.East, 0)
		addIfValid(o.X-axis, o.Y, geometry.East, nearCost)
	}

	return opts
}

// GenerateAll returns one entry per visitable (non-Skip) obstacle in arena
// order, each holding that obstacle's reachable viewing options.
func GenerateAll(a *arena.Arena, cfg Config) [][]Option {
	var all [][]Option
	for _, o := range a.Obstacles() {
		if o.Face == geometry.Skip {
			continue
		}
		all = append(all, Generate(a, o, cfg))
	}
	return all
}
