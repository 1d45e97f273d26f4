// Package roverplan plans a rover's route to photograph a set of obstacle
// faces and compiles that route into drive commands. It orchestrates, in
// dependency order, the arena/reachability layer (arena), the candidate
// viewpoint generator (viewpoint), the pose-graph A* search (poseplan), the
// visit-order/TSP solver (visitorder), and the command compiler (motion).
package roverplan

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/google/uuid"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
	"go.viam.com/roverplan/motion"
	"go.viam.com/roverplan/poseplan"
	"go.viam.com/roverplan/viewpoint"
	"go.viam.com/roverplan/visitorder"
)

// Solver owns the arena for one planning session: add obstacles, then call
// Solve as many times as needed (each Solve runs its own fresh pose-graph
// search, since a Planner carries no state safe to reuse across solves).
type Solver struct {
	cfg    Config
	arena  *arena.Arena
	logger golog.Logger
}

// New constructs a Solver with an empty arena sized per cfg.
func New(cfg Config, logger golog.Logger) *Solver {
	if logger == nil {
		logger = golog.NewDevelopmentLogger("roverplan")
	}
	return &Solver{
		cfg: cfg,
		arena: arena.New(
			cfg.ArenaWidth, cfg.ArenaHeight,
			cfg.Padding, cfg.TurnPadding, cfg.MidTurnPadding,
		),
		logger: logger,
	}
}

// AddObstacle registers an obstacle face to photograph. face may be
// geometry.Skip to mark a position occupied but not worth viewing. Unlike a
// robot pose, an obstacle may sit on the outer ring of the grid (e.g. a wall
// obstacle facing inward); only out-of-grid coordinates are rejected.
func (s *Solver) AddObstacle(x, y int, face geometry.Direction, id int) error {
	if !s.arena.InGrid(x, y) {
		return ErrInvalidObstacle
	}
	s.arena.AddObstacle(geometry.Obstacle{X: x, Y: y, Face: face, ID: id})
	return nil
}

// ClearObstacles removes every registered obstacle, letting the Solver be
// reused for a new session without rebuilding the arena.
func (s *Solver) ClearObstacles() {
	s.arena.ClearObstacles()
}

// Plan is the full output of a solve: the stitched pose path, its total
// cost, and the compiled drive commands that realize it.
type Plan struct {
	Path     []geometry.Pose
	Cost     float64
	Commands []string
}

// Solve runs the full pipeline from the given start pose: generate
// viewpoints, search the visit-order/TSP solver for the cheapest feasible
// visit order, then compile the resulting motion sequence into drive
// commands.
func (s *Solver) Solve(ctx context.Context, start geometry.Pose) (Plan, error) {
	solveID := uuid.New().String()
	logger := s.logger
	logger.Debugw("starting solve", "solveID", solveID, "start", start.String())

	pl := poseplan.New(s.arena, poseplan.Config{
		TurnFactor:            s.cfg.TurnFactor,
		ReverseFactor:         s.cfg.ReverseFactor,
		SafeCost:              s.cfg.SafeCost,
		TurnDisplacementLong:  s.cfg.TurnDisplacementLong,
		TurnDisplacementShort: s.cfg.TurnDisplacementShort,
	}, logger)

	viewCfg := viewpoint.Config{
		MinClearance:   s.cfg.MinClearance,
		ObstacleSize:   s.cfg.ObstacleSize,
		OffsetCells:    s.cfg.OffsetCells,
		ScreenshotCost: s.cfg.ScreenshotCost,
		DistanceCost:   s.cfg.DistanceCost,
	}

	result, err := visitorder.Solve(ctx, pl, s.arena, start, viewCfg, visitorder.Config{
		Iterations: s.cfg.Iterations,
	}, logger)
	if err != nil {
		return Plan{}, err
	}

	logger.Infow("visit order solved", "cost", result.Cost, "waypoints", len(result.Path), "expansions", pl.Expansions())

	mp, err := motion.BuildMotionPath(pl, s.arena, result.Path)
	if err != nil {
		return Plan{}, err
	}

	gen := motion.NewGenerator(s.cfg.StraightSpeed, s.cfg.TurnSpeed, s.cfg.OffsetCells, s.cfg.ObstacleSize)
	gen.CalibrationEnabled = s.cfg.CalibrationEnabled

	commands, err := gen.GenerateCommands(mp)
	if err != nil {
		return Plan{}, err
	}

	return Plan{Path: result.Path, Cost: result.Cost, Commands: commands}, nil
}
