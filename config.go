package roverplan

// Config collects the tunable constants that shape every stage of a solve.
// Zero value is not meaningful; use DefaultConfig and override fields as
// needed, mirroring the Options-struct convention used for the visit-order
// TSP solver.
type Config struct {
	ArenaWidth, ArenaHeight int

	// OffsetCells is the robot's half-extent from its center, in grid cells.
	OffsetCells int
	// ExpandedCell is the clearance multiplier of the original constants
	// table. No stage of the solve reads it; the padding radii are used as
	// given.
	ExpandedCell int
	// ObstacleSize is the number of cells an obstacle occupies.
	ObstacleSize int

	// Padding, TurnPadding, MidTurnPadding are clearance radii used by the
	// arena's reachability and turn-clearance checks.
	Padding, TurnPadding, MidTurnPadding int

	// MinClearance is the minimum front-of-robot gap required to view an
	// obstacle's face.
	MinClearance int

	// TurnFactor multiplies the per-90-degree-rotation edge cost.
	TurnFactor int
	// ReverseFactor multiplies the reverse-primitive edge cost. Defaults to
	// 0 per the original configuration; do not change this default, see
	// DESIGN.md.
	ReverseFactor int

	// SafeCost is added to an edge when its destination lands within
	// Padding of an obstacle on both axes.
	SafeCost int
	// ScreenshotCost penalizes off-center viewing poses.
	ScreenshotCost int
	// DistanceCost penalizes non-ideal viewing distances.
	DistanceCost int

	// Iterations bounds the combinatorial expansion budget of the
	// visit-order solver.
	Iterations int

	// TurnDisplacementLong, TurnDisplacementShort are the long/short axis
	// deltas of a 3-point turn arc.
	TurnDisplacementLong, TurnDisplacementShort int

	// StraightSpeed, TurnSpeed are the default motor-command speeds (0-100).
	StraightSpeed, TurnSpeed int

	// CalibrationEnabled gates the W/w calibration command pair emitted
	// before a center-aligned capture. Corresponds to the original's
	// W_COMMAND_FLAG, disabled by default.
	CalibrationEnabled bool
}

// DefaultConfig returns the constants the system was originally tuned with.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:            20,
		ArenaHeight:           20,
		OffsetCells:           1,
		ExpandedCell:          1,
		ObstacleSize:          1,
		Padding:               2,
		TurnPadding:           2,
		MidTurnPadding:        2,
		MinClearance:          1,
		TurnFactor:            5,
		ReverseFactor:         0,
		SafeCost:              1000,
		ScreenshotCost:        100,
		DistanceCost:          1000,
		Iterations:            5000,
		TurnDisplacementLong:  2,
		TurnDisplacementShort: 1,
		StraightSpeed:         50,
		TurnSpeed:             30,
		CalibrationEnabled:    false,
	}
}
