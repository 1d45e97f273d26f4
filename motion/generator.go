package motion

import (
	"fmt"

	"github.com/pkg/errors"

	"go.viam.com/roverplan/geometry"
	"go.viam.com/roverplan/poseplan"
)

const (
	sep = "|"
	fin = "FIN"

	forwardDistTarget  = "T"
	forwardDistAway    = "W"
	backwardDistTarget = "t"
	backwardDistAway   = "w"

	unitDistCM = 10
	clearance  = 0.3
)

// CommandGenerator compiles a MotionPath into the line-oriented command strings
// the drive firmware consumes. Tuning fields mirror the hardware constants
// the original firmware was tuned against; changing them changes drive
// speed, not pipeline semantics.
type CommandGenerator struct {
	StraightSpeed, TurnSpeed  int
	OffsetCells, ObstacleSize int
	// CalibrationEnabled gates emission of the away/back calibration pair
	// before a centered ("_C") capture. Disabled by default, matching the
	// original firmware flag's default.
	CalibrationEnabled bool
}

// NewGenerator builds a CommandGenerator with the given drive speeds and clearance
// offsets, calibration disabled.
func NewGenerator(straightSpeed, turnSpeed, offsetCells, obstacleSize int) *CommandGenerator {
	return &CommandGenerator{
		StraightSpeed: straightSpeed,
		TurnSpeed:     turnSpeed,
		OffsetCells:   offsetCells,
		ObstacleSize:  obstacleSize,
	}
}

// generateCommand returns the fixed command sequence for one primitive,
// combining numMotions consecutive straight runs into a single distance.
// The four turn primitives are 3-point-turn sequences tuned for the
// hardware's steering limits and are not derived from any formula — they
// are reproduced here exactly as tuned.
func (g *CommandGenerator) generateCommand(m poseplan.Motion, numMotions int) ([]string, error) {
	dist := unitDistCM
	if numMotions > 1 {
		dist = numMotions * unitDistCM
	}

	switch m {
	case poseplan.Forward:
		return []string{fmt.Sprintf("%s%d%s0%s%d", forwardDistTarget, g.StraightSpeed, sep, sep, dist)}, nil

	case poseplan.Reverse:
		realign := "T25|30|0.1"
		var cmds []string
		for i := 0; i < dist/20; i++ {
			cmds = append(cmds, fmt.Sprintf("%s35%s0%s20", backwardDistTarget, sep, sep), realign)
		}
		remaining := dist % 20
		if remaining > 0 {
			cmds = append(cmds, fmt.Sprintf("%s35%s0%s%d", backwardDistTarget, sep, sep, remaining))
			if remaining >= 5 {
				cmds = append(cmds, realign)
			}
		}
		return cmds, nil

	case poseplan.ForwardLeftTurn:
		return []string{
			"T30|-50|46",
			"t25|0|23",
			"T30|-50|45.5",
			"T25|10|0.1",
			"t25|0|3",
		}, nil

	case poseplan.ForwardRightTurn:
		return []string{
			"T30|50|46",
			"t25|0|20",
			"T30|50|45.7",
			"t25|0|4",
		}, nil

	case poseplan.ReverseLeftTurn:
		return []string{
			"T25|0|3",
			"t30|-50|46",
			"T25|0|22",
			"t30|-50|46.5",
			"T25|10|0.1",
		}, nil

	case poseplan.ReverseRightTurn:
		return []string{
			"T25|0|6",
			"t30|48|45.4",
			"T25|0|14",
			"t30|48|45.5",
		}, nil

	default:
		return nil, errors.Errorf("motion: invalid motion %s for _generate_command", m)
	}
}

// generateAwayCommand returns the forward-away/backward-away calibration
// pair run before a centered capture, sized so the robot ends clearance
// away from the obstacle face.
func (g *CommandGenerator) generateAwayCommand(viewPose geometry.Pose, obstacle geometry.Obstacle) []string {
	dx, dy := abs(viewPose.X-obstacle.X), abs(viewPose.Y-obstacle.Y)
	chebyshev := dx
	if dy > chebyshev {
		chebyshev = dy
	}
	unitDistFromObstacle := float64(chebyshev-g.OffsetCells-g.ObstacleSize) + clearance
	distAway := int(unitDistFromObstacle * unitDistCM)

	return []string{
		fmt.Sprintf("%s%d%s0%s%d", forwardDistAway, g.StraightSpeed, sep, sep, distAway),
		fmt.Sprintf("%s%d%s0%s%d", backwardDistAway, g.StraightSpeed, sep, sep, distAway),
	}
}

// GenerateCommands compiles a full MotionPath into the ordered command list,
// coalescing consecutive combinable (straight-line) motions into a single
// command, expanding Captures into an optional calibration pair plus a SNAP
// line, and terminating with FIN. An empty MotionPath compiles to FIN alone.
func (g *CommandGenerator) GenerateCommands(mp MotionPath) ([]string, error) {
	if len(mp.Motions) == 0 {
		return []string{fin}, nil
	}

	var commands []string
	prevMotion := mp.Motions[0]
	numMotions := 1
	snapCount := 0

	flush := func(m poseplan.Motion, count int) error {
		cmds, err := g.generateCommand(m, count)
		if err != nil {
			return err
		}
		commands = append(commands, cmds...)
		return nil
	}

	emitCapture := func() {
		signal := mp.Signals[snapCount]
		if g.CalibrationEnabled && containsC(signal) {
			commands = append(commands, g.generateAwayCommand(mp.ViewPoses[snapCount], mp.Scanned[snapCount])...)
		}
		commands = append(commands, "SNAP"+signal)
		snapCount++
	}

	for _, motion := range mp.Motions[1:] {
		if motion == prevMotion && motion.IsCombinable() {
			numMotions++
			continue
		}

		if prevMotion == poseplan.Capture {
			emitCapture()
			prevMotion = motion
			continue
		}

		if err := flush(prevMotion, numMotions); err != nil {
			return nil, err
		}
		numMotions = 1
		prevMotion = motion
	}

	if prevMotion == poseplan.Capture {
		emitCapture()
	} else if err := flush(prevMotion, numMotions); err != nil {
		return nil, err
	}

	commands = append(commands, fin)
	return commands, nil
}

func containsC(s string) bool {
	for _, r := range s {
		if r == 'C' {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
