package visitorder

import (
	"github.com/pkg/errors"

	"go.viam.com/roverplan/geometry"
)

// captureRelativePosition classifies where an obstacle's image sits in the
// frame captured from the given pose: "C" centered ahead, "L" to the robot's
// left, "R" to the robot's right. Grounded directly on the original
// implementation's per-heading comparisons — the "ahead and centered" case
// differs per axis (y > robot.y when facing north, x > robot.x when facing
// east, and so on) and there is no shorter equivalent expression that keeps
// the same per-heading symmetry. from.Direction must be one of the four
// cardinal headings; any other value is an internal invariant violation and
// is reported rather than silently treated as one of the four.
func captureRelativePosition(from geometry.Pose, obstacle geometry.Obstacle) (string, error) {
	switch from.Direction {
	case geometry.North:
		switch {
		case obstacle.X == from.X && obstacle.Y > from.Y:
			return "C", nil
		case obstacle.X < from.X:
			return "L", nil
		default:
			return "R", nil
		}
	case geometry.South:
		switch {
		case obstacle.X == from.X && obstacle.Y < from.Y:
			return "C", nil
		case obstacle.X < from.X:
			return "R", nil
		default:
			return "L", nil
		}
	case geometry.East:
		switch {
		case obstacle.Y == from.Y && obstacle.X > from.X:
			return "C", nil
		case obstacle.Y < from.Y:
			return "R", nil
		default:
			return "L", nil
		}
	case geometry.West:
		switch {
		case obstacle.Y == from.Y && obstacle.X < from.X:
			return "C", nil
		case obstacle.Y < from.Y:
			return "L", nil
		default:
			return "R", nil
		}
	default:
		return "", errors.Errorf("visitorder: invalid direction %s for capture relative position", from.Direction)
	}
}
