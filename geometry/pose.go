package geometry

import "fmt"

// Pose is a robot position and cardinal heading on the arena grid, the Go
// analogue of the original CellState. Poses compare by (X, Y, Direction)
// only; Screenshot and Penalty are attributes carried alongside identity,
// not part of it.
type Pose struct {
	X, Y      int
	Direction Direction

	// Screenshot is set when this pose is a terminal viewing pose, taking
	// the form "<obstacleID>_<C|L|R>". Nil on every other pose.
	Screenshot *string

	// Penalty is the non-negative extra cost charged when this pose is
	// entered as an A* goal. Zero for ordinary waypoints.
	Penalty float64
}

// NewPose constructs a bare pose with no screenshot tag or penalty.
func NewPose(x, y int, d Direction) Pose {
	return Pose{X: x, Y: y, Direction: d}
}

// Equal reports whether two poses share the same identity, ignoring
// Screenshot and Penalty.
func (p Pose) Equal(other Pose) bool {
	return p.X == other.X && p.Y == other.Y && p.Direction == other.Direction
}

// Key returns a hashable, comparable value usable as a map key wherever a
// pose's identity (not its penalty/screenshot) is what matters.
func (p Pose) Key() PoseKey {
	return PoseKey{X: p.X, Y: p.Y, Direction: p.Direction}
}

// WithScreenshot returns a copy of p tagged with the given screenshot string.
func (p Pose) WithScreenshot(tag string) Pose {
	p.Screenshot = &tag
	return p
}

func (p Pose) String() string {
	if p.Screenshot != nil {
		return fmt.Sprintf("Pose(x=%d, y=%d, d=%s, screenshot=%s)", p.X, p.Y, p.Direction, *p.Screenshot)
	}
	return fmt.Sprintf("Pose(x=%d, y=%d, d=%s)", p.X, p.Y, p.Direction)
}

// ToWire returns the (x, y, d, screenshot) fields in the shape the
// (out-of-scope) HTTP response layer serializes a path entry into.
func (p Pose) ToWire() (x, y int, d Direction, screenshot *string) {
	return p.X, p.Y, p.Direction, p.Screenshot
}

// PoseKey is the identity-only projection of a Pose, suitable as a map key.
type PoseKey struct {
	X, Y      int
	Direction Direction
}

// Pose reconstructs a bare Pose (no screenshot/penalty) from a key.
func (k PoseKey) Pose() Pose {
	return Pose{X: k.X, Y: k.Y, Direction: k.Direction}
}
