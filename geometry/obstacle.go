package geometry

// Obstacle is a fixed, oriented object on the arena: a position, the
// direction its photographable face points, and a request-scoped id.
type Obstacle struct {
	X, Y int
	Face Direction
	ID   int
}

// Equal compares obstacles by (X, Y, Face) only, matching the original's
// Obstacle.__eq__ — two obstacles with different IDs at the same pose and
// facing are considered duplicates.
func (o Obstacle) Equal(other Obstacle) bool {
	return o.X == other.X && o.Y == other.Y && o.Face == other.Face
}
