package viewpoint

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
)

func testConfig() Config {
	return Config{MinClearance: 1, ObstacleSize: 1, OffsetCells: 1, ScreenshotCost: 100, DistanceCost: 1000}
}

func TestGenerateSkipFaceYieldsNoOptions(t *testing.T) {
	a := arena.New(20, 20, 2, 2, 2)
	obs := geometry.Obstacle{X: 10, Y: 10, Face: geometry.Skip, ID: 1}
	test.That(t, Generate(a, obs, testConfig()), test.ShouldBeNil)
}

func TestGenerateFacesRobotOppositeObstacle(t *testing.T) {
	a := arena.New(20, 20, 2, 2, 2)
	obs := geometry.Obstacle{X: 10, Y: 10, Face: geometry.North, ID: 7}
	opts := Generate(a, obs, testConfig())

	test.That(t, len(opts), test.ShouldBeGreaterThan, 0)
	for _, o := range opts {
		test.That(t, o.Pose.Direction, test.ShouldEqual, geometry.South)
		test.That(t, o.ObstacleID, test.ShouldEqual, 7)
		test.That(t, o.Pose.Y, test.ShouldBeGreaterThan, obs.Y)
	}
}

func TestGenerateAllSkipsSkipFaceObstacles(t *testing.T) {
	a := arena.New(20, 20, 2, 2, 2)
	a.AddObstacle(geometry.Obstacle{X: 5, Y: 5, Face: geometry.Skip, ID: 1})
	a.AddObstacle(geometry.Obstacle{X: 10, Y: 10, Face: geometry.East, ID: 2})

	all := GenerateAll(a, testConfig())
	test.That(t, len(all), test.ShouldEqual, 1)
}
