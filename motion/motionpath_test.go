package motion

import (
	"context"
	"testing"

	"go.viam.com/test"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
	"go.viam.com/roverplan/poseplan"
)

func TestBuildMotionPathInsertsCaptureAfterScreenshotPose(t *testing.T) {
	a := arena.New(20, 20, 2, 2, 2)
	a.AddObstacle(geometry.Obstacle{X: 10, Y: 10, Face: geometry.North, ID: 5})

	pl := poseplan.New(a, poseplan.Config{
		TurnFactor: 5, TurnDisplacementLong: 2, TurnDisplacementShort: 1, SafeCost: 1000,
	}, nil)

	start := geometry.NewPose(2, 2, geometry.North)
	goal := geometry.NewPose(2, 5, geometry.North)

	path, _, err := pl.Search(context.Background(), start, goal)
	test.That(t, err, test.ShouldBeNil)

	tag := "5_C"
	path[len(path)-1] = path[len(path)-1].WithScreenshot(tag)

	mp, err := BuildMotionPath(pl, a, path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mp.Motions[len(mp.Motions)-1], test.ShouldEqual, poseplan.Capture)
	test.That(t, mp.Signals, test.ShouldResemble, []string{tag})
	test.That(t, mp.Scanned[0].ID, test.ShouldEqual, 5)
}
