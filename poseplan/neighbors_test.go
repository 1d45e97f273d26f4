package poseplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/roverplan/geometry"
)

func TestTurnConfigsOppositeHeadingsAreIllegal(t *testing.T) {
	test.That(t, turnConfigs(geometry.North, geometry.South, 2, 1, 5, 5), test.ShouldBeNil)
	test.That(t, turnConfigs(geometry.East, geometry.West, 2, 1, 5, 5), test.ShouldBeNil)
}

func TestTurnConfigsNorthToEast(t *testing.T) {
	candidates := turnConfigs(geometry.North, geometry.East, 2, 1, 5, 5)
	test.That(t, len(candidates), test.ShouldEqual, 2)
	test.That(t, candidates[0].x, test.ShouldEqual, 7)
	test.That(t, candidates[0].y, test.ShouldEqual, 6)
	test.That(t, candidates[0].motion, test.ShouldEqual, ForwardRightTurn)
	test.That(t, candidates[1].x, test.ShouldEqual, 4)
	test.That(t, candidates[1].y, test.ShouldEqual, 3)
	test.That(t, candidates[1].motion, test.ShouldEqual, ReverseLeftTurn)
}
