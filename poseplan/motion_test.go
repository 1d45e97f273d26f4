package poseplan

import (
	"testing"

	"go.viam.com/test"
)

func TestMotionOppositeIsInvolution(t *testing.T) {
	for _, m := range []Motion{Forward, Reverse, ForwardLeftTurn, ForwardRightTurn, ReverseLeftTurn, ReverseRightTurn} {
		test.That(t, m.Opposite().Opposite(), test.ShouldEqual, m)
	}
	test.That(t, Forward.Opposite(), test.ShouldEqual, Reverse)
	test.That(t, ForwardLeftTurn.Opposite(), test.ShouldEqual, ReverseRightTurn)
}

func TestMotionIsCombinable(t *testing.T) {
	test.That(t, Forward.IsCombinable(), test.ShouldBeTrue)
	test.That(t, Reverse.IsCombinable(), test.ShouldBeTrue)
	test.That(t, ForwardLeftTurn.IsCombinable(), test.ShouldBeFalse)
	test.That(t, Capture.IsCombinable(), test.ShouldBeFalse)
}

func TestMotionReverseCost(t *testing.T) {
	test.That(t, Forward.ReverseCost(), test.ShouldEqual, 0)
	test.That(t, Reverse.ReverseCost(), test.ShouldEqual, 1)
	test.That(t, ReverseLeftTurn.ReverseCost(), test.ShouldEqual, 1)
	test.That(t, ForwardRightTurn.ReverseCost(), test.ShouldEqual, 0)
}
