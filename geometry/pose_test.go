package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestPoseEqualIgnoresScreenshotAndPenalty(t *testing.T) {
	a := NewPose(3, 4, North)
	a.Penalty = 100

	b := a.WithScreenshot("1_C")
	test.That(t, a.Equal(b), test.ShouldBeTrue)
	test.That(t, a.Key(), test.ShouldResemble, b.Key())
}

func TestPoseKeyRoundTrip(t *testing.T) {
	p := NewPose(5, 6, East)
	test.That(t, p.Key().Pose(), test.ShouldResemble, NewPose(5, 6, East))
}
