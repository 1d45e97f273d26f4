package motion

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/roverplan/poseplan"
)

func TestGenerateCommandForwardCombinesRuns(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	cmds, err := g.generateCommand(poseplan.Forward, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds, test.ShouldResemble, []string{"T50|0|30"})
}

func TestGenerateCommandReverseRealignsEvery20cm(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	cmds, err := g.generateCommand(poseplan.Reverse, 5) // 50cm
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds, test.ShouldResemble, []string{
		"t35|0|20", "T25|30|0.1",
		"t35|0|20", "T25|30|0.1",
		"t35|0|10", "T25|30|0.1",
	})
}

func TestGenerateCommandReverseShortRunStillRealigns(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	cmds, err := g.generateCommand(poseplan.Reverse, 1) // 10cm, remainder 10 >= 5 so realigns
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds, test.ShouldResemble, []string{"t35|0|10", "T25|30|0.1"})
}

func TestGenerateCommandsCoalescesAndAppendsFin(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	mp := MotionPath{Motions: []poseplan.Motion{poseplan.Forward, poseplan.Forward, poseplan.ForwardLeftTurn}}

	cmds, err := g.GenerateCommands(mp)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds[0], test.ShouldEqual, "T50|0|20")
	test.That(t, cmds[len(cmds)-1], test.ShouldEqual, "FIN")
}

func TestGenerateCommandsEmptyMotionsYieldsOnlyFin(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	cmds, err := g.GenerateCommands(MotionPath{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds, test.ShouldResemble, []string{"FIN"})
}

func TestGenerateCommandsSnapsOnCapture(t *testing.T) {
	g := NewGenerator(50, 30, 1, 1)
	mp := MotionPath{
		Motions: []poseplan.Motion{poseplan.Forward, poseplan.Capture},
		Signals: []string{"42_C"},
	}
	cmds, err := g.GenerateCommands(mp)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmds, test.ShouldResemble, []string{"T50|0|10", "SNAP42_C", "FIN"})
}
