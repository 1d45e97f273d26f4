package roverplan

import (
	"context"
	"testing"

	"go.viam.com/test"

	"go.viam.com/roverplan/geometry"
)

func TestSolveEndToEndSingleObstacle(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg, nil)

	test.That(t, s.AddObstacle(10, 10, geometry.North, 1), test.ShouldBeNil)

	plan, err := s.Solve(context.Background(), geometry.NewPose(1, 1, geometry.North))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(plan.Path), test.ShouldBeGreaterThan, 0)
	test.That(t, len(plan.Commands), test.ShouldBeGreaterThan, 0)
	test.That(t, plan.Commands[len(plan.Commands)-1], test.ShouldEqual, "FIN")
}

func TestAddObstacleAllowsBorderPosition(t *testing.T) {
	s := New(DefaultConfig(), nil)
	err := s.AddObstacle(0, 5, geometry.North, 1)
	test.That(t, err, test.ShouldBeNil)
}

func TestAddObstacleRejectsOutOfGridPosition(t *testing.T) {
	cfg := DefaultConfig()
	s := New(cfg, nil)
	err := s.AddObstacle(-1, 5, geometry.North, 1)
	test.That(t, err, test.ShouldEqual, ErrInvalidObstacle)

	err = s.AddObstacle(cfg.ArenaWidth, 5, geometry.North, 2)
	test.That(t, err, test.ShouldEqual, ErrInvalidObstacle)
}

func TestClearObstaclesAllowsReuse(t *testing.T) {
	s := New(DefaultConfig(), nil)
	test.That(t, s.AddObstacle(10, 10, geometry.North, 1), test.ShouldBeNil)
	s.ClearObstacles()

	plan, err := s.Solve(context.Background(), geometry.NewPose(1, 1, geometry.North))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, plan.Path, test.ShouldResemble, []geometry.Pose{geometry.NewPose(1, 1, geometry.North)})
}
