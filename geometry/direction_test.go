package geometry

import (
	"testing"

	"go.viam.com/test"
)

func TestTurnCost(t *testing.T) {
	test.That(t, TurnCost(North, North), test.ShouldEqual, 0)
	test.That(t, TurnCost(North, South), test.ShouldEqual, 2)
	test.That(t, TurnCost(East, West), test.ShouldEqual, 2)
	test.That(t, TurnCost(North, East), test.ShouldEqual, 1)
	test.That(t, TurnCost(South, East), test.ShouldEqual, 1)
}

func TestDirectionOpposite(t *testing.T) {
	test.That(t, North.Opposite(), test.ShouldEqual, South)
	test.That(t, South.Opposite(), test.ShouldEqual, North)
	test.That(t, East.Opposite(), test.ShouldEqual, West)
	test.That(t, West.Opposite(), test.ShouldEqual, East)
	test.That(t, Skip.Opposite(), test.ShouldEqual, Skip)
}

func TestDirectionUnit(t *testing.T) {
	dx, dy := North.Unit()
	test.That(t, dx, test.ShouldEqual, 0)
	test.That(t, dy, test.ShouldEqual, 1)

	dx, dy = West.Unit()
	test.That(t, dx, test.ShouldEqual, -1)
	test.That(t, dy, test.ShouldEqual, 0)
}
