package visitorder

import (
	"testing"

	"go.viam.com/test"
)

func TestPopcountMasksOrderedByCountDescending(t *testing.T) {
	masks := popcountMasks(3)
	test.That(t, len(masks), test.ShouldEqual, 8)
	test.That(t, masks[0], test.ShouldEqual, 7) // 111, all three selected
	test.That(t, masks[len(masks)-1], test.ShouldEqual, 0)

	// Ties within the same popcount are numeric-ascending.
	test.That(t, masks[1], test.ShouldEqual, 3)
	test.That(t, masks[2], test.ShouldEqual, 5)
	test.That(t, masks[3], test.ShouldEqual, 6)
}

func TestGenerateCombinationsEnumeratesCartesianProduct(t *testing.T) {
	combos := generateCombinations([]int{2, 3}, 1000)
	test.That(t, len(combos), test.ShouldEqual, 6)
	test.That(t, combos[0], test.ShouldResemble, []int{0, 0})
	test.That(t, combos[len(combos)-1], test.ShouldResemble, []int{1, 2})
}

func TestGenerateCombinationsEmptyCounts(t *testing.T) {
	combos := generateCombinations(nil, 1000)
	test.That(t, len(combos), test.ShouldEqual, 1)
	test.That(t, combos[0], test.ShouldResemble, []int{})
}
