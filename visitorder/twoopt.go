package visitorder

import "gonum.org/v1/gonum/floats"

// openTour is a Hamiltonian path over node indices [0, n) that always starts
// at index 0 (the robot's start pose) and never wraps back to it — there is
// no "closing" edge and its cost is simply the sum of consecutive entries.
//
// The nearest-neighbour construction plus 2-opt refinement below mirrors the
// structure of a Lin-Kernighan-style local search (scan candidate (i, k)
// pairs of the cost matrix, accept the first improving reversal)
// adapted from a cyclic tour to an open one: the tour never reconnects to
// node 0, and segment reversals never touch position 0, which stays pinned
// as the start. See DESIGN.md.
const twoOptEps = 1e-9

func nearestNeighborTour(cost [][]float64) []int {
	n := len(cost)
	tour := make([]int, 0, n)
	visited := make([]bool, n)

	cur := 0
	tour = append(tour, cur)
	visited[cur] = true

	for len(tour) < n {
		best := -1
		bestCost := 0.0
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best == -1 || cost[cur][j] < bestCost {
				best = j
				bestCost = cost[cur][j]
			}
		}
		tour = append(tour, best)
		visited[best] = true
		cur = best
	}
	return tour
}

func tourCost(tour []int, cost [][]float64) float64 {
	total := 0.0
	for i := 0; i+1 < len(tour); i++ {
		total += cost[tour[i]][tour[i+1]]
	}
	return total
}

// twoOpt runs first-improvement 2-opt over an open tour, leaving position 0
// fixed. It returns the refined tour and its cost.
func twoOpt(tour []int, cost [][]float64) ([]int, float64) {
	n := len(tour)
	best := append([]int(nil), tour...)
	bestCost := tourCost(best, cost)

	improved := true
	for improved {
		improved = false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				a, b := best[i-1], best[i]
				c := best[k]
				var d int
				hasD := k+1 < n
				if hasD {
					d = best[k+1]
				}

				before := cost[a][b]
				after := cost[a][c]
				if hasD {
					before += cost[best[k]][d]
					after += cost[b][d]
				}

				delta := after - before
				if delta < 0 && !floats.EqualWithinAbs(delta, 0, twoOptEps) {
					reverse(best, i, k)
					bestCost += delta
					improved = true
				}
			}
		}
	}
	return best, bestCost
}

func reverse(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
