// Package visitorder chooses which obstacle viewpoints to visit and in what
// order, turning the candidate viewpoints generated for an arena.Arena into a
// single stitched pose sequence: the visit-order solver (C4) of the
// pipeline.
package visitorder

import (
	"context"
	"fmt"
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
	"go.viam.com/roverplan/poseplan"
	"go.viam.com/roverplan/viewpoint"
)

// ErrNoFeasibleVisitOrder is returned when no obstacle subset, not even the
// empty one, yields a path. The empty subset always yields the one-pose path
// at the start pose, and pose-graph search errors other than ErrNoPath are
// returned as they are, so Solve does not reach this error in practice.
var ErrNoFeasibleVisitOrder = errors.New("visitorder: no feasible visit order found")

// Config carries the visit-order solver's own tunables.
type Config struct {
	// Iterations bounds the depth-first combination search the same way
	// the original implementation bounds it: as a recursion-depth budget
	// rather than a true node-count budget. See generateCombinations.
	Iterations int
}

// Result is the stitched pose sequence produced by Solve, screenshot tags
// already attached to the poses that complete a viewpoint visit.
type Result struct {
	Path []geometry.Pose
	Cost float64
}

// Solve tries every obstacle subset in order of decreasing popcount, and
// within each subset every combination of per-obstacle viewpoint choices,
// stopping at the first subset that yields any feasible order at all — a
// smaller subset is only ever considered once every larger one has failed.
// This mirrors the original's "break on first non-empty result" behavior;
// see DESIGN.md for why a smaller subset is never preferred merely for a
// lower cost once a larger one is feasible.
func Solve(ctx context.Context, pl *poseplan.Planner, a *arena.Arena, start geometry.Pose, viewCfg viewpoint.Config, cfg Config, logger golog.Logger) (Result, error) {
	if logger == nil {
		logger = golog.NewDevelopmentLogger("visitorder")
	}

	viewSets := viewpoint.GenerateAll(a, viewCfg)
	numViews := len(viewSets)

	minDist := math.Inf(1)
	var optimalPath []geometry.Pose

	for _, mask := range popcountMasks(numViews) {
		visitStates := []geometry.Pose{start}
		obstacleOf := []int{-1}
		var curViewPositions [][]viewpoint.Option

		for i := 0; i < numViews; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			curViewPositions = append(curViewPositions, viewSets[i])
			for _, opt := range viewSets[i] {
				visitStates = append(visitStates, opt.Pose)
				obstacleOf = append(obstacleOf, opt.ObstacleID)
			}
		}

		if err := generatePairwisePaths(ctx, pl, visitStates); err != nil {
			return Result{}, err
		}

		counts := make([]int, len(curViewPositions))
		for idx, vp := range curViewPositions {
			counts[idx] = len(vp)
		}

		for _, combo := range generateCombinations(counts, cfg.Iterations) {
			visited := []int{0}
			currentIdx := 1
			comboCost := 0.0

			for idx, vp := range curViewPositions {
				visited = append(visited, currentIdx+combo[idx])
				comboCost += vp[combo[idx]].Pose.Penalty
				currentIdx += len(vp)
			}

			n := len(visited)
			costMatrix := make([][]float64, n)
			for i := range costMatrix {
				costMatrix[i] = make([]float64, n)
			}
			for si := 0; si < n-1; si++ {
				for ei := si + 1; ei < n; ei++ {
					sPose, ePose := visitStates[visited[si]], visitStates[visited[ei]]
					c, ok := pl.Cost(sPose.Key(), ePose.Key())
					if !ok {
						c = 1e9
					}
					costMatrix[si][ei] = c
					costMatrix[ei][si] = c
				}
			}
			for i := 0; i < n; i++ {
				costMatrix[i][0] = 0
			}

			tour := nearestNeighborTour(costMatrix)
			tour, dist := twoOpt(tour, costMatrix)

			if dist+comboCost >= minDist {
				continue
			}
			minDist = dist + comboCost

			stitched, err := stitch(pl, a, visitStates, obstacleOf, visited, tour)
			if err != nil {
				return Result{}, err
			}
			optimalPath = stitched
		}

		if len(optimalPath) > 0 {
			break
		}
	}

	if optimalPath == nil {
		return Result{}, ErrNoFeasibleVisitOrder
	}
	return Result{Path: optimalPath, Cost: minDist}, nil
}

func generatePairwisePaths(ctx context.Context, pl *poseplan.Planner, states []geometry.Pose) error {
	for i := 0; i < len(states)-1; i++ {
		for j := i + 1; j < len(states); j++ {
			if _, _, err := pl.Search(ctx, states[i], states[j]); err != nil {
				if errors.Cause(err) == poseplan.ErrNoPath {
					continue
				}
				return err
			}
		}
	}
	return nil
}

// stitch concatenates the pairwise A* segments for a tour over `visited`
// indices into `visitStates`, attaching a screenshot tag to the pose that
// completes each obstacle visit.
func stitch(pl *poseplan.Planner, a *arena.Arena, visitStates []geometry.Pose, obstacleOf []int, visited, tour []int) ([]geometry.Pose, error) {
	out := []geometry.Pose{visitStates[visited[tour[0]]]}

	for idx := 0; idx < len(tour)-1; idx++ {
		fromPose := visitStates[visited[tour[idx]]]
		toIdx := visited[tour[idx+1]]
		toPose := visitStates[toIdx]

		segment, ok := pl.Path(fromPose.Key(), toPose.Key())
		if !ok {
			continue
		}
		for k := 1; k < len(segment); k++ {
			out = append(out, segment[k])
		}

		obstacleID := obstacleOf[toIdx]
		if obstacleID < 0 {
			continue
		}
		obs, found := a.FindObstacleByID(obstacleID)
		if !found {
			return nil, errors.Errorf("visitorder: obstacle with id %d not found", obstacleID)
		}
		last := len(out) - 1
		rel, err := captureRelativePosition(out[last], obs)
		if err != nil {
			return nil, err
		}
		tag := fmt.Sprintf("%d_%s", obstacleID, rel)
		out[last] = out[last].WithScreenshot(tag)
	}
	return out, nil
}
