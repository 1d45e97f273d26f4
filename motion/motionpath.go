// Package motion turns a stitched pose path into the primitive Motion
// sequence that realizes it, then compiles that sequence into the literal
// command strings the drive firmware expects: the command compiler (C5) of
// the pipeline.
package motion

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
	"go.viam.com/roverplan/poseplan"
)

// MotionPath is the intermediate form between a stitched pose path and the
// compiled command list: one Motion per consecutive pose pair, with a
// Capture primitive spliced in after any pose that completes an obstacle
// view, plus the obstacle/tag/pose triples a Capture needs to know what it
// is looking at.
type MotionPath struct {
	Motions []poseplan.Motion
	// Signals holds one "<obstacleID>_<C|L|R>" tag per Capture, in order.
	Signals []string
	// Scanned holds the obstacle a Capture is photographing, aligned with
	// Signals.
	Scanned []geometry.Obstacle
	// ViewPoses holds the pose a Capture was taken from, aligned with
	// Signals.
	ViewPoses []geometry.Pose
}

// BuildMotionPath walks a stitched pose path, looking up the Motion that
// realizes each consecutive pair in the planner's memoised motion table and
// inserting a Capture after any pose carrying a screenshot tag.
func BuildMotionPath(pl *poseplan.Planner, a *arena.Arena, path []geometry.Pose) (MotionPath, error) {
	var mp MotionPath

	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]

		m, ok := pl.Motion(from.Key(), to.Key())
		if !ok {
			return MotionPath{}, errors.Errorf("motion: no motion recorded from %s to %s", from, to)
		}
		mp.Motions = append(mp.Motions, m)

		if to.Screenshot == nil {
			continue
		}
		mp.Motions = append(mp.Motions, poseplan.Capture)
		tag := *to.Screenshot
		mp.Signals = append(mp.Signals, tag)
		mp.ViewPoses = append(mp.ViewPoses, to)

		idStr := strings.SplitN(tag, "_", 2)[0]
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return MotionPath{}, errors.Wrapf(err, "motion: malformed screenshot tag %q", tag)
		}
		obs, found := a.FindObstacleByID(id)
		if !found {
			return MotionPath{}, errors.Errorf("motion: obstacle with id %d not found", id)
		}
		mp.Scanned = append(mp.Scanned, obs)
	}

	return mp, nil
}
