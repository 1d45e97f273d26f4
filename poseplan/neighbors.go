package poseplan

import "go.viam.com/roverplan/geometry"

// moveDirections lists the four cardinal directions, the target headings
// iterated over when enumerating neighbours of a pose.
var moveDirections = []geometry.Direction{geometry.North, geometry.East, geometry.South, geometry.West}

// neighbors returns every legal neighbour of the pose key, consulting (and
// populating) the per-(x,y,d) neighbour cache.
func (p *Planner) neighbors(k geometry.PoseKey) []neighbor {
	if cached, ok := p.neighborCache[k]; ok {
		return cached
	}

	var out []neighbor
	for _, md := range moveDirections {
		if md == k.Direction {
			dx, dy := md.Unit()

			fx, fy := k.X+dx, k.Y+dy
			if p.arena.Reachable(fx, fy) {
				out = append(out, neighbor{
					x: fx, y: fy, dir: md,
					safe:   p.arena.SafeCost(fx, fy, p.cfg.SafeCost),
					motion: Forward,
				})
			}

			rx, ry := k.X-dx, k.Y-dy
			if p.arena.Reachable(rx, ry) {
				out = append(out, neighbor{
					x: rx, y: ry, dir: md,
					safe:   p.arena.SafeCost(rx, ry, p.cfg.SafeCost),
					motion: Reverse,
				})
			}
			continue
		}

		for _, tc := range turnConfigs(k.Direction, md, p.cfg.TurnDisplacementLong, p.cfg.TurnDisplacementShort, k.X, k.Y) {
			if p.arena.TurnReachable(k.X, k.Y, tc.x, tc.y, k.Direction) {
				out = append(out, neighbor{
					x: tc.x, y: tc.y, dir: md,
					safe:   p.arena.SafeCost(tc.x, tc.y, p.cfg.SafeCost),
					motion: tc.motion,
				})
			}
		}
	}

	p.neighborCache[k] = out
	return out
}

type turnCandidate struct {
	x, y   int
	motion Motion
}

// turnConfigs returns the (at most two) turn-arc destinations for rotating
// from heading `from` to heading `to`, given the long/short axis deltas of
// a 3-point turn arc and the current position. 180-degree flips (from and
// to opposite) are not legal turn edges and yield no candidates.
func turnConfigs(from, to geometry.Direction, big, small, x, y int) []turnCandidate {
	n, e, s, w := geometry.North, geometry.East, geometry.South, geometry.West

	switch {
	case from == n && to == e:
		return []turnCandidate{
			{x + big, y + small, ForwardRightTurn},
			{x - small, y - big, ReverseLeftTurn},
		}
	case from == e && to == n:
		return []turnCandidate{
			{x + small, y + big, ForwardLeftTurn},
			{x - big, y - small, ReverseRightTurn},
		}
	case from == e && to == s:
		return []turnCandidate{
			{x + small, y - big, ForwardRightTurn},
			{x - big, y + small, ReverseLeftTurn},
		}
	case from == s && to == e:
		return []turnCandidate{
			{x + big, y - small, ForwardLeftTurn},
			{x - small, y + big, ReverseRightTurn},
		}
	case from == s && to == w:
		return []turnCandidate{
			{x - big, y - small, ForwardRightTurn},
			{x + small, y + big, ReverseLeftTurn},
		}
	case from == w && to == s:
		return []turnCandidate{
			{x - small, y - big, ForwardLeftTurn},
			{x + big, y + small, ReverseRightTurn},
		}
	case from == w && to == n:
		return []turnCandidate{
			{x - small, y + big, ForwardRightTurn},
			{x + big, y - small, ReverseLeftTurn},
		}
	case from == n && to == w:
		return []turnCandidate{
			{x - big, y + small, ForwardLeftTurn},
			{x + small, y - big, ReverseRightTurn},
		}
	default:
		return nil
	}
}
