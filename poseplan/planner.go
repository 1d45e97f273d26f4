package poseplan

import (
	"container/heap"
	"context"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"go.viam.com/roverplan/arena"
	"go.viam.com/roverplan/geometry"
)

// ErrNoPath is returned by Search when no sequence of legal edges connects
// start to goal.
var ErrNoPath = errors.New("poseplan: no path between given poses")

// Config carries the edge-cost weights the search needs. Values mirror the
// constants table the rest of the pipeline is tuned against.
type Config struct {
	TurnFactor, ReverseFactor int
	SafeCost                  int
	TurnDisplacementLong      int
	TurnDisplacementShort     int
}

type directedKey struct {
	From, To geometry.PoseKey
}

type neighbor struct {
	x, y   int
	dir    geometry.Direction
	safe   int
	motion Motion
}

// Planner owns every per-solve memoisation table the pose-graph search
// populates: neighbour lists, paths, costs, and motion primitives. A new
// Planner must be constructed per solve — it holds no state safe to share
// across requests.
type Planner struct {
	arena  *arena.Arena
	cfg    Config
	logger golog.Logger

	neighborCache map[geometry.PoseKey][]neighbor
	pathTable     map[directedKey][]geometry.Pose
	costTable     map[directedKey]float64
	motionTable   map[directedKey]Motion

	expansions atomic.Uint64
}

// New constructs a Planner bound to the given arena and cost configuration.
func New(a *arena.Arena, cfg Config, logger golog.Logger) *Planner {
	if logger == nil {
		logger = golog.NewDevelopmentLogger("poseplan")
	}
	return &Planner{
		arena:         a,
		cfg:           cfg,
		logger:        logger,
		neighborCache: make(map[geometry.PoseKey][]neighbor),
		pathTable:     make(map[directedKey][]geometry.Pose),
		costTable:     make(map[directedKey]float64),
		motionTable:   make(map[directedKey]Motion),
	}
}

// Expansions returns the number of heap pops performed across every Search
// call on this Planner so far, for log-line instrumentation only.
func (p *Planner) Expansions() uint64 {
	return p.expansions.Load()
}

// Cost returns the memoised cost between two pose keys, trying both
// orientations since the table is populated symmetrically.
func (p *Planner) Cost(a, b geometry.PoseKey) (float64, bool) {
	if c, ok := p.costTable[directedKey{a, b}]; ok {
		return c, true
	}
	if c, ok := p.costTable[directedKey{b, a}]; ok {
		return c, true
	}
	return 0, false
}

// Path returns the memoised pose sequence from a to b, trying both
// orientations and reversing if only the opposite direction was stored.
func (p *Planner) Path(a, b geometry.PoseKey) ([]geometry.Pose, bool) {
	if path, ok := p.pathTable[directedKey{a, b}]; ok {
		return path, true
	}
	if path, ok := p.pathTable[directedKey{b, a}]; ok {
		reversed := make([]geometry.Pose, len(path))
		for i, p := range path {
			reversed[len(path)-1-i] = p
		}
		return reversed, true
	}
	return nil, false
}

// Motion returns the primitive stored for the directed edge a->b, flipping
// the opposite-direction entry when only b->a is present.
func (p *Planner) Motion(a, b geometry.PoseKey) (Motion, bool) {
	if m, ok := p.motionTable[directedKey{a, b}]; ok {
		return m, true
	}
	if m, ok := p.motionTable[directedKey{b, a}]; ok {
		return m.Opposite(), true
	}
	return 0, false
}

// an openItem is one entry of the A* open set, ordered by f = g + h.
type openItem struct {
	f, g  float64
	pose  geometry.PoseKey
	index int
}

// openHeap orders the A* open set by f = g + h. Less compares f only, so
// which of several equal-f items pops first is decided by the heap's
// internal layout, not by first-in-first-out order. That layout is a
// deterministic function of the sequence of Push and Pop calls, and
// neighbor enumeration (neighbors) always produces candidates in the same
// fixed order for a given pose, so the tie-break is reproducible across
// runs for the same inputs.
type openHeap []*openItem

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *openHeap) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Search runs A* between start and goal. On success it returns the pose
// sequence (inclusive of both endpoints) and its cost, and populates the
// path/cost/motion tables — symmetrically for path and cost, directionally
// (first-writer-wins) for motion. A call for a pair already memoised
// returns the cached result without re-searching.
//
// The heuristic is plain Manhattan distance between (x, y) coordinates,
// ignoring heading. With TURN_FACTOR > 0 this is not strictly admissible —
// the search can return a heuristically, not provably, optimal path. This
// is the original tuning's intentional behavior, preserved rather than
// corrected; see DESIGN.md.
//
// When multiple open-set items share the same f score, the tie is broken by
// the heap's layout (see openHeap), which is itself a deterministic
// function of the fixed neighbor-enumeration order; callers can rely on
// Search returning the same one of several equal-cost paths for the same
// inputs.
func (p *Planner) Search(ctx context.Context, start, goal geometry.Pose) ([]geometry.Pose, float64, error) {
	startKey, goalKey := start.Key(), goal.Key()

	if cached, ok := p.Path(startKey, goalKey); ok {
		cost, _ := p.Cost(startKey, goalKey)
		return cached, cost, nil
	}

	gDist := map[geometry.PoseKey]float64{startKey: 0}
	parent := map[geometry.PoseKey]geometry.PoseKey{}
	visited := map[geometry.PoseKey]bool{}

	open := &openHeap{&openItem{f: manhattan(start, goal), g: 0, pose: startKey}}
	heap.Init(open)

	popCount := 0
	for open.Len() > 0 {
		popCount++
		if popCount%256 == 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			default:
			}
		}

		item := heap.Pop(open).(*openItem)
		cur := item.pose
		if visited[cur] {
			continue
		}

		if cur == goalKey {
			cost := gDist[cur]
			path := reconstructPath(parent, startKey, goalKey)
			p.recordPath(startKey, goalKey, path, cost)
			p.expansions.Add(uint64(popCount))
			return path, cost, nil
		}

		visited[cur] = true
		dist := gDist[cur]

		for _, n := range p.neighbors(cur) {
			nKey := geometry.PoseKey{X: n.x, Y: n.y, Direction: n.dir}
			if visited[nKey] {
				continue
			}

			edgeKey := directedKey{cur, nKey}
			reverseKey := directedKey{nKey, cur}
			if _, ok := p.motionTable[edgeKey]; !ok {
				if _, ok := p.motionTable[reverseKey]; !ok {
					p.motionTable[edgeKey] = n.motion
				}
			}

			turnCost := float64(p.cfg.TurnFactor) * float64(geometry.TurnCost(cur.Direction, n.dir))
			reverseCost := float64(p.cfg.ReverseFactor) * float64(n.motion.ReverseCost())
			moveCost := turnCost + reverseCost + float64(n.safe)

			var goalPenalty float64
			if nKey == goalKey {
				goalPenalty = goal.Penalty
			}

			tentativeG := dist + moveCost + goalPenalty
			if existing, ok := gDist[nKey]; !ok || existing > tentativeG {
				gDist[nKey] = tentativeG
				parent[nKey] = cur
				f := tentativeG + manhattan(nKey.Pose(), goal)
				heap.Push(open, &openItem{f: f, g: tentativeG, pose: nKey})
			}
		}
	}

	p.expansions.Add(uint64(popCount))
	return nil, 0, errors.Wrapf(ErrNoPath, "from %s to %s", start, goal)
}

func (p *Planner) recordPath(start, goal geometry.PoseKey, path []geometry.Pose, cost float64) {
	p.costTable[directedKey{start, goal}] = cost
	p.costTable[directedKey{goal, start}] = cost

	p.pathTable[directedKey{start, goal}] = path

	reversed := make([]geometry.Pose, len(path))
	for i, pose := range path {
		reversed[len(path)-1-i] = pose
	}
	p.pathTable[directedKey{goal, start}] = reversed
}

func reconstructPath(parent map[geometry.PoseKey]geometry.PoseKey, start, goal geometry.PoseKey) []geometry.Pose {
	var keys []geometry.PoseKey
	cur := goal
	for {
		keys = append(keys, cur)
		if cur == start {
			break
		}
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	path := make([]geometry.Pose, len(keys))
	for i, k := range keys {
		path[len(keys)-1-i] = k.Pose()
	}
	return path
}

func manhattan(a, b geometry.Pose) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
