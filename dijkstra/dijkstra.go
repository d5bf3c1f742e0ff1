// Package dijkstra implements multi-source Dijkstra / A* shortest-path search
// on weighted graphs with non-negative edge weights.
//
// It processes vertices in order of increasing priority (distance plus
// heuristic) using a min-heap, relaxing edges and updating distances.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by push order, so equal-cost searches are reproducible.
//   - We stop once the target (if any) is settled.
//   - Negative weights are rejected by core at insertion; relax re-checks them.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/metroroute/core"
)

// Search runs the configured shortest-path search over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. At least one source (ErrNoSource).
//  3. Every source, and the target if set, must exist (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search(g core.Neighborhood, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	for _, s := range cfg.Sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: source %s", ErrVertexNotFound, s)
		}
	}
	if cfg.HasTarget && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %s", ErrVertexNotFound, cfg.Target)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = func(core.NodeID) float64 { return 0 }
	}
	if cfg.EdgeFilter == nil {
		cfg.EdgeFilter = func(*core.Edge) bool { return true }
	}

	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Dist:    make(map[core.NodeID]float64),
			sources: make(map[core.NodeID]struct{}, len(cfg.Sources)),
			settled: make(map[core.NodeID]bool),
		},
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[core.NodeID]*core.Edge)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       core.Neighborhood
	options Options
	res     *Result
	pq      nodePQ
	seq     uint64
}

// init seeds every source at distance 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if _, dup := r.res.sources[s]; dup {
			continue
		}
		r.res.sources[s] = struct{}{}
		r.res.Dist[s] = 0
		r.push(s, 0)
	}
}

func (r *runner) push(id core.NodeID, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{
		id:   id,
		dist: d,
		prio: d + r.options.Heuristic(id),
		seq:  r.seq,
	})
}

// process repeatedly settles the lowest-priority vertex and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The target has been settled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.res.settled[u] || item.dist > r.res.Dist[u] {
			continue
		}
		r.res.settled[u] = true
		r.res.Settled++

		if cfg.HasTarget && u == cfg.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each traversable edge leaving u and improves neighbor distances.
func (r *runner) relax(u core.NodeID) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %s: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		if !r.options.EdgeFilter(e) {
			continue
		}
		if e.Directed && e.From != u {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		v := e.Other(u)
		if r.res.settled[v] {
			continue
		}
		nd := du + e.Weight
		if cur, ok := r.res.Dist[v]; ok && nd >= cur {
			continue
		}

		r.res.Dist[v] = nd
		if r.res.Prev != nil {
			r.res.Prev[v] = e
		}
		r.push(v, nd)
	}

	return nil
}

// Distance returns the best known distance to id, or +Inf when id was never reached.
func (res *Result) Distance(id core.NodeID) float64 {
	if d, ok := res.Dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// IsSettled reports whether the distance to id is final.
func (res *Result) IsSettled(id core.NodeID) bool { return res.settled[id] }

// PathTo rebuilds the shortest path from the nearest source to target.
// Requires WithReturnPath; returns ErrNoPath when target was not reached.
func (res *Result) PathTo(target core.NodeID) (*Path, error) {
	if res.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	cost, ok := res.Dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: to %s", ErrNoPath, target)
	}

	var (
		nodes = []core.NodeID{target}
		edges []*core.Edge
	)
	for cur := target; ; {
		if _, src := res.sources[cur]; src {
			break
		}
		e, ok := res.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %s", ErrNoPath, cur)
		}
		cur = e.Other(cur)
		nodes = append(nodes, cur)
		edges = append(edges, e)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &Path{Nodes: nodes, Edges: edges, Cost: cost}, nil
}

// nodeItem is a heap entry: a vertex, its tentative distance, its priority
// (distance + heuristic) and a push sequence number for stable ties.
type nodeItem struct {
	id   core.NodeID
	dist float64
	prio float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (prio, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
