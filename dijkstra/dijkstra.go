// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Chaztikov/gROM/network"
)

// arc is a precomputed out-edge: destination and Euclidean length.
type arc struct {
	to int
	w  float64
}

// Engine answers shortest-path queries over a fixed network.
type Engine struct {
	n   int
	adj [][]arc
}

// NewEngine precomputes adjacency and edge lengths for net.
//
// Complexity: O(V + E).
func NewEngine(net *network.Network) (*Engine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := net.Validate(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	adj := make([][]arc, net.Len())
	for _, e := range net.Edges {
		adj[e.From] = append(adj[e.From], arc{to: e.To, w: net.Length(e)})
	}
	return &Engine{n: net.Len(), adj: adj}, nil
}

// ShortestPaths is a convenience wrapper building a one-off Engine for net
// and querying it from source.
func ShortestPaths(net *network.Network, source int, opts ...Option) ([]float64, []int, error) {
	eng, err := NewEngine(net)
	if err != nil {
		return nil, nil, err
	}
	return eng.From(source, opts...)
}

// From computes distances and predecessors from source.
//
// Returns:
//
//   - dist: dist[v] is the graph distance from source to v (+Inf if unreachable).
//   - prev: prev[v] is the predecessor of v on one shortest path, or
//     NoPredecessor for the source and for unreachable points.
//   - err:  ErrSourceOutOfRange, or *UnreachableNodeError. In the latter case
//     dist and prev are still returned for diagnostics.
func (eng *Engine) From(source int, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if source < 0 || source >= eng.n {
		return nil, nil, fmt.Errorf("%w: %d (len %d)", ErrSourceOutOfRange, source, eng.n)
	}

	r := &runner{
		eng:     eng,
		options: cfg,
		dist:    make([]float64, eng.n),
		prev:    make([]int, eng.n),
		visited: make([]bool, eng.n),
		pq:      make(nodePQ, 0, eng.n),
	}
	r.init(source)
	r.process()

	if cfg.AllowUnreachable {
		return r.dist, r.prev, nil
	}
	var unreachable []int
	for v, d := range r.dist {
		if math.IsInf(d, 1) {
			unreachable = append(unreachable, v)
		}
	}
	if len(unreachable) > 0 {
		return r.dist, r.prev, &UnreachableNodeError{Source: source, Nodes: unreachable}
	}
	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	eng     *Engine
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process pops the closest unsettled point until the heap drains or the
// closest candidate exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves the distance of every out-neighbour of u.
// Uses strict "<" so the first predecessor found keeps ties.
func (r *runner) relax(u int) {
	for _, a := range r.eng.adj[u] {
		if r.visited[a.to] {
			continue
		}
		nd := r.dist[u] + a.w
		if nd > r.options.MaxDistance || nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		r.prev[a.to] = u
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
	}
}

// nodeItem is a heap entry: a point and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap ordered by distance, then by point index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// PathTo reconstructs the point sequence source → … → dest from prev.
// It returns nil when dest is unreachable.
func PathTo(prev []int, source, dest int) []int {
	if dest < 0 || dest >= len(prev) {
		return nil
	}
	path := []int{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		if cur == NoPredecessor {
			return nil
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
