// Package tsp - greedy-edge construction with a union-find cycle guard.
package tsp

import "sort"

// candidateEdge is one undirected edge considered by GreedyEdge.
type candidateEdge struct {
	from, to int
	weight   float64
}

// disjointSet is a flat-array union-find with path compression and
// union by rank. Vertices are dense ints, so arrays beat any keyed
// structure: near-O(1) amortized find/union with zero allocations after
// construction.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	var v int
	for v = 0; v < n; v++ {
		d.parent[v] = v
	}

	return d
}

// find walks to the root, pointing each visited node at its grandparent
// (iterative path compression, no recursion depth to worry about).
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets containing x and y, attaching the shallower
// tree under the deeper root.
func (d *disjointSet) union(x, y int) {
	rootX := d.find(x)
	rootY := d.find(y)
	if rootX == rootY {
		return
	}
	if d.rank[rootX] < d.rank[rootY] {
		d.parent[rootX] = rootY
	} else {
		d.parent[rootY] = rootX
		if d.rank[rootX] == d.rank[rootY] {
			d.rank[rootX]++
		}
	}
}

// GreedyEdge builds a tour by scanning all C(n,2) candidate edges in
// ascending length order, accepting an edge unless it would
//
//   - raise either endpoint above degree 2, or
//   - close a sub-cycle before all n edges are placed (union-find check;
//     the final n-th edge is allowed to close the Hamiltonian cycle).
//
// After exactly n accepted edges the degree-2 adjacency structure is one
// cycle; the tour is reconstructed by walking it from vertex 0. A
// dead-end during the walk means the selection invariant was violated
// and surfaces as ErrBrokenChain - never a silently truncated tour.
//
// Complexity: O(n² log n) time dominated by the sort, O(n²) space for
// the edge list.
func GreedyEdge(dist [][]float64) ([]int, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []int{0}, nil
	}

	// Stage 1: materialize and sort all candidate edges. SliceStable
	// keeps equal-weight edges in (i,j)-lexicographic order so the
	// result is deterministic.
	edges := make([]candidateEdge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, candidateEdge{from: i, to: j, weight: dist[i][j]})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].weight < edges[b].weight
	})

	// Stage 2: accept edges under the degree and cycle constraints.
	var (
		degree    = make([]int, n)
		adj       = make([][]int, n)
		dsu       = newDisjointSet(n)
		edgeCount int
		e         candidateEdge
	)
	for i = range adj {
		adj[i] = make([]int, 0, 2)
	}
	for _, e = range edges {
		if edgeCount >= n {
			break
		}
		if degree[e.from] >= 2 || degree[e.to] >= 2 {
			continue
		}
		// Premature sub-cycle: both endpoints already connected and the
		// tour is not yet one edge short of closing.
		if edgeCount < n-1 && dsu.find(e.from) == dsu.find(e.to) {
			continue
		}

		adj[e.from] = append(adj[e.from], e.to)
		adj[e.to] = append(adj[e.to], e.from)
		degree[e.from]++
		degree[e.to]++
		dsu.union(e.from, e.to)
		edgeCount++
	}

	// Stage 3: walk the degree-2 adjacency from vertex 0, always moving
	// to an unvisited neighbor.
	var (
		tour    = make([]int, 0, n)
		visited = make([]bool, n)
		current = 0
		next    int
	)
	for len(tour) < n {
		tour = append(tour, current)
		visited[current] = true

		next = -1
		for _, nb := range adj[current] {
			if !visited[nb] {
				next = nb
				break
			}
		}
		if next == -1 {
			if len(tour) < n {
				return nil, ErrBrokenChain
			}
			break
		}
		current = next
	}

	return tour, nil
}
