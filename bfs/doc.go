// Package bfs provides breadth-first search over integer-vertex graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Aggregate growth: a seed row claims its strongly coupled neighborhood
//     up to a graph distance, with the claim made in OnEnqueue and the
//     admission test in FilterNeighbor.
//   - Reachability and level layering on matrix graphs (graph.MatrixGraph
//     satisfies Graph).
//
// Determinism
//
//	Neighbors are enqueued in the order Graph.Neighbors returns them; for
//	graph.MatrixGraph that is ascending column order, so the visit sequence
//	is fully reproducible.
//
// Complexity (V = reached vertices, E = their incident edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, seed,
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return free[nbr] }),
//	    bfs.WithOnEnqueue(func(v, depth int) { free[v] = false }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ErrNotReached           from PathTo for a vertex the search missed.
//   - ctx.Err() on cancellation.
package bfs
