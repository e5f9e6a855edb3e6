package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/paamg/bfs"
	"github.com/katalvlaran/paamg/builder"
	"github.com/katalvlaran/paamg/graph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on the matrix graph of a
// 3×3 five-point Laplacian (vertex y·3+x).
func ExampleBFS_gridTraversal() {
	a, _ := builder.Laplacian2D(3, 3)
	g, _ := graph.NewMatrixGraph(a)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// visit order follows non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}
