// SPDX-License-Identifier: MIT

package graph

// VertexFlags are per-vertex property bits.
type VertexFlags uint8

const (
	// Visited marks vertices touched by the current sweep.
	Visited VertexFlags = 1 << iota
	// Isolated marks vertices without strong couplings.
	Isolated
	// Excluded marks vertices that take no part in coarsening.
	Excluded
)

// Has reports whether all bits of f are set.
func (v VertexFlags) Has(f VertexFlags) bool { return v&f == f }

// EdgeFlags are per-edge property bits.
type EdgeFlags uint8

const (
	// Influences marks edge (i,j) when j is strongly influenced by i.
	Influences EdgeFlags = 1 << iota
	// DependsOn marks edge (i,j) when i strongly depends on j.
	DependsOn
)

// Strong reports whether either strength bit is set.
func (e EdgeFlags) Strong() bool { return e&(Influences|DependsOn) != 0 }

// PropertiesGraph decorates a MatrixGraph with vertex and edge property slots.
// Edge slots are indexed by matrix storage position.
type PropertiesGraph struct {
	*MatrixGraph
	vertex []VertexFlags
	edge   []EdgeFlags
}

// NewPropertiesGraph allocates cleared property slots for g.
func NewPropertiesGraph(g *MatrixGraph) *PropertiesGraph {
	return &PropertiesGraph{
		MatrixGraph: g,
		vertex:      make([]VertexFlags, g.NumVertices()),
		edge:        make([]EdgeFlags, g.NumEdgeSlots()),
	}
}

// Vertex returns the flags of v.
func (p *PropertiesGraph) Vertex(v int) VertexFlags { return p.vertex[v] }

// SetVertex sets the bits of f on v.
func (p *PropertiesGraph) SetVertex(v int, f VertexFlags) { p.vertex[v] |= f }

// ClearVertex clears the bits of f on v.
func (p *PropertiesGraph) ClearVertex(v int, f VertexFlags) { p.vertex[v] &^= f }

// Edge returns the flags of the edge at storage position e.
func (p *PropertiesGraph) Edge(e int) EdgeFlags { return p.edge[e] }

// SetEdge sets the bits of f on the edge at storage position e.
func (p *PropertiesGraph) SetEdge(e int, f EdgeFlags) { p.edge[e] |= f }

// ResetVisited clears the Visited bit on every vertex.
func (p *PropertiesGraph) ResetVisited() {
	for i := range p.vertex {
		p.vertex[i] &^= Visited
	}
}

// Reset clears every vertex and edge flag.
func (p *PropertiesGraph) Reset() {
	clear(p.vertex)
	clear(p.edge)
}

// IsStrong reports whether u and v are strongly coupled in either direction.
func (p *PropertiesGraph) IsStrong(u, v int) bool {
	if e, ok := p.EdgeIndex(u, v); ok && p.edge[e].Strong() {
		return true
	}
	if e, ok := p.EdgeIndex(v, u); ok && p.edge[e].Strong() {
		return true
	}

	return false
}

// IsTwoWay reports whether u depends on v and v depends on u.
func (p *PropertiesGraph) IsTwoWay(u, v int) bool {
	e1, ok1 := p.EdgeIndex(u, v)
	e2, ok2 := p.EdgeIndex(v, u)

	return ok1 && ok2 && p.edge[e1]&DependsOn != 0 && p.edge[e2]&DependsOn != 0
}
