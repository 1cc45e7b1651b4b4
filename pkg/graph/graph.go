package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the vertex ID
	// is empty. All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertex is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists. Vertex IDs must be unique.
	ErrDuplicateVertex = errors.New("duplicate vertex ID")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// does not exist in the graph. Add both vertices before connecting them.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex. The coloring engine assumes simple graphs, so self-loops
	// are rejected at construction time instead of producing undefined output.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when the edge (in either
	// orientation) already exists. Parallel edges carry no extra information
	// for coloring and would double-count line-graph nodes.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a vertex that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Edge is an undirected edge between two vertices. The endpoint order records
// how the edge was inserted; (u,v) and (v,u) denote the same edge everywhere
// in this package. Edge values are comparable and usable as map keys.
type Edge struct {
	U string // First endpoint (as inserted)
	V string // Second endpoint (as inserted)
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id string) bool { return e.U == id || e.V == id }

// SharesEndpoint reports whether two edges have a common endpoint.
// An edge shares all endpoints with itself.
func (e Edge) SharesEndpoint(o Edge) bool {
	return e.Touches(o.U) || e.Touches(o.V)
}

// Graph is an undirected simple graph: no self-loops, no parallel edges.
// Vertices are identified by non-empty strings and iterated in insertion
// order, which is the "natural order" the coloring strategies rely on for
// deterministic results.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent mutation without external synchronization;
// concurrent reads are fine once construction is complete.
type Graph struct {
	order   []string            // vertex IDs in insertion order
	adj     map[string][]string // vertexID -> neighbor IDs in attachment order
	edges   []Edge              // edges in insertion order
	edgeSet map[Edge]struct{}   // both orientations of every edge
}

// New creates an empty undirected graph.
func New() *Graph {
	return &Graph{
		adj:     make(map[string][]string),
		edgeSet: make(map[Edge]struct{}),
	}
}

// AddVertex adds an isolated vertex to the graph.
// Returns ErrInvalidVertexID if the ID is empty, or ErrDuplicateVertex if a
// vertex with the same ID already exists.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrInvalidVertexID
	}
	if _, exists := g.adj[id]; exists {
		return ErrDuplicateVertex
	}
	g.order = append(g.order, id)
	g.adj[id] = nil
	return nil
}

// AddEdge connects two existing vertices with an undirected edge.
// Returns ErrUnknownEndpoint if either vertex doesn't exist, ErrSelfLoop if
// u == v, or ErrDuplicateEdge if the edge already exists in either
// orientation. The adjacency relation is kept symmetric: after a successful
// call, v appears in Neighbors(u) and u in Neighbors(v).
func (g *Graph) AddEdge(u, v string) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adj[u]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.adj[v]; !ok {
		return ErrUnknownEndpoint
	}
	e := Edge{U: u, V: v}
	if _, dup := g.edgeSet[e]; dup {
		return ErrDuplicateEdge
	}
	g.edges = append(g.edges, e)
	g.edgeSet[e] = struct{}{}
	g.edgeSet[e.Reversed()] = struct{}{}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// HasVertex reports whether the vertex exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether an edge connects u and v, in either orientation.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.edgeSet[Edge{U: u, V: v}]
	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Vertices() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order. Each undirected edge
// appears exactly once, with endpoints in the order they were passed to
// AddEdge.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Neighbors returns the IDs adjacent to the vertex, in the order the edges
// were attached. Returns nil if the vertex is isolated or doesn't exist.
// The returned slice should not be modified - use it as a read-only view.
func (g *Graph) Neighbors(id string) []string { return g.adj[id] }

// Degree returns the number of edges incident to the vertex.
// Returns 0 if the vertex doesn't exist.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// MaxDegree returns the highest vertex degree in the graph, or 0 for an
// empty graph. The classical greedy bound guarantees any first-fit coloring
// uses at most MaxDegree()+1 colors.
func (g *Graph) MaxDegree() int {
	max := 0
	for _, neighbors := range g.adj {
		if len(neighbors) > max {
			max = len(neighbors)
		}
	}
	return max
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IncidentEdges returns the edges touching the vertex, in global edge
// insertion order. Returns nil if the vertex has no incident edges.
func (g *Graph) IncidentEdges(id string) []Edge {
	var result []Edge
	for _, e := range g.edges {
		if e.Touches(id) {
			result = append(result, e)
		}
	}
	return result
}

// Validate checks graph integrity and returns nil if valid.
// It verifies that every edge references existing vertices and that the
// adjacency index is symmetric. Use this after deserializing a graph from
// an external source.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.adj[e.U]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := g.adj[e.V]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if !slices.Contains(g.adj[e.U], e.V) || !slices.Contains(g.adj[e.V], e.U) {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}
