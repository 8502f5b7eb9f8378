package gedgraph

// EdgeRef describes one edge as handed to a CostFunction: its endpoints (by
// node index in the owning graph) and its opaque attribute. For an
// undirected graph, IncidentEdges(i) reports every edge with From == i, so
// the same edge appears as (i,j) from i and as (j,i) from j; a directed
// graph preserves the edge's orientation.
type EdgeRef struct {
	From, To int
	Attr     any
}

// Graph is the read-only contract every gedcore algorithm is written
// against. Implementations (Dense, CSR) must be safe for concurrent reads —
// callers never mutate a Graph while a solve is in flight.
type Graph interface {
	// Size returns the number of nodes, indexed 0..Size()-1.
	Size() int
	// NodeAttr returns the attribute of node i. Panics if i is out of range;
	// callers within this module always range over [0, Size()).
	NodeAttr(i int) any
	// IncidentEdges returns the edges touching node i, in unspecified order.
	// For a directed graph this includes both outgoing and incoming edges.
	IncidentEdges(i int) []EdgeRef
	// HasEdge reports whether an edge exists from i to j (i==j is always
	// false: gedcore graphs carry no loops).
	HasEdge(i, j int) bool
	// EdgeAt returns the attribute of the edge (i,j) and whether it exists.
	EdgeAt(i, j int) (any, bool)
	// Directed reports whether edges are orientation-sensitive.
	Directed() bool
}

// CostFunction is the edit-cost callback contract consumed by the cost-
// matrix builders (lsape), the IPFP quadratic term (ipfp), and the
// random-walk seed (randomwalk). It must be pure with respect to the graph
// pair it is invoked on, and safe to call concurrently on distinct
// arguments (multistart refines seeds in parallel).
//
// All six methods must return a finite, non-negative value; a NaN or ±Inf
// result is a numeric error at the driver boundary (lsape.ErrNonFiniteCost
// from the cost-matrix builders, mapping.ErrNonFiniteCost from mapping.Cost).
type CostFunction interface {
	NodeSub(a1, a2 any) float64
	NodeDel(a1 any) float64
	NodeIns(a2 any) float64
	EdgeSub(e1, e2 EdgeRef) float64
	EdgeDel(e1 EdgeRef) float64
	EdgeIns(e2 EdgeRef) float64
}
