package bipartitescc

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// tightEps is the tolerance used to decide whether a lifted cost cell is
// tight under the dual (C_L[i,j] - u[i] - v[j] == 0).
const tightEps = 1e-7

// EqualityDigraph is the bipartite directed graph over X ∪ Y induced by the
// equality edges of an optimal LSAP dual on C_L: node i<N is x_i, node
// N+j is y_j. An arc x_i→y_j exists for every tight, unmatched pair; the
// matched pair itself is recorded as the reverse arc y_j→x_i.
type EqualityDigraph struct {
	N int
	G *simple.DirectedGraph
	// Perm is the assignment this digraph was built from: Perm[i] is the
	// column matched to row i.
	Perm []int
}

// XID returns the gonum node ID of x_i.
func (d *EqualityDigraph) XID(i int) int64 { return int64(i) }

// YID returns the gonum node ID of y_j.
func (d *EqualityDigraph) YID(j int) int64 { return int64(d.N + j) }

// Tight reports whether cell (i,j) of the lifted cost matrix is tight under
// the dual (u,v): C_L[i,j] - u[i] - v[j] == 0 within tightEps. Exported so
// kbest can re-derive candidate equality edges per SCC without needing to
// walk the gonum graph.
func Tight(CL *mat.Dense, u, v []float64, i, j int) bool {
	return CL.At(i, j)-u[i]-v[j] <= tightEps
}

// Build constructs the equality digraph from a lifted cost matrix C_L and
// an optimal (perm, u, v) solution over it, as returned by
// lsape.SolveSquare(lsape.Lift(C)).
func Build(CL *mat.Dense, perm []int, u, v []float64) (*EqualityDigraph, error) {
	n, m := CL.Dims()
	if n != m || len(perm) != n || len(u) != n || len(v) != n {
		return nil, ErrDimensionMismatch
	}
	N := n

	g := simple.NewDirectedGraph()
	for id := 0; id < 2*N; id++ {
		g.AddNode(simple.Node(int64(id)))
	}

	d := &EqualityDigraph{N: N, G: g, Perm: perm}

	matchedCol := make([]int, N) // matchedCol[i] = perm[i]
	copy(matchedCol, perm)

	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			slack := CL.At(i, j) - u[i] - v[j]
			if slack > tightEps {
				continue // not tight, no equality edge
			}
			xID, yID := d.XID(i), d.YID(j)
			if perm[i] == j {
				g.SetEdge(g.NewEdge(g.Node(yID), g.Node(xID)))
			} else {
				g.SetEdge(g.NewEdge(g.Node(xID), g.Node(yID)))
			}
		}
	}
	return d, nil
}
