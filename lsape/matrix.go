package lsape

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/gedgraph"
)

/*
BuildNodeCost

Description:

	Builds the node-only (n+1)×(m+1) LSAPE cost matrix used as the linear
	term of IPFP: substitution costs in the top-left n×m block, deletion
	costs down column m, insertion costs across row n, and C[n,m]=0.

Algorithm:

	 1. C[i,j] = cf.NodeSub(g1.NodeAttr(i), g2.NodeAttr(j))   for i<n, j<m
	 2. C[i,m] = cf.NodeDel(g1.NodeAttr(i))                    for i<n
	 3. C[n,j] = cf.NodeIns(g2.NodeAttr(j))                    for j<m
	 4. C[n,m] = 0

Every returned value is finite and non-negative; a non-finite cost from cf
is reported as ErrNonFiniteCost rather than silently clamped.
*/
func BuildNodeCost(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction) (*mat.Dense, error) {
	n, m := g1.Size(), g2.Size()
	C := mat.NewDense(n+1, m+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := cf.NodeSub(g1.NodeAttr(i), g2.NodeAttr(j))
			if err := checkFinite(v); err != nil {
				return nil, err
			}
			C.Set(i, j, v)
		}
	}
	for i := 0; i < n; i++ {
		v := cf.NodeDel(g1.NodeAttr(i))
		if err := checkFinite(v); err != nil {
			return nil, err
		}
		C.Set(i, m, v)
	}
	for j := 0; j < m; j++ {
		v := cf.NodeIns(g2.NodeAttr(j))
		if err := checkFinite(v); err != nil {
			return nil, err
		}
		C.Set(n, j, v)
	}
	C.Set(n, m, 0)
	return C, nil
}

/*
BuildStarAugmented

Description:

	Builds the star-augmented (n+1)×(m+1) LSAPE cost matrix used by the
	standalone bipartite GED baseline: each substitution cell also
	accumulates the cost of an optimal local assignment between the
	incident edges of v1_i and v2_j (a per-cell inner LSAPE problem on a
	(deg(v1_i)+1)×(deg(v2_j)+1) matrix of edge costs); deletion/insertion
	cells accumulate the total deletion/insertion cost of all incident
	edges of the deleted/inserted node.

Algorithm (per cell C[i,j], i<n, j<m):

	 1. e1 := incident edges of v1_i, e2 := incident edges of v2_j.
	 2. Build a (len(e1)+1)×(len(e2)+1) local edge-cost matrix EC the same
	    way BuildNodeCost builds C, but with EdgeSub/EdgeDel/EdgeIns.
	 3. Solve EC with solver, add the resulting primal cost to
	    cf.NodeSub(v1_i, v2_j).

For deletion column C[i,m]: NodeDel(v1_i) + Σ EdgeDel(e) over incident
edges of v1_i. Symmetrically for insertion row C[n,j].
*/
func BuildStarAugmented(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, solver Solver) (*mat.Dense, error) {
	n, m := g1.Size(), g2.Size()
	C, err := BuildNodeCost(g1, g2, cf)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		e1 := g1.IncidentEdges(i)
		for j := 0; j < m; j++ {
			e2 := g2.IncidentEdges(j)
			localCost, err := localEdgeCost(e1, e2, cf, solver)
			if err != nil {
				return nil, err
			}
			C.Set(i, j, C.At(i, j)+localCost)
		}
	}
	for i := 0; i < n; i++ {
		total := 0.0
		for _, e := range g1.IncidentEdges(i) {
			total += cf.EdgeDel(e)
		}
		C.Set(i, m, C.At(i, m)+total)
	}
	for j := 0; j < m; j++ {
		total := 0.0
		for _, e := range g2.IncidentEdges(j) {
			total += cf.EdgeIns(e)
		}
		C.Set(n, j, C.At(n, j)+total)
	}
	return C, nil
}

// localEdgeCost solves the inner (len(e1)+1)×(len(e2)+1) LSAPE problem
// between two nodes' incident-edge sets and returns its primal cost.
func localEdgeCost(e1, e2 []gedgraph.EdgeRef, cf gedgraph.CostFunction, solver Solver) (float64, error) {
	p, q := len(e1), len(e2)
	EC := mat.NewDense(p+1, q+1, nil)
	for a := 0; a < p; a++ {
		for b := 0; b < q; b++ {
			v := cf.EdgeSub(e1[a], e2[b])
			if err := checkFinite(v); err != nil {
				return 0, err
			}
			EC.Set(a, b, v)
		}
	}
	for a := 0; a < p; a++ {
		v := cf.EdgeDel(e1[a])
		if err := checkFinite(v); err != nil {
			return 0, err
		}
		EC.Set(a, q, v)
	}
	for b := 0; b < q; b++ {
		v := cf.EdgeIns(e2[b])
		if err := checkFinite(v); err != nil {
			return 0, err
		}
		EC.Set(p, b, v)
	}
	EC.Set(p, q, 0)

	res, err := solver.SolveLSAPE(EC)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFiniteCost
	}
	if v < 0 {
		return ErrNonFiniteCost
	}
	return nil
}
