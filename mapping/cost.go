package mapping

import (
	"math"

	"github.com/oksentia/gedcore/gedgraph"
)

/*
Cost

Description:

	Evaluates the exact edit cost of a Mapping against a graph pair: the sum
	of node substitution/deletion/insertion costs implied by Fwd/Rev, plus
	the sum of edge substitution/deletion/insertion costs implied by mapping
	every edge of g1 through Fwd and every edge of g2 through Rev. Unlike a
	solver's reported primal cost (which may be a linearized surrogate, e.g.
	IPFP's quadratic-term relaxation), this always reflects the true GED
	objective for the given correspondence.

Algorithm:

	Node term: for i<n, NodeDel(g1) if Fwd[i]=ε else NodeSub; for j<m with
	Rev[j]=ε, NodeIns(g2).
	Edge term: for every edge (i,j) of g1 (each undirected edge counted once,
	each directed edge counted once per orientation), if either endpoint is
	deleted or g2 has no edge between the images, EdgeDel; otherwise EdgeSub.
	Symmetrically for every edge of g2 with no g1 preimage, EdgeIns.
*/
func Cost(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, m Mapping) (float64, error) {
	n, mm := m.N(), m.M()
	directed := g1.Directed()
	total := 0.0

	for i := 0; i < n; i++ {
		j := m.Fwd[i]
		var v float64
		if j == mm {
			v = cf.NodeDel(g1.NodeAttr(i))
		} else {
			v = cf.NodeSub(g1.NodeAttr(i), g2.NodeAttr(j))
		}
		if err := checkFinite(v); err != nil {
			return 0, err
		}
		total += v
	}
	for j := 0; j < mm; j++ {
		if m.Rev[j] == n {
			v := cf.NodeIns(g2.NodeAttr(j))
			if err := checkFinite(v); err != nil {
				return 0, err
			}
			total += v
		}
	}

	for i := 0; i < n; i++ {
		for _, e := range g1.IncidentEdges(i) {
			if directed {
				if e.From != i {
					continue
				}
			} else if e.From >= e.To {
				continue
			}
			var v float64
			i2, j2 := m.Fwd[e.From], m.Fwd[e.To]
			if i2 == mm || j2 == mm {
				v = cf.EdgeDel(e)
			} else if a2, ok := g2.EdgeAt(i2, j2); ok {
				v = cf.EdgeSub(e, gedgraph.EdgeRef{From: i2, To: j2, Attr: a2})
			} else {
				v = cf.EdgeDel(e)
			}
			if err := checkFinite(v); err != nil {
				return 0, err
			}
			total += v
		}
	}
	for j := 0; j < mm; j++ {
		for _, e := range g2.IncidentEdges(j) {
			if directed {
				if e.From != j {
					continue
				}
			} else if e.From >= e.To {
				continue
			}
			i1, k1 := m.Rev[e.From], m.Rev[e.To]
			if i1 == n || k1 == n {
				v := cf.EdgeIns(e)
				if err := checkFinite(v); err != nil {
					return 0, err
				}
				total += v
				continue
			}
			if _, ok := g1.EdgeAt(i1, k1); !ok {
				v := cf.EdgeIns(e)
				if err := checkFinite(v); err != nil {
					return 0, err
				}
				total += v
			}
		}
	}
	return total, nil
}

func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrNonFiniteCost
	}
	return nil
}
