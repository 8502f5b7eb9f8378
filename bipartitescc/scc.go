package bipartitescc

import "gonum.org/v1/gonum/graph/topo"

// SCC records the membership of one strongly connected component of an
// EqualityDigraph, split by side: X[i] is true iff x_i belongs to this
// component, Y[j] iff y_j does.
type SCC struct {
	X []bool
	Y []bool
}

// SCCs returns the strongly connected components of d, in the reverse
// topological order gonum's TarjanSCC produces — every bipartite node
// appears in exactly one returned component.
func (d *EqualityDigraph) SCCs() []SCC {
	components := topo.TarjanSCC(d.G)
	out := make([]SCC, len(components))
	for k, comp := range components {
		s := SCC{X: make([]bool, d.N), Y: make([]bool, d.N)}
		for _, node := range comp {
			id := node.ID()
			if id < int64(d.N) {
				s.X[id] = true
			} else {
				s.Y[id-int64(d.N)] = true
			}
		}
		out[k] = s
	}
	return out
}

// componentOf returns, for each bipartite node id, the index into sccs of
// its component.
func componentOf(N int, sccs []SCC) (xComp, yComp []int) {
	xComp = make([]int, N)
	yComp = make([]int, N)
	for k, s := range sccs {
		for i, in := range s.X {
			if in {
				xComp[i] = k
			}
		}
		for j, in := range s.Y {
			if in {
				yComp[j] = k
			}
		}
	}
	return xComp, yComp
}

// PruneCrossSCCEdges removes every arc of d whose endpoints lie in
// different SCCs: only intra-SCC equality edges can participate in any
// optimal perfect matching of the equality digraph.
func (d *EqualityDigraph) PruneCrossSCCEdges(sccs []SCC) {
	xComp, yComp := componentOf(d.N, sccs)

	edges := d.G.Edges()
	var toRemove [][2]int64
	for edges.Next() {
		e := edges.Edge()
		from, to := e.From().ID(), e.To().ID()
		fromComp := compOf(from, d.N, xComp, yComp)
		toComp := compOf(to, d.N, xComp, yComp)
		if fromComp != toComp {
			toRemove = append(toRemove, [2]int64{from, to})
		}
	}
	for _, fe := range toRemove {
		d.G.RemoveEdge(fe[0], fe[1])
	}
}

func compOf(id int64, N int, xComp, yComp []int) int {
	if id < int64(N) {
		return xComp[id]
	}
	return yComp[id-int64(N)]
}
