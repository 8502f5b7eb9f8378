package ipfp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/mapping"
)

type cell struct {
	i, k int
	val  float64
}

func nonzeroCells(X *mat.Dense) []cell {
	r, c := X.Dims()
	out := make([]cell, 0, r+c)
	for i := 0; i < r; i++ {
		for k := 0; k < c; k++ {
			if v := X.At(i, k); v != 0 {
				out = append(out, cell{i, k, v})
			}
		}
	}
	return out
}

/*
quadraticTerm

Description:

	Computes D(X), the (n+1)x(m+1) matrix whose (j,l) entry sums, over every
	nonzero cell (i,k) of X, the edge-edit cost induced by pairing edge (i,j)
	of g1 with edge (k,l) of g2, weighted by X[i,k]. Only nonzero cells of X
	are visited: an indicator matrix carries at most n+m nonzero entries and
	a line-search iterate is a convex combination of such matrices, so for
	nnz nonzero cells the naive O(n^2 m^2) evaluation becomes
	O(nnz·(n+1)(m+1)).

Undirected halving:

	Each true edge is discovered twice (once from either endpoint) when both
	graphs are undirected, so every accumulated cell is halved.
*/
func quadraticTerm(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, X *mat.Dense, undirected bool) *mat.Dense {
	n, m := g1.Size(), g2.Size()
	nz := nonzeroCells(X)
	D := mat.NewDense(n+1, m+1, nil)
	for j := 0; j <= n; j++ {
		epsJ := j >= n
		for l := 0; l <= m; l++ {
			epsL := l >= m
			sum := 0.0
			for _, c := range nz {
				i, k, val := c.i, c.k, c.val
				epsI := i >= n
				epsK := k >= m
				if i == j && !epsI {
					continue
				}
				if k == l && !epsK {
					continue
				}
				var e1, e2 gedgraph.EdgeRef
				var e1ok, e2ok bool
				if !epsI && !epsJ {
					if a, ok := g1.EdgeAt(i, j); ok {
						e1, e1ok = gedgraph.EdgeRef{From: i, To: j, Attr: a}, true
					}
				}
				if !epsK && !epsL {
					if a, ok := g2.EdgeAt(k, l); ok {
						e2, e2ok = gedgraph.EdgeRef{From: k, To: l, Attr: a}, true
					}
				}
				var edgeCost float64
				switch {
				case e1ok && e2ok:
					edgeCost = cf.EdgeSub(e1, e2)
				case e1ok && !e2ok:
					edgeCost = cf.EdgeDel(e1)
				case !e1ok && e2ok:
					edgeCost = cf.EdgeIns(e2)
				}
				sum += edgeCost * val
			}
			if undirected {
				sum *= 0.5
			}
			D.Set(j, l, sum)
		}
	}
	return D
}

func dot(A, B *mat.Dense) float64 {
	r, c := A.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += A.At(i, j) * B.At(i, j)
		}
	}
	return sum
}

// mappingToMatrix builds the (n+1)x(m+1) indicator matrix of a Mapping:
// X[i,Fwd[i]]=1 for every i (covering substitutions and, via column m,
// deletions), and X[n,j]=1 for every j with Rev[j]=ε (insertions not already
// marked by the first pass).
func mappingToMatrix(mp mapping.Mapping, n, m int) *mat.Dense {
	X := mat.NewDense(n+1, m+1, nil)
	for i, j := range mp.Fwd {
		X.Set(i, j, 1)
	}
	for j, i := range mp.Rev {
		if i == n {
			X.Set(n, j, 1)
		}
	}
	return X
}
