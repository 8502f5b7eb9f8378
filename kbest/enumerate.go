package kbest

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/bipartitescc"
	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/mapping"
)

// Enumerate returns up to K distinct perfect matchings of C (an (n+1)×(m+1)
// LSAPE cost matrix), each of cost equal to the LSAP optimum on C's lifting
// C_L, decoded to (n,m)-shaped mapping.Mapping values. Any negative K (e.g.
// -1) requests all distinct optima; K == 0 is rejected.
func Enumerate(C *mat.Dense, k int) ([]mapping.Mapping, error) {
	if k == 0 {
		return nil, ErrBudgetExhausted
	}
	nr, nc := C.Dims()
	n, m := nr-1, nc-1

	CL := lsape.Lift(C)
	perm, u, v, err := lsape.SolveSquare(CL)
	if err != nil {
		return nil, err
	}

	digraph, err := bipartitescc.Build(CL, perm, u, v)
	if err != nil {
		return nil, err
	}
	sccs := digraph.SCCs()

	var perScc [][]map[int]int
	for _, s := range sccs {
		var xs, ys []int
		for i, in := range s.X {
			if in {
				xs = append(xs, i)
			}
		}
		for j, in := range s.Y {
			if in {
				ys = append(ys, j)
			}
		}
		if len(xs) == 0 {
			continue // pure-Y singleton with no counterpart in this pass
		}
		if len(xs) == 1 {
			// Forced pair: no alternative achieves the same optimum.
			perScc = append(perScc, []map[int]int{{xs[0]: perm[xs[0]]}})
			continue
		}
		adj := make(map[int][]int, len(xs))
		for _, x := range xs {
			for _, y := range ys {
				if bipartitescc.Tight(CL, u, v, x, y) {
					adj[x] = append(adj[x], y)
				}
			}
		}
		budget := -1
		if k > 0 {
			budget = k
		}
		// Keep one bijection per decoded mapping: ε-row/ε-column pairings do not change it.
		seen := make(map[string]bool)
		var distinct []map[int]int
		for _, opt := range permuteComponent(xs, adj, budget) {
			var key []int
			for _, x := range xs {
				if x < n || opt[x] < m {
					key = append(key, x, opt[x])
				}
			}
			if ks := fmt.Sprint(key); !seen[ks] {
				seen[ks] = true
				distinct = append(distinct, opt)
			}
		}
		perScc = append(perScc, distinct)
	}

	combos := combine(perScc, k)

	N := n + m
	results := make([]mapping.Mapping, 0, len(combos))
	for _, combo := range combos {
		fullPerm := make([]int, N)
		for x, y := range combo {
			fullPerm[x] = y
		}
		fwd, rev := lsape.DecodeLift(fullPerm, n, m)
		results = append(results, mapping.Mapping{Fwd: fwd, Rev: rev})
	}
	return results, nil
}

// combine takes, for each SCC, its list of local (x→y) assignment options,
// and returns the cartesian product merged into full assignments, capped at
// k total (k<0 means unbounded). The cap is applied after each SCC is
// folded in, not mid-fold, so every entry in the result is a complete
// assignment spanning all SCCs — never a partial one.
func combine(perScc [][]map[int]int, k int) []map[int]int {
	results := []map[int]int{{}}
	for _, options := range perScc {
		if len(options) == 0 {
			return nil
		}
		next := make([]map[int]int, 0, len(results)*len(options))
		for _, base := range results {
			for _, opt := range options {
				merged := make(map[int]int, len(base)+len(opt))
				for kk, vv := range base {
					merged[kk] = vv
				}
				for kk, vv := range opt {
					merged[kk] = vv
				}
				next = append(next, merged)
			}
		}
		if k > 0 && len(next) > k {
			next = next[:k]
		}
		results = next
	}
	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results
}
