package ipfp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/mapping"
)

// projectToMapping solves LSAPE(1-Xk) to project the (possibly fractional)
// final iterate back onto a permutation: minimizing 1-X is equivalent to
// maximizing X, so the solver picks the assignment closest to Xk's mass.
func projectToMapping(Xk *mat.Dense, solver lsape.Solver) (mapping.Mapping, error) {
	r, c := Xk.Dims()
	n, m := r-1, c-1
	P := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			P.Set(i, j, 1-Xk.At(i, j))
		}
	}
	P.Set(n, m, 0)
	res, err := solver.SolveLSAPE(P)
	if err != nil {
		return mapping.Mapping{}, err
	}
	return mapping.Mapping{Fwd: res.RhoFwd, Rev: res.RhoRev}, nil
}
