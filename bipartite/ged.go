package bipartite

import (
	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/mapping"
)

/*
GED

Description:

	Builds the star-augmented LSAPE cost matrix between g1 and g2, solves it
	with solver, and decodes the result into a Mapping. The returned cost is
	the exact edit cost of that mapping (mapping.Cost), not the LSAPE
	objective of the star-augmented matrix.

Failure:

	Fails only if the cost callback yields a non-finite or negative value
	(lsape.ErrNonFiniteCost, or mapping.ErrNonFiniteCost while scoring the
	mapping); the solver itself always terminates.
*/
func GED(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, solver lsape.Solver) (cost float64, m mapping.Mapping, err error) {
	if solver == nil {
		solver = lsape.HungarianSolver{}
	}
	C, err := lsape.BuildStarAugmented(g1, g2, cf, solver)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	res, err := solver.SolveLSAPE(C)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	m = mapping.Mapping{Fwd: res.RhoFwd, Rev: res.RhoRev}
	cost, err = mapping.Cost(g1, g2, cf, m)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	return cost, m, nil
}
