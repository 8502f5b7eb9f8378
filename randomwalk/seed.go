package randomwalk

import (
	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/mapping"
)

/*
Seed

Description:

	Builds the walk-count cost matrix (BuildCost) and solves it, returning a
	Mapping usable as a multistart seed alongside the star-augmented
	(bipartite) and K-best seeds — a structurally different starting point
	for IPFP since it never inspects individual edge attributes directly.
*/
func Seed(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, opts Options) (mapping.Mapping, error) {
	C, err := BuildCost(g1, g2, cf, opts)
	if err != nil {
		return mapping.Mapping{}, err
	}
	res, err := opts.withDefaults().Solver.SolveLSAPE(C)
	if err != nil {
		return mapping.Mapping{}, err
	}
	return mapping.Mapping{Fwd: res.RhoFwd, Rev: res.RhoRev}, nil
}
