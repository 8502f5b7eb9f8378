package ged

import (
	"context"

	"github.com/oksentia/gedcore/bipartite"
	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/ipfp"
	"github.com/oksentia/gedcore/kbest"
	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/mapping"
	"github.com/oksentia/gedcore/multistart"
	"github.com/oksentia/gedcore/randomwalk"
)

/*
BipartiteGed

Description:

	The unrefined LSAPE baseline: solve the star-augmented cost matrix once
	and return its mapping directly, with no IPFP refinement. Every other
	entry point in this package is measured against this result — refinement
	never returns a mapping costlier than it.
*/
func BipartiteGed(g1, g2 gedgraph.Graph, cf gedgraph.CostFunction) (cost float64, m mapping.Mapping, err error) {
	if g1 == nil || g2 == nil {
		return 0, mapping.Mapping{}, ErrNilGraph
	}
	return bipartite.GED(g1, g2, cf, lsape.HungarianSolver{})
}

/*
Ged

Description:

	Runs the full pipeline: build the star-augmented cost matrix, enumerate
	up to Options.K distinct optimal LSAPE seeds via kbest.Enumerate,
	optionally add the random-walk seed, refine every seed with IPFP through
	a multistart.Driver, and return the best result.

Failure:

	ErrInvalidBudget if K<=0; ErrNilGraph if either graph is nil;
	gedgraph.ErrDirectednessMismatch if g1 and g2 disagree on Directed();
	otherwise any error surfaced by the cost callback, the solver, or the
	refiner.
*/
func Ged(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, opts ...Option) (cost float64, m mapping.Mapping, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.K <= 0 {
		return 0, mapping.Mapping{}, ErrInvalidBudget
	}
	if g1 == nil || g2 == nil {
		return 0, mapping.Mapping{}, ErrNilGraph
	}
	if g1.Directed() != g2.Directed() {
		return 0, mapping.Mapping{}, gedgraph.ErrDirectednessMismatch
	}

	if g1.Size() == 0 && g2.Size() == 0 {
		return 0, mapping.New(0, 0), nil
	}

	C, err := lsape.BuildStarAugmented(g1, g2, cf, o.Solver)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}

	seeds, err := kbest.Enumerate(C, o.K)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	if o.UseRandomWalkSeed {
		rwSeed, err := randomwalk.Seed(g1, g2, cf, o.RandomWalk)
		if err != nil {
			return 0, mapping.Mapping{}, err
		}
		seeds = append(seeds, rwSeed)
	}

	msOpts := o.Multistart
	msOpts.IPFP = o.IPFP
	driver := multistart.NewDriver(msOpts)
	res, err := driver.Run(ctx, g1, g2, cf, seeds)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	return res.Best.Cost, res.Best.Mapping, nil
}

/*
RefineFrom

Description:

	Runs a single IPFP refinement from a caller-supplied seed, skipping
	star-augmented cost matrix construction and seed enumeration (IPFP still
	builds its own node-only cost matrix). Useful when the caller already
	has a candidate mapping (e.g. from an external heuristic) and only wants
	local-search improvement.
*/
func RefineFrom(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seed mapping.Mapping, opts ...Option) (cost float64, m mapping.Mapping, err error) {
	if g1 == nil || g2 == nil {
		return 0, mapping.Mapping{}, ErrNilGraph
	}
	if err := seed.Validate(); err != nil {
		return 0, mapping.Mapping{}, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res, err := ipfp.Refine(ctx, g1, g2, cf, seed, o.IPFP)
	if err != nil {
		return 0, mapping.Mapping{}, err
	}
	return res.Cost, res.Mapping, nil
}
