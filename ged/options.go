package ged

import (
	"github.com/oksentia/gedcore/ipfp"
	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/multistart"
	"github.com/oksentia/gedcore/randomwalk"
)

// Options configures a Ged call. Build it with the With* functional options
// below; the zero value is never used directly (defaultOptions seeds every
// field before options are applied).
type Options struct {
	// K bounds the number of K-best seeds enumerated from the equality
	// digraph. Must be positive.
	K int
	// Solver resolves the per-node-pair edge assignments of the
	// star-augmented cost matrix. kbest enumeration solves its lifted
	// matrix with lsape.SolveSquare; IPFP and the random-walk seed use
	// IPFP.Solver and RandomWalk.Solver.
	Solver lsape.Solver
	// IPFP is forwarded to every seed's refinement.
	IPFP ipfp.Options
	// Multistart controls the worker pool refining the K seeds.
	Multistart multistart.Options
	// RandomWalk is used only when UseRandomWalkSeed is set.
	RandomWalk        randomwalk.Options
	UseRandomWalkSeed bool
}

// Option adjusts an Options value.
type Option func(*Options)

// WithK sets the K-best seed budget.
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithSolver overrides the LSAPE solver (default lsape.HungarianSolver{}).
func WithSolver(s lsape.Solver) Option { return func(o *Options) { o.Solver = s } }

// WithIPFPOptions overrides IPFP's tunables for every seed.
func WithIPFPOptions(i ipfp.Options) Option { return func(o *Options) { o.IPFP = i } }

// WithParallelism sets how many seeds refine concurrently.
func WithParallelism(p int) Option {
	return func(o *Options) { o.Multistart.Parallelism = p }
}

// WithRandomWalkSeed adds the walk-count seed alongside the K-best seeds.
func WithRandomWalkSeed(rw randomwalk.Options) Option {
	return func(o *Options) {
		o.UseRandomWalkSeed = true
		o.RandomWalk = rw
	}
}

func defaultOptions() Options {
	return Options{
		K:          1,
		Solver:     lsape.HungarianSolver{},
		IPFP:       ipfp.DefaultOptions(),
		Multistart: multistart.DefaultOptions(),
		RandomWalk: randomwalk.DefaultOptions(),
	}
}
