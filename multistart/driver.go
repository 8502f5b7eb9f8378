package multistart

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/ipfp"
	"github.com/oksentia/gedcore/mapping"
)

// Options configures a Driver.
type Options struct {
	// Parallelism bounds the number of concurrently running refinements.
	// 0 or 1 selects RunSequential's single-goroutine behavior.
	Parallelism int
	// IPFP is forwarded to every seed's ipfp.Refine call.
	IPFP ipfp.Options
}

// DefaultOptions returns sequential execution with ipfp.DefaultOptions.
func DefaultOptions() Options {
	return Options{Parallelism: 1, IPFP: ipfp.DefaultOptions()}
}

// SeedResult is one seed's outcome, indexed by its position in the seeds
// slice passed to Run.
type SeedResult struct {
	Index  int
	Result ipfp.Result
	Err    error
}

// Result is the outcome of a multistart run: every seed's individual result
// plus the argmin over the ones that succeeded. Ties break on the lowest
// seed index, so a fixed seed slice always reports the same winner.
type Result struct {
	Seeds     []SeedResult
	Best      ipfp.Result
	BestIndex int
}

// Driver carries Options across repeated Run calls rather than living as
// package state.
type Driver struct {
	Opts Options
}

// NewDriver builds a Driver with the given Options.
func NewDriver(opts Options) *Driver {
	return &Driver{Opts: opts}
}

// Run dispatches to RunParallel when Opts.Parallelism > 1, else
// RunSequential.
func (d *Driver) Run(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seeds []mapping.Mapping) (Result, error) {
	if d.Opts.Parallelism > 1 {
		return d.RunParallel(ctx, g1, g2, cf, seeds)
	}
	return d.RunSequential(ctx, g1, g2, cf, seeds)
}

// RunSequential refines every seed on the calling goroutine, in order,
// short-circuiting each remaining seed with ctx.Err() once ctx is
// cancelled rather than starting a refinement doomed to abort.
func (d *Driver) RunSequential(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seeds []mapping.Mapping) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, ErrNoSeeds
	}
	results := make([]SeedResult, len(seeds))
	for i, seed := range seeds {
		if err := ctx.Err(); err != nil {
			results[i] = SeedResult{Index: i, Err: err}
			continue
		}
		res, err := ipfp.Refine(ctx, g1, g2, cf, seed, d.Opts.IPFP)
		results[i] = SeedResult{Index: i, Result: res, Err: err}
	}
	return pickBest(results)
}

// RunParallel refines every seed concurrently across a pool bounded by
// Opts.Parallelism. g1, g2, and cf are shared read-only across workers;
// each worker owns only its own seed and result slot.
func (d *Driver) RunParallel(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seeds []mapping.Mapping) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, ErrNoSeeds
	}
	n := d.Opts.Parallelism
	if n <= 0 {
		n = 1
	}

	results := make([]SeedResult, len(seeds))
	p := pool.New().WithMaxGoroutines(n)
	for i, seed := range seeds {
		i, seed := i, seed
		p.Go(func() {
			res, err := ipfp.Refine(ctx, g1, g2, cf, seed, d.Opts.IPFP)
			results[i] = SeedResult{Index: i, Result: res, Err: err}
		})
	}
	p.Wait()
	return pickBest(results)
}

// RunSequential and RunParallel are package-level wrappers over a
// throwaway Driver, for callers with no need to reuse Options.
func RunSequential(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seeds []mapping.Mapping, opts Options) (Result, error) {
	return (&Driver{Opts: opts}).RunSequential(ctx, g1, g2, cf, seeds)
}

func RunParallel(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seeds []mapping.Mapping, opts Options) (Result, error) {
	return (&Driver{Opts: opts}).RunParallel(ctx, g1, g2, cf, seeds)
}

func pickBest(results []SeedResult) (Result, error) {
	best := -1
	var lastErr error
	for i, r := range results {
		if r.Err != nil {
			lastErr = r.Err
			continue
		}
		if best == -1 || r.Result.Cost < results[best].Result.Cost {
			best = i
		}
	}
	if best == -1 {
		if lastErr != nil {
			return Result{Seeds: results}, fmt.Errorf("%w: %w", ErrAllSeedsFailed, lastErr)
		}
		return Result{Seeds: results}, ErrAllSeedsFailed
	}
	return Result{Seeds: results, Best: results[best].Result, BestIndex: best}, nil
}
