package ipfp

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/oksentia/gedcore/gedgraph"
	"github.com/oksentia/gedcore/lsape"
	"github.com/oksentia/gedcore/mapping"
)

// state names the refiner's position in the INIT/ITER/LINE_SEARCH/REPLACE/
// CONVERGENCE_CHECK/DONE machine.
type state int

const (
	stateInit state = iota
	stateIter
	stateLineSearch
	stateReplace
	stateConvergenceCheck
	stateDone
)

// IterationStat records one ITER→CONVERGENCE_CHECK cycle's diagnostics.
type IterationStat struct {
	Iter       int
	S, R       float64
	Alpha, Beta float64
	T0          float64
	LineSearch  bool
}

// Result is the outcome of a Refine call.
type Result struct {
	Mapping    mapping.Mapping
	Cost       float64
	Converged  bool
	Iterations int
	History    []IterationStat
}

// refinerRunner carries one Refine call's mutable state: a private struct
// behind a package-level entry function, safe for concurrent use across
// distinct calls since nothing is shared.
type refinerRunner struct {
	g1, g2     gedgraph.Graph
	cf         gedgraph.CostFunction
	opts       Options
	n, m       int
	undirected bool

	C  *mat.Dense
	Xk *mat.Dense

	Lterm float64
	S, R  []float64

	state     state
	k         int
	converged bool
	history   []IterationStat
}

/*
Refine

Description:

	Runs IPFP from seed to a local optimum of the quadratic assignment
	objective ⟨C,X⟩ + ½⟨X,D(X)⟩, then projects the final iterate to a
	permutation and reports its exact edit cost.

Preconditions:

	g1.Directed() == g2.Directed() (ErrDirectednessMismatch), and seed must
	be sized for (g1,g2) (ErrSeedSizeMismatch). An empty graph pair returns
	the trivial empty mapping without iterating.

Cancellation:

	ctx is checked once per outer iteration; a cancelled context aborts with
	ctx.Err() before the next LSAPE solve is issued.
*/
func Refine(ctx context.Context, g1, g2 gedgraph.Graph, cf gedgraph.CostFunction, seed mapping.Mapping, opts Options) (Result, error) {
	if opts.MaxIter == 0 {
		opts.MaxIter = DefaultOptions().MaxIter
	}
	if opts.Epsilon == 0 {
		opts.Epsilon = DefaultOptions().Epsilon
	}
	if opts.Solver == nil {
		opts.Solver = DefaultOptions().Solver
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if g1.Directed() != g2.Directed() {
		return Result{}, ErrDirectednessMismatch
	}
	n, m := g1.Size(), g2.Size()
	if seed.N() != n || seed.M() != m {
		return Result{}, ErrSeedSizeMismatch
	}
	if n == 0 && m == 0 {
		return Result{Mapping: mapping.New(0, 0), Converged: true}, nil
	}

	nodeCost, err := lsape.BuildNodeCost(g1, g2, cf)
	if err != nil {
		return Result{}, err
	}

	r := &refinerRunner{
		g1: g1, g2: g2, cf: cf, opts: opts,
		n: n, m: m, undirected: !g1.Directed(),
		C:  nodeCost,
		Xk: mappingToMatrix(seed, n, m),
	}
	if err := r.run(ctx); err != nil {
		return Result{}, err
	}
	return r.finish()
}

func (r *refinerRunner) run(ctx context.Context) error {
	r.state = stateInit
	XkD := quadraticTerm(r.g1, r.g2, r.cf, r.Xk, r.undirected)
	r.Lterm = dot(r.C, r.Xk)
	r.S = append(r.S, dot(XkD, r.Xk)+r.Lterm)

	r.state = stateIter
	for r.k = 0; r.k < r.opts.MaxIter; r.k++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		oldLterm := r.Lterm
		XkD = quadraticTerm(r.g1, r.g2, r.cf, r.Xk, r.undirected)

		grad := mat.NewDense(r.n+1, r.m+1, nil)
		grad.Scale(2, XkD)
		grad.Add(grad, r.C)

		res, err := r.opts.Solver.SolveLSAPE(grad)
		if err != nil {
			return err
		}
		bkp1 := mappingToMatrix(mapping.Mapping{Fwd: res.RhoFwd, Rev: res.RhoRev}, r.n, r.m)

		Rk := dot(grad, bkp1)
		r.Lterm = dot(r.C, bkp1)
		Sk := r.S[len(r.S)-1]
		Skp1 := dot(XkD, bkp1) + r.Lterm
		r.R = append(r.R, Rk)
		r.S = append(r.S, Skp1)

		alpha := Rk - 2*Sk + oldLterm
		beta := Skp1 + Sk - Rk - oldLterm

		t0 := math.Inf(1)
		if beta > 1e-6 {
			t0 = -alpha / (2 * beta)
		}

		var converged bool
		if Rk < 1e-4 {
			converged = math.Abs(alpha) <= r.opts.Epsilon
		} else {
			converged = math.Abs(alpha/Rk) <= r.opts.Epsilon
		}

		stat := IterationStat{Iter: r.k, R: Rk, Alpha: alpha, Beta: beta, T0: t0}

		if beta <= 1e-5 || t0 >= 1 {
			r.state = stateReplace
			r.Xk = bkp1
		} else {
			r.state = stateLineSearch
			stat.LineSearch = true
			step := mat.NewDense(r.n+1, r.m+1, nil)
			step.Sub(bkp1, r.Xk)
			step.Scale(t0, step)
			next := mat.NewDense(r.n+1, r.m+1, nil)
			next.Add(r.Xk, step)
			r.Xk = next
			r.S[len(r.S)-1] = Sk - alpha*alpha/(4*beta)
			r.Lterm = dot(r.C, r.Xk)
		}
		stat.S = r.S[len(r.S)-1]
		r.history = append(r.history, stat)

		if r.opts.Log != nil {
			r.opts.Log.WithFields(map[string]any{
				"iter": r.k, "alpha": alpha, "beta": beta, "lineSearch": stat.LineSearch,
			}).Debug("ipfp iteration")
		}

		r.state = stateConvergenceCheck
		if converged {
			r.converged = true
			r.k++
			break
		}
	}
	r.state = stateDone
	return nil
}

func (r *refinerRunner) finish() (Result, error) {
	proj, err := projectToMapping(r.Xk, r.opts.Solver)
	if err != nil {
		return Result{}, err
	}
	cost, err := mapping.Cost(r.g1, r.g2, r.cf, proj)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mapping:    proj,
		Cost:       cost,
		Converged:  r.converged,
		Iterations: r.k,
		History:    r.history,
	}, nil
}
