package ipfp

import (
	"github.com/sirupsen/logrus"

	"github.com/oksentia/gedcore/lsape"
)

// Options carries IPFP's tunables: a value type built by DefaultOptions and
// adjusted by the caller before being handed to Refine.
type Options struct {
	// MaxIter bounds the ITER/CONVERGENCE_CHECK loop.
	MaxIter int
	// Epsilon is the relative (or, below R<1e-4, absolute) convergence
	// threshold on alpha.
	Epsilon float64
	// Solver resolves the per-iteration LSAPE gradient projection and the
	// final projection of the fractional iterate to a permutation. Defaults
	// to lsape.HungarianSolver{} when nil.
	Solver lsape.Solver
	// Log receives per-iteration debug records; nil disables logging.
	Log *logrus.Entry
}

// DefaultOptions returns MaxIter=100, Epsilon=1e-3, the Hungarian solver, and
// an entry on the standard logger, which drops the per-iteration Debug
// records unless that logger's level is raised to Debug.
func DefaultOptions() Options {
	return Options{
		MaxIter: 100,
		Epsilon: 1e-3,
		Solver:  lsape.HungarianSolver{},
		Log:     logrus.NewEntry(logrus.StandardLogger()),
	}
}

func (o Options) validate() error {
	if o.MaxIter <= 0 || o.Epsilon <= 0 {
		return ErrInvalidOptions
	}
	if o.Solver == nil {
		return ErrInvalidOptions
	}
	return nil
}
