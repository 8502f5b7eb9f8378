package mapping

/*
Mapping

Description:

	A Mapping is a node correspondence between a graph G1 of size n and a
	graph G2 of size m, over the augmented alphabet {0..m-1, ε} for G1's
	side and {0..n-1, ε} for G2's side. Fwd[i] == m means "delete node i of
	G1"; Rev[j] == n means "insert node j of G2".

Invariants:

	  - len(Fwd) == n, len(Rev) == m.
	  - if Fwd[i] == j and j < m, then Rev[j] == i.
	  - if Rev[j] == i and i < n, then Fwd[i] == j.
	  - multiple i may map to ε (m); multiple j may map to ε (n).

Ownership:

	Every Mapping returned by a gedcore solver is a fresh value: callers may
	retain, copy, or discard it freely with no aliasing to solver-internal
	buffers. Ownership of the returned Mapping passes to the caller once the
	call returns.
*/
type Mapping struct {
	Fwd []int // len n, values in [0,m]
	Rev []int // len m, values in [0,n]
}

// New builds a Mapping of the given sizes, initialized to all-ε (every node
// deleted / every node inserted). Use it as a base for incremental
// construction, or call Validate after filling Fwd/Rev by hand.
func New(n, m int) Mapping {
	fwd := make([]int, n)
	for i := range fwd {
		fwd[i] = m
	}
	rev := make([]int, m)
	for j := range rev {
		rev[j] = n
	}
	return Mapping{Fwd: fwd, Rev: rev}
}

// Clone returns a deep copy; solvers hand out clones so callers never
// observe internal buffer reuse when an enumerator recycles its scratch
// space across successive matchings.
func (m Mapping) Clone() Mapping {
	fwd := make([]int, len(m.Fwd))
	copy(fwd, m.Fwd)
	rev := make([]int, len(m.Rev))
	copy(rev, m.Rev)
	return Mapping{Fwd: fwd, Rev: rev}
}

// N returns the size of G1 this mapping was built for.
func (m Mapping) N() int { return len(m.Fwd) }

// M returns the size of G2 this mapping was built for.
func (m Mapping) M() int { return len(m.Rev) }

// Validate checks the invariants documented on Mapping. It is used by tests
// and by ged.RefineFrom, which rejects a malformed seed before refining it.
func (m Mapping) Validate() error {
	n, mm := len(m.Fwd), len(m.Rev)
	for i, j := range m.Fwd {
		if j < 0 || j > mm {
			return ErrOutOfRange
		}
		if j < mm && m.Rev[j] != i {
			return ErrInconsistent
		}
	}
	for j, i := range m.Rev {
		if i < 0 || i > n {
			return ErrOutOfRange
		}
		if i < n && m.Fwd[i] != j {
			return ErrInconsistent
		}
	}
	return nil
}
