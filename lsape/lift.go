package lsape

import "gonum.org/v1/gonum/mat"

// inf is the sentinel used for "no edge" cells of the LSAP lifting. It is
// kept well below math.MaxFloat64 so that sums of a few cells never
// overflow, but far above any realistic cost-callback output.
const inf = 1e15

// Lift builds the (n+m)×(n+m) LSAP lifting C_L of an (n+1)×(m+1) LSAPE cost
// matrix C:
//
//	upper-left n×m block   = C[0..n, 0..m]
//	diagonal C_L[i,m+i]    = C[i,m]      for i<n   (deletion)
//	diagonal C_L[n+j,j]    = C[n,j]      for j<m   (insertion)
//	bottom-right m×n block = 0
//	all other cells        = +inf
//
// C_L is used only by the K-best enumerator (kbest), which needs a square
// assignment problem to build the equality digraph over X∪Y.
func Lift(C *mat.Dense) *mat.Dense {
	nr, nc := C.Dims()
	n, m := nr-1, nc-1
	N := n + m
	L := mat.NewDense(N, N, nil)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			L.Set(i, j, inf)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			L.Set(i, j, C.At(i, j))
		}
	}
	for i := 0; i < n; i++ {
		L.Set(i, m+i, C.At(i, m))
	}
	for j := 0; j < m; j++ {
		L.Set(n+j, j, C.At(n, j))
	}
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			L.Set(n+j, m+i, 0)
		}
	}
	return L
}
