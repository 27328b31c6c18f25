package triaxial

import (
	"math"
	"sort"
)

// Reference solver settings
const (
	DefaultMaxIterations = 50    // Rotations before giving up on convergence
	DefaultTolerance     = 1e-10 // Largest |off-diagonal| treated as zero
)

// SolverOptions tunes the Jacobi iteration. Zero values select the defaults.
type SolverOptions struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultSolverOptions returns the reference iteration cap and tolerance
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

func (o SolverOptions) withDefaults() SolverOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// Solution carries the principal stresses together with solver diagnostics.
// When Converged is false the iteration cap was hit and the values are a
// best-effort approximation.
type Solution struct {
	Principal  PrincipalStresses
	Iterations int     // Rotations applied
	OffDiag    float64 // Largest |off-diagonal| left in the working matrix
	Converged  bool
}

// jacobiEigenvalues diagonalizes a symmetric matrix in place by classical
// Jacobi rotations, always zeroing the largest off-diagonal pair.
// It returns the diagonal, the number of rotations, the residual largest
// off-diagonal entry and whether that residual fell below the tolerance.
func jacobiEigenvalues(a Matrix, opts SolverOptions) ([3]float64, int, float64, bool) {
	iterations := 0
	converged := false
	var largest float64

	for iter := 0; iter < opts.MaxIterations; iter++ {
		var p, q int
		p, q, largest = maxOffDiagonal(a)
		if largest < opts.Tolerance {
			converged = true
			break
		}

		rotate(&a, p, q)
		iterations++
	}

	// the cap may be reached on the very rotation that converged
	if !converged {
		_, _, largest = maxOffDiagonal(a)
		converged = largest < opts.Tolerance
	}

	return [3]float64{a[0][0], a[1][1], a[2][2]}, iterations, largest, converged
}

// maxOffDiagonal finds the upper-triangle entry with the largest magnitude.
// Ties keep the first pair in row-major order.
func maxOffDiagonal(a Matrix) (p, q int, largest float64) {
	p, q = 0, 1
	largest = math.Abs(a[0][1])
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if v := math.Abs(a[i][j]); v > largest {
				largest = v
				p, q = i, j
			}
		}
	}
	return p, q, largest
}

// rotate applies the similarity transform that annihilates a[p][q].
// Every entry in rows and columns p and q is updated; symmetry is kept.
func rotate(a *Matrix, p, q int) {
	app := a[p][p]
	aqq := a[q][q]
	apq := a[p][q]

	theta := 0.5 * math.Atan2(2*apq, aqq-app)
	c := math.Cos(theta)
	s := math.Sin(theta)

	a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
	a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
	a[p][q] = 0
	a[q][p] = 0

	for k := 0; k < 3; k++ {
		if k == p || k == q {
			continue
		}
		akp := a[p][k]
		akq := a[q][k]
		a[p][k] = c*akp - s*akq
		a[k][p] = a[p][k]
		a[q][k] = s*akp + c*akq
		a[k][q] = a[q][k]
	}
}

// Solve extracts the principal stresses of s with the given solver options
// and reports how the iteration ended.
func Solve(s StressState, opts SolverOptions) Solution {
	opts = opts.withDefaults()

	// Tensor returns a fresh array value, so the rotations never touch s
	eig, iterations, offDiag, converged := jacobiEigenvalues(s.Tensor(), opts)

	values := eig[:]
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	return Solution{
		Principal: PrincipalStresses{
			Sigma1: values[0],
			Sigma2: values[1],
			Sigma3: values[2],
			TauMax: (values[0] - values[2]) / 2,
		},
		Iterations: iterations,
		OffDiag:    offDiag,
		Converged:  converged,
	}
}

// GetPrincipalStresses returns the principal stresses of s using the
// reference solver settings. It never fails; see Solve for diagnostics.
func GetPrincipalStresses(s StressState) PrincipalStresses {
	return Solve(s, DefaultSolverOptions()).Principal
}
