package triaxial

import "math"

// StressState represents a general (triaxial) stress state.
// The shear components are the off-diagonal terms of a symmetric tensor.
type StressState struct {
	SigmaX float64 `json:"sigma_x"` // MPa
	SigmaY float64 `json:"sigma_y"` // MPa
	SigmaZ float64 `json:"sigma_z"` // MPa
	TauXY  float64 `json:"tau_xy"`  // MPa
	TauYZ  float64 `json:"tau_yz"`  // MPa
	TauZX  float64 `json:"tau_zx"`  // MPa
}

// Matrix is a 3x3 tensor stored by value
type Matrix [3][3]float64

// Tensor builds the symmetric stress tensor
//
//	| σx   τxy  τzx |
//	| τxy  σy   τyz |
//	| τzx  τyz  σz  |
func (s StressState) Tensor() Matrix {
	return Matrix{
		{s.SigmaX, s.TauXY, s.TauZX},
		{s.TauXY, s.SigmaY, s.TauYZ},
		{s.TauZX, s.TauYZ, s.SigmaZ},
	}
}

// PrincipalStresses holds the ordered eigenvalues of the stress tensor
type PrincipalStresses struct {
	Sigma1 float64 // Largest principal stress (MPa)
	Sigma2 float64 // Intermediate principal stress (MPa)
	Sigma3 float64 // Smallest principal stress (MPa)
	TauMax float64 // (σ1 - σ3) / 2 (MPa)
}

// Invariants holds the three stress invariants
type Invariants struct {
	I1 float64 // Trace
	I2 float64 // Sum of principal 2x2 minors
	I3 float64 // Determinant
}

// ComputeInvariants evaluates I1, I2 and I3 from the tensor components
func ComputeInvariants(s StressState) Invariants {
	return Invariants{
		I1: s.SigmaX + s.SigmaY + s.SigmaZ,
		I2: s.SigmaX*s.SigmaY + s.SigmaY*s.SigmaZ + s.SigmaZ*s.SigmaX -
			s.TauXY*s.TauXY - s.TauYZ*s.TauYZ - s.TauZX*s.TauZX,
		I3: s.SigmaX*s.SigmaY*s.SigmaZ + 2*s.TauXY*s.TauYZ*s.TauZX -
			s.SigmaX*s.TauYZ*s.TauYZ - s.SigmaY*s.TauZX*s.TauZX - s.SigmaZ*s.TauXY*s.TauXY,
	}
}

// Invariants evaluates I1, I2 and I3 from the principal values
func (p PrincipalStresses) Invariants() Invariants {
	return Invariants{
		I1: p.Sigma1 + p.Sigma2 + p.Sigma3,
		I2: p.Sigma1*p.Sigma2 + p.Sigma2*p.Sigma3 + p.Sigma3*p.Sigma1,
		I3: p.Sigma1 * p.Sigma2 * p.Sigma3,
	}
}

// Circle is one of the three Mohr's circles of a triaxial state
type Circle struct {
	Label  string  // e.g. "σ1-σ3"
	A, B   float64 // Principal stresses bounding the circle (MPa)
	Center float64 // MPa
	Radius float64 // MPa
}

// Circles returns the Mohr's circles spanned by each pair of principal
// stresses, in the order σ1-σ2, σ2-σ3, σ1-σ3. The last one is the envelope.
func Circles(p PrincipalStresses) [3]Circle {
	pairs := [3]struct {
		label string
		a, b  float64
	}{
		{"σ1-σ2", p.Sigma1, p.Sigma2},
		{"σ2-σ3", p.Sigma2, p.Sigma3},
		{"σ1-σ3", p.Sigma1, p.Sigma3},
	}

	var circles [3]Circle
	for i, pr := range pairs {
		circles[i] = Circle{
			Label:  pr.label,
			A:      pr.a,
			B:      pr.b,
			Center: (pr.a + pr.b) / 2,
			Radius: math.Abs(pr.a-pr.b) / 2,
		}
	}
	return circles
}
