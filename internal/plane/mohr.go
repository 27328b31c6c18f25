package plane

import "math"

// StressState represents a plane stress state at a material point.
// Sign convention: tension positive, shear positive on the +x face in +y.
type StressState struct {
	SigmaX float64 `json:"sigma_x"` // Normal stress on the x face (MPa)
	SigmaY float64 `json:"sigma_y"` // Normal stress on the y face (MPa)
	TauXY  float64 `json:"tau_xy"`  // In-plane shear stress (MPa)
}

// MohrsCircle holds the parameters of Mohr's circle for a plane stress state
type MohrsCircle struct {
	Center float64 // Average normal stress (MPa)
	Radius float64 // Always >= 0 (MPa)
	Sigma1 float64 // Major principal stress (MPa)
	Sigma2 float64 // Minor principal stress (MPa)
	TauMax float64 // In-plane maximum shear stress, equal to Radius (MPa)
}

// TransformedStress holds the stress components on axes rotated by an angle
type TransformedStress struct {
	SigmaXPrime float64 // Normal stress on the rotated x' face (MPa)
	SigmaYPrime float64 // Normal stress on the rotated y' face (MPa)
	TauXYPrime  float64 // Shear stress on the rotated faces (MPa)
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// average and half difference of the normal stresses
func (s StressState) avgHalfDiff() (avg, halfDiff float64) {
	return (s.SigmaX + s.SigmaY) / 2, (s.SigmaX - s.SigmaY) / 2
}

// ComputeMohrsCircle derives the Mohr's circle of a stress state.
// A zero radius (equal normal stresses, no shear) is a valid degenerate circle.
func ComputeMohrsCircle(s StressState) MohrsCircle {
	center, halfDiff := s.avgHalfDiff()
	radius := math.Hypot(halfDiff, s.TauXY)

	return MohrsCircle{
		Center: center,
		Radius: radius,
		Sigma1: center + radius,
		Sigma2: center - radius,
		TauMax: radius,
	}
}

// TransformStress rotates the stress state by angleDeg (counter-clockwise).
// Any real angle is accepted; the double-angle terms are periodic in 180°.
func TransformStress(s StressState, angleDeg float64) TransformedStress {
	theta := DegToRad(angleDeg)
	cos2 := math.Cos(2 * theta)
	sin2 := math.Sin(2 * theta)
	avg, halfDiff := s.avgHalfDiff()

	return TransformedStress{
		SigmaXPrime: avg + halfDiff*cos2 + s.TauXY*sin2,
		SigmaYPrime: avg - halfDiff*cos2 - s.TauXY*sin2,
		TauXYPrime:  -halfDiff*sin2 + s.TauXY*cos2,
	}
}

// PrincipalAngleDeg returns the rotation (degrees) that brings the x' axis
// onto the major principal direction.
//
// Both 0.5*atan2(2τxy, σx-σy) and the angle 90° from it are shear-free; the
// one giving the larger σx' wins. The orthogonal candidate is chosen only when
// it is strictly larger, so ties keep the base angle.
func PrincipalAngleDeg(s StressState) float64 {
	baseDeg := RadToDeg(0.5 * math.Atan2(2*s.TauXY, s.SigmaX-s.SigmaY))
	altDeg := baseDeg + 90

	base := TransformStress(s, baseDeg).SigmaXPrime
	alt := TransformStress(s, altDeg).SigmaXPrime
	if alt > base {
		return altDeg
	}
	return baseDeg
}

// MaxShearAngleDeg returns the rotation (degrees) of the plane carrying the
// in-plane maximum shear, 45° either side of the principal angle.
//
// The candidate with the larger |τx'y'| wins. When the magnitudes are equal
// the +45° candidate is returned if its shear is non-negative, otherwise -45°.
func MaxShearAngleDeg(s StressState) float64 {
	principal := PrincipalAngleDeg(s)
	plus := principal + 45
	minus := principal - 45

	tauPlus := TransformStress(s, plus).TauXYPrime
	tauMinus := TransformStress(s, minus).TauXYPrime

	switch {
	case math.Abs(tauPlus) > math.Abs(tauMinus):
		return plus
	case math.Abs(tauMinus) > math.Abs(tauPlus):
		return minus
	case tauPlus >= 0:
		return plus
	default:
		return minus
	}
}

// Analysis bundles everything the presentation layer draws for one
// stress state and display angle.
type Analysis struct {
	Stress        StressState
	AngleDeg      float64
	Circle        MohrsCircle
	Rotated       TransformedStress
	PrincipalDeg  float64
	MaxShearDeg   float64
	MaxShearTauXY float64 // Signed shear on the max-shear plane (MPa)
}

// Analyze evaluates the circle, the rotated state at angleDeg and the
// principal and max-shear orientations in one call.
func Analyze(s StressState, angleDeg float64) Analysis {
	maxShearDeg := MaxShearAngleDeg(s)

	return Analysis{
		Stress:        s,
		AngleDeg:      angleDeg,
		Circle:        ComputeMohrsCircle(s),
		Rotated:       TransformStress(s, angleDeg),
		PrincipalDeg:  PrincipalAngleDeg(s),
		MaxShearDeg:   maxShearDeg,
		MaxShearTauXY: TransformStress(s, maxShearDeg).TauXYPrime,
	}
}
