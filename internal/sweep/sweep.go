package sweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gomohr/internal/plane"
)

// MaxRows bounds the size of a single sweep table
const MaxRows = 100000

// Row is the transformed stress at one rotation angle
type Row struct {
	AngleDeg float64
	plane.TransformedStress
}

// Table is a sweep of a plane stress state over a range of angles
type Table struct {
	Stress plane.StressState
	From   float64 // degrees
	To     float64 // degrees
	Step   float64 // degrees
	Rows   []Row
}

// Errors returned by Run for unusable sweep bounds
var (
	// ErrStep is returned when the step is not a positive finite number
	ErrStep = errors.New("sweep step must be positive and finite")
	// ErrRange is returned when an end angle is not finite or to < from
	ErrRange = errors.New("sweep range must be finite with end not before start")
	// ErrTooLarge is returned when the sweep would exceed MaxRows
	ErrTooLarge = fmt.Errorf("sweep exceeds %d rows", MaxRows)
)

// Run evaluates the transformed stress from `from` to `to` (inclusive) every
// `step` degrees. Angles are computed as from+i*step so no drift accumulates.
func Run(s plane.StressState, from, to, step float64) (*Table, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, ErrStep
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) || to < from {
		return nil, ErrRange
	}

	span := (to - from) / step
	if !(span+1 <= MaxRows) {
		return nil, ErrTooLarge
	}
	// tolerate rounding so that e.g. 0..180 by 0.1 still ends on 180
	n := int(math.Floor(span+1e-9)) + 1

	t := &Table{Stress: s, From: from, To: to, Step: step, Rows: make([]Row, n)}
	for i := range t.Rows {
		angle := from + float64(i)*step
		t.Rows[i] = Row{AngleDeg: angle, TransformedStress: plane.TransformStress(s, angle)}
	}
	return t, nil
}

// Extreme is a sampled extreme value and the angle it occurred at
type Extreme struct {
	AngleDeg float64
	Value    float64
}

// Extremes summarises the sampled extremes of a sweep
type Extremes struct {
	MaxSigmaX   Extreme
	MinSigmaX   Extreme
	MaxAbsShear Extreme // Value keeps the sign of the shear
}

// Extremes returns the largest and smallest σx' and the largest |τx'y'|
// found among the sampled rows. An empty table yields the zero value.
func (t *Table) Extremes() Extremes {
	if len(t.Rows) == 0 {
		return Extremes{}
	}

	sx := make([]float64, len(t.Rows))
	absTau := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		sx[i] = r.SigmaXPrime
		absTau[i] = math.Abs(r.TauXYPrime)
	}

	hi := floats.MaxIdx(sx)
	lo := floats.MinIdx(sx)
	sh := floats.MaxIdx(absTau)

	return Extremes{
		MaxSigmaX:   Extreme{AngleDeg: t.Rows[hi].AngleDeg, Value: t.Rows[hi].SigmaXPrime},
		MinSigmaX:   Extreme{AngleDeg: t.Rows[lo].AngleDeg, Value: t.Rows[lo].SigmaXPrime},
		MaxAbsShear: Extreme{AngleDeg: t.Rows[sh].AngleDeg, Value: t.Rows[sh].TauXYPrime},
	}
}
