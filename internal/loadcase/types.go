package loadcase

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
)

// LoadCase is a named stress state read from a JSON file.
// Either the plane or the triaxial block (or both) must be present.
type LoadCase struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Plane    *PlaneCase            `json:"plane,omitempty"`
	Triaxial *triaxial.StressState `json:"triaxial,omitempty"`
}

// PlaneCase is a plane stress state plus the element rotation to report
type PlaneCase struct {
	plane.StressState
	Angle float64 `json:"angle,omitempty"` // degrees, counter-clockwise
}

// Validate checks that the load case can be analyzed
func (lc *LoadCase) Validate() error {
	if lc.Plane == nil && lc.Triaxial == nil {
		return &ValidationError{"load case must define a plane or triaxial stress state"}
	}

	if p := lc.Plane; p != nil {
		fields := []struct {
			name  string
			value float64
		}{
			{"plane.sigma_x", p.SigmaX},
			{"plane.sigma_y", p.SigmaY},
			{"plane.tau_xy", p.TauXY},
			{"plane.angle", p.Angle},
		}
		for _, f := range fields {
			if err := checkFinite(f.name, f.value); err != nil {
				return err
			}
		}
	}

	if s := lc.Triaxial; s != nil {
		fields := []struct {
			name  string
			value float64
		}{
			{"triaxial.sigma_x", s.SigmaX},
			{"triaxial.sigma_y", s.SigmaY},
			{"triaxial.sigma_z", s.SigmaZ},
			{"triaxial.tau_xy", s.TauXY},
			{"triaxial.tau_yz", s.TauYZ},
			{"triaxial.tau_zx", s.TauZX},
		}
		for _, f := range fields {
			if err := checkFinite(f.name, f.value); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{msg: fmt.Sprintf("%s must be a finite number", name)}
	}
	return nil
}

// ValidationError represents a load case validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
