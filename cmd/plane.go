package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomohr/internal/loadcase"
	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/spf13/cobra"
)

var planeCmd = &cobra.Command{
	Use:   "plane",
	Short: "Plane (2D) stress transformation and Mohr's circle",
	Long: `Transform a plane stress state and derive its Mohr's circle.

Subcommands:
  analyze  - Mohr's circle, rotated element, principal and max shear planes
  sweep    - Tabulate the rotated stresses over a range of angles
  animate  - Rotate the element continuously

Stresses are given in MPa (tension positive) and angles in degrees
(counter-clockwise). Any real angle is accepted.

The stress state may be read from a JSON load case file:
{
  "name": "Bracket weld",
  "plane": {"sigma_x": 200, "sigma_y": -200, "tau_xy": 200, "angle": 30}
}`,
}

// planeFlags are the stress inputs shared by the plane subcommands
type planeFlags struct {
	file  string
	sx    float64
	sy    float64
	txy   float64
	angle float64
}

func (f *planeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to load case JSON file")
	cmd.Flags().Float64Var(&f.sx, "sx", 200, "Normal stress σx (MPa)")
	cmd.Flags().Float64Var(&f.sy, "sy", -200, "Normal stress σy (MPa)")
	cmd.Flags().Float64Var(&f.txy, "txy", 200, "Shear stress τxy (MPa)")
	cmd.Flags().Float64VarP(&f.angle, "angle", "t", 0, "Element rotation θ (degrees)")
}

// resolve returns the load case name, stress state and angle. A load case
// file replaces the stress flags; an explicit --angle still overrides.
func (f *planeFlags) resolve(cmd *cobra.Command) (string, plane.StressState, float64, error) {
	s := plane.StressState{SigmaX: f.sx, SigmaY: f.sy, TauXY: f.txy}
	if f.file == "" {
		return "", s, f.angle, nil
	}

	lc, err := loadcase.LoadFromFile(f.file)
	if err != nil {
		return "", s, 0, err
	}
	if lc.Plane == nil {
		return "", s, 0, fmt.Errorf("load case %q has no plane stress state", f.file)
	}

	angle := lc.Plane.Angle
	if cmd.Flags().Changed("angle") {
		angle = f.angle
	}
	return lc.Name, lc.Plane.StressState, angle, nil
}

func init() {
	rootCmd.AddCommand(planeCmd)
}
