package cmd

import (
	"github.com/spf13/cobra"
)

var triaxialCmd = &cobra.Command{
	Use:   "triaxial",
	Short: "Triaxial (3D) principal stresses and Mohr's circles",
	Long: `Find the principal stresses of a general 3D stress state.

The six independent components of the symmetric stress tensor are
diagonalized with the cyclic Jacobi rotation method.

Subcommands:
  analyze  - Principal stresses, maximum shear and Mohr's circles

The stress state may be read from a JSON load case file:
{
  "name": "Shaft shoulder",
  "triaxial": {"sigma_x": 120, "sigma_y": -80, "sigma_z": 40,
               "tau_xy": 60, "tau_yz": -40, "tau_zx": 20}
}`,
}

func init() {
	rootCmd.AddCommand(triaxialCmd)
}
