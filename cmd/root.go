package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gomohr/internal/config"
	"github.com/alexiusacademia/gomohr/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string

	// appConfig is resolved once per invocation before any command runs
	appConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gomohr",
	Short: "Stress transformation and Mohr's circle tool",
	Long: `gomohr - Go Mohr's Circle

A CLI tool for stress transformation of a material element under
plane (2D) and triaxial (3D) loading.

This tool helps engineers compute:
  - Mohr's circle (center, radius, principal and maximum shear stresses)
  - Transformed stresses on a rotated element
  - Principal and maximum shear orientations
  - Triaxial principal stresses (Jacobi eigenvalue method)

Settings may be tuned with environment variables or a .env file:
  GOMOHR_MAX_ITERATIONS  Jacobi iteration cap (default 50)
  GOMOHR_TOLERANCE       Jacobi convergence tolerance (default 1e-10)
  GOMOHR_AXIS_LIMIT      Diagram axis half-range in MPa (default 400)
  GOMOHR_FRAME_RATE      Animation frames per second (default 50)
  GOMOHR_ANGLE_STEP      Animation rotation per frame in degrees (default 0.2)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		appConfig = cfg
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gomohr v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Mohr's Circle                                        ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for stress transformation under plane and")
		fmt.Println("  triaxial loading.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Mohr's circle and rotated element stresses")
		fmt.Println("    • Principal and maximum shear orientations")
		fmt.Println("    • Angle sweeps exported to Excel or CSV")
		fmt.Println("    • Animated element rotation")
		fmt.Println("    • Triaxial principal stresses and Mohr's circles")
		fmt.Println("    • Diagram export (png, svg, pdf) and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gomohr --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Errors are printed here only; cobra's own error printing is silenced.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Load settings from this env file instead of .env")
}
