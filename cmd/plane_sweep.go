package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomohr/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	planeSweepInput planeFlags
	planeSweepFrom  float64
	planeSweepTo    float64
	planeSweepStep  float64
	planeSweepFile  string
	planeSweepQuiet bool
)

var planeSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate rotated stresses over a range of angles",
	Long: `Evaluate σx', σy' and τx'y' from --from to --to (inclusive)
every --step degrees and report the sampled extremes.

The table can be exported to an Excel workbook (.xlsx) or CSV (.csv).

Examples:
  gomohr plane sweep --sx 80 --sy 20 --txy -30
  gomohr plane sweep --from -90 --to 90 --step 1 -o sweep.xlsx
  gomohr plane sweep -f bracket.json --step 0.5 -o sweep.csv --quiet`,
	Run: runPlaneSweep,
}

func init() {
	planeCmd.AddCommand(planeSweepCmd)

	planeSweepInput.register(planeSweepCmd)
	planeSweepCmd.Flags().Float64Var(&planeSweepFrom, "from", 0, "Start angle (degrees)")
	planeSweepCmd.Flags().Float64Var(&planeSweepTo, "to", 180, "End angle (degrees, inclusive)")
	planeSweepCmd.Flags().Float64Var(&planeSweepStep, "step", 15, "Angle increment (degrees)")
	planeSweepCmd.Flags().StringVarP(&planeSweepFile, "output", "o", "", "Export table to file (xlsx, csv)")
	planeSweepCmd.Flags().BoolVarP(&planeSweepQuiet, "quiet", "q", false, "Do not print the table")
}

func runPlaneSweep(cmd *cobra.Command, args []string) {
	_, stress, _, err := planeSweepInput.resolve(cmd)
	if err != nil {
		fmt.Printf("Error loading load case: %v\n", err)
		return
	}

	table, err := sweep.Run(stress, planeSweepFrom, planeSweepTo, planeSweepStep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("               PLANE STRESS ANGLE SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  σx = %.2f MPa, σy = %.2f MPa, τxy = %.2f MPa\n", stress.SigmaX, stress.SigmaY, stress.TauXY)
	fmt.Printf("  θ from %.2f° to %.2f° by %.2f° (%d rows)\n", table.From, table.To, table.Step, len(table.Rows))
	fmt.Println()

	if !planeSweepQuiet {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  θ (°)\tσx' (MPa)\tσy' (MPa)\tτx'y' (MPa)\t\n")
		fmt.Fprintf(w, "  ─────\t─────────\t─────────\t───────────\t\n")
		for _, r := range table.Rows {
			fmt.Fprintf(w, "  %.2f\t%.2f\t%.2f\t%.2f\t\n", r.AngleDeg, r.SigmaXPrime, r.SigmaYPrime, r.TauXYPrime)
		}
		w.Flush()
		fmt.Println()
	}

	ext := table.Extremes()
	fmt.Println("SAMPLED EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max σx':\t%.2f MPa\tat θ = %.2f°\n", ext.MaxSigmaX.Value, ext.MaxSigmaX.AngleDeg)
	fmt.Fprintf(w, "  Min σx':\t%.2f MPa\tat θ = %.2f°\n", ext.MinSigmaX.Value, ext.MinSigmaX.AngleDeg)
	fmt.Fprintf(w, "  Max |τx'y'|:\t%.2f MPa\tat θ = %.2f°\n", ext.MaxAbsShear.Value, ext.MaxAbsShear.AngleDeg)
	w.Flush()
	fmt.Println()

	if planeSweepFile != "" {
		if err := sweep.Export(table, planeSweepFile); err != nil {
			fmt.Printf("Error exporting sweep: %v\n", err)
		} else {
			fmt.Printf("Sweep exported to: %s\n", planeSweepFile)
		}
	}
}
