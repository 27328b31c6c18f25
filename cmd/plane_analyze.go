package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gomohr/internal/diagram"
	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/report"
	"github.com/spf13/cobra"
)

var (
	planeAnalyzeInput       planeFlags
	planeAnalyzeShowDiagram bool
	planeAnalyzeExportFile  string
	planeAnalyzeReportFile  string
	planeAnalyzeAxisLimit   float64
)

var planeAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Mohr's circle and rotated stresses of a plane stress state",
	Long: `Compute Mohr's circle of a plane stress state, the stresses on an
element rotated by θ, the principal stresses with their orientation and
the in-plane maximum shear stress with its orientation.

Examples:
  # Defaults: σx = 200, σy = -200, τxy = 200 MPa
  gomohr plane analyze

  # Uniaxial tension viewed at 45°
  gomohr plane analyze --sx 100 --sy 0 --txy 0 --angle 45

  # From a load case, with ASCII diagram and PNG export
  gomohr plane analyze -f bracket.json --diagram -o mohr.png --report mohr.pdf`,
	Run: runPlaneAnalyze,
}

func init() {
	planeCmd.AddCommand(planeAnalyzeCmd)

	planeAnalyzeInput.register(planeAnalyzeCmd)

	// Diagram options
	planeAnalyzeCmd.Flags().BoolVar(&planeAnalyzeShowDiagram, "diagram", false, "Show ASCII Mohr's circle")
	planeAnalyzeCmd.Flags().StringVarP(&planeAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	planeAnalyzeCmd.Flags().StringVar(&planeAnalyzeReportFile, "report", "", "Write a PDF calculation report")
	planeAnalyzeCmd.Flags().Float64Var(&planeAnalyzeAxisLimit, "axis-limit", 400, "Diagram axis half-range in MPa (0 fits the circle)")
}

// axisLimit returns the flag value when given, otherwise the configured one
func axisLimit(cmd *cobra.Command, flagValue float64) float64 {
	if cmd.Flags().Changed("axis-limit") {
		return flagValue
	}
	return appConfig.AxisLimit
}

func runPlaneAnalyze(cmd *cobra.Command, args []string) {
	name, stress, angle, err := planeAnalyzeInput.resolve(cmd)
	if err != nil {
		fmt.Printf("Error loading load case: %v\n", err)
		return
	}

	result := plane.Analyze(stress, angle)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          PLANE STRESS TRANSFORMATION - MOHR'S CIRCLE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if name != "" {
		fmt.Printf("  Load case: %s\n", name)
		fmt.Println()
	}

	fmt.Println("INPUT STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  σx:\t%.2f MPa\n", stress.SigmaX)
	fmt.Fprintf(w, "  σy:\t%.2f MPa\n", stress.SigmaY)
	fmt.Fprintf(w, "  τxy:\t%.2f MPa\n", stress.TauXY)
	w.Flush()
	fmt.Println()

	fmt.Println("MOHR'S CIRCLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center (σavg):\t%.2f MPa\n", result.Circle.Center)
	fmt.Fprintf(w, "  Radius (R):\t%.2f MPa\n", result.Circle.Radius)
	if result.Circle.Radius == 0 {
		fmt.Fprintf(w, "  \t(degenerate circle: every plane carries the same stress)\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("ROTATED ELEMENT (θ = %.2f°):\n", angle)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  σx':\t%.2f MPa\n", result.Rotated.SigmaXPrime)
	fmt.Fprintf(w, "  σy':\t%.2f MPa\n", result.Rotated.SigmaYPrime)
	fmt.Fprintf(w, "  τx'y':\t%.2f MPa\n", result.Rotated.TauXYPrime)
	fmt.Fprintf(w, "  σx' + σy':\t%.2f MPa (invariant)\n", result.Rotated.SigmaXPrime+result.Rotated.SigmaYPrime)
	w.Flush()
	fmt.Println()

	fmt.Println("PRINCIPAL STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  σ1:\t%.2f MPa\n", result.Circle.Sigma1)
	fmt.Fprintf(w, "  σ2:\t%.2f MPa\n", result.Circle.Sigma2)
	fmt.Fprintf(w, "  Principal angle (θp):\t%.2f°\n", result.PrincipalDeg)
	w.Flush()
	fmt.Println()

	fmt.Println("MAXIMUM IN-PLANE SHEAR:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  τmax:\t%.2f MPa\n", result.Circle.TauMax)
	fmt.Fprintf(w, "  Max shear angle (θs):\t%.2f°\n", result.MaxShearDeg)
	fmt.Fprintf(w, "  τx'y' at θs:\t%.2f MPa\n", result.MaxShearTauXY)
	fmt.Fprintf(w, "  Normal stress at θs:\t%.2f MPa\n", result.Circle.Center)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("σ1 = %.2f MPa at θp = %.2f°", result.Circle.Sigma1, result.PrincipalDeg),
		fmt.Sprintf("σ2 = %.2f MPa", result.Circle.Sigma2),
		fmt.Sprintf("τmax = %.2f MPa at θs = %.2f°", result.Circle.TauMax, result.MaxShearDeg),
	}))
	fmt.Println()

	data := diagram.NewPlaneDiagramData(result, axisLimit(cmd, planeAnalyzeAxisLimit))

	// Show diagram if requested
	if planeAnalyzeShowDiagram {
		fmt.Println(diagram.DrawASCIIMohrsCircle(data))
	}

	// Export diagram if requested
	if planeAnalyzeExportFile != "" {
		if err := diagram.ExportMohrsCircle(data, planeAnalyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", diagram.OutputPath(planeAnalyzeExportFile))
		}
	}

	if planeAnalyzeReportFile != "" {
		r := report.Plane(name, result)
		r.Image = embeddableImage(planeAnalyzeExportFile)
		if err := r.Save(planeAnalyzeReportFile); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", planeAnalyzeReportFile)
		}
	}
}

// embeddableImage returns the written diagram path when the report can embed it
func embeddableImage(exported string) string {
	if exported == "" {
		return ""
	}
	path := diagram.OutputPath(exported)
	if strings.ToLower(filepath.Ext(path)) != ".png" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
