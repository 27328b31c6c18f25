package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gomohr/internal/diagram"
	"github.com/alexiusacademia/gomohr/internal/loadcase"
	"github.com/alexiusacademia/gomohr/internal/report"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
	"github.com/spf13/cobra"
)

var (
	// Stress inputs (MPa)
	triaxialFile string
	triaxialSx   float64
	triaxialSy   float64
	triaxialSz   float64
	triaxialTxy  float64
	triaxialTyz  float64
	triaxialTzx  float64

	// Solver options
	triaxialMaxIter int
	triaxialTol     float64

	// Output options
	triaxialShowDiagram bool
	triaxialExportFile  string
	triaxialReportFile  string
	triaxialAxisLimit   float64
)

var triaxialAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Principal stresses of a triaxial stress state",
	Long: `Compute the principal stresses σ1 ≥ σ2 ≥ σ3, the maximum shear
stress τmax = (σ1 - σ3)/2, the three Mohr's circles and the stress
invariants of a 3D stress state.

The Jacobi solver stops when every off-diagonal term is below the
tolerance or after the iteration cap. Hitting the cap is not an error:
the result is reported as an approximation.

Examples:
  # Defaults: σx=120 σy=-80 σz=40 τxy=60 τyz=-40 τzx=20 MPa
  gomohr triaxial analyze

  # Hydrostatic stress
  gomohr triaxial analyze --sx 100 --sy 100 --sz 100 --txy 0 --tyz 0 --tzx 0

  # From a load case with a tighter solver
  gomohr triaxial analyze -f shaft.json --max-iter 100 --tol 1e-12 --diagram`,
	Run: runTriaxialAnalyze,
}

func init() {
	triaxialCmd.AddCommand(triaxialAnalyzeCmd)

	triaxialAnalyzeCmd.Flags().StringVarP(&triaxialFile, "file", "f", "", "Path to load case JSON file")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialSx, "sx", 120, "Normal stress σx (MPa)")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialSy, "sy", -80, "Normal stress σy (MPa)")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialSz, "sz", 40, "Normal stress σz (MPa)")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialTxy, "txy", 60, "Shear stress τxy (MPa)")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialTyz, "tyz", -40, "Shear stress τyz (MPa)")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialTzx, "tzx", 20, "Shear stress τzx (MPa)")

	// Solver flags
	triaxialAnalyzeCmd.Flags().IntVar(&triaxialMaxIter, "max-iter", triaxial.DefaultMaxIterations, "Jacobi iteration cap")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialTol, "tol", triaxial.DefaultTolerance, "Jacobi convergence tolerance")

	// Diagram options
	triaxialAnalyzeCmd.Flags().BoolVar(&triaxialShowDiagram, "diagram", false, "Show ASCII Mohr's circles")
	triaxialAnalyzeCmd.Flags().StringVarP(&triaxialExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	triaxialAnalyzeCmd.Flags().StringVar(&triaxialReportFile, "report", "", "Write a PDF calculation report")
	triaxialAnalyzeCmd.Flags().Float64Var(&triaxialAxisLimit, "axis-limit", 400, "Diagram axis half-range in MPa (0 fits the circles)")
}

func triaxialInput() (string, triaxial.StressState, error) {
	s := triaxial.StressState{
		SigmaX: triaxialSx,
		SigmaY: triaxialSy,
		SigmaZ: triaxialSz,
		TauXY:  triaxialTxy,
		TauYZ:  triaxialTyz,
		TauZX:  triaxialTzx,
	}
	if triaxialFile == "" {
		return "", s, nil
	}

	lc, err := loadcase.LoadFromFile(triaxialFile)
	if err != nil {
		return "", s, err
	}
	if lc.Triaxial == nil {
		return "", s, fmt.Errorf("load case %q has no triaxial stress state", triaxialFile)
	}
	return lc.Name, *lc.Triaxial, nil
}

func triaxialSolverOptions(cmd *cobra.Command) triaxial.SolverOptions {
	opts := appConfig.Solver
	if cmd.Flags().Changed("max-iter") {
		opts.MaxIterations = triaxialMaxIter
	}
	if cmd.Flags().Changed("tol") {
		opts.Tolerance = triaxialTol
	}
	return opts
}

func runTriaxialAnalyze(cmd *cobra.Command, args []string) {
	name, stress, err := triaxialInput()
	if err != nil {
		fmt.Printf("Error loading load case: %v\n", err)
		return
	}

	opts := triaxialSolverOptions(cmd)
	if opts.MaxIterations <= 0 || !(opts.Tolerance > 0) {
		fmt.Println("Error: --max-iter and --tol must be positive.")
		return
	}

	sol := triaxial.Solve(stress, opts)
	p := sol.Principal
	inv := triaxial.ComputeInvariants(stress)
	check := p.Invariants()

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TRIAXIAL STRESS - PRINCIPAL STRESSES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if name != "" {
		fmt.Printf("  Load case: %s\n", name)
		fmt.Println()
	}

	fmt.Println("STRESS TENSOR (MPa):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range stress.Tensor() {
		fmt.Fprintf(w, "  │\t%.2f\t%.2f\t%.2f\t │\n", row[0], row[1], row[2])
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PRINCIPAL STRESSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  σ1:\t%.2f MPa\n", p.Sigma1)
	fmt.Fprintf(w, "  σ2:\t%.2f MPa\n", p.Sigma2)
	fmt.Fprintf(w, "  σ3:\t%.2f MPa\n", p.Sigma3)
	fmt.Fprintf(w, "  τmax = (σ1 - σ3)/2:\t%.2f MPa\n", p.TauMax)
	w.Flush()
	fmt.Println()

	fmt.Println("MOHR'S CIRCLES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Circle\tCenter (MPa)\tRadius (MPa)\n")
	fmt.Fprintf(w, "  ──────\t────────────\t────────────\n")
	for _, c := range triaxial.Circles(p) {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", c.Label, c.Center, c.Radius)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("INVARIANTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tFrom tensor\tFrom σ1, σ2, σ3\n")
	fmt.Fprintf(w, "  I1:\t%.4g\t%.4g\n", inv.I1, check.I1)
	fmt.Fprintf(w, "  I2:\t%.4g\t%.4g\n", inv.I2, check.I2)
	fmt.Fprintf(w, "  I3:\t%.4g\t%.4g\n", inv.I3, check.I3)
	w.Flush()
	fmt.Println()

	fmt.Println("JACOBI SOLVER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Iteration cap:\t%d\n", opts.MaxIterations)
	fmt.Fprintf(w, "  Tolerance:\t%.1e\n", opts.Tolerance)
	fmt.Fprintf(w, "  Rotations applied:\t%d\n", sol.Iterations)
	fmt.Fprintf(w, "  Residual off-diagonal:\t%.3e\n", sol.OffDiag)
	status := "✓ converged"
	if !sol.Converged {
		status = "⚠ iteration cap reached, result is approximate"
	}
	fmt.Fprintf(w, "  Status:\t%s\n", status)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("σ1 = %.2f MPa", p.Sigma1),
		fmt.Sprintf("σ2 = %.2f MPa", p.Sigma2),
		fmt.Sprintf("σ3 = %.2f MPa", p.Sigma3),
		fmt.Sprintf("τmax = %.2f MPa", p.TauMax),
	}))
	fmt.Println()

	data := diagram.NewTriaxialDiagramData(p, axisLimit(cmd, triaxialAxisLimit))

	// Show diagram if requested
	if triaxialShowDiagram {
		fmt.Println(diagram.DrawASCIIMohrsCircles3D(data))
	}

	// Export diagram if requested
	if triaxialExportFile != "" {
		if err := diagram.ExportMohrsCircles3D(data, triaxialExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", diagram.OutputPath(triaxialExportFile))
		}
	}

	if triaxialReportFile != "" {
		r := report.Triaxial(name, stress, sol)
		r.Image = embeddableImage(triaxialExportFile)
		if err := r.Save(triaxialReportFile); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", triaxialReportFile)
		}
	}
}
