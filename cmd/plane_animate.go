package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexiusacademia/gomohr/internal/animate"
	"github.com/spf13/cobra"
)

var (
	planeAnimateInput  planeFlags
	planeAnimateFrames int
	planeAnimateRate   float64
	planeAnimateDelta  float64
)

var planeAnimateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Rotate the stress element continuously",
	Long: `Rotate the element by --delta degrees every frame at --rate frames
per second, printing the stresses on the rotated faces. The displayed
angle is kept within (-180°, 180°].

Press Ctrl+C to stop when --frames is 0.

Examples:
  gomohr plane animate
  gomohr plane animate --sx 100 --sy 0 --txy 0 --delta 1 --frames 180
  gomohr plane animate --rate 10 --delta 5`,
	Run: runPlaneAnimate,
}

func init() {
	planeCmd.AddCommand(planeAnimateCmd)

	planeAnimateInput.register(planeAnimateCmd)
	planeAnimateCmd.Flags().IntVarP(&planeAnimateFrames, "frames", "n", 0, "Number of frames (0 runs until interrupted)")
	planeAnimateCmd.Flags().Float64Var(&planeAnimateRate, "rate", 50, "Frames per second")
	planeAnimateCmd.Flags().Float64Var(&planeAnimateDelta, "delta", 0.2, "Rotation per frame (degrees)")
}

func runPlaneAnimate(cmd *cobra.Command, args []string) {
	_, stress, angle, err := planeAnimateInput.resolve(cmd)
	if err != nil {
		fmt.Printf("Error loading load case: %v\n", err)
		return
	}

	rate := appConfig.FrameRate
	if cmd.Flags().Changed("rate") {
		rate = planeAnimateRate
	}
	delta := appConfig.AngleStep
	if cmd.Flags().Changed("delta") {
		delta = planeAnimateDelta
	}

	player := &animate.Player{
		Stress:   stress,
		StartDeg: angle,
		StepDeg:  delta,
		Rate:     rate,
		Frames:   planeAnimateFrames,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Println()
	fmt.Printf("  σx = %.2f MPa, σy = %.2f MPa, τxy = %.2f MPa  (%.1f fps, %.2f°/frame)\n",
		stress.SigmaX, stress.SigmaY, stress.TauXY, rate, delta)
	fmt.Println("  ───────────────────────────────────────────────────────────")
	fmt.Printf("  %8s  %10s  %10s  %10s\n", "θ (°)", "σx'", "σy'", "τx'y'")

	frames := 0
	err = player.Run(ctx, func(f animate.Frame) error {
		frames++
		fmt.Printf("  %8.2f  %10.2f  %10.2f  %10.2f\n",
			f.AngleDeg, f.Rotated.SigmaXPrime, f.Rotated.SigmaYPrime, f.Rotated.TauXYPrime)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("  %d frames played\n", frames)
}
