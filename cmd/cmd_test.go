package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gomohr/internal/config"
	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
	"github.com/spf13/cobra"
)

func writeCase(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func planeTestCmd(t *testing.T, args ...string) (*cobra.Command, *planeFlags) {
	t.Helper()
	f := &planeFlags{}
	c := &cobra.Command{Use: "test"}
	f.register(c)
	if err := c.Flags().Parse(args); err != nil {
		t.Fatal(err)
	}
	return c, f
}

func TestPlaneFlagsDefaults(t *testing.T) {
	c, f := planeTestCmd(t)
	name, s, angle, err := f.resolve(c)
	if err != nil {
		t.Fatal(err)
	}
	want := plane.StressState{SigmaX: 200, SigmaY: -200, TauXY: 200}
	if name != "" || s != want || angle != 0 {
		t.Errorf("resolve = %q %+v %g", name, s, angle)
	}
}

func TestPlaneFlagsFromFile(t *testing.T) {
	path := writeCase(t, `{"name": "Weld", "plane": {"sigma_x": 80, "sigma_y": -20, "tau_xy": 30, "angle": 15}}`)

	c, f := planeTestCmd(t, "--file", path, "--sx", "999")
	name, s, angle, err := f.resolve(c)
	if err != nil {
		t.Fatal(err)
	}
	want := plane.StressState{SigmaX: 80, SigmaY: -20, TauXY: 30}
	if name != "Weld" || s != want || angle != 15 {
		t.Errorf("resolve = %q %+v %g", name, s, angle)
	}

	c, f = planeTestCmd(t, "-f", path, "-t", "-60")
	if _, _, angle, _ = f.resolve(c); angle != -60 {
		t.Errorf("explicit angle = %g, want -60", angle)
	}
}

func TestPlaneFlagsFileWithoutPlane(t *testing.T) {
	path := writeCase(t, `{"name": "Shaft", "triaxial": {"sigma_x": 10}}`)
	c, f := planeTestCmd(t, "-f", path)
	if _, _, _, err := f.resolve(c); err == nil {
		t.Error("expected error for load case without plane block")
	}
}

func TestTriaxialSolverOptions(t *testing.T) {
	defer func(cfg config.Config) { appConfig = cfg }(appConfig)
	appConfig = config.Default()
	appConfig.Solver = triaxial.SolverOptions{MaxIterations: 80, Tolerance: 1e-8}

	c := &cobra.Command{Use: "test"}
	c.Flags().IntVar(&triaxialMaxIter, "max-iter", triaxial.DefaultMaxIterations, "")
	c.Flags().Float64Var(&triaxialTol, "tol", triaxial.DefaultTolerance, "")
	if err := c.Flags().Parse([]string{"--tol", "1e-4"}); err != nil {
		t.Fatal(err)
	}

	got := triaxialSolverOptions(c)
	want := triaxial.SolverOptions{MaxIterations: 80, Tolerance: 1e-4}
	if got != want {
		t.Errorf("options = %+v, want %+v", got, want)
	}
}

func TestEmbeddableImage(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "circle.png")
	if err := os.WriteFile(png, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := embeddableImage(png); got != png {
		t.Errorf("png = %q", got)
	}
	// exports without a known extension are written with a .png suffix
	bare := filepath.Join(dir, "circle")
	if got := embeddableImage(bare); got != png {
		t.Errorf("bare name = %q, want %q", got, png)
	}
	for _, p := range []string{"", filepath.Join(dir, "circle.svg"), filepath.Join(dir, "missing.png")} {
		if got := embeddableImage(p); got != "" {
			t.Errorf("embeddableImage(%q) = %q", p, got)
		}
	}
}

func TestConfigErrorNotPrintedByCobra(t *testing.T) {
	defer func(cfg config.Config) { appConfig = cfg }(appConfig)
	t.Setenv(config.EnvTolerance, "tight")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"version", "--env", filepath.Join(t.TempDir(), "missing.env")})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		envFile = ""
	}()

	err := rootCmd.Execute()
	var cerr *config.Error
	if !errors.As(err, &cerr) || cerr.Key != config.EnvTolerance {
		t.Fatalf("Execute error = %v, want config error for %s", err, config.EnvTolerance)
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("cobra printed output:\nstdout: %q\nstderr: %q", out.String(), errOut.String())
	}
}
