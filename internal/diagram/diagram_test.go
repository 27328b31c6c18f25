package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
)

func planeData(axisLimit float64) PlaneDiagramData {
	s := plane.StressState{SigmaX: 200, SigmaY: -200, TauXY: 200}
	return NewPlaneDiagramData(plane.Analyze(s, 30), axisLimit)
}

func triaxialData(axisLimit float64) TriaxialDiagramData {
	p := triaxial.GetPrincipalStresses(triaxial.StressState{
		SigmaX: 120, SigmaY: -80, SigmaZ: 40, TauXY: 60, TauYZ: -40, TauZX: 20,
	})
	return NewTriaxialDiagramData(p, axisLimit)
}

func TestDrawASCIIMohrsCircle(t *testing.T) {
	out := DrawASCIIMohrsCircle(planeData(400))

	for _, want := range []string{"MOHR'S CIRCLE", "┼", "·", "X", "Y", "1", "2", "Axes span ±400 MPa"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q", want)
		}
	}
	// header + rule + canvas + legend
	lines := strings.Split(out, "\n")
	if len(lines) < canvasRows+3 {
		t.Errorf("diagram has %d lines", len(lines))
	}
}

// canvasRune returns the rune drawn at (σ, τ) in an ASCII diagram
func canvasRune(t *testing.T, out string, limit, sigma, tau float64) rune {
	t.Helper()
	row, col, ok := newCanvas(limit).cell(sigma, tau)
	if !ok {
		t.Fatalf("(%g, %g) outside canvas", sigma, tau)
	}
	// blank line, title, rule, then the canvas
	line := []rune(strings.Split(out, "\n")[3+row])
	if 2+col >= len(line) {
		return ' '
	}
	return line[2+col]
}

func TestDrawASCIIMohrsCircleCentreMarker(t *testing.T) {
	// a centre at the origin keeps the axis cross
	out := DrawASCIIMohrsCircle(planeData(400))
	if got := canvasRune(t, out, 400, 0, 0); got != '┼' {
		t.Errorf("origin cell = %q, want '┼'", got)
	}

	s := plane.StressState{SigmaX: 200, SigmaY: 0, TauXY: 50}
	out = DrawASCIIMohrsCircle(NewPlaneDiagramData(plane.Analyze(s, 0), 400))
	if got := canvasRune(t, out, 400, 0, 0); got != '┼' {
		t.Errorf("origin cell = %q, want '┼'", got)
	}
	if got := canvasRune(t, out, 400, 100, 0); got != '+' {
		t.Errorf("centre cell = %q, want '+'", got)
	}
}

func TestDrawASCIIMohrsCircleDegenerate(t *testing.T) {
	s := plane.StressState{}
	out := DrawASCIIMohrsCircle(NewPlaneDiagramData(plane.Analyze(s, 0), 0))
	if !strings.Contains(out, "radius 0.00") {
		t.Errorf("degenerate legend missing radius:\n%s", out)
	}
}

func TestCanvasMapping(t *testing.T) {
	c := newCanvas(100)
	row, col, ok := c.cell(0, 0)
	if !ok || row != canvasRows/2 || col != canvasCols/2 {
		t.Errorf("origin at (%d,%d) ok=%v", row, col, ok)
	}
	if row, col, _ := c.cell(100, 100); row != 0 || col != canvasCols-1 {
		t.Errorf("top-right at (%d,%d)", row, col)
	}
	if _, _, ok := c.cell(110, 0); ok {
		t.Error("point beyond limit mapped inside canvas")
	}
}

func TestFitLimit(t *testing.T) {
	if got := fitLimit(250, 1e6, 1e6); got != 250 {
		t.Errorf("explicit limit = %g", got)
	}
	if got := fitLimit(0, 0, 0); got != 1 {
		t.Errorf("zero circle limit = %g", got)
	}
	if got := fitLimit(0, -100, 100); got <= 200 {
		t.Errorf("fitted limit %g does not cover circle", got)
	}
}

func TestDrawASCIIMohrsCircles3D(t *testing.T) {
	out := DrawASCIIMohrsCircles3D(triaxialData(0))
	for _, want := range []string{"TRIAXIAL", "*", "1", "2", "3", "τmax"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q", want)
		}
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"σ1 = 282.84 MPa", "τmax = 282.84 MPa"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, title, separator, two lines, bottom border
	if len(lines) != 6 {
		t.Fatalf("%d lines, want 6", len(lines))
	}
	w := len([]rune(lines[0]))
	for _, l := range lines {
		if len([]rune(l)) != w {
			t.Errorf("ragged box line %q", l)
		}
	}
}

func TestExportMohrsCircle(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"circle.png", "nested/circle.svg"} {
		path := filepath.Join(dir, name)
		if err := ExportMohrsCircle(planeData(0), path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestExportDefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circles")
	if err := ExportMohrsCircles3D(triaxialData(400), path); err != nil {
		t.Fatal(err)
	}
	if got := OutputPath(path); got != path+".png" {
		t.Errorf("OutputPath = %q", got)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Errorf("png not written: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"circle.png":  "circle.png",
		"circle.SVG":  "circle.SVG",
		"out/c.pdf":   "out/c.pdf",
		"circle":      "circle.png",
		"circle.jpeg": "circle.jpeg.png",
	}
	for in, want := range tests {
		if got := OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
