package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	circleColor   = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	axisColor     = color.Gray{Y: 153}
	xFaceColor    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	yFaceColor    = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	shearColor    = color.RGBA{R: 241, G: 196, B: 15, A: 255}
	principalDark = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	circleColors  = [3]color.Color{
		color.RGBA{R: 31, G: 119, B: 180, A: 255},
		color.RGBA{R: 44, G: 160, B: 44, A: 255},
		color.RGBA{R: 214, G: 39, B: 40, A: 255},
	}
)

// circlePoints samples a circle in the σ-τ plane
func circlePoints(center, radius float64) plotter.XYs {
	const samples = 360
	pts := make(plotter.XYs, samples+1)
	for i := 0; i <= samples; i++ {
		phi := 2 * math.Pi * float64(i) / samples
		pts[i] = plotter.XY{X: center + radius*math.Cos(phi), Y: radius * math.Sin(phi)}
	}
	return pts
}

func newMohrPlot(title string, limit float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "σ (MPa)"
	p.Y.Label.Text = "τ (MPa)"
	p.X.Min, p.X.Max = -limit, limit
	p.Y.Min, p.Y.Max = -limit, limit
	p.Add(plotter.NewGrid())

	for _, seg := range []plotter.XYs{
		{{X: -limit, Y: 0}, {X: limit, Y: 0}},
		{{X: 0, Y: -limit}, {X: 0, Y: limit}},
	} {
		axis, err := plotter.NewLine(seg)
		if err != nil {
			return nil, err
		}
		axis.LineStyle.Color = axisColor
		axis.LineStyle.Width = vg.Points(1)
		p.Add(axis)
	}
	return p, nil
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length, dashed bool) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	p.Add(l)
	return nil
}

func addPoints(p *plot.Plot, pts plotter.XYs, c color.Color, radius vg.Length) error {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// ExportMohrsCircle exports a plane stress Mohr's circle to an image file
func ExportMohrsCircle(data PlaneDiagramData, filename string) error {
	limit := fitLimit(data.AxisLimit, data.Circle.Center, data.Circle.Radius)
	p, err := newMohrPlot("Mohr's Circle", limit)
	if err != nil {
		return err
	}

	if err := addLine(p, circlePoints(data.Circle.Center, data.Circle.Radius), circleColor, vg.Points(2), false); err != nil {
		return err
	}

	// Original state diameter
	x := plotter.XY{X: data.Stress.SigmaX, Y: data.Stress.TauXY}
	y := plotter.XY{X: data.Stress.SigmaY, Y: -data.Stress.TauXY}
	if err := addLine(p, plotter.XYs{x, y}, axisColor, vg.Points(1), true); err != nil {
		return err
	}

	// Rotated state diameter with shear projections
	xr := plotter.XY{X: data.Rotated.SigmaXPrime, Y: data.Rotated.TauXYPrime}
	yr := plotter.XY{X: data.Rotated.SigmaYPrime, Y: -data.Rotated.TauXYPrime}
	if err := addLine(p, plotter.XYs{xr, yr}, principalDark, vg.Points(1.5), false); err != nil {
		return err
	}
	for _, pt := range []plotter.XY{xr, yr} {
		if err := addLine(p, plotter.XYs{pt, {X: pt.X, Y: 0}}, shearColor, vg.Points(2), false); err != nil {
			return err
		}
	}

	if err := addPoints(p, plotter.XYs{
		{X: data.Circle.Sigma1, Y: 0},
		{X: data.Circle.Sigma2, Y: 0},
	}, principalDark, vg.Points(3)); err != nil {
		return err
	}
	if err := addPoints(p, plotter.XYs{x, xr}, xFaceColor, vg.Points(4)); err != nil {
		return err
	}
	if err := addPoints(p, plotter.XYs{y, yr}, yFaceColor, vg.Points(4)); err != nil {
		return err
	}

	// Add annotations
	offset := limit * 0.05
	labels := []struct {
		x, y float64
		text string
	}{
		{data.Circle.Sigma1, -offset, fmt.Sprintf("σ1=%.1f", data.Circle.Sigma1)},
		{data.Circle.Sigma2, -offset, fmt.Sprintf("σ2=%.1f", data.Circle.Sigma2)},
		{xr.X, xr.Y + offset, fmt.Sprintf("x' (θ=%.1f°)", data.AngleDeg)},
		{yr.X, yr.Y + offset, "y'"},
	}
	for _, lbl := range labels {
		if err := addLabel(p, lbl.x, lbl.y, lbl.text); err != nil {
			return err
		}
	}

	return save(p, filename)
}

// ExportMohrsCircles3D exports the three Mohr's circles of a triaxial state
func ExportMohrsCircles3D(data TriaxialDiagramData, filename string) error {
	env := data.Circles[2]
	limit := fitLimit(data.AxisLimit, env.Center, env.Radius)
	p, err := newMohrPlot("Triaxial Mohr's Circles", limit)
	if err != nil {
		return err
	}

	for i, c := range data.Circles {
		l, err := plotter.NewLine(circlePoints(c.Center, c.Radius))
		if err != nil {
			return err
		}
		l.LineStyle.Color = circleColors[i]
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(c.Label, l)
	}

	pr := data.Principal
	if err := addPoints(p, plotter.XYs{
		{X: pr.Sigma1, Y: 0},
		{X: pr.Sigma2, Y: 0},
		{X: pr.Sigma3, Y: 0},
	}, principalDark, vg.Points(3)); err != nil {
		return err
	}
	if err := addLabel(p, env.Center, env.Radius+limit*0.05, fmt.Sprintf("τmax=%.1f", pr.TauMax)); err != nil {
		return err
	}

	return save(p, filename)
}

// OutputPath returns the file an export to filename writes: png, svg and
// pdf keep their name, anything else gets a .png suffix.
func OutputPath(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return filename
	default:
		return filename + ".png"
	}
}

// save writes the plot to OutputPath(filename)
func save(p *plot.Plot, filename string) error {
	size := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return p.Save(size, size, OutputPath(filename))
}
