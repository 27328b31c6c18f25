package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
)

// PlaneDiagramData holds data for drawing a plane stress Mohr's circle
type PlaneDiagramData struct {
	Stress       plane.StressState
	AngleDeg     float64
	Circle       plane.MohrsCircle
	Rotated      plane.TransformedStress
	PrincipalDeg float64
	MaxShearDeg  float64

	// Half-range of both axes (MPa); 0 fits the circle
	AxisLimit float64
}

// NewPlaneDiagramData builds diagram data from a plane analysis
func NewPlaneDiagramData(a plane.Analysis, axisLimit float64) PlaneDiagramData {
	return PlaneDiagramData{
		Stress:       a.Stress,
		AngleDeg:     a.AngleDeg,
		Circle:       a.Circle,
		Rotated:      a.Rotated,
		PrincipalDeg: a.PrincipalDeg,
		MaxShearDeg:  a.MaxShearDeg,
		AxisLimit:    axisLimit,
	}
}

// TriaxialDiagramData holds data for drawing the three Mohr's circles
type TriaxialDiagramData struct {
	Principal triaxial.PrincipalStresses
	Circles   [3]triaxial.Circle

	// Half-range of both axes (MPa); 0 fits the circles
	AxisLimit float64
}

// NewTriaxialDiagramData builds diagram data from principal stresses
func NewTriaxialDiagramData(p triaxial.PrincipalStresses, axisLimit float64) TriaxialDiagramData {
	return TriaxialDiagramData{
		Principal: p,
		Circles:   triaxial.Circles(p),
		AxisLimit: axisLimit,
	}
}

// fitLimit returns a symmetric axis half-range covering the circle
func fitLimit(limit, center, radius float64) float64 {
	if limit > 0 {
		return limit
	}
	l := (math.Abs(center) + radius) * 1.15
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 1
	}
	return l
}

// ASCII canvas size; two columns per row keeps circles round in a terminal
const (
	canvasRows = 25
	canvasCols = 2*canvasRows + 1
)

type canvas struct {
	cells [][]rune
	limit float64
}

func newCanvas(limit float64) *canvas {
	cells := make([][]rune, canvasRows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", canvasCols))
	}
	return &canvas{cells: cells, limit: limit}
}

// cell maps a (σ, τ) point to a grid position; τ is drawn upward
func (c *canvas) cell(sigma, tau float64) (row, col int, ok bool) {
	col = int(math.Round((sigma + c.limit) / (2 * c.limit) * float64(canvasCols-1)))
	row = int(math.Round((c.limit - tau) / (2 * c.limit) * float64(canvasRows-1)))
	ok = row >= 0 && row < canvasRows && col >= 0 && col < canvasCols
	return row, col, ok
}

func (c *canvas) plot(sigma, tau float64, r rune) {
	if row, col, ok := c.cell(sigma, tau); ok {
		c.cells[row][col] = r
	}
}

// atOrigin reports whether (σ, τ) falls on the origin cell
func (c *canvas) atOrigin(sigma, tau float64) bool {
	row, col, _ := c.cell(sigma, tau)
	r0, c0, _ := c.cell(0, 0)
	return row == r0 && col == c0
}

// axes draws σ = 0 and τ = 0; the symmetric range keeps the origin centered
func (c *canvas) axes() {
	row, col, _ := c.cell(0, 0)
	for j := range c.cells[row] {
		c.cells[row][j] = '─'
	}
	for i := range c.cells {
		c.cells[i][col] = '│'
	}
	c.cells[row][col] = '┼'
}

func (c *canvas) circle(center, radius float64, r rune) {
	const samples = 720
	for i := 0; i < samples; i++ {
		phi := 2 * math.Pi * float64(i) / samples
		c.plot(center+radius*math.Cos(phi), radius*math.Sin(phi), r)
	}
}

func (c *canvas) writeTo(sb *strings.Builder) {
	for _, row := range c.cells {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}
}

// DrawASCIIMohrsCircle creates an ASCII Mohr's circle with the original
// (X, Y) and rotated (x, y) stress points and the principal stresses
func DrawASCIIMohrsCircle(data PlaneDiagramData) string {
	var sb strings.Builder

	limit := fitLimit(data.AxisLimit, data.Circle.Center, data.Circle.Radius)
	c := newCanvas(limit)
	c.axes()
	c.circle(data.Circle.Center, data.Circle.Radius, '·')
	// the axis cross already marks a centre at the origin
	if !c.atOrigin(data.Circle.Center, 0) {
		c.plot(data.Circle.Center, 0, '+')
	}
	c.plot(data.Circle.Sigma1, 0, '1')
	c.plot(data.Circle.Sigma2, 0, '2')
	c.plot(data.Stress.SigmaX, data.Stress.TauXY, 'X')
	c.plot(data.Stress.SigmaY, -data.Stress.TauXY, 'Y')
	c.plot(data.Rotated.SigmaXPrime, data.Rotated.TauXYPrime, 'x')
	c.plot(data.Rotated.SigmaYPrime, -data.Rotated.TauXYPrime, 'y')

	sb.WriteString("\n")
	sb.WriteString("  MOHR'S CIRCLE                         τ ↑   σ →\n")
	sb.WriteString("  ─────────────\n")
	c.writeTo(&sb)

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  X = (σx, τxy) = (%.2f, %.2f)\n", data.Stress.SigmaX, data.Stress.TauXY))
	sb.WriteString(fmt.Sprintf("  Y = (σy, -τxy) = (%.2f, %.2f)\n", data.Stress.SigmaY, -data.Stress.TauXY))
	sb.WriteString(fmt.Sprintf("  x = (σx', τx'y') at θ = %.2f° = (%.2f, %.2f)\n",
		data.AngleDeg, data.Rotated.SigmaXPrime, data.Rotated.TauXYPrime))
	sb.WriteString(fmt.Sprintf("  y = (σy', -τx'y') = (%.2f, %.2f)\n", data.Rotated.SigmaYPrime, -data.Rotated.TauXYPrime))
	sb.WriteString(fmt.Sprintf("  1, 2 = σ1 = %.2f, σ2 = %.2f (θp = %.2f°)\n",
		data.Circle.Sigma1, data.Circle.Sigma2, data.PrincipalDeg))
	sb.WriteString(fmt.Sprintf("  + = center %.2f, radius %.2f\n", data.Circle.Center, data.Circle.Radius))
	sb.WriteString(fmt.Sprintf("  Axes span ±%.0f MPa\n", limit))

	return sb.String()
}

// DrawASCIIMohrsCircles3D creates an ASCII plot of the three Mohr's circles
func DrawASCIIMohrsCircles3D(data TriaxialDiagramData) string {
	var sb strings.Builder

	env := data.Circles[2]
	limit := fitLimit(data.AxisLimit, env.Center, env.Radius)
	c := newCanvas(limit)
	c.axes()
	c.circle(data.Circles[0].Center, data.Circles[0].Radius, '·')
	c.circle(data.Circles[1].Center, data.Circles[1].Radius, '·')
	c.circle(env.Center, env.Radius, '*')
	c.plot(data.Principal.Sigma1, 0, '1')
	c.plot(data.Principal.Sigma2, 0, '2')
	c.plot(data.Principal.Sigma3, 0, '3')

	sb.WriteString("\n")
	sb.WriteString("  TRIAXIAL MOHR'S CIRCLES               τ ↑   σ →\n")
	sb.WriteString("  ───────────────────────\n")
	c.writeTo(&sb)

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  *** = σ1-σ3 envelope, ··· = σ1-σ2 and σ2-σ3\n")
	sb.WriteString(fmt.Sprintf("  1, 2, 3 = σ1 = %.2f, σ2 = %.2f, σ3 = %.2f\n",
		data.Principal.Sigma1, data.Principal.Sigma2, data.Principal.Sigma3))
	sb.WriteString(fmt.Sprintf("  τmax = %.2f\n", data.Principal.TauMax))
	sb.WriteString(fmt.Sprintf("  Axes span ±%.0f MPa\n", limit))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := func(s string) int { return len([]rune(s)) }

	maxLen := width(title)
	for _, line := range lines {
		if width(line) > maxLen {
			maxLen = width(line)
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-width(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
