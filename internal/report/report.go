package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gomohr/internal/plane"
	"github.com/alexiusacademia/gomohr/internal/triaxial"
	"github.com/alexiusacademia/gomohr/internal/version"
)

// Row is one labelled value in a report table
type Row struct {
	Label string
	Value string
}

// Section is a titled table of results
type Section struct {
	Title string
	Rows  []Row
}

// Report is a one-page calculation sheet. The core PDF fonts only cover
// Latin-1, so labels spell out Greek symbols.
type Report struct {
	Title    string
	Subject  string    // Load case name
	Date     time.Time // Zero means now
	Sections []Section
	Image    string // Optional PNG diagram to embed
}

func mpa(v float64) string {
	return fmt.Sprintf("%.3f MPa", v)
}

func deg(v float64) string {
	return fmt.Sprintf("%.3f deg", v)
}

// Plane builds the report for a plane stress analysis
func Plane(subject string, a plane.Analysis) *Report {
	return &Report{
		Title:   "Plane Stress Transformation",
		Subject: subject,
		Sections: []Section{
			{"Input", []Row{
				{"sigma x", mpa(a.Stress.SigmaX)},
				{"sigma y", mpa(a.Stress.SigmaY)},
				{"tau xy", mpa(a.Stress.TauXY)},
				{"Rotation theta", deg(a.AngleDeg)},
			}},
			{"Mohr's Circle", []Row{
				{"Center", mpa(a.Circle.Center)},
				{"Radius", mpa(a.Circle.Radius)},
				{"sigma 1", mpa(a.Circle.Sigma1)},
				{"sigma 2", mpa(a.Circle.Sigma2)},
				{"tau max (in-plane)", mpa(a.Circle.TauMax)},
			}},
			{"Rotated Element", []Row{
				{"sigma x'", mpa(a.Rotated.SigmaXPrime)},
				{"sigma y'", mpa(a.Rotated.SigmaYPrime)},
				{"tau x'y'", mpa(a.Rotated.TauXYPrime)},
			}},
			{"Orientations", []Row{
				{"Principal angle theta p", deg(a.PrincipalDeg)},
				{"Max shear angle theta s", deg(a.MaxShearDeg)},
				{"tau x'y' at theta s", mpa(a.MaxShearTauXY)},
			}},
		},
	}
}

// Triaxial builds the report for a triaxial principal stress solution
func Triaxial(subject string, s triaxial.StressState, sol triaxial.Solution) *Report {
	p := sol.Principal
	inv := triaxial.ComputeInvariants(s)
	status := "converged"
	if !sol.Converged {
		status = "iteration cap reached (approximate)"
	}

	circles := triaxial.Circles(p)
	circleRows := make([]Row, 0, len(circles))
	for _, c := range circles {
		label := map[string]string{
			"σ1-σ2": "sigma 1 - sigma 2",
			"σ2-σ3": "sigma 2 - sigma 3",
			"σ1-σ3": "sigma 1 - sigma 3",
		}[c.Label]
		circleRows = append(circleRows, Row{label, fmt.Sprintf("center %.3f, radius %.3f MPa", c.Center, c.Radius)})
	}

	return &Report{
		Title:   "Triaxial Principal Stresses",
		Subject: subject,
		Sections: []Section{
			{"Input", []Row{
				{"sigma x", mpa(s.SigmaX)},
				{"sigma y", mpa(s.SigmaY)},
				{"sigma z", mpa(s.SigmaZ)},
				{"tau xy", mpa(s.TauXY)},
				{"tau yz", mpa(s.TauYZ)},
				{"tau zx", mpa(s.TauZX)},
			}},
			{"Principal Stresses", []Row{
				{"sigma 1", mpa(p.Sigma1)},
				{"sigma 2", mpa(p.Sigma2)},
				{"sigma 3", mpa(p.Sigma3)},
				{"tau max", mpa(p.TauMax)},
			}},
			{"Mohr's Circles", circleRows},
			{"Invariants", []Row{
				{"I1", fmt.Sprintf("%.4g", inv.I1)},
				{"I2", fmt.Sprintf("%.4g", inv.I2)},
				{"I3", fmt.Sprintf("%.4g", inv.I3)},
			}},
			{"Jacobi Solver", []Row{
				{"Rotations", fmt.Sprintf("%d", sol.Iterations)},
				{"Residual off-diagonal", fmt.Sprintf("%.3g", sol.OffDiag)},
				{"Status", status},
			}},
		},
	}
}

// imageWidth is the preferred diagram width on the page (mm)
const imageWidth = 150.0

// imageBox is where the diagram lands on its page (mm)
type imageBox struct {
	Page       int
	X, Y, W, H float64
}

// Write renders the report as PDF to w
func (r *Report) Write(w io.Writer) error {
	pdf, _, err := r.render()
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r *Report) render() (*gofpdf.Fpdf, *imageBox, error) {
	date := r.Date
	if date.IsZero() {
		date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, false)
	pdf.SetCreator("gomohr v"+version.Version, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if r.Subject != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Load case: %s", r.Subject))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, sec := range r.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(0, 7, sec.Title, "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range sec.Rows {
			pdf.CellFormat(70, 6, row.Label, "B", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, row.Value, "B", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	var box *imageBox
	if r.Image != "" {
		box = placeImage(pdf, r.Image)
	}
	if !pdf.Ok() {
		return nil, nil, pdf.Error()
	}
	return pdf, box, nil
}

// placeImage draws a PNG below the current position, moving it to a new
// page when it does not fit and shrinking it to the printable height.
func placeImage(pdf *gofpdf.Fpdf, name string) *imageBox {
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	info := pdf.RegisterImageOptions(name, opts)
	if info == nil || !pdf.Ok() {
		return nil
	}

	pageW, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	w := imageWidth
	h := w
	if info.Width() > 0 {
		h = w * info.Height() / info.Width()
	}

	y := pdf.GetY()
	if y+h > pageH-bottom {
		pdf.AddPage()
		y = pdf.GetY()
	}
	if avail := pageH - bottom - y; h > avail {
		w *= avail / h
		h = avail
	}

	x := (pageW - w) / 2
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return &imageBox{Page: pdf.PageNo(), X: x, Y: y, W: w, H: h}
}

// Save writes the report to filename
func (r *Report) Save(filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
