package sweep

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gomohr/internal/plane"
)

var scenario = plane.StressState{SigmaX: 200, SigmaY: -200, TauXY: 200}

func TestRunRowCount(t *testing.T) {
	tests := []struct {
		from, to, step float64
		want           int
	}{
		{0, 180, 1, 181},
		{0, 180, 0.1, 1801},
		{-90, 90, 45, 5},
		{10, 10, 5, 1},
		{0, 10, 3, 4}, // 0 3 6 9
	}
	for _, tt := range tests {
		tab, err := Run(scenario, tt.from, tt.to, tt.step)
		if err != nil {
			t.Fatal(err)
		}
		if len(tab.Rows) != tt.want {
			t.Errorf("Run(%g..%g by %g) = %d rows, want %d", tt.from, tt.to, tt.step, len(tab.Rows), tt.want)
		}
		if tab.Rows[0].AngleDeg != tt.from {
			t.Errorf("first angle %g, want %g", tab.Rows[0].AngleDeg, tt.from)
		}
	}
}

func TestRunMatchesTransform(t *testing.T) {
	tab, err := Run(scenario, -45, 45, 7.5)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range tab.Rows {
		if r.TransformedStress != plane.TransformStress(scenario, r.AngleDeg) {
			t.Errorf("angle %g: row %+v", r.AngleDeg, r.TransformedStress)
		}
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(scenario, 0, 10, 0); !errors.Is(err, ErrStep) {
		t.Errorf("zero step: %v", err)
	}
	if _, err := Run(scenario, 0, 10, math.NaN()); !errors.Is(err, ErrStep) {
		t.Errorf("NaN step: %v", err)
	}
	if _, err := Run(scenario, 10, 0, 1); !errors.Is(err, ErrRange) {
		t.Errorf("reversed range: %v", err)
	}
	if _, err := Run(scenario, 0, 1e9, 1); !errors.Is(err, ErrTooLarge) {
		t.Errorf("huge range: %v", err)
	}
	if _, err := Run(scenario, 0, 10, math.Inf(1)); !errors.Is(err, ErrStep) {
		t.Errorf("infinite step: %v", err)
	}

	inf := math.Inf(1)
	for _, r := range []struct{ from, to float64 }{
		{inf, inf},
		{-inf, inf},
		{-inf, -inf},
		{0, inf},
		{math.NaN(), 10},
		{0, math.NaN()},
	} {
		if _, err := Run(scenario, r.from, r.to, 1); !errors.Is(err, ErrRange) {
			t.Errorf("Run(%g, %g): %v", r.from, r.to, err)
		}
	}
}

func TestExtremes(t *testing.T) {
	tab, err := Run(scenario, 0, 180, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	ext := tab.Extremes()
	c := plane.ComputeMohrsCircle(scenario)

	if ext.MaxSigmaX.AngleDeg != 22.5 {
		t.Errorf("max σx' at %g, want 22.5", ext.MaxSigmaX.AngleDeg)
	}
	if math.Abs(ext.MaxSigmaX.Value-c.Sigma1) > 1e-9 {
		t.Errorf("max σx' = %g, want %g", ext.MaxSigmaX.Value, c.Sigma1)
	}
	if ext.MinSigmaX.AngleDeg != 112.5 {
		t.Errorf("min σx' at %g, want 112.5", ext.MinSigmaX.AngleDeg)
	}
	if math.Abs(math.Abs(ext.MaxAbsShear.Value)-c.TauMax) > 1e-9 {
		t.Errorf("max |τ| = %g, want %g", ext.MaxAbsShear.Value, c.TauMax)
	}

	if (&Table{}).Extremes() != (Extremes{}) {
		t.Error("empty table extremes not zero")
	}
}

func TestWriteCSV(t *testing.T) {
	tab, err := Run(plane.StressState{SigmaX: 100}, 0, 90, 45)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(tab, &buf); err != nil {
		t.Fatal(err)
	}

	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 4 {
		t.Fatalf("%d records, want header + 3", len(recs))
	}
	if recs[0][0] != header[0] {
		t.Errorf("header = %v", recs[0])
	}
	sx, _ := strconv.ParseFloat(recs[2][1], 64)
	tau, _ := strconv.ParseFloat(recs[2][3], 64)
	if math.Abs(sx-50) > 1e-9 || math.Abs(tau+50) > 1e-9 {
		t.Errorf("45° row = %v", recs[2])
	}
}

func TestExportXLSX(t *testing.T) {
	tab, err := Run(scenario, 0, 90, 10)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "sweep.xlsx")
	if err := Export(tab, path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sweepSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(tab.Rows)+1 {
		t.Fatalf("%d sheet rows, want %d", len(rows), len(tab.Rows)+1)
	}
	if rows[0][1] != header[1] {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "0" || rows[10][0] != "90" {
		t.Errorf("angle column = %q .. %q", rows[1][0], rows[10][0])
	}

	input, err := f.GetRows(inputSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(input) == 0 || input[0][1] != "200" {
		t.Errorf("input sheet = %v", input)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	tab, _ := Run(scenario, 0, 10, 5)
	if err := Export(tab, filepath.Join(t.TempDir(), "sweep.json")); err == nil {
		t.Error("expected unsupported format error")
	}
}
