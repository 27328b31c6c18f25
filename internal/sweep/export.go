package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gomohr/internal/plane"
)

var header = []string{"Angle (deg)", "σx' (MPa)", "σy' (MPa)", "τx'y' (MPa)"}

const (
	sweepSheet = "Sweep"
	inputSheet = "Input"
)

// Export writes the table to filename; the format follows the extension
// (.xlsx or .csv). Other extensions are rejected.
func Export(t *Table, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".csv" {
		return fmt.Errorf("unsupported sweep format %q (use .xlsx or .csv)", ext)
	}

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

	if ext == ".csv" {
		err = WriteCSV(t, f)
	} else {
		err = WriteXLSX(t, f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCSV writes the sweep rows as comma separated values
func WriteCSV(t *Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range t.Rows {
		rec := []string{
			formatFloat(r.AngleDeg),
			formatFloat(r.SigmaXPrime),
			formatFloat(r.SigmaYPrime),
			formatFloat(r.TauXYPrime),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteXLSX writes a workbook with the sweep rows and an input summary sheet
func WriteXLSX(t *Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sweepSheet); err != nil {
		return err
	}

	hdr := make([]interface{}, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sweepSheet, "A1", &hdr); err != nil {
		return err
	}
	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.AngleDeg, r.SigmaXPrime, r.SigmaYPrime, r.TauXYPrime}
		if err := f.SetSheetRow(sweepSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetPanes(sweepSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet(inputSheet); err != nil {
		return err
	}
	circle := plane.ComputeMohrsCircle(t.Stress)
	ext := t.Extremes()
	summary := [][]interface{}{
		{"σx (MPa)", t.Stress.SigmaX},
		{"σy (MPa)", t.Stress.SigmaY},
		{"τxy (MPa)", t.Stress.TauXY},
		{"From (deg)", t.From},
		{"To (deg)", t.To},
		{"Step (deg)", t.Step},
		{"Center (MPa)", circle.Center},
		{"Radius (MPa)", circle.Radius},
		{"σ1 (MPa)", circle.Sigma1},
		{"σ2 (MPa)", circle.Sigma2},
		{"Sampled max σx' (MPa)", ext.MaxSigmaX.Value},
		{"Sampled max shear τx'y' (MPa)", ext.MaxAbsShear.Value},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(inputSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
