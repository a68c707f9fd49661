// Package excel exports fixture corpora and verification reports to .xlsx
// workbooks for review outside the system.
package excel

import (
	"encoding/hex"
	"fmt"

	"fountains/ports"

	"github.com/xuri/excelize/v2"
)

// Exporter implements the FixtureExporter port using excelize
type Exporter struct{}

// NewExporter creates a new spreadsheet exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

var _ ports.FixtureExporter = (*Exporter)(nil)

// ExportFixtures writes a fixture corpus to path, one row per InputVector
func (e *Exporter) ExportFixtures(path string, export ports.FixtureExport) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Fixtures"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"index", "seed_hex", "length", "vector_hex"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, vector := range export.Vectors {
		values := []interface{}{row, export.SeedHex, export.Length, hex.EncodeToString(vector)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ExportReport writes a verification report to path, one row per test case
func (e *Exporter) ExportReport(path string, report ports.VerificationReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Verification"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []string{"spec_id", "spec_label", "function_label", "index", "consistent"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, result := range report.Results {
		values := []interface{}{report.SpecID, report.SpecLabel, report.FunctionLabel, row, result}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
