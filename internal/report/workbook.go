// AngelaMos | 2026
// workbook.go

// Package report renders tabular exports as xlsx workbooks.
package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Build writes each sheet with a header row. Decimals are stored as
// numbers and times as dates.
func Build(sheets ...Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", sheet.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		for col, header := range sheet.Headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, fmt.Errorf("header cell: %w", err)
			}
			if err := f.SetCellValue(sheet.Name, cell, header); err != nil {
				return nil, fmt.Errorf("set header: %w", err)
			}
		}

		for r, row := range sheet.Rows {
			for col, value := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return nil, fmt.Errorf("row cell: %w", err)
				}
				if err := f.SetCellValue(sheet.Name, cell, cellValue(value)); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}
	}

	if len(sheets) > 0 && sheets[0].Name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("drop default sheet: %w", err)
		}
	}

	return f, nil
}

func cellValue(v any) any {
	switch t := v.(type) {
	case decimal.Decimal:
		f, _ := t.Float64()
		return f
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(time.DateOnly)
	case *string:
		if t == nil {
			return ""
		}
		return *t
	default:
		return v
	}
}

// Serve sends the workbook as a download named prefix_<timestamp>.xlsx.
func Serve(w http.ResponseWriter, prefix string, sheets ...Sheet) error {
	f, err := Build(sheets...)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	fileName := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
