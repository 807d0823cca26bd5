// Package excel provides an excelize-based implementation of
// cinelist.Exporter: a styled xlsx workbook with a header row, one data
// row per record, and content-sized column widths.
package excel

import (
	"fmt"
	"os"

	"github.com/mtoscano/cinelist"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet.
const SheetName = "IMDb List"

// DefaultFilename is the artifact name offered to downloads.
const DefaultFilename = "imdb_list.xlsx"

// maxColWidth caps the content-sized column width.
const maxColWidth = 50

// Ensure Exporter implements cinelist.Exporter at compile time.
var _ cinelist.Exporter = (*Exporter)(nil)

// Exporter serializes datasets to xlsx workbooks.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders the dataset as an xlsx workbook: bold gray header with
// thin borders, top-aligned wrapped body cells, and per-column widths
// sized to the longest rendered value capped at maxColWidth. Duration is
// written as a bare integer minute count.
func (e *Exporter) Export(ds *cinelist.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "000000"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create body style: %w", err)
	}

	columns := cinelist.Columns()

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(SheetName, 1, 20); err != nil {
		return nil, err
	}

	for i, row := range ds.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if len(ds.Rows) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(columns), len(ds.Rows)+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, "A2", lastCell, bodyStyle); err != nil {
			return nil, err
		}
	}

	if err := sizeColumns(f, ds, columns); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile exports the dataset and writes the workbook to path.
func (e *Exporter) WriteFile(path string, ds *cinelist.Dataset) error {
	b, err := e.Export(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// writeRow writes one dataset row with typed cell values so numeric
// columns stay numeric in the workbook. Unresolved fields stay empty.
func writeRow(f *excelize.File, rowNum int, row cinelist.Row) error {
	values := []any{row.No, row.Title, nil, nil, nil, nil, nil}
	if row.Year != nil {
		values[2] = *row.Year
	}
	if row.Duration != nil {
		values[3] = *row.Duration
	}
	if row.Age != "" {
		values[4] = row.Age
	}
	if row.Rating != nil {
		values[5] = *row.Rating
	}
	if row.Votes != nil {
		values[6] = *row.Votes
	}

	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// sizeColumns sets each column's width to its longest rendered value plus
// padding, capped at maxColWidth.
func sizeColumns(f *excelize.File, ds *cinelist.Dataset, columns []string) error {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for _, row := range ds.Rows {
		for i, v := range row.Values() {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	for i := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		w := float64(widths[i] + 2)
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
