package excel_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mtoscano/cinelist"
	"github.com/mtoscano/cinelist/excel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr(v int) *int          { return &v }
func ptrF(v float64) *float64 { return &v }

func testDataset() *cinelist.Dataset {
	return cinelist.NewDataset([]cinelist.Record{
		{
			Title:    "The Shawshank Redemption",
			Year:     ptr(1994),
			Duration: ptr(142),
			Age:      "R",
			Rating:   ptrF(9.3),
			Votes:    ptr(2000000),
		},
		{Title: "Stalker", Year: ptr(1979)},
	})
}

func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	b, err := excel.NewExporter().Export(testDataset())
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f := openWorkbook(t, b)

	t.Run("SheetName", func(t *testing.T) {
		assert.Equal(t, []string{excel.SheetName}, f.GetSheetList())
	})

	t.Run("HeaderRow", func(t *testing.T) {
		for i, want := range cinelist.Columns() {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			require.NoError(t, err)
			got, err := f.GetCellValue(excel.SheetName, cell)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("HeaderStyled", func(t *testing.T) {
		styleID, err := f.GetCellStyle(excel.SheetName, "A1")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotNil(t, style.Font)
		assert.True(t, style.Font.Bold)
		require.NotEmpty(t, style.Fill.Color)
		assert.Contains(t, style.Fill.Color[0], "DDDDDD")
	})

	t.Run("DataRow", func(t *testing.T) {
		wants := map[string]string{
			"A2": "1",
			"B2": "The Shawshank Redemption",
			"C2": "1994",
			"D2": "142", // bare minute count
			"E2": "R",
			"F2": "9.3",
			"G2": "2000000",
		}
		for cell, want := range wants {
			got, err := f.GetCellValue(excel.SheetName, cell)
			require.NoError(t, err)
			assert.Equal(t, want, got, cell)
		}
	})

	t.Run("UnresolvedCellsEmpty", func(t *testing.T) {
		for _, cell := range []string{"D3", "E3", "F3", "G3"} {
			got, err := f.GetCellValue(excel.SheetName, cell)
			require.NoError(t, err)
			assert.Empty(t, got, cell)
		}
	})

	t.Run("ColumnWidths", func(t *testing.T) {
		// Title column sized to its longest value plus padding.
		w, err := f.GetColWidth(excel.SheetName, "B")
		require.NoError(t, err)
		assert.InDelta(t, float64(len("The Shawshank Redemption")+2), w, 0.5)
	})
}

func TestExporter_Export_WidthCapped(t *testing.T) {
	t.Parallel()

	long := "An Extremely Long Movie Title That Goes On And On Well Past Any Reasonable Length"
	ds := cinelist.NewDataset([]cinelist.Record{{Title: long}})

	b, err := excel.NewExporter().Export(ds)
	require.NoError(t, err)

	f := openWorkbook(t, b)
	w, err := f.GetColWidth(excel.SheetName, "B")
	require.NoError(t, err)
	assert.InDelta(t, 50, w, 0.5)
}

func TestExporter_Export_EmptyDataset(t *testing.T) {
	t.Parallel()

	b, err := excel.NewExporter().Export(cinelist.NewDataset(nil))
	require.NoError(t, err)

	f := openWorkbook(t, b)
	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, cinelist.Columns(), rows[0])
}

func TestExporter_WriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), excel.DefaultFilename)
	require.NoError(t, excel.NewExporter().WriteFile(path, testDataset()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
