package cinelist

// Exporter serializes a Dataset to a spreadsheet document.
type Exporter interface {
	// Export renders the dataset as a binary spreadsheet: one styled
	// header row, one data row per record, column widths sized to content.
	Export(ds *Dataset) ([]byte, error)
}
