package mock

import "github.com/mtoscano/cinelist"

var _ cinelist.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of cinelist.Exporter.
type Exporter struct {
	ExportFn func(ds *cinelist.Dataset) ([]byte, error)
}

func (e *Exporter) Export(ds *cinelist.Dataset) ([]byte, error) {
	return e.ExportFn(ds)
}
