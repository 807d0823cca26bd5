package cinelist

import (
	"context"
	"time"
)

// Run represents one recorded scrape: the source URL, extraction counters,
// and the resulting dataset rows.
type Run struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ItemsFound int       `json:"itemsFound"`
	Skipped    int       `json:"skipped"`
	RowCount   int       `json:"rowCount"`
	CreatedAt  time.Time `json:"createdAt"`

	// Rows holds the dataset snapshot. Populated on create and by
	// FindRunByID; list queries leave it empty.
	Rows []Row `json:"rows,omitempty"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "run URL required")
	}
	return nil
}

// Dataset reconstructs the stored dataset snapshot.
func (r *Run) Dataset() *Dataset {
	return &Dataset{Rows: r.Rows}
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RunService represents a service for managing recorded scrape runs.
type RunService interface {
	// CreateRun records a run together with its dataset rows.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its rows.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first,
	// without their rows.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its rows.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
