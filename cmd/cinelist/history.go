package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/mtoscano/cinelist"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, cinelist.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cinelist.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'cinelist scrape' to create one.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tROWS\tSKIPPED\tURL")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.CreatedAt.Format(time.RFC3339), run.RowCount, run.Skipped, run.URL)
	}
	return tw.Flush()
}
