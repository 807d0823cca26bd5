package main

import (
	"fmt"
	"os"

	"github.com/mtoscano/cinelist"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cinelist.ErrorMessage(err))
		return err
	}

	b, err := deps.Exporter.Export(run.Dataset())
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, b, 0644); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", len(run.Rows), c.Out)
	return nil
}
