package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mtoscano/cinelist"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	res, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cinelist.ErrorMessage(err))
		return err
	}

	if !res.Recognized() {
		fmt.Fprintf(deps.Stdout, "No recognizable listing found at %s\n", c.URL)
		return nil
	}

	if res.HistoryErr != nil {
		fmt.Fprintf(deps.Stderr, "warning: run not recorded: %s\n", cinelist.ErrorMessage(res.HistoryErr))
	}

	printDataset(deps.Stdout, res.Dataset)
	fmt.Fprintf(deps.Stdout, "\n%d rows (%d items found, %d skipped)\n",
		res.Dataset.Len(), res.ItemsFound, res.Skipped)

	if c.Out != "" {
		b, err := deps.Exporter.Export(res.Dataset)
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.Out, b, 0644); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}

	return nil
}

// printDataset renders the dataset as an aligned table.
func printDataset(w io.Writer, ds *cinelist.Dataset) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cinelist.Columns(), "\t"))
	for _, row := range ds.Rows {
		fmt.Fprintln(tw, strings.Join(row.Values(), "\t"))
	}
	_ = tw.Flush()
}
