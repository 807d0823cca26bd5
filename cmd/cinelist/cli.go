package main

import (
	"context"
	"io"
	"time"

	"github.com/mtoscano/cinelist"
	"github.com/mtoscano/cinelist/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Scraper  *scrape.Scraper
	Exporter cinelist.Exporter
	Runs     cinelist.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction details to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Extract a listing URL and print the dataset"`
	Serve   ServeCmd   `cmd:"" help:"Start the web display surface"`
	History HistoryCmd `cmd:"" help:"List recorded scrape runs"`
	Export  ExportCmd  `cmd:"" help:"Export a recorded run to a spreadsheet"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a recorded run"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL       string        `arg:"" help:"Listing page URL"`
	Out       string        `short:"o" help:"Also write an .xlsx workbook to this path"`
	Engine    string        `default:"http" enum:"http,colly" help:"Fetch engine"`
	Timeout   time.Duration `default:"25s" help:"Fetch timeout"`
	NoHistory bool          `help:"Skip recording the run"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string        `default:":8080" help:"Listen address"`
	Engine  string        `default:"http" enum:"http,colly" help:"Fetch engine"`
	Timeout time.Duration `default:"25s" help:"Fetch timeout"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `default:"20" help:"Maximum number of runs to list"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Run ID"`
	Out string `short:"o" default:"imdb_list.xlsx" help:"Output path"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Run ID"`
}
