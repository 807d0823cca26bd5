package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtoscano/cinelist/web"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(c.Addr, deps.Scraper, deps.Exporter)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return server.Run(ctx)
}
