// Package main runs the Innovasmart landing page service.
//
// `web serve` hosts the page over HTTP; `web export --out DIR` writes it as
// static files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/innovasmart/site/internal/cmd/web"
	"github.com/innovasmart/site/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Main(ctx, os.Args[1:]); err != nil {
		stop()
		config.Exitf("web: %v", err)
	}
}
