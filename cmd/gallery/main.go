// Package main runs the gallery terminal client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	gallerycmd "github.com/louisbranch/character-gallery/internal/cmd/gallery"
	entrypoint "github.com/louisbranch/character-gallery/internal/platform/cmd"
	"github.com/louisbranch/character-gallery/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCLI, func(ctx context.Context) error {
		return gallerycmd.Execute(ctx, os.Args[1:])
	})
	stop()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
