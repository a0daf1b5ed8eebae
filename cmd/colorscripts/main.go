// Package main is the entry point for colorscripts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/colorscripts/internal/app"
	"github.com/samdwyer/colorscripts/internal/telemetry"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetPrefix("colorscripts: ")
	log.SetOutput(stderr)

	// Load .env for local development. A missing file is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	fs := flag.NewFlagSet("pokemon-colorscripts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := app.ParseConfig(fs, args)
	if err != nil {
		// The flag set has already printed parse errors.
		if !errors.Is(err, app.ErrUsage) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	a, err := app.New(cfg, os.DirFS(cfg.DataDir), stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
