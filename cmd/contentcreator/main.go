package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"StartupContent/internal/app"
	"StartupContent/internal/config"
	"StartupContent/internal/logging"
)

func main() {
	daily := flag.Bool("daily", false, "keep running and trigger the pipeline every day at the configured time")
	testFile := flag.String("test-file", "", "process articles from a JSON file instead of scraping")
	flag.Parse()

	cfg := config.Load()
	logger := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger, app.Options{TestFile: *testFile})
	if err != nil {
		logger.Error("cannot build application", "error", err)
		os.Exit(1)
	}

	if *daily {
		err = application.RunDaily(ctx)
	} else {
		err = application.RunOnce(ctx)
	}
	if err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
