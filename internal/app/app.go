package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"StartupContent/internal/config"
	"StartupContent/internal/content"
	"StartupContent/internal/infrastructure/llm"
	"StartupContent/internal/infrastructure/parser"
	"StartupContent/internal/infrastructure/scheduler"
	"StartupContent/internal/infrastructure/snapshot"
	"StartupContent/internal/infrastructure/storage"
	"StartupContent/internal/ledger"
	"StartupContent/internal/logging"
	"StartupContent/internal/ports"
	"StartupContent/internal/scanner"
	"StartupContent/internal/selector"
	"StartupContent/internal/usecase"
)

// Options tweak how the application is assembled.
type Options struct {
	// TestFile, when set, feeds the pipeline from a prepared article
	// JSON file instead of scraping the configured sites.
	TestFile string
}

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	tracker  ports.TabularStore
}

// New builds a runnable application instance from configuration.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, opts Options) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	}

	tracker, err := NewTracker(ctx, cfg, baseLogger)
	if err != nil {
		return nil, err
	}
	if tracker != nil {
		if err := tracker.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure tracker schema: %w", err)
		}
	}

	articleLedger := ledger.New(cfg.Ledger.Path, baseLogger.With("component", "ledger"))

	var source ports.ArticleSource
	if opts.TestFile != "" {
		source = snapshot.NewFileSource(opts.TestFile)
	} else {
		registry := scanner.NewRegistry()
		registry.Register(parser.NewMenaBytesScanner(nil))
		source = parser.NewStrategySource(registry, cfg.Sites, baseLogger.With("component", "source"))
	}

	var generator ports.Generator
	if cfg.OpenAI.APIKey != "" {
		generator = llm.NewOpenAIClient(cfg.OpenAI)
	} else {
		baseLogger.Warn("OpenAI API key not set, using template generation only")
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Snapshots: snapshot.NewStore(cfg.Output.DataDir, baseLogger.With("component", "snapshot")),
		Ledger:    articleLedger,
		Selector:  selector.New(articleLedger, baseLogger.With("component", "selector")),
		Generator: generator,
		Fallback:  content.NewFallback(rand.NewSource(time.Now().UnixNano()), baseLogger.With("component", "fallback")),
		Tracker:   tracker,
		OutputDir: cfg.Output.Dir,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		pipeline: pipeline,
		tracker:  tracker,
	}, nil
}

// NewTracker builds the configured tabular store backend. Shared with
// the maintenance CLI.
func NewTracker(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.TabularStore, error) {
	storeLogger := logger.With("component", "tracker")
	switch cfg.Storage.Backend {
	case config.StorageBackendExcel:
		return storage.NewExcelStore(cfg.Storage.ExcelPath, storeLogger)
	case config.StorageBackendSheets:
		return storage.NewSheetsStore(ctx, cfg.Storage.Sheets.CredentialsPath, cfg.Storage.Sheets.SpreadsheetID, storeLogger)
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(storeLogger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Tracker exposes the configured tabular store for maintenance tools.
func (a *Application) Tracker() ports.TabularStore {
	return a.tracker
}

// RunOnce performs a single pipeline execution.
func (a *Application) RunOnce(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	now := time.Now().In(a.cfg.Scheduler.Location())
	return a.pipeline.ProcessDay(ctx, now)
}

// RunDaily runs the pipeline immediately and then every day at the
// configured time, until the context is cancelled.
func (a *Application) RunDaily(ctx context.Context) error {
	driver, err := scheduler.NewDailyScheduler(a.cfg.Scheduler.DailyAt, a.cfg.Scheduler.Location(), a.logger.With("component", "scheduler"))
	if err != nil {
		return err
	}

	sched := usecase.NewScheduler(driver, a.pipeline)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sched.Stop(stopCtx)
}
