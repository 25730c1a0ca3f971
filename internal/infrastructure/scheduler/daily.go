package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"StartupContent/internal/ports"
)

// DailyScheduler fires the job once immediately and then every day at a
// fixed wall-clock time in the configured location.
type DailyScheduler struct {
	hour     int
	minute   int
	location *time.Location
	logger   *slog.Logger
	stop     chan struct{}
	now      func() time.Time
}

var _ ports.Scheduler = (*DailyScheduler)(nil)

// NewDailyScheduler parses an "HH:MM" trigger time. A nil location
// defaults to UTC.
func NewDailyScheduler(at string, location *time.Location, logger *slog.Logger) (*DailyScheduler, error) {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("invalid daily time %q: %w", at, err)
	}
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyScheduler{
		hour:     parsed.Hour(),
		minute:   parsed.Minute(),
		location: location,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start runs the job immediately, then ticks at the configured time
// every day until Stop or context cancellation.
func (d *DailyScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}
	if d.stop != nil {
		return nil
	}

	d.stop = make(chan struct{})
	stop := d.stop // Stop nils the field; the goroutine keeps its own reference.
	go func() {
		job(d.now())
		for {
			wait := time.Until(d.nextRun())
			d.logger.Info("next scheduled run", "in", wait.Round(time.Second))

			timer := time.NewTimer(wait)
			select {
			case t := <-timer.C:
				job(t)
			case <-ctx.Done():
				timer.Stop()
				return
			case <-stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the scheduling goroutine.
func (d *DailyScheduler) Stop(ctx context.Context) error {
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	d.stop = nil
	return nil
}

// nextRun returns the next occurrence of the configured wall-clock time.
func (d *DailyScheduler) nextRun() time.Time {
	now := d.now().In(d.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), d.hour, d.minute, 0, 0, d.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
