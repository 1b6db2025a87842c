// Package scheduler runs the recurring-expense generator on an interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/household-tracker/backend/internal/application/usecase/recurring"
)

// Worker periodically runs the recurring-expense generator. Because the
// generator is idempotent per calendar month, the interval only affects how
// soon after midnight a due expense appears.
type Worker struct {
	generator *recurring.GenerateMonthlyExpensesUseCase
	interval  time.Duration
	logger    *slog.Logger
}

// WorkerConfig holds configuration for the generation worker.
type WorkerConfig struct {
	Interval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Interval: 1 * time.Hour,
	}
}

// NewWorker creates a new generation worker.
func NewWorker(generator *recurring.GenerateMonthlyExpensesUseCase, config WorkerConfig, logger *slog.Logger) *Worker {
	return &Worker{
		generator: generator,
		interval:  config.Interval,
		logger:    logger,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("recurring expense worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("recurring expense worker shutting down")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *Worker) run(ctx context.Context) {
	if _, err := w.generator.Execute(ctx); err != nil {
		w.logger.Error("recurring expense generation run failed", "error", err)
	}
}
