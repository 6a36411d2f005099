// Package worker drives snapshot exports: mutation events trigger an
// immediate export, and a periodic tick re-exports as missed-message
// recovery.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/export"
	"fintrack/internal/storage"
)

// ExportWorker reads the current snapshot from storage and hands it to the
// exporter.
type ExportWorker struct {
	store    storage.TransactionStore
	exporter export.Exporter
}

func NewExportWorker(store storage.TransactionStore, exporter export.Exporter) *ExportWorker {
	return &ExportWorker{
		store:    store,
		exporter: exporter,
	}
}

// HandleEvent processes a single mutation event from AMQP. The event only
// names the change; the export always covers the full current snapshot.
func (w *ExportWorker) HandleEvent(ctx context.Context, msg *amqp.TransactionEventMessage) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"op", msg.Op,
		"id", msg.ID,
		"version", msg.Version)

	return w.exportSnapshot(ctx)
}

// RunPeriodic exports the snapshot every interval until the context is
// cancelled. Export failures are logged and retried on the next tick.
func (w *ExportWorker) RunPeriodic(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "Starting periodic export", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping periodic export", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			if err := w.exportSnapshot(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic export failed", "error", err)
			}
		}
	}
}

func (w *ExportWorker) exportSnapshot(ctx context.Context) error {
	txs, err := w.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if err := w.exporter.Export(ctx, txs); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Exported snapshot", "transactions", len(txs))
	return nil
}
