package worker

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/export"
	"fintrack/internal/seed"
	"fintrack/internal/storage/memory"
)

func TestHandleEventExportsFullSnapshot(t *testing.T) {
	store := memory.NewTransactionStore()
	if err := store.Save(context.Background(), seed.Transactions()); err != nil {
		t.Fatalf("save: %v", err)
	}
	exporter := export.NewMemory()
	w := NewExportWorker(store, exporter)

	msg := amqp.NewTransactionEventMessage("add", "1", 1)
	if err := w.HandleEvent(context.Background(), msg); err != nil {
		t.Fatalf("handle event: %v", err)
	}

	snaps := exporter.Snapshots()
	if len(snaps) != 1 {
		t.Fatalf("expected 1 export, got %d", len(snaps))
	}
	if len(snaps[0]) != 7 {
		t.Fatalf("expected full snapshot of 7 records, got %d", len(snaps[0]))
	}
}

func TestHandleEventPropagatesExportError(t *testing.T) {
	store := memory.NewTransactionStore()
	exporter := export.NewMemory()
	exporter.Fail(errors.New("sheets unavailable"))
	w := NewExportWorker(store, exporter)

	msg := amqp.NewTransactionEventMessage("edit", "1", 2)
	if err := w.HandleEvent(context.Background(), msg); err == nil {
		t.Fatalf("expected export error")
	}
	if len(exporter.Snapshots()) != 0 {
		t.Fatalf("failed export should not record a snapshot")
	}
}
