package cleanup

import (
	"context"
	"log"
	"time"
)

type VerdictPruner interface {
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type Worker struct {
	Ledger        VerdictPruner
	RetentionDays int
	Interval      time.Duration
	stop          chan struct{}
}

func NewWorker(ledger VerdictPruner, retentionDays int) *Worker {
	return &Worker{
		Ledger:        ledger,
		RetentionDays: retentionDays,
		Interval:      1 * time.Hour,
		stop:          make(chan struct{}),
	}
}

// Start initiates the background ticker
func (w *Worker) Start() {
	go func() {
		w.runCleanup()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	close(w.stop)
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deletedCount, err := w.Ledger.DeleteOlderThan(ctx, w.RetentionDays)
	if err != nil {
		log.Printf("[CLEANUP] Error pruning verdict ledger: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d verdicts older than %d days", deletedCount, w.RetentionDays)
	}
}
