package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

type ClickStore interface {
	WriteClicks(context.Context, []storage.ClickRecord) error
}

const (
	// bufferSize is how many clicks may be queued before senders start
	// dropping events instead of blocking the redirect path.
	bufferSize = 1024
	batchSize  = 25
	flushEvery = 5 * time.Second
	writeGrace = 3 * time.Second
)

// ClickFlushWorker drains the click channel and batches writes to the
// store. Writes are best-effort: a failed batch is logged and dropped,
// never retried and never surfaced to a requester.
type ClickFlushWorker struct {
	in     chan storage.ClickRecord
	logger *zap.Logger
	store  ClickStore
}

func NewClickFlushWorker(logger *zap.Logger, store ClickStore) *ClickFlushWorker {
	return &ClickFlushWorker{
		in:     make(chan storage.ClickRecord, bufferSize),
		logger: logger,
		store:  store,
	}
}

func (w *ClickFlushWorker) GetInChannel() chan<- storage.ClickRecord {
	return w.in
}

// Flush accumulates clicks and writes them once the batch is full or the
// ticker fires. It runs until the process exits; the channel buffer is
// what lets a redirect response return before its click is persisted.
func (w *ClickFlushWorker) Flush() {
	ticker := time.NewTicker(flushEvery)
	var batch []storage.ClickRecord

	write := func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeGrace)
		defer cancel()

		if err := w.store.WriteClicks(ctx, batch); err != nil {
			w.logger.Error("cannot persist click batch",
				zap.Int("count", len(batch)),
				zap.Error(err),
			)
		}
		batch = batch[:0]
	}

	for {
		select {
		case click := <-w.in:
			batch = append(batch, click)
			if len(batch) >= batchSize {
				write()
			}
		case <-ticker.C:
			if len(batch) == 0 {
				continue
			}
			write()
		}
	}
}
