package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ddegtyarev/linkpulse/internal/storage"
	"github.com/ddegtyarev/linkpulse/internal/worker"
)

type MockStore struct {
	mu     sync.Mutex
	Calls  [][]storage.ClickRecord
	FailOn int
	CallNo int
}

func (m *MockStore) WriteClicks(_ context.Context, clicks []storage.ClickRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := make([]storage.ClickRecord, len(clicks))
	copy(batch, clicks)
	m.Calls = append(m.Calls, batch)
	m.CallNo++
	if m.CallNo == m.FailOn {
		return errors.New("forced failure")
	}
	return nil
}

func (m *MockStore) calls() [][]storage.ClickRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

func testLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	logger, _ := cfg.Build()
	return logger
}

func TestFlush_BatchTrigger(t *testing.T) {
	store := &MockStore{}
	logger := testLogger()

	w := worker.NewClickFlushWorker(logger, store)
	in := w.GetInChannel()

	go w.Flush()

	// One full batch triggers an immediate write.
	for i := 0; i < 25; i++ {
		in <- storage.ClickRecord{LinkID: "link-1", Browser: "Chrome"}
	}

	require.Eventually(t, func() bool {
		return len(store.calls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.Len(t, store.calls()[0], 25)
}

func TestFlush_TimerTrigger(t *testing.T) {
	store := &MockStore{}
	logger := testLogger()

	w := worker.NewClickFlushWorker(logger, store)
	in := w.GetInChannel()

	go w.Flush()

	in <- storage.ClickRecord{LinkID: "link-1"}
	in <- storage.ClickRecord{LinkID: "link-2"}

	require.Eventually(t, func() bool {
		return len(store.calls()) == 1
	}, 10*time.Second, 100*time.Millisecond)

	require.Len(t, store.calls()[0], 2)
}

func TestFlush_ErrorDropsBatch(t *testing.T) {
	store := &MockStore{FailOn: 1}
	logger := testLogger()

	w := worker.NewClickFlushWorker(logger, store)
	in := w.GetInChannel()

	go w.Flush()

	for i := 0; i < 30; i++ {
		in <- storage.ClickRecord{LinkID: "link-1"}
	}

	// The failed batch is dropped, not retried: later writes carry only
	// later clicks.
	require.Eventually(t, func() bool {
		return len(store.calls()) >= 1
	}, 10*time.Second, 100*time.Millisecond)

	calls := store.calls()
	require.Len(t, calls[0], 25)
	if len(calls) > 1 {
		require.LessOrEqual(t, len(calls[1]), 5)
	}
}
