package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingRecorder captures auth outcomes as "operation/result" keys.
type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{counts: map[string]int{}}
}

func (r *countingRecorder) ObserveAuthAttempt(operation, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[operation+"/"+result]++
}

func (r *countingRecorder) ObservePasswordHash(string, time.Duration) {}

func (r *countingRecorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counts[key]
}
