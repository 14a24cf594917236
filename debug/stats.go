package debug

// Runtime metrics logger enabled when config.Debug is true.
// Intentionally minimal: goroutine count plus heap/stack figures, enough to
// rule out sampler goroutine leaks and frame-buffer driven heap growth.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartStatsLogger launches a ticker that logs goroutine and memory stats at
// a fixed interval. It is lightweight; disable by running without the debug
// flag.
func StartStatsLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
