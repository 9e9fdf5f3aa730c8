package debug

// Memory/RSS periodic logger enabled when config.Debug is true.
// Logs resident memory along with Go heap and stack stats so native image
// buffers (Tk photos, render targets) can be told apart from heap growth.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Sample is one reading of process memory.
type Sample struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapInuse  uint64
	HeapSys    uint64
	StackInuse uint64
	NumGC      uint32
	RSS        uint64 // 0 when unavailable
}

// Read takes a sample. RSS errors are returned alongside the partial sample.
func Read() (Sample, error) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Sample{
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		HeapSys:    ms.HeapSys,
		StackInuse: ms.StackInuse,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	}
	rss, err := residentBytes()
	s.RSS = rss
	return s, err
}

// Start launches Run in a goroutine.
func Start(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	go Run(ctx, interval, logger)
}

// Run logs a Sample every interval until ctx is done. RSS failures are
// logged once and suppressed.
func Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	var rssErrLogged bool
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		s, err := Read()
		if err != nil && !rssErrLogged {
			logger.Warn("memlog: rss query failed", slog.String("err", err.Error()))
			rssErrLogged = true
		}
		logger.Info("memstats",
			slog.Uint64("goroutines", s.Goroutines),
			slog.Uint64("heap_alloc", s.HeapAlloc),
			slog.Uint64("heap_inuse", s.HeapInuse),
			slog.Uint64("heap_sys", s.HeapSys),
			slog.Uint64("stack_inuse", s.StackInuse),
			slog.Uint64("rss", s.RSS),
			slog.Uint64("num_gc", uint64(s.NumGC)),
		)
	}
}
