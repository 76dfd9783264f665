// benchmark.go
// A reusable benchmarking module for Seq Tagger
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Stats is the resource usage of one measured run
type Stats struct {
	Elapsed        time.Duration
	AllocMB        float64
	TotalAllocMB   float64
	HeapMB         float64
	GCCycles       uint32
	GoroutinesFrom int
	GoroutinesTo   int
}

// Run wraps any function to measure its runtime and memory usage.
func Run(label string, f func()) {
	Measure(os.Stdout, label, f)
}

// Measure runs f, printing environment info and resource usage to w
func Measure(w io.Writer, label string, f func()) Stats {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	f()

	st := Stats{Elapsed: time.Since(start)}
	runtime.ReadMemStats(&memEnd)
	st.GoroutinesFrom = startGoroutines
	st.GoroutinesTo = runtime.NumGoroutine()
	st.AllocMB = mb(int64(memEnd.Alloc) - int64(memStart.Alloc))
	st.TotalAllocMB = mb(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	st.HeapMB = mb(int64(memEnd.HeapAlloc))
	st.GCCycles = memEnd.NumGC - memStart.NumGC

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", st.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", st.AllocMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", st.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", st.HeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", st.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d → %d\n", st.GoroutinesFrom, st.GoroutinesTo)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return st
}

func mb(bytes int64) float64 {
	return float64(bytes) / 1024.0 / 1024.0
}
