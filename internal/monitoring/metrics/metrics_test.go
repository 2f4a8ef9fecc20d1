// Licensed under the MIT License. See LICENSE file in the project root for details.

package metrics

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestNewRecorderDefaults(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := NewRecorder(Config{})
	defer rec.Close()

	snap := rec.Snapshot()
	if snap.Config != DefaultConfig() {
		t.Errorf("Expected default config, got %+v", snap.Config)
	}
	if len(snap.Labels) != 0 {
		t.Errorf("Expected no labels, got %d", len(snap.Labels))
	}
}

func TestRecordAndClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := NewRecorder(DefaultConfig())
	rec.Record("wide", 3*time.Microsecond, 3, 96)
	rec.Record("wide", 1*time.Microsecond, 1, 32)
	rec.Record("scalar", 10*time.Microsecond, 2, 64)
	rec.Close()

	snap := rec.Snapshot()
	wide := snap.Labels["wide"]
	if wide.Ops != 4 {
		t.Errorf("Expected 4 wide ops, got %d", wide.Ops)
	}
	if wide.Bytes != 128 {
		t.Errorf("Expected 128 wide bytes, got %d", wide.Bytes)
	}
	if wide.Elapsed != 4*time.Microsecond {
		t.Errorf("Expected 4µs elapsed, got %v", wide.Elapsed)
	}
	// Both batches average 1µs per comparison.
	if wide.Latency.Count != 2 || wide.Latency.Mean != time.Microsecond {
		t.Errorf("Unexpected wide latency %+v", wide.Latency)
	}
	// 128 bytes in 4µs is 32 MB/s.
	if wide.MBPerSec < 31.99 || wide.MBPerSec > 32.01 {
		t.Errorf("Expected 32 MB/s, got %f", wide.MBPerSec)
	}

	if got := snap.Labels["scalar"].Latency.P50; got != 5*time.Microsecond {
		t.Errorf("Expected scalar p50 of 5µs, got %v", got)
	}
	if names := snap.Names(); len(names) != 2 || names[0] != "scalar" || names[1] != "wide" {
		t.Errorf("Unexpected label order %v", names)
	}
}

func TestRecordZeroOps(t *testing.T) {
	rec := NewRecorder(DefaultConfig())
	rec.Record("narrow", time.Millisecond, 0, 0)
	rec.Close()

	st := rec.Snapshot().Labels["narrow"]
	if st.Latency.Count != 0 {
		t.Errorf("Expected no latency samples for an empty batch, got %d", st.Latency.Count)
	}
	if st.MBPerSec != 0 {
		t.Errorf("Expected zero throughput, got %f", st.MBPerSec)
	}
}

func TestRecordDropsWhenFull(t *testing.T) {
	rec := NewRecorder(Config{BufferSize: 1, LatencySample: 4})

	const attempts = 10000
	for i := 0; i < attempts; i++ {
		rec.Record("wide", time.Nanosecond, 1, 1)
	}
	rec.Close()

	snap := rec.Snapshot()
	if got := snap.Labels["wide"].Ops + snap.Dropped; got != attempts {
		t.Errorf("Expected processed+dropped to be %d, got %d", attempts, got)
	}
}

func TestConcurrentRecord(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := NewRecorder(Config{BufferSize: 100000, LatencySample: 100})

	var wg sync.WaitGroup
	numGoroutines := 10
	operationsPerGoroutine := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				rec.Record("wide", time.Microsecond, 1, 32)
				rec.Record("narrow", time.Microsecond, 1, 32)
			}
		}()
	}
	wg.Wait()
	rec.Close()

	snap := rec.Snapshot()
	expected := uint64(numGoroutines * operationsPerGoroutine)
	for _, label := range []string{"wide", "narrow"} {
		if got := snap.Labels[label].Ops + snap.Dropped; got < expected {
			t.Errorf("%s: expected at least %d operations, got %d", label, expected, got)
		}
	}
	if snap.Dropped != 0 {
		t.Errorf("Expected no drops with a large buffer, got %d", snap.Dropped)
	}
}

func TestRingBufferOverflow(t *testing.T) {
	rb := NewDurationRingBuffer(3)

	rb.Push(100 * time.Microsecond)
	rb.Push(200 * time.Microsecond)
	rb.Push(300 * time.Microsecond)
	rb.Push(400 * time.Microsecond) // This should overwrite the first value

	stats := rb.GetStats()
	if rb.Len() != 3 {
		t.Errorf("Expected 3 samples, got %d", rb.Len())
	}
	if stats.Mean != 300*time.Microsecond {
		t.Errorf("Expected mean to be 300μs, got %v", stats.Mean)
	}
	if stats.Min != 200*time.Microsecond {
		t.Errorf("Expected min to be 200μs, got %v", stats.Min)
	}
}

func TestRingBufferEmpty(t *testing.T) {
	rb := NewDurationRingBuffer(5)

	if stats := rb.GetStats(); stats != (LatencyStats{}) {
		t.Errorf("Expected zero stats for empty buffer, got %+v", stats)
	}
}

func TestRingBufferMinimumCapacity(t *testing.T) {
	rb := NewDurationRingBuffer(0)
	rb.Push(time.Second)
	rb.Push(2 * time.Second)

	if stats := rb.GetStats(); stats.Count != 1 || stats.Max != 2*time.Second {
		t.Errorf("Expected a single latest sample, got %+v", stats)
	}
}

func TestRingBufferStats(t *testing.T) {
	rb := NewDurationRingBuffer(10)

	// Add values: 100, 200, 300, 400, 500
	for i := 1; i <= 5; i++ {
		rb.Push(time.Duration(i*100) * time.Microsecond)
	}

	stats := rb.GetStats()

	if stats.Count != 5 {
		t.Errorf("Expected count to be 5, got %d", stats.Count)
	}
	if stats.Min != 100*time.Microsecond {
		t.Errorf("Expected min to be 100μs, got %v", stats.Min)
	}
	if stats.Max != 500*time.Microsecond {
		t.Errorf("Expected max to be 500μs, got %v", stats.Max)
	}
	if stats.Mean != 300*time.Microsecond {
		t.Errorf("Expected mean to be 300μs, got %v", stats.Mean)
	}
	if stats.P50 != 300*time.Microsecond {
		t.Errorf("Expected P50 to be 300μs, got %v", stats.P50)
	}
	// For 5 values: P95 = 0.95 * 4 = 3.8 -> index 3 (400μs), P99 = 0.99 * 4 = 3.96 -> index 3 (400μs)
	if stats.P95 != 400*time.Microsecond {
		t.Errorf("Expected P95 to be 400μs, got %v", stats.P95)
	}
	if stats.P99 != 400*time.Microsecond {
		t.Errorf("Expected P99 to be 400μs, got %v", stats.P99)
	}
}

func TestExportJSON(t *testing.T) {
	rec := NewRecorder(DefaultConfig())
	rec.Record("wide", 100*time.Microsecond, 10, 320)
	rec.Close()

	jsonData, err := rec.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var parsed Snapshot
	if err := json.Unmarshal(jsonData, &parsed); err != nil {
		t.Fatalf("Expected valid JSON, got error: %v", err)
	}
	if parsed.Labels["wide"].Ops != 10 {
		t.Errorf("Expected 10 ops after round trip, got %d", parsed.Labels["wide"].Ops)
	}
}

func TestExportPrometheus(t *testing.T) {
	rec := NewRecorder(DefaultConfig())
	rec.Record("narrow", 100*time.Microsecond, 4, 64)
	rec.Close()

	out := rec.ExportPrometheus()
	for _, want := range []string{
		`strncmp_compare_ops_total{tier="narrow"} 4`,
		`strncmp_compare_bytes_total{tier="narrow"} 64`,
		`strncmp_compare_latency_nanoseconds{tier="narrow",quantile="0.5"} 25000`,
		`strncmp_metrics_dropped_total 0`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected Prometheus output to contain %q\n%s", want, out)
		}
	}
}
