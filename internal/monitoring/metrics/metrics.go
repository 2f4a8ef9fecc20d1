// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package metrics collects latency and throughput statistics for comparator
// runs.
//
// Samples are recorded per label (normally a tier name such as "wide" or a
// baseline such as "bytes.Compare") through a buffered channel and folded into
// bounded ring buffers by a background goroutine, so recording never blocks
// the measured code.
//
// # Usage Examples
//
//	rec := metrics.NewRecorder(metrics.DefaultConfig())
//	defer rec.Close()
//
//	start := time.Now()
//	for _, p := range pairs {
//	    compare.Compare(p.A, p.B, n)
//	}
//	rec.Record("wide", time.Since(start), len(pairs), totalBytes)
//
//	snap := rec.Snapshot()
//	fmt.Printf("p99 per comparison: %v\n", snap.Labels["wide"].Latency.P99)
//
// # Dangers and Warnings
//
//   - **Background Goroutine**: Requires Close to stop the processor
//   - **Event Loss**: If the buffer is full, events are dropped and counted
//   - **Stats Latency**: Snapshot reflects only events already processed; Close
//     drains the buffer first
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LatencyStats provides comprehensive latency statistics
type LatencyStats struct {
	Count uint64        `json:"count"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
	Mean  time.Duration `json:"mean"`
	P50   time.Duration `json:"p50"`
	P95   time.Duration `json:"p95"`
	P99   time.Duration `json:"p99"`
	P999  time.Duration `json:"p999"`
}

// DurationRingBuffer implements a thread-safe bounded ring buffer for time.Duration
type DurationRingBuffer struct {
	buffer []time.Duration
	head   int
	tail   int
	size   int
	count  int
	mu     sync.RWMutex
}

// NewDurationRingBuffer creates a new ring buffer with specified capacity
func NewDurationRingBuffer(capacity int) *DurationRingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &DurationRingBuffer{
		buffer: make([]time.Duration, capacity),
		size:   capacity,
	}
}

// Push adds an item, overwriting the oldest one when full.
func (rb *DurationRingBuffer) Push(item time.Duration) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.buffer[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size

	if rb.count < rb.size {
		rb.count++
	} else {
		rb.head = (rb.head + 1) % rb.size
	}
}

// Len returns the number of buffered samples.
func (rb *DurationRingBuffer) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.count
}

// GetStats calculates comprehensive latency statistics
func (rb *DurationRingBuffer) GetStats() LatencyStats {
	rb.mu.RLock()
	values := make([]time.Duration, rb.count)
	for i := 0; i < rb.count; i++ {
		values[i] = rb.buffer[(rb.head+i)%rb.size]
	}
	rb.mu.RUnlock()

	if len(values) == 0 {
		return LatencyStats{}
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})

	var total time.Duration
	for _, v := range values {
		total += v
	}

	return LatencyStats{
		Count: uint64(len(values)),
		Min:   values[0],
		Max:   values[len(values)-1],
		Mean:  total / time.Duration(len(values)),
		P50:   percentile(values, 0.50),
		P95:   percentile(values, 0.95),
		P99:   percentile(values, 0.99),
		P999:  percentile(values, 0.999),
	}
}

// percentile calculates the pth percentile from sorted values
func percentile(values []time.Duration, p float64) time.Duration {
	index := int(float64(len(values)-1) * p)
	if index >= len(values) {
		index = len(values) - 1
	}
	return values[index]
}

// Config provides configuration options for a Recorder.
type Config struct {
	BufferSize    int `json:"buffer_size"`    // Size of event buffer
	LatencySample int `json:"latency_sample"` // Ring buffer size per label
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		BufferSize:    4096,
		LatencySample: 1000,
	}
}

// Event is one measured batch of comparisons.
type Event struct {
	Label    string
	Duration time.Duration
	Ops      int
	Bytes    int
}

// LabelStats summarises every batch recorded under one label.
type LabelStats struct {
	Ops      uint64        `json:"ops"`
	Bytes    uint64        `json:"bytes"`
	Elapsed  time.Duration `json:"elapsed"`
	Latency  LatencyStats  `json:"latency"` // per comparison
	MBPerSec float64       `json:"mb_per_sec"`
}

// Snapshot is a point-in-time copy of all statistics.
type Snapshot struct {
	Labels  map[string]LabelStats `json:"labels"`
	Dropped uint64                `json:"dropped"`
	Config  Config                `json:"config"`
}

// Names returns the labels in lexical order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Labels))
	for name := range s.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type labelState struct {
	ops     uint64
	bytes   uint64
	elapsed time.Duration
	latency *DurationRingBuffer
}

// Recorder aggregates events on a background goroutine.
type Recorder struct {
	config Config
	events chan Event

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	labels map[string]*labelState

	dropped atomic.Uint64
}

// NewRecorder starts a Recorder.
func NewRecorder(config Config) *Recorder {
	if config.BufferSize < 1 {
		config.BufferSize = DefaultConfig().BufferSize
	}
	if config.LatencySample < 1 {
		config.LatencySample = DefaultConfig().LatencySample
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Recorder{
		config: config,
		events: make(chan Event, config.BufferSize),
		ctx:    ctx,
		cancel: cancel,
		labels: make(map[string]*labelState),
	}

	r.wg.Add(1)
	go r.processEvents()

	return r
}

func (r *Recorder) processEvents() {
	defer r.wg.Done()

	for {
		select {
		case ev := <-r.events:
			r.apply(ev)
		case <-r.ctx.Done():
			// Drain whatever was queued before Close.
			for {
				select {
				case ev := <-r.events:
					r.apply(ev)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) apply(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.labels[ev.Label]
	if !ok {
		st = &labelState{latency: NewDurationRingBuffer(r.config.LatencySample)}
		r.labels[ev.Label] = st
	}
	st.ops += uint64(ev.Ops)
	st.bytes += uint64(ev.Bytes)
	st.elapsed += ev.Duration
	if ev.Ops > 0 {
		st.latency.Push(ev.Duration / time.Duration(ev.Ops))
	}
}

// Record queues one batch of ops comparisons over bytes input bytes that took
// d in total. It never blocks; when the buffer is full the event is dropped.
func (r *Recorder) Record(label string, d time.Duration, ops, bytes int) {
	select {
	case r.events <- Event{Label: label, Duration: d, Ops: ops, Bytes: bytes}:
	default:
		r.dropped.Add(1)
	}
}

// Snapshot returns the statistics processed so far.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := Snapshot{
		Labels:  make(map[string]LabelStats, len(r.labels)),
		Dropped: r.dropped.Load(),
		Config:  r.config,
	}
	for name, st := range r.labels {
		ls := LabelStats{
			Ops:     st.ops,
			Bytes:   st.bytes,
			Elapsed: st.elapsed,
			Latency: st.latency.GetStats(),
		}
		if secs := st.elapsed.Seconds(); secs > 0 {
			ls.MBPerSec = float64(st.bytes) / secs / 1e6
		}
		snap.Labels[name] = ls
	}
	return snap
}

// ExportJSON exports the snapshot as indented JSON.
func (r *Recorder) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r.Snapshot(), "", "  ")
}

// ExportPrometheus exports the snapshot in the Prometheus text format.
func (r *Recorder) ExportPrometheus() string {
	snap := r.Snapshot()
	names := snap.Names()

	var sb strings.Builder
	sb.WriteString("# HELP strncmp_compare_ops_total Total number of comparisons\n")
	sb.WriteString("# TYPE strncmp_compare_ops_total counter\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "strncmp_compare_ops_total{tier=%q} %d\n", name, snap.Labels[name].Ops)
	}

	sb.WriteString("# HELP strncmp_compare_bytes_total Total number of input bytes compared\n")
	sb.WriteString("# TYPE strncmp_compare_bytes_total counter\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "strncmp_compare_bytes_total{tier=%q} %d\n", name, snap.Labels[name].Bytes)
	}

	sb.WriteString("# HELP strncmp_compare_latency_nanoseconds Latency per comparison\n")
	sb.WriteString("# TYPE strncmp_compare_latency_nanoseconds summary\n")
	for _, name := range names {
		lat := snap.Labels[name].Latency
		for _, q := range []struct {
			quantile string
			value    time.Duration
		}{
			{"0.5", lat.P50},
			{"0.95", lat.P95},
			{"0.99", lat.P99},
			{"0.999", lat.P999},
		} {
			fmt.Fprintf(&sb, "strncmp_compare_latency_nanoseconds{tier=%q,quantile=%q} %d\n", name, q.quantile, q.value.Nanoseconds())
		}
	}

	sb.WriteString("# HELP strncmp_metrics_dropped_total Events dropped because the buffer was full\n")
	sb.WriteString("# TYPE strncmp_metrics_dropped_total counter\n")
	fmt.Fprintf(&sb, "strncmp_metrics_dropped_total %d\n", snap.Dropped)

	return sb.String()
}

// Close stops the background processor after draining queued events.
func (r *Recorder) Close() {
	r.cancel()
	r.wg.Wait()
}
