package bitreg

import "sync/atomic"

// MetricsCollector defines an interface for collecting register operation counts.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors may be shared between registers and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordSet is called after each single-bit set. ok is false when the
	// index was out of range.
	RecordSet(ok bool)

	// RecordClear is called after each single-bit clear.
	RecordClear(ok bool)

	// RecordQuery is called after each single-bit query. hit is true when the
	// bit was on.
	RecordQuery(hit bool)

	// RecordReset is called after ClearAllBits and SetAllFlags.
	RecordReset()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSet(bool)   {}
func (NoopMetricsCollector) RecordClear(bool) {}
func (NoopMetricsCollector) RecordQuery(bool) {}
func (NoopMetricsCollector) RecordReset()     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCount      atomic.Int64
	SetRejected   atomic.Int64
	ClearCount    atomic.Int64
	ClearRejected atomic.Int64
	QueryCount    atomic.Int64
	QueryHits     atomic.Int64
	ResetCount    atomic.Int64
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(ok bool) {
	b.SetCount.Add(1)
	if !ok {
		b.SetRejected.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(ok bool) {
	b.ClearCount.Add(1)
	if !ok {
		b.ClearRejected.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(hit bool) {
	b.QueryCount.Add(1)
	if hit {
		b.QueryHits.Add(1)
	}
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset() {
	b.ResetCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCount:      b.SetCount.Load(),
		SetRejected:   b.SetRejected.Load(),
		ClearCount:    b.ClearCount.Load(),
		ClearRejected: b.ClearRejected.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryHits:     b.QueryHits.Load(),
		ResetCount:    b.ResetCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCount      int64
	SetRejected   int64
	ClearCount    int64
	ClearRejected int64
	QueryCount    int64
	QueryHits     int64
	ResetCount    int64
}
