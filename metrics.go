package pathgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSolve is called after each point-to-point solve.
	// status is the solve outcome, duration is the total time taken.
	RecordSolve(status Status, duration time.Duration)

	// RecordSolveWithinBudget is called after each bounded-cost frontier
	// expansion. found is the number of states within budget.
	RecordSolveWithinBudget(found int, duration time.Duration)

	// RecordReset is called after each engine reset.
	RecordReset()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(Status, time.Duration)          {}
func (NoopMetricsCollector) RecordSolveWithinBudget(int, time.Duration) {}
func (NoopMetricsCollector) RecordReset()                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount       atomic.Int64
	SolveNoPath      atomic.Int64
	SolveTotalNanos  atomic.Int64
	BudgetCount      atomic.Int64
	BudgetFound      atomic.Int64
	BudgetTotalNanos atomic.Int64
	ResetCount       atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(status Status, duration time.Duration) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if status == StatusNoPath {
		b.SolveNoPath.Add(1)
	}
}

// RecordSolveWithinBudget implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolveWithinBudget(found int, duration time.Duration) {
	b.BudgetCount.Add(1)
	b.BudgetFound.Add(int64(found))
	b.BudgetTotalNanos.Add(duration.Nanoseconds())
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset() {
	b.ResetCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:     b.SolveCount.Load(),
		SolveNoPath:    b.SolveNoPath.Load(),
		SolveAvgNanos:  b.avgSolveNanos(),
		BudgetCount:    b.BudgetCount.Load(),
		BudgetFound:    b.BudgetFound.Load(),
		BudgetAvgNanos: b.avgBudgetNanos(),
		ResetCount:     b.ResetCount.Load(),
	}
}

func (b *BasicMetricsCollector) avgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) avgBudgetNanos() int64 {
	count := b.BudgetCount.Load()
	if count == 0 {
		return 0
	}
	return b.BudgetTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount     int64
	SolveNoPath    int64
	SolveAvgNanos  int64
	BudgetCount    int64
	BudgetFound    int64
	BudgetAvgNanos int64
	ResetCount     int64
}
