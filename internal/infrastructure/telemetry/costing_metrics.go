package telemetry

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CostingMetrics holds the instruments for record recalculation.
type CostingMetrics struct {
	recalculated  metric.Int64Counter
	remaining     metric.Float64Histogram
	sweepDuration metric.Float64Histogram
	sweepChanged  metric.Int64Counter
}

// NewCostingMetrics registers the instruments on meter
func NewCostingMetrics(meter metric.Meter) (*CostingMetrics, error) {
	recalculated, err := meter.Int64Counter("stonetrade.records.recalculated",
		metric.WithDescription("Records whose derived fields were recomputed before a write"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "stonetrade.records.recalculated", Err: err}
	}

	remaining, err := meter.Float64Histogram("stonetrade.party.remaining_payment",
		metric.WithDescription("Remaining amount owed to the party on each saved record"),
		metric.WithUnit("{currency}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "stonetrade.party.remaining_payment", Err: err}
	}

	sweepDuration, err := meter.Float64Histogram("stonetrade.recalc_sweep.duration",
		metric.WithDescription("Duration of a full recalculation sweep"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "stonetrade.recalc_sweep.duration", Err: err}
	}

	sweepChanged, err := meter.Int64Counter("stonetrade.recalc_sweep.changed",
		metric.WithDescription("Stored records corrected by a recalculation sweep"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "stonetrade.recalc_sweep.changed", Err: err}
	}

	return &CostingMetrics{
		recalculated:  recalculated,
		remaining:     remaining,
		sweepDuration: sweepDuration,
		sweepChanged:  sweepChanged,
	}, nil
}

// ObserveRecalculation counts records recalculated for table.
// Its signature matches persistence.RecalculationObserver.
func (m *CostingMetrics) ObserveRecalculation(ctx context.Context, table string, count int) {
	m.recalculated.Add(ctx, int64(count), metric.WithAttributes(attribute.String("table", table)))
}

// RecordRemaining records a saved record's party_remaining_payment
func (m *CostingMetrics) RecordRemaining(ctx context.Context, collection string, amount decimal.Decimal) {
	m.remaining.Record(ctx, amount.InexactFloat64(), metric.WithAttributes(attribute.String("collection", collection)))
}

// RecordSweep records one finished sweep
func (m *CostingMetrics) RecordSweep(ctx context.Context, d time.Duration, changed map[string]int, err error) {
	m.sweepDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("error", err != nil)))
	for collection, n := range changed {
		m.sweepChanged.Add(ctx, int64(n), metric.WithAttributes(attribute.String("collection", collection)))
	}
}

// MetricsError reports an instrument that could not be created
type MetricsError struct {
	Metric string
	Err    error
}

func (e *MetricsError) Error() string {
	return "failed to create metric " + e.Metric + ": " + e.Err.Error()
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}
