package metrics

import (
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type BlockMetrics struct {
	Height          metrics.Gauge
	Transactions    metrics.Counter
	DurationSeconds metrics.Histogram
}

func (b *BlockMetrics) SetHeight(height uint64) {
	b.Height.Set(float64(height))
}

func (b *BlockMetrics) ObserveDurationSeconds(begin time.Time) {
	b.DurationSeconds.Observe(time.Since(begin).Seconds())
}

func (b *BlockMetrics) AddTransaction(applied bool) {
	status := TransactionRejected
	if applied {
		status = TransactionApplied
	}
	b.Transactions.With(TransactionStatus, status).Add(1)
}

func PromBlockMetrics() *BlockMetrics {
	return &BlockMetrics{
		Height: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: BlockSubsystem,
			Name:      "height",
			Help:      "Height of the node.",
		}, []string{}),
		Transactions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BlockSubsystem,
			Name:      "transactions_total",
			Help:      "Total number of processed transactions.",
		}, []string{TransactionStatus}),
		DurationSeconds: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: BlockSubsystem,
			Name:      "duration_seconds",
			Help:      "Time processing one block.",
		}, []string{}),
	}
}

func NopBlockMetrics() *BlockMetrics {
	return &BlockMetrics{
		Height:          discard.NewGauge(),
		Transactions:    discard.NewCounter(),
		DurationSeconds: discard.NewHistogram(),
	}
}
