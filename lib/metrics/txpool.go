package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// TxPoolMetrics follows the pool of transactions waiting for the next block.
type TxPoolMetrics struct {
	Size     metrics.Gauge
	Rejected metrics.Counter
}

func (m *TxPoolMetrics) AddSize(delta int) {
	m.Size.Add(float64(delta))
}

// AddRejected counts a transaction the pool refused, `reason` is one of
// `TxPoolDuplicated` or `TxPoolFull`.
func (m *TxPoolMetrics) AddRejected(reason string) {
	m.Rejected.With(TxPoolRejectReason, reason).Add(1)
}

func PromTxPoolMetrics() *TxPoolMetrics {
	return &TxPoolMetrics{
		Size: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: TxPoolSubsystem,
			Name:      "size",
			Help:      "Transactions waiting for the next block.",
		}, []string{}),
		Rejected: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: TxPoolSubsystem,
			Name:      "rejected_total",
			Help:      "Transactions refused by the pool.",
		}, []string{TxPoolRejectReason}),
	}
}

func NopTxPoolMetrics() *TxPoolMetrics {
	return &TxPoolMetrics{
		Size:     discard.NewGauge(),
		Rejected: discard.NewCounter(),
	}
}
