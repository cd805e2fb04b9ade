package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
)

// The metrics discard everything until `InitPrometheusMetrics` is called.
var (
	Version  metrics.Gauge = discard.NewGauge()
	Election               = NopElectionMetrics()
	Block                  = NopBlockMetrics()
	TxPool                 = NopTxPoolMetrics()
	API                    = NopAPIMetrics()
)
