package metrics

// InitPrometheusMetrics registers every metric to the default prometheus
// registry; it must be called once.
func InitPrometheusMetrics() {
	Version = PromVersion()
	Election = PromElectionMetrics()
	Block = PromBlockMetrics()
	TxPool = PromTxPoolMetrics()
	API = PromAPIMetrics()
}
