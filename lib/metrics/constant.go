package metrics

const (
	Namespace         = "council"
	ElectionSubsystem = "election"
	BlockSubsystem    = "block"
	TxPoolSubsystem   = "txpool"
	APISubsystem      = "api"
)

const (
	PresentationResult   = "result"
	PresentationAccepted = "accepted"
	PresentationSlashed  = "slashed"

	TransactionStatus   = "status"
	TransactionApplied  = "applied"
	TransactionRejected = "rejected"

	TxPoolRejectReason = "reason"
	TxPoolDuplicated   = "duplicated"
	TxPoolFull         = "full"

	EndpointLabel = "endpoint"
	MethodLabel   = "method"
	StatusLabel   = "status"
)
