package common

import (
	"time"
)

const (
	DefaultBlockTime   = 5 * time.Second
	DefaultTxsLimit    = 1000
	DefaultOpsLimit    = 100
	DefaultTxPoolLimit = 10000

	// number of applied transaction results kept for status lookups
	DefaultResultCacheSize = 10000
)

//
// Config holds the block processing settings of a node.
// `GovernanceAddress` is the only source allowed to send privileged
// operations.
//
type Config struct {
	BlockTime time.Duration

	TxsLimit    int
	OpsLimit    int
	TxPoolLimit int

	ResultCacheSize int

	GovernanceAddress string
}

func NewConfig(governance string) Config {
	p := Config{}

	p.BlockTime = DefaultBlockTime
	p.TxsLimit = DefaultTxsLimit
	p.OpsLimit = DefaultOpsLimit
	p.TxPoolLimit = DefaultTxPoolLimit
	p.ResultCacheSize = DefaultResultCacheSize
	p.GovernanceAddress = governance

	return p
}
