package transaction

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/council/lib/common"
)

var log logging.Logger = logging.New("module", "transaction")

func init() {
	SetLogging(common.DefaultLogLevel, common.DefaultLogHandler)
}

func SetLogging(level logging.Lvl, handler logging.Handler) {
	common.SetLogging(log, level, handler)
}
