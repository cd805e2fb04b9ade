package api

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/test"
)

func init() {
	common.SetLogging(log, logging.LvlDebug, test.LogHandler())
}
