package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// CouncilObserver carries election lifecycle events, `TransactionObserver`
// carries the result of every applied transaction.
var CouncilObserver = observable.New()
var TransactionObserver = observable.New()
var AccountObserver = observable.New()

const (
	EventTallyStarted   = "tally-started"
	EventTallyFinalised = "tally-finalised"
	EventApplied        = "applied"
	EventRejected       = "rejected"
	EventAccountSaved   = "saved"
)
