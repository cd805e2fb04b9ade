package operation

import (
	"boscoin.io/council/lib/common"
)

// SubmitCandidacy registers the source as a candidate at `Slot`.
type SubmitCandidacy struct {
	Slot uint32 `json:"slot"`
}

func NewSubmitCandidacy(slot uint32) SubmitCandidacy {
	return SubmitCandidacy{Slot: slot}
}

func (o SubmitCandidacy) IsWellFormed(common.Config) error {
	return nil
}
