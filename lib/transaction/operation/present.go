package operation

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
)

// Present claims that `Candidate` holds `Total` approval stake in the open
// window of vote `Index`.
type Present struct {
	Candidate string            `json:"candidate"`
	Total     common.Amount     `json:"total"`
	Index     council.VoteIndex `json:"index"`
}

func NewPresent(candidate string, total common.Amount, index council.VoteIndex) Present {
	return Present{
		Candidate: candidate,
		Total:     total,
		Index:     index,
	}
}

func (o Present) IsWellFormed(common.Config) error {
	if _, err := keypair.Parse(o.Candidate); err != nil {
		return errors.BadPublicAddress.Clone().SetData("candidate", o.Candidate)
	}

	// the leaderboard floor is zero, so a zero claim can never be accepted
	if o.Total < 1 {
		return errors.InvalidOperation.Clone().SetData("total", o.Total)
	}

	return nil
}

func (o Present) TargetAddress() string {
	return o.Candidate
}
