package operation

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
)

type SetApprovals struct {
	Approvals []bool            `json:"approvals"`
	Index     council.VoteIndex `json:"index"`
}

func NewSetApprovals(index council.VoteIndex, approvals ...bool) SetApprovals {
	return SetApprovals{
		Approvals: approvals,
		Index:     index,
	}
}

func (o SetApprovals) IsWellFormed(common.Config) error {
	return nil
}

// RetractVoter withdraws the source, which must sit at `Index` in the voter
// list.
type RetractVoter struct {
	Index uint32 `json:"index"`
}

func NewRetractVoter(index uint32) RetractVoter {
	return RetractVoter{Index: index}
}

func (o RetractVoter) IsWellFormed(common.Config) error {
	return nil
}

type KillInactiveVoter struct {
	SourceIndex      uint32            `json:"source_index"`
	Target           string            `json:"target"`
	TargetIndex      uint32            `json:"target_index"`
	AssumedVoteIndex council.VoteIndex `json:"assumed_vote_index"`
}

func NewKillInactiveVoter(sourceIndex uint32, target string, targetIndex uint32, assumed council.VoteIndex) KillInactiveVoter {
	return KillInactiveVoter{
		SourceIndex:      sourceIndex,
		Target:           target,
		TargetIndex:      targetIndex,
		AssumedVoteIndex: assumed,
	}
}

func (o KillInactiveVoter) IsWellFormed(common.Config) error {
	if _, err := keypair.Parse(o.Target); err != nil {
		return errors.BadPublicAddress.Clone().SetData("target", o.Target)
	}

	return nil
}

func (o KillInactiveVoter) TargetAddress() string {
	return o.Target
}
