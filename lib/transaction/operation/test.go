package operation

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
)

func mustOperation(body Body) Operation {
	op, err := NewOperation(body)
	if err != nil {
		panic(err)
	}
	return op
}

func MakeTestSubmitCandidacy(slot uint32) Operation {
	return mustOperation(NewSubmitCandidacy(slot))
}

func MakeTestSetApprovals(index council.VoteIndex, approvals ...bool) Operation {
	return mustOperation(NewSetApprovals(index, approvals...))
}

func MakeTestRetractVoter(index uint32) Operation {
	return mustOperation(NewRetractVoter(index))
}

func MakeTestKillInactiveVoter(sourceIndex uint32, target string, targetIndex uint32, assumed council.VoteIndex) Operation {
	return mustOperation(NewKillInactiveVoter(sourceIndex, target, targetIndex, assumed))
}

func MakeTestPresent(candidate string, total uint64, index council.VoteIndex) Operation {
	return mustOperation(NewPresent(candidate, common.Amount(total), index))
}

func MakeTestSetDesiredSeats(seats uint32) Operation {
	return mustOperation(SetDesiredSeats{Seats: seats})
}

func MakeTestRemoveMember(member string) Operation {
	return mustOperation(RemoveMember{Member: member})
}
