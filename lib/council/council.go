package council

import (
	"fmt"

	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/storage"
)

const (
	ActiveCouncilKey string = "council.active"
	VoteIndexKey     string = "council.vote_index"

	VoterApprovalsPrefix  string = "voters.approvals."
	VoterLastActivePrefix string = "voters.last_active."
	VoterListKey          string = "voters.list"

	CandidateRegistrationPrefix string = "candidates.registration."
	CandidateListKey            string = "candidates.list"
	CandidateCountKey           string = "candidates.count"
)

// Ledger is the balance service the bonds are taken from and returned to.
type Ledger interface {
	BalanceOf(address string) (common.Amount, error)
	SetBalance(address string, balance common.Amount) error
	Deposit(address string, fund common.Amount) error
	Withdraw(address string, fund common.Amount) error
	IsLiquid(address string) (bool, error)
	Lock(address string, until uint64) error
}

// Council is the election state machine over a storage. Every operation
// checks all its conditions before the first write, so a failed operation
// leaves the storage as it was.
type Council struct {
	st     storage.Database
	ledger Ledger
	clock  block.Clock
}

func New(st storage.Database, ledger Ledger, clock block.Clock) *Council {
	return &Council{
		st:     st,
		ledger: ledger,
		clock:  clock,
	}
}

func voterApprovalsKey(address string) string {
	return fmt.Sprintf("%s%s", VoterApprovalsPrefix, address)
}

func voterLastActiveKey(address string) string {
	return fmt.Sprintf("%s%s", VoterLastActivePrefix, address)
}

func candidateRegistrationKey(address string) string {
	return fmt.Sprintf("%s%s", CandidateRegistrationPrefix, address)
}

func (c *Council) ActiveCouncil() ([]Member, error) {
	var members []Member
	if _, err := storage.GetValue(c.st, ActiveCouncilKey, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (c *Council) IsCouncillor(address string) (bool, error) {
	members, err := c.ActiveCouncil()
	if err != nil {
		return false, err
	}

	for _, m := range members {
		if m.Address == address {
			return true, nil
		}
	}

	return false, nil
}

func (c *Council) VoteIndex() (VoteIndex, error) {
	var index VoteIndex
	if _, err := storage.GetValue(c.st, VoteIndexKey, &index); err != nil {
		return 0, err
	}

	return index, nil
}

func (c *Council) Candidates() (SlotList, error) {
	var candidates SlotList
	if _, err := storage.GetValue(c.st, CandidateListKey, &candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (c *Council) CandidateCount() (uint32, error) {
	var count uint32
	if _, err := storage.GetValue(c.st, CandidateCountKey, &count); err != nil {
		return 0, err
	}

	return count, nil
}

// CandidateRegInfo returns `false` when `address` is not registered.
func (c *Council) CandidateRegInfo(address string) (RegisterInfo, bool, error) {
	var info RegisterInfo
	found, err := storage.GetValue(c.st, candidateRegistrationKey(address), &info)
	return info, found, err
}

func (c *Council) IsACandidate(address string) (bool, error) {
	return storage.Exists(c.st, candidateRegistrationKey(address))
}

func (c *Council) Voters() ([]string, error) {
	var voters []string
	if _, err := storage.GetValue(c.st, VoterListKey, &voters); err != nil {
		return nil, err
	}

	return voters, nil
}

// VoterLastActive returns `false` when `address` is not a voter.
func (c *Council) VoterLastActive(address string) (VoteIndex, bool, error) {
	var index VoteIndex
	found, err := storage.GetValue(c.st, voterLastActiveKey(address), &index)
	return index, found, err
}

func (c *Council) ApprovalsOf(address string) ([]bool, error) {
	var approvals []bool
	if _, err := storage.GetValue(c.st, voterApprovalsKey(address), &approvals); err != nil {
		return nil, err
	}

	return approvals, nil
}
