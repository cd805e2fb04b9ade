package council

import (
	"github.com/btcsuite/btcutil/base58"

	"boscoin.io/council/lib/common"
)

type CandidateState struct {
	Address   string    `json:"address"`
	VoteIndex VoteIndex `json:"vote_index"`
	Slot      uint32    `json:"slot"`
}

type VoterState struct {
	Address    string    `json:"address"`
	LastActive VoteIndex `json:"last_active"`
	Approvals  []bool    `json:"approvals"`
}

// State is the whole election state, voters in list order and candidates in
// slot order.
type State struct {
	Params         Params           `json:"params"`
	Council        []Member         `json:"council"`
	VoteIndex      VoteIndex        `json:"vote_index"`
	Slots          SlotList         `json:"slots"`
	Candidates     []CandidateState `json:"candidates"`
	CandidateCount uint32           `json:"candidate_count"`
	Voters         []VoterState     `json:"voters"`
	Window         *PendingWindow   `json:"window,omitempty"`
	StakeSnapshot  []common.Amount  `json:"stake_snapshot,omitempty"`
	Leaderboard    Leaderboard      `json:"leaderboard,omitempty"`
}

// CandidateStates returns the registration of every occupied slot of
// `slots`, in slot order.
func (c *Council) CandidateStates(slots SlotList) ([]CandidateState, error) {
	var states []CandidateState
	for _, address := range slots {
		if address == EmptySlot {
			continue
		}
		info, _, err := c.CandidateRegInfo(address)
		if err != nil {
			return nil, err
		}
		states = append(states, CandidateState{Address: address, VoteIndex: info.VoteIndex, Slot: info.Slot})
	}

	return states, nil
}

// VoterStates returns every voter in list order.
func (c *Council) VoterStates() ([]VoterState, error) {
	voters, err := c.Voters()
	if err != nil {
		return nil, err
	}

	var states []VoterState
	for _, address := range voters {
		v := VoterState{Address: address}
		if v.LastActive, _, err = c.VoterLastActive(address); err != nil {
			return nil, err
		}
		if v.Approvals, err = c.ApprovalsOf(address); err != nil {
			return nil, err
		}
		states = append(states, v)
	}

	return states, nil
}

func (c *Council) State() (s State, err error) {
	if s.Params, err = c.Params(); err != nil {
		return
	}
	if s.Council, err = c.ActiveCouncil(); err != nil {
		return
	}
	if s.VoteIndex, err = c.VoteIndex(); err != nil {
		return
	}
	if s.Slots, err = c.Candidates(); err != nil {
		return
	}
	if s.Candidates, err = c.CandidateStates(s.Slots); err != nil {
		return
	}
	if s.CandidateCount, err = c.CandidateCount(); err != nil {
		return
	}

	if s.Voters, err = c.VoterStates(); err != nil {
		return
	}

	var pending PendingWindow
	var open bool
	if pending, open, err = c.NextFinalise(); err != nil {
		return
	}
	if open {
		s.Window = &pending
		if s.StakeSnapshot, err = c.StakeSnapshot(); err != nil {
			return
		}
		if s.Leaderboard, err = c.Leaderboard(); err != nil {
			return
		}
	}

	return
}

// Digest is the hash of `State`; any change of the election state changes
// it.
func (c *Council) Digest() (string, error) {
	s, err := c.State()
	if err != nil {
		return "", err
	}

	b, err := common.MakeObjectHash(s)
	if err != nil {
		return "", err
	}

	return base58.Encode(b), nil
}
