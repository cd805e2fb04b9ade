package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/council/lib/council"
)

type Candidate struct {
	state council.CandidateState
}

func NewCandidate(state council.CandidateState) *Candidate {
	return &Candidate{state: state}
}

func (c Candidate) GetMap() hal.Entry {
	return hal.Entry{
		"address":    c.state.Address,
		"slot":       c.state.Slot,
		"vote_index": c.state.VoteIndex,
	}
}

func (c Candidate) Resource() *hal.Resource {
	r := hal.NewResource(c, c.LinkSelf())
	r.AddLink("account", hal.NewLink(strings.Replace(URLAccounts, "{id}", c.state.Address, -1)))
	r.AddLink("candidates", hal.NewLink(URLCandidates))
	return r
}

func (c Candidate) LinkSelf() string {
	return strings.Replace(URLCandidate, "{id}", c.state.Address, -1)
}

// NewCandidateList lists the occupied slots in slot order. `slots` keeps the
// holes so a client sees where the next candidacy may land.
func NewCandidateList(slots council.SlotList, states []council.CandidateState, count uint32) *ResourceList {
	var rs []Resource
	for _, state := range states {
		rs = append(rs, NewCandidate(state))
	}

	if slots == nil {
		slots = council.SlotList{}
	}

	return NewResourceList(rs, URLCandidates, "", "").
		SetEntry("slots", slots).
		SetEntry("count", count)
}
