package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/council/lib/council"
)

type Voter struct {
	state council.VoterState
}

func NewVoter(state council.VoterState) *Voter {
	return &Voter{state: state}
}

func (v Voter) GetMap() hal.Entry {
	approvals := v.state.Approvals
	if approvals == nil {
		approvals = []bool{}
	}

	return hal.Entry{
		"address":     v.state.Address,
		"last_active": v.state.LastActive,
		"approvals":   approvals,
	}
}

func (v Voter) Resource() *hal.Resource {
	r := hal.NewResource(v, v.LinkSelf())
	r.AddLink("account", hal.NewLink(strings.Replace(URLAccounts, "{id}", v.state.Address, -1)))
	r.AddLink("voters", hal.NewLink(URLVoters))
	return r
}

func (v Voter) LinkSelf() string {
	return strings.Replace(URLVoter, "{id}", v.state.Address, -1)
}

func NewVoterList(states []council.VoterState) *ResourceList {
	var rs []Resource
	for _, state := range states {
		rs = append(rs, NewVoter(state))
	}

	return NewResourceList(rs, URLVoters, "", "").
		SetEntry("count", len(states))
}
