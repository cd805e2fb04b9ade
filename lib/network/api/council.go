package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/network/api/resource"
	"boscoin.io/council/lib/network/httputils"
)

type StatusResponse struct {
	Height    uint64 `json:"height"`
	Digest    string `json:"digest"`
	Pending   int    `json:"pending"`
	VoteIndex uint32 `json:"vote_index"`
}

type CouncilResponse struct {
	Members   []council.Member  `json:"members"`
	VoteIndex council.VoteIndex `json:"vote_index"`
}

type WindowResponse struct {
	Open          bool                   `json:"open"`
	Window        *council.PendingWindow `json:"window,omitempty"`
	StakeSnapshot []common.Amount        `json:"stake_snapshot,omitempty"`
	Leaderboard   council.Leaderboard    `json:"leaderboard,omitempty"`
}

type NextTallyResponse struct {
	Scheduled bool   `json:"scheduled"`
	Block     uint64 `json:"block,omitempty"`
}

func (api NetworkHandlerAPI) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	c := api.runner.Council()

	digest, err := c.Digest()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	index, err := c.VoteIndex()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Height:    api.runner.Height(),
		Digest:    digest,
		Pending:   api.runner.TransactionPool.Len(),
		VoteIndex: uint32(index),
	})
}

func (api NetworkHandlerAPI) GetCouncilHandler(w http.ResponseWriter, r *http.Request) {
	c := api.runner.Council()

	var resp CouncilResponse
	var err error
	if resp.Members, err = c.ActiveCouncil(); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	if resp.VoteIndex, err = c.VoteIndex(); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (api NetworkHandlerAPI) GetParamsHandler(w http.ResponseWriter, r *http.Request) {
	params, err := api.runner.Council().Params()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, params)
}

func (api NetworkHandlerAPI) GetCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	c := api.runner.Council()

	slots, err := c.Candidates()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	states, err := c.CandidateStates(slots)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	count, err := c.CandidateCount()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resource.NewCandidateList(slots, states, count))
}

func (api NetworkHandlerAPI) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	info, found, err := api.runner.Council().CandidateRegInfo(address)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	} else if !found {
		httputils.WriteJSONError(w, errors.NotCandidate.Clone().SetData("address", address))
		return
	}

	writeJSON(w, http.StatusOK, resource.NewCandidate(council.CandidateState{
		Address:   address,
		VoteIndex: info.VoteIndex,
		Slot:      info.Slot,
	}))
}

func (api NetworkHandlerAPI) GetVotersHandler(w http.ResponseWriter, r *http.Request) {
	states, err := api.runner.Council().VoterStates()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resource.NewVoterList(states))
}

func (api NetworkHandlerAPI) GetVoterHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	c := api.runner.Council()

	lastActive, found, err := c.VoterLastActive(address)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	} else if !found {
		httputils.WriteJSONError(w, errors.NotVoter.Clone().SetData("address", address))
		return
	}

	approvals, err := c.ApprovalsOf(address)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resource.NewVoter(council.VoterState{
		Address:    address,
		LastActive: lastActive,
		Approvals:  approvals,
	}))
}

func (api NetworkHandlerAPI) GetWindowHandler(w http.ResponseWriter, r *http.Request) {
	c := api.runner.Council()

	pending, open, err := c.NextFinalise()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	resp := WindowResponse{Open: open}
	if open {
		resp.Window = &pending
		if resp.StakeSnapshot, err = c.StakeSnapshot(); err != nil {
			httputils.WriteJSONError(w, err)
			return
		}
		if resp.Leaderboard, err = c.Leaderboard(); err != nil {
			httputils.WriteJSONError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (api NetworkHandlerAPI) GetNextTallyHandler(w http.ResponseWriter, r *http.Request) {
	next, scheduled, err := api.runner.Council().NextTally()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NextTallyResponse{Scheduled: scheduled, Block: next})
}
