package resource

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/node/runner"
)

func marshalResource(t *testing.T, r Resource) map[string]interface{} {
	j, err := json.MarshalIndent(r.Resource(), "", " ")
	require.NoError(t, err)

	var f interface{}
	common.MustUnmarshalJSON(j, &f)
	return f.(map[string]interface{})
}

func linkOf(m map[string]interface{}, rel string) interface{} {
	l := m["_links"].(map[string]interface{})
	return l[rel].(map[string]interface{})["href"]
}

func TestResourceAccount(t *testing.T) {
	la := ledger.NewAccount("GALICE", common.Amount(40))
	la.LockedUntil = 7

	m := marshalResource(t, NewAccount(la))
	require.Equal(t, la.Address, m["address"])
	require.Equal(t, la.Balance.String(), m["balance"])
	require.Equal(t, float64(7), m["locked_until"])

	require.Equal(t, strings.Replace(URLAccounts, "{id}", la.Address, -1), linkOf(m, "self"))
	require.Equal(t, "/v1/candidates/GALICE", linkOf(m, "candidate"))
	require.Equal(t, "/v1/voters/GALICE", linkOf(m, "voter"))
}

func TestResourceTransaction(t *testing.T) {
	{ // pending
		result := runner.TransactionResult{Hash: "hash-0", Source: "GBOB", Status: runner.StatusPending}

		m := marshalResource(t, NewTransaction(result))
		require.Equal(t, result.Hash, m["hash"])
		require.Equal(t, result.Source, m["source"])
		require.Equal(t, runner.StatusPending, m["status"])
		require.NotContains(t, m, "height")
		require.NotContains(t, m, "error")

		require.Equal(t, strings.Replace(URLTransactions, "{id}", result.Hash, -1), linkOf(m, "self"))
		require.Equal(t, "/v1/accounts/GBOB", linkOf(m, "account"))
	}

	{ // rejected
		result := runner.TransactionResult{
			Hash:   "hash-1",
			Source: "GBOB",
			Status: runner.StatusRejected,
			Height: 3,
			Error:  errors.NotCandidate,
		}

		m := marshalResource(t, NewTransaction(result))
		require.Equal(t, runner.StatusRejected, m["status"])
		require.Equal(t, float64(3), m["height"])
		e := m["error"].(map[string]interface{})
		require.Equal(t, float64(errors.NotCandidate.Code), e["code"])
	}
}

func TestResourceCandidateList(t *testing.T) {
	slots := council.SlotList{"GBOB", council.EmptySlot, "GCHARLIE"}
	states := []council.CandidateState{
		{Address: "GBOB", Slot: 0, VoteIndex: 1},
		{Address: "GCHARLIE", Slot: 2, VoteIndex: 1},
	}

	m := marshalResource(t, NewCandidateList(slots, states, 2))
	require.Equal(t, URLCandidates, linkOf(m, "self"))
	require.Equal(t, float64(2), m["count"])
	require.Equal(t, []interface{}{"GBOB", "", "GCHARLIE"}, m["slots"])

	records := m["_embedded"].(map[string]interface{})["records"].([]interface{})
	require.Len(t, records, 2)

	second := records[1].(map[string]interface{})
	require.Equal(t, "GCHARLIE", second["address"])
	require.Equal(t, float64(2), second["slot"])
	require.Equal(t, float64(1), second["vote_index"])
	require.Equal(t, "/v1/candidates/GCHARLIE", linkOf(second, "self"))
}

func TestResourceCandidateListEmpty(t *testing.T) {
	m := marshalResource(t, NewCandidateList(nil, nil, 0))
	require.Equal(t, []interface{}{}, m["slots"])
	require.Equal(t, float64(0), m["count"])
}

func TestResourceVoterList(t *testing.T) {
	states := []council.VoterState{
		{Address: "GBOB", LastActive: 0, Approvals: []bool{true, false}},
		{Address: "GCHARLIE", LastActive: 1},
	}

	m := marshalResource(t, NewVoterList(states))
	require.Equal(t, URLVoters, linkOf(m, "self"))
	require.Equal(t, float64(2), m["count"])

	records := m["_embedded"].(map[string]interface{})["records"].([]interface{})
	require.Len(t, records, 2)

	first := records[0].(map[string]interface{})
	require.Equal(t, "GBOB", first["address"])
	require.Equal(t, []interface{}{true, false}, first["approvals"])
	require.Equal(t, "/v1/voters/GBOB", linkOf(first, "self"))
	require.Equal(t, "/v1/accounts/GBOB", linkOf(first, "account"))

	second := records[1].(map[string]interface{})
	require.Equal(t, float64(1), second["last_active"])
	require.Equal(t, []interface{}{}, second["approvals"])
}
