package council

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
)

// runSimpleElection elects eve and bob at block 6.
func runSimpleElection(t *testing.T, env *TestEnv) *Finalisation {
	openSimpleWindow(t, env)

	a := env.Accounts
	for _, p := range []struct {
		candidate string
		total     common.Amount
	}{{a.Bob, 8}, {a.Eve, 38}} {
		result, err := env.Council.Present(a.Dave, p.candidate, p.total, 0)
		require.NoError(t, err)
		require.True(t, result.Accepted)
	}

	report := advance(t, env, 6)
	require.Nil(t, report.Opened)
	require.NotNil(t, report.Finalised)

	return report.Finalised
}

// runRunnersUpElection elects alice and eve at block 6; charlie and dave are
// kept as runners-up.
func runRunnersUpElection(t *testing.T, env *TestEnv) *Finalisation {
	c := env.Council
	a := env.Accounts

	env.Height.Set(4)

	require.NoError(t, c.SubmitCandidacy(a.Alice, 0))
	require.NoError(t, c.SetApprovals(a.Ferdie, []bool{true}, 0))
	require.NoError(t, c.SubmitCandidacy(a.Bob, 1))
	require.NoError(t, c.SetApprovals(a.Bob, []bool{false, true}, 0))
	require.NoError(t, c.SubmitCandidacy(a.Charlie, 2))
	require.NoError(t, c.SetApprovals(a.Charlie, []bool{false, false, true}, 0))
	require.NoError(t, c.SubmitCandidacy(a.Dave, 3))
	require.NoError(t, c.SetApprovals(a.Dave, []bool{false, false, false, true}, 0))
	require.NoError(t, c.SubmitCandidacy(a.Eve, 4))
	require.NoError(t, c.SetApprovals(a.Eve, []bool{false, false, false, false, true}, 0))

	require.NotNil(t, advance(t, env, 4).Opened)

	stakes, _ := c.StakeSnapshot()
	require.Equal(t, []common.Amount{57, 8, 18, 28, 38}, stakes)

	env.Height.Set(6)

	result, err := c.Present(a.Dave, a.Alice, 57, 0)
	require.NoError(t, err)
	require.True(t, result.Accepted)

	leaderboard, _ := c.Leaderboard()
	require.Equal(t, Leaderboard{
		{Stake: 0, Candidate: EmptySlot},
		{Stake: 0, Candidate: EmptySlot},
		{Stake: 0, Candidate: EmptySlot},
		{Stake: 57, Candidate: a.Alice},
	}, leaderboard)

	for _, p := range []struct {
		candidate string
		total     common.Amount
	}{{a.Charlie, 18}, {a.Dave, 28}, {a.Eve, 38}} {
		result, err := c.Present(a.Dave, p.candidate, p.total, 0)
		require.NoError(t, err)
		require.True(t, result.Accepted)
	}

	leaderboard, _ = c.Leaderboard()
	require.Equal(t, Leaderboard{
		{Stake: 18, Candidate: a.Charlie},
		{Stake: 28, Candidate: a.Dave},
		{Stake: 38, Candidate: a.Eve},
		{Stake: 57, Candidate: a.Alice},
	}, leaderboard)

	report := advance(t, env, 6)
	require.NotNil(t, report.Finalised)

	return report.Finalised
}

func TestSimpleTally(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	a := env.Accounts

	finalisation := runSimpleElection(t, env)
	require.Equal(t, VoteIndex(1), finalisation.VoteIndex)
	require.Empty(t, finalisation.RunnersUp)
	require.Empty(t, finalisation.Discarded)

	active, _ := c.PresentationActive()
	require.False(t, active)

	members, err := c.ActiveCouncil()
	require.NoError(t, err)
	require.Equal(t, []Member{{Address: a.Eve, Expiry: 11}, {Address: a.Bob, Expiry: 11}}, members)

	is, _ := c.IsACandidate(a.Bob)
	require.False(t, is)
	is, _ = c.IsACandidate(a.Eve)
	require.False(t, is)

	index, _ := c.VoteIndex()
	require.Equal(t, VoteIndex(1), index)

	lastActive, _, _ := c.VoterLastActive(a.Bob)
	require.Equal(t, VoteIndex(0), lastActive)
	lastActive, _, _ = c.VoterLastActive(a.Eve)
	require.Equal(t, VoteIndex(0), lastActive)

	// the window is consumed
	stakes, _ := c.StakeSnapshot()
	require.Nil(t, stakes)
	leaderboard, _ := c.Leaderboard()
	require.Nil(t, leaderboard)

	candidates, _ := c.Candidates()
	require.Empty(t, candidates)
	count, _ := c.CandidateCount()
	require.Equal(t, uint32(0), count)

	// winners get the candidacy bond back
	require.Equal(t, common.Amount(17), env.Balance(a.Bob))
	require.Equal(t, common.Amount(47), env.Balance(a.Eve))

	// the next tally waits for the council to expire
	next, ok, err := c.NextTally()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(12), next)
}

func TestRunnersUpShouldBeKept(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	a := env.Accounts

	finalisation := runRunnersUpElection(t, env)
	require.Equal(t, []string{a.Dave, a.Charlie}, finalisation.RunnersUp)
	require.Equal(t, []string{a.Bob}, finalisation.Discarded)

	active, _ := c.PresentationActive()
	require.False(t, active)

	members, _ := c.ActiveCouncil()
	require.Equal(t, []Member{{Address: a.Alice, Expiry: 11}, {Address: a.Eve, Expiry: 11}}, members)

	for address, expected := range map[string]bool{
		a.Alice:   false,
		a.Eve:     false,
		a.Bob:     false,
		a.Charlie: true,
		a.Dave:    true,
	} {
		is, err := c.IsACandidate(address)
		require.NoError(t, err)
		require.Equal(t, expected, is)
	}

	index, _ := c.VoteIndex()
	require.Equal(t, VoteIndex(1), index)

	lastActive, _, _ := c.VoterLastActive(a.Bob)
	require.Equal(t, VoteIndex(0), lastActive)
	lastActive, _, _ = c.VoterLastActive(a.Eve)
	require.Equal(t, VoteIndex(0), lastActive)

	info, _, _ := c.CandidateRegInfo(a.Charlie)
	require.Equal(t, RegisterInfo{VoteIndex: 0, Slot: 2}, info)
	info, _, _ = c.CandidateRegInfo(a.Dave)
	require.Equal(t, RegisterInfo{VoteIndex: 0, Slot: 3}, info)

	// trailing holes are dropped
	candidates, _ := c.Candidates()
	require.Equal(t, SlotList{EmptySlot, EmptySlot, a.Charlie, a.Dave}, candidates)

	count, _ := c.CandidateCount()
	require.Equal(t, uint32(2), count)
}

func TestFinaliseBondConservation(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	a := env.Accounts
	runRunnersUpElection(t, env)

	// elected: the candidacy bond is returned
	require.Equal(t, common.Amount(10), env.Balance(a.Alice))
	require.Equal(t, common.Amount(47), env.Balance(a.Eve))

	// runners-up stay bonded
	require.Equal(t, common.Amount(18), env.Balance(a.Charlie))
	require.Equal(t, common.Amount(28), env.Balance(a.Dave))

	// discarded: the bond is kept
	require.Equal(t, common.Amount(8), env.Balance(a.Bob))

	// a plain voter is untouched
	require.Equal(t, common.Amount(57), env.Balance(a.Ferdie))
}

func TestVoteIndexMonotonic(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	voteIndex := func() VoteIndex {
		index, err := c.VoteIndex()
		require.NoError(t, err)
		return index
	}

	openSimpleWindow(t, env)
	require.Equal(t, VoteIndex(0), voteIndex())

	a := env.Accounts
	_, err := c.Present(a.Dave, a.Bob, 8, 0)
	require.NoError(t, err)
	_, err = c.Present(a.Dave, a.Eve, 38, 0)
	require.NoError(t, err)
	require.Equal(t, VoteIndex(0), voteIndex())

	advance(t, env, 5)
	require.Equal(t, VoteIndex(0), voteIndex())

	advance(t, env, 6)
	require.Equal(t, VoteIndex(1), voteIndex())

	for height := uint64(7); height < 12; height++ {
		advance(t, env, height)
		require.Equal(t, VoteIndex(1), voteIndex())
	}
}

func TestFinaliseWithoutPresentation(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	a := env.Accounts

	require.NoError(t, c.SetPresentationDuration(0))
	require.NoError(t, c.SubmitCandidacy(a.Bob, 0))
	require.NoError(t, c.SubmitCandidacy(a.Eve, 1))

	// the window closes in the block it opens
	report := advance(t, env, 4)
	require.NotNil(t, report.Opened)
	require.NotNil(t, report.Finalised)
	require.Empty(t, report.Finalised.Elected)
	require.Equal(t, []string{a.Bob, a.Eve}, report.Finalised.Discarded)

	members, _ := c.ActiveCouncil()
	require.Empty(t, members)

	candidates, _ := c.Candidates()
	require.Empty(t, candidates)

	index, _ := c.VoteIndex()
	require.Equal(t, VoteIndex(1), index)

	require.Equal(t, common.Amount(11), env.Balance(a.Bob))
}

func TestFinaliseFewerWinnersThanSeats(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	a := env.Accounts
	openSimpleWindow(t, env)

	result, err := c.Present(a.Dave, a.Eve, 38, 0)
	require.NoError(t, err)
	require.True(t, result.Accepted)

	report := advance(t, env, 6)
	require.Equal(t, []Member{{Address: a.Eve, Expiry: 11}}, report.Finalised.Elected)

	members, _ := c.ActiveCouncil()
	require.Equal(t, []Member{{Address: a.Eve, Expiry: 11}}, members)

	// one seat is still empty, the next tally is at the next period
	env.Height.Set(7)
	next, ok, _ := c.NextTally()
	require.True(t, ok)
	require.Equal(t, uint64(8), next)

	report = advance(t, env, 8)
	require.NotNil(t, report.Opened)
	require.Equal(t, uint32(1), report.Opened.Seats)
}

func TestRemoveMember(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	a := env.Accounts
	runSimpleElection(t, env)

	require.NoError(t, c.RemoveMember(a.Bob))

	members, _ := c.ActiveCouncil()
	require.Equal(t, []Member{{Address: a.Eve, Expiry: 11}}, members)

	is, _ := c.IsCouncillor(a.Bob)
	require.False(t, is)

	requireRejected(t, c, errors.NotMember, func() error {
		return c.RemoveMember(a.Bob)
	})

	// a seat is free, a tally can start at the next period
	env.Height.Set(7)
	next, ok, _ := c.NextTally()
	require.True(t, ok)
	require.Equal(t, uint64(8), next)
}

func TestRemoveMemberNotMember(t *testing.T) {
	env := NewTestEnvWith(func(a TestAccounts, config *GenesisConfig) {
		config.Council = []Member{{Address: a.Alice, Expiry: 9}}
	})
	defer env.Close()

	c := env.Council
	a := env.Accounts

	// removing a non-member writes nothing
	requireRejected(t, c, errors.NotMember, func() error {
		return c.RemoveMember(a.Ferdie)
	})

	members, _ := c.ActiveCouncil()
	require.Equal(t, []Member{{Address: a.Alice, Expiry: 9}}, members)
}

// the next tally waits for the first member that is not expiring when the
// incoming members alone can not fill the desired seats.
func TestNextTallyStaggeredExpiry(t *testing.T) {
	env := NewTestEnvWith(func(a TestAccounts, config *GenesisConfig) {
		config.Params.DesiredSeats = 3
		config.Council = []Member{
			{Address: a.Bob, Expiry: 8},
			{Address: a.Alice, Expiry: 4},
		}
	})
	defer env.Close()

	c := env.Council
	a := env.Accounts

	members, _ := c.ActiveCouncil()
	require.Equal(t, []Member{{Address: a.Alice, Expiry: 4}, {Address: a.Bob, Expiry: 8}}, members)

	next, ok, err := c.NextTally()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(4), next)

	report := advance(t, env, 4)
	require.NotNil(t, report.Opened)
	require.Equal(t, PendingWindow{
		EndBlock: 6,
		Seats:    2,
		Expiring: []Member{{Address: a.Alice, Expiry: 4}},
	}, *report.Opened)

	// bob stays and two seats are coming, the third seat frees when bob expires
	next, ok, err = c.NextTally()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(8), next)
}

func TestCouncilExpiry(t *testing.T) {
	env := NewTestEnv()
	defer env.Close()

	c := env.Council
	require.NoError(t, c.SetTermDuration(6))

	// elected at block 6 until block 12
	runSimpleElection(t, env)

	members, _ := c.ActiveCouncil()
	require.Len(t, members, 2)
	require.Equal(t, uint64(12), members[0].Expiry)

	report := advance(t, env, 12)
	require.NotNil(t, report.Opened)
	require.Equal(t, uint32(2), report.Opened.Seats)
	require.Equal(t, members, report.Opened.Expiring)

	// the expiring members are still in the council until the window closes
	current, _ := c.ActiveCouncil()
	require.Equal(t, members, current)

	report = advance(t, env, 14)
	require.NotNil(t, report.Finalised)

	current, _ = c.ActiveCouncil()
	require.Empty(t, current)
}
