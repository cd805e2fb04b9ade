package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/transaction/operation"
)

func TestApplySubmitCandidacy(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	config := common.NewConfig("")
	tx := MakeTestTransaction(env.Accounts.Bob, 0, operation.MakeTestSubmitCandidacy(0))

	results, err := Apply(env.Storage, env.Height, config, tx)
	require.NoError(t, err)
	require.Equal(t, []OperationResult{{Type: operation.TypeSubmitCandidacy}}, results)

	isCandidate, err := env.Council.IsACandidate(env.Accounts.Bob)
	require.NoError(t, err)
	require.True(t, isCandidate)
	require.Equal(t, common.Amount(11), env.Balance(env.Accounts.Bob))
}

func TestApplyIsAtomic(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	before, err := env.Council.Digest()
	require.NoError(t, err)

	// the second candidacy fails, so the first one must not stay
	tx := MakeTestTransaction(
		env.Accounts.Bob,
		0,
		operation.MakeTestSubmitCandidacy(0),
		operation.MakeTestSubmitCandidacy(1),
	)

	_, err = Apply(env.Storage, env.Height, common.NewConfig(""), tx)
	require.True(t, errors.AlreadyCandidate.Is(err))

	after, err := env.Council.Digest()
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.Equal(t, common.Amount(20), env.Balance(env.Accounts.Bob))
}

func TestApplyNotWellFormed(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	tx := MakeTestTransaction(env.Accounts.Bob, 0, operation.MakeTestSubmitCandidacy(0))
	tx.B.Nonce = 9

	_, err := Apply(env.Storage, env.Height, common.NewConfig(""), tx)
	require.Equal(t, errors.TransactionHashMismatch, err)

	isCandidate, err := env.Council.IsACandidate(env.Accounts.Bob)
	require.NoError(t, err)
	require.False(t, isCandidate)
}

func TestApplyGovernance(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	config := common.NewConfig(env.Accounts.Alice)

	tx := MakeTestTransaction(env.Accounts.Alice, 0, operation.Operation{
		H: operation.Header{Type: operation.TypeSetTermDuration},
		B: operation.SetTermDuration{Duration: 7},
	})
	_, err := Apply(env.Storage, env.Height, config, tx)
	require.NoError(t, err)

	term, err := env.Council.TermDuration()
	require.NoError(t, err)
	require.Equal(t, uint64(7), term)

	tx = MakeTestTransaction(env.Accounts.Bob, 0, operation.MakeTestSetDesiredSeats(5))
	_, err = Apply(env.Storage, env.Height, config, tx)
	require.True(t, errors.NotPrivileged.Is(err))

	seats, err := env.Council.DesiredSeats()
	require.NoError(t, err)
	require.Equal(t, uint32(2), seats)
}

func TestApplyGovernanceBodyUnderVoterHeader(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	config := common.NewConfig(env.Accounts.Alice)

	tx := MakeTestTransaction(env.Accounts.Bob, 0, operation.Operation{
		H: operation.Header{Type: operation.TypePresent},
		B: operation.SetDesiredSeats{Seats: 5},
	})
	_, err := Apply(env.Storage, env.Height, config, tx)
	require.True(t, errors.InvalidOperation.Is(err))
	require.Equal(t, 0, err.(*errors.Error).Data["operation"])

	seats, err := env.Council.DesiredSeats()
	require.NoError(t, err)
	require.Equal(t, uint32(2), seats)
}

func TestApplyRemoveMemberNotMember(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	config := common.NewConfig(env.Accounts.Alice)
	tx := MakeTestTransaction(env.Accounts.Alice, 0, operation.MakeTestRemoveMember(env.Accounts.Bob))

	_, err := Apply(env.Storage, env.Height, config, tx)
	require.True(t, errors.NotMember.Is(err))
}

func TestApplyVoterLifecycle(t *testing.T) {
	env := council.NewTestEnv()
	defer env.Close()

	config := common.NewConfig("")

	_, err := Apply(env.Storage, env.Height, config, MakeTestTransaction(
		env.Accounts.Bob, 0, operation.MakeTestSubmitCandidacy(0),
	))
	require.NoError(t, err)

	_, err = Apply(env.Storage, env.Height, config, MakeTestTransaction(
		env.Accounts.Alice, 0, operation.MakeTestSetApprovals(0, true),
	))
	require.NoError(t, err)
	require.Equal(t, common.Amount(7), env.Balance(env.Accounts.Alice))

	voters, err := env.Council.Voters()
	require.NoError(t, err)
	require.Equal(t, []string{env.Accounts.Alice}, voters)

	_, err = Apply(env.Storage, env.Height, config, MakeTestTransaction(
		env.Accounts.Alice, 1, operation.MakeTestRetractVoter(0),
	))
	require.NoError(t, err)
	require.Equal(t, common.Amount(10), env.Balance(env.Accounts.Alice))

	voters, err = env.Council.Voters()
	require.NoError(t, err)
	require.Empty(t, voters)
}
