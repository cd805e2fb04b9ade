package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/transaction/operation"
)

func TestNewTransaction(t *testing.T) {
	source := keypair.Random().Address()

	tx, err := NewTransaction(source, 0, operation.MakeTestSubmitCandidacy(0))
	require.NoError(t, err)
	require.Equal(t, source, tx.Source())
	require.Equal(t, tx.B.MakeHashString(), tx.GetHash())

	_, err = common.ParseISO8601(tx.H.Created)
	require.NoError(t, err)

	_, err = NewTransaction(source, 0)
	require.Equal(t, errors.TransactionEmptyOperations, err)
}

func TestTransactionHash(t *testing.T) {
	source := keypair.Random().Address()

	a := MakeTestTransaction(source, 0, operation.MakeTestSetApprovals(0, true, false))
	b := MakeTestTransaction(source, 0, operation.MakeTestSetApprovals(0, true, false))
	require.Equal(t, a.GetHash(), b.GetHash())

	c := MakeTestTransaction(source, 1, operation.MakeTestSetApprovals(0, true, false))
	require.NotEqual(t, a.GetHash(), c.GetHash())

	d := MakeTestTransaction(source, 0, operation.MakeTestSetApprovals(0, true, true))
	require.NotEqual(t, a.GetHash(), d.GetHash())
}

func TestTransactionUnmarshalJSON(t *testing.T) {
	tx := MakeTestTransaction(
		keypair.Random().Address(),
		3,
		operation.MakeTestSubmitCandidacy(1),
		operation.MakeTestPresent(keypair.Random().Address(), 9, 2),
	)

	b, err := tx.Serialize()
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, tx, decoded)
	require.Equal(t, tx.GetHash(), decoded.B.MakeHashString())
}

func TestTransactionIsWellFormed(t *testing.T) {
	governance := keypair.Random().Address()
	config := common.NewConfig(governance)
	source := keypair.Random().Address()

	{ // normal
		tx := MakeTestTransaction(source, 0, operation.MakeTestSubmitCandidacy(0))
		require.NoError(t, tx.IsWellFormed(config))
	}

	{ // bad source
		tx := MakeTestTransaction("GABC", 0, operation.MakeTestSubmitCandidacy(0))
		require.True(t, errors.BadPublicAddress.Is(tx.IsWellFormed(config)))
	}

	{ // created is not a time
		tx := MakeTestTransaction(source, 0, operation.MakeTestSubmitCandidacy(0))
		tx.H.Created = "21 Jan 2019"
		require.True(t, errors.TransactionBadCreated.Is(tx.IsWellFormed(config)))
	}

	{ // hash does not cover the body
		tx := MakeTestTransaction(source, 0, operation.MakeTestSubmitCandidacy(0))
		tx.B.Nonce = 1
		require.Equal(t, errors.TransactionHashMismatch, tx.IsWellFormed(config))
	}

	{ // empty operations
		tx := Transaction{B: Body{Source: source}}
		tx.H.Hash = tx.B.MakeHashString()
		require.Equal(t, errors.TransactionEmptyOperations, tx.IsWellFormed(config))
	}

	{ // over the operations limit
		config := common.NewConfig(governance)
		config.OpsLimit = 2

		tx := MakeTestTransaction(
			source,
			0,
			operation.MakeTestRetractVoter(0),
			operation.MakeTestRetractVoter(1),
			operation.MakeTestRetractVoter(2),
		)
		require.True(t, errors.TransactionHasOverMaxOperations.Is(tx.IsWellFormed(config)))
	}

	{ // bad operation carries its position
		tx := MakeTestTransaction(
			source,
			0,
			operation.MakeTestSubmitCandidacy(0),
			operation.MakeTestPresent("bad", 1, 0),
		)
		err := tx.IsWellFormed(config)
		require.True(t, errors.BadPublicAddress.Is(err))
		require.Equal(t, 1, err.(*errors.Error).Data["operation"])
	}
}

func TestTransactionPrivileged(t *testing.T) {
	governance := keypair.Random().Address()
	op := operation.MakeTestSetDesiredSeats(3)

	tx := MakeTestTransaction(governance, 0, op)
	require.NoError(t, tx.IsWellFormed(common.NewConfig(governance)))

	other := MakeTestTransaction(keypair.Random().Address(), 0, op)
	require.True(t, errors.NotPrivileged.Is(other.IsWellFormed(common.NewConfig(governance))))

	// without a governance address nobody is privileged
	require.True(t, errors.NotPrivileged.Is(tx.IsWellFormed(common.NewConfig(""))))
}
