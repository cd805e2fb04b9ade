package runner

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/observer"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/transaction"
	"boscoin.io/council/lib/transaction/operation"
)

func submit(t *testing.T, r *Runner, source string, nonce uint64, ops ...operation.Operation) transaction.Transaction {
	tx := transaction.MakeTestTransaction(source, nonce, ops...)
	require.NoError(t, r.Submit(tx))

	return tx
}

func processBlocks(t *testing.T, r *Runner, n int) (results []BlockResult) {
	for i := 0; i < n; i++ {
		result, err := r.ProcessBlock()
		require.NoError(t, err)
		results = append(results, result)
	}

	return
}

func TestRunnerSimpleElection(t *testing.T) {
	r, a, st := MakeTestRunner(common.NewConfig(""))
	defer st.Close()

	submit(t, r, a.Bob, 0,
		operation.MakeTestSubmitCandidacy(0),
		operation.MakeTestSetApprovals(0, true, false),
	)
	submit(t, r, a.Eve, 0,
		operation.MakeTestSubmitCandidacy(1),
		operation.MakeTestSetApprovals(0, false, true),
	)

	results := processBlocks(t, r, 3)
	require.Len(t, results[0].Transactions, 2)
	for _, tx := range results[0].Transactions {
		require.Equal(t, StatusApplied, tx.Status)
		require.Equal(t, uint64(1), tx.Height)
	}
	for _, result := range results {
		require.Nil(t, result.Report.Opened)
		require.Nil(t, result.Report.Finalised)
	}

	results = processBlocks(t, r, 1)
	require.Equal(t, uint64(4), results[0].Height)
	require.NotNil(t, results[0].Report.Opened)
	require.Equal(t, council.PendingWindow{EndBlock: 6, Seats: 2}, *results[0].Report.Opened)

	submit(t, r, a.Dave, 0,
		operation.MakeTestPresent(a.Bob, 8, 0),
		operation.MakeTestPresent(a.Eve, 38, 0),
	)

	results = processBlocks(t, r, 1)
	require.Len(t, results[0].Transactions, 1)

	presented := results[0].Transactions[0]
	require.Equal(t, StatusApplied, presented.Status)
	require.Len(t, presented.Operations, 2)
	for _, op := range presented.Operations {
		require.Equal(t, operation.TypePresent, op.Type)
		require.True(t, op.Present.Accepted)
	}

	results = processBlocks(t, r, 1)
	finalised := results[0].Report.Finalised
	require.NotNil(t, finalised)
	require.Equal(t, council.VoteIndex(1), finalised.VoteIndex)

	members, err := r.Council().ActiveCouncil()
	require.NoError(t, err)
	require.Equal(t, []council.Member{{Address: a.Eve, Expiry: 11}, {Address: a.Bob, Expiry: 11}}, members)

	balance, err := r.Ledger().BalanceOf(a.Bob)
	require.NoError(t, err)
	require.Equal(t, common.Amount(17), balance)

	balance, err = r.Ledger().BalanceOf(a.Eve)
	require.NoError(t, err)
	require.Equal(t, common.Amount(47), balance)

	next, ok, err := r.Council().NextTally()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(12), next)
}

func TestRunnerRejectedTransaction(t *testing.T) {
	r, a, st := MakeTestRunner(common.NewConfig(""))
	defer st.Close()

	first := submit(t, r, a.Bob, 0, operation.MakeTestSubmitCandidacy(0))
	second := submit(t, r, a.Bob, 1, operation.MakeTestSubmitCandidacy(1))

	result, found := r.Result(second.GetHash())
	require.True(t, found)
	require.Equal(t, StatusPending, result.Status)

	processBlocks(t, r, 1)

	result, found = r.Result(first.GetHash())
	require.True(t, found)
	require.True(t, result.Applied())

	result, found = r.Result(second.GetHash())
	require.True(t, found)
	require.Equal(t, StatusRejected, result.Status)
	require.True(t, errors.AlreadyCandidate.Is(result.Error))
	require.Empty(t, result.Operations)

	balance, err := r.Ledger().BalanceOf(a.Bob)
	require.NoError(t, err)
	require.Equal(t, common.Amount(11), balance)

	_, found = r.Result("unknown")
	require.False(t, found)

	// a processed transaction is not taken twice
	require.Equal(t, errors.TransactionAlreadyExistsInPool, r.Submit(first))
}

func TestRunnerSubmitNotWellFormed(t *testing.T) {
	r, a, st := MakeTestRunner(common.NewConfig(""))
	defer st.Close()

	tx := transaction.MakeTestTransaction(a.Bob, 0, operation.MakeTestSetDesiredSeats(4))
	require.True(t, errors.NotPrivileged.Is(r.Submit(tx)))
	require.Equal(t, 0, r.TransactionPool.Len())
}

func TestRunnerTxsLimit(t *testing.T) {
	conf := common.NewConfig("")
	conf.TxsLimit = 1

	r, a, st := MakeTestRunner(conf)
	defer st.Close()

	submit(t, r, a.Bob, 0, operation.MakeTestSubmitCandidacy(0))
	submit(t, r, a.Eve, 0, operation.MakeTestSubmitCandidacy(1))

	results := processBlocks(t, r, 1)
	require.Len(t, results[0].Transactions, 1)
	require.Equal(t, 1, r.TransactionPool.Len())

	results = processBlocks(t, r, 1)
	require.Len(t, results[0].Transactions, 1)
	require.Equal(t, StatusApplied, results[0].Transactions[0].Status)
	require.Equal(t, 0, r.TransactionPool.Len())
}

func TestRunnerHeightIsSaved(t *testing.T) {
	conf := common.NewConfig("")
	r, _, st := MakeTestRunner(conf)
	defer st.Close()

	processBlocks(t, r, 3)
	require.Equal(t, uint64(3), r.Height())

	reopened, err := NewRunner(st, conf)
	require.NoError(t, err)
	require.Equal(t, uint64(3), reopened.Height())
}

func TestRunnerTransactionObserver(t *testing.T) {
	r, a, st := MakeTestRunner(common.NewConfig(""))
	defer st.Close()

	tx := submit(t, r, a.Bob, 0, operation.MakeTestSubmitCandidacy(0))

	var wg sync.WaitGroup
	wg.Add(1)

	var received TransactionResult
	event := "hash-" + tx.GetHash()
	onApplied := func(args ...interface{}) {
		received = args[0].(TransactionResult)
		wg.Done()
	}
	observer.TransactionObserver.On(event, onApplied)

	processBlocks(t, r, 1)
	wg.Wait()
	observer.TransactionObserver.Off(event, onApplied)

	require.Equal(t, tx.GetHash(), received.Hash)
	require.Equal(t, StatusApplied, received.Status)
}

func TestRunnerCouncilObserver(t *testing.T) {
	r, a, st := MakeTestRunner(common.NewConfig(""))
	defer st.Close()

	submit(t, r, a.Bob, 0,
		operation.MakeTestSubmitCandidacy(0),
		operation.MakeTestSetApprovals(0, true),
	)

	var wg sync.WaitGroup
	wg.Add(1)

	var received council.BlockReport
	onStarted := func(args ...interface{}) {
		received = args[0].(council.BlockReport)
		wg.Done()
	}
	observer.CouncilObserver.On(observer.EventTallyStarted, onStarted)

	processBlocks(t, r, 4)
	wg.Wait()
	observer.CouncilObserver.Off(observer.EventTallyStarted, onStarted)

	require.Equal(t, uint64(4), received.Height)
	require.NotNil(t, received.Opened)
}

func TestRunnerStartStop(t *testing.T) {
	conf := common.NewConfig("")
	r, _, st := MakeTestRunner(conf)
	defer st.Close()

	done := make(chan error)
	go func() {
		done <- r.Start()
	}()

	r.Stop()
	require.NoError(t, <-done)

	// stopping twice is harmless
	r.Stop()
}
