//
// Runner drives the election one block at a time: it applies the pooled
// transactions, then runs the end-of-block hook of the council.
//
package runner

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	logging "github.com/inconshreveable/log15"

	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/observer"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/metrics"
	"boscoin.io/council/lib/storage"
	"boscoin.io/council/lib/transaction"
)

type Runner struct {
	sync.Mutex

	storage storage.Database
	height  *block.Height
	council *council.Council
	ledger  *ledger.Accounts
	results *lru.Cache

	TransactionPool *transaction.Pool
	Conf            common.Config

	stopOnce sync.Once
	stop     chan struct{}

	log logging.Logger
}

func NewRunner(st storage.Database, conf common.Config) (r *Runner, err error) {
	var height *block.Height
	if height, err = block.LoadHeight(st); err != nil {
		return
	}

	size := conf.ResultCacheSize
	if size < 1 {
		size = common.DefaultResultCacheSize
	}

	var results *lru.Cache
	if results, err = lru.New(size); err != nil {
		return
	}

	accounts := ledger.NewAccounts(st, height)
	r = &Runner{
		storage:         st,
		height:          height,
		council:         council.New(st, accounts, height),
		ledger:          accounts,
		results:         results,
		TransactionPool: transaction.NewPool(conf.TxPoolLimit),
		Conf:            conf,
		stop:            make(chan struct{}),
		log:             log.New(logging.Ctx{"governance": conf.GovernanceAddress}),
	}

	return
}

// Council reads the committed election state.
func (r *Runner) Council() *council.Council {
	return r.council
}

func (r *Runner) Ledger() *ledger.Accounts {
	return r.ledger
}

func (r *Runner) Height() uint64 {
	return r.height.CurrentBlock()
}

// Submit checks `tx` and queues it for the next block.
func (r *Runner) Submit(tx transaction.Transaction) (err error) {
	if err = tx.IsWellFormed(r.Conf); err != nil {
		return
	}

	if _, found := r.results.Get(tx.GetHash()); found {
		return errors.TransactionAlreadyExistsInPool
	}

	if err = r.TransactionPool.Add(tx); err != nil {
		return
	}

	r.log.Debug("transaction queued", "hash", tx.GetHash(), "source", tx.Source())

	return
}

// Result returns the status of a queued or processed transaction.
func (r *Runner) Result(hash string) (TransactionResult, bool) {
	if tx, found := r.TransactionPool.Get(hash); found {
		return TransactionResult{
			Hash:   hash,
			Source: tx.Source(),
			Status: StatusPending,
		}, true
	}

	if v, found := r.results.Get(hash); found {
		return v.(TransactionResult), true
	}

	return TransactionResult{}, false
}

// ProcessBlock moves to the next block, applies up to `Conf.TxsLimit`
// transactions in arrival order and runs the end-of-block hook.
func (r *Runner) ProcessBlock() (result BlockResult, err error) {
	r.Lock()
	defer r.Unlock()

	begin := time.Now()
	defer metrics.Block.ObserveDurationSeconds(begin)

	result.Height = r.height.Advance()

	hashes := r.TransactionPool.AvailableTransactions(r.Conf.TxsLimit)
	for _, hash := range hashes {
		tx, found := r.TransactionPool.Get(hash)
		if !found {
			continue
		}

		txResult := r.applyTransaction(result.Height, tx)
		result.Transactions = append(result.Transactions, txResult)
	}
	r.TransactionPool.Remove(hashes...)

	if result.Report, err = r.endBlock(); err != nil {
		r.log.Error("failed to end block", "height", result.Height, "error", err)
		return
	}

	r.updateMetrics(result)

	if result.Report.Opened != nil {
		observer.CouncilObserver.Trigger(observer.EventTallyStarted, result.Report)
	}
	if result.Report.Finalised != nil {
		observer.CouncilObserver.Trigger(observer.EventTallyFinalised, result.Report)
	}

	r.log.Debug(
		"block processed",
		"height", result.Height,
		"transactions", len(result.Transactions),
		"elapsed", time.Since(begin),
	)

	return
}

func (r *Runner) applyTransaction(height uint64, tx transaction.Transaction) TransactionResult {
	result := TransactionResult{
		Hash:   tx.GetHash(),
		Source: tx.Source(),
		Height: height,
	}

	ops, err := transaction.Apply(r.storage, r.height, r.Conf, tx)

	event := observer.EventApplied
	if err != nil {
		result.Status = StatusRejected
		result.Error = toError(err)
		event = observer.EventRejected
	} else {
		result.Status = StatusApplied
		result.Operations = ops
	}

	r.results.Add(result.Hash, result)
	metrics.Block.AddTransaction(result.Applied())

	observer.TransactionObserver.Trigger(
		fmt.Sprintf("%s hash-%s source-%s", event, result.Hash, result.Source),
		result,
	)

	return result
}

func (r *Runner) endBlock() (report council.BlockReport, err error) {
	bt := storage.NewBatchBackend(r.storage)
	c := council.New(bt, ledger.NewAccounts(bt, r.height), r.height)

	if report, err = c.EndBlock(); err != nil {
		bt.Discard()
		return
	}

	if err = r.height.Save(bt); err != nil {
		bt.Discard()
		return
	}

	err = bt.Commit()

	return
}

func (r *Runner) updateMetrics(result BlockResult) {
	metrics.Block.SetHeight(result.Height)

	for _, tx := range result.Transactions {
		for _, op := range tx.Operations {
			if op.Present != nil {
				metrics.Election.AddPresentation(op.Present.Accepted)
			}
		}
	}

	if result.Report.Opened != nil {
		metrics.Election.AddTally()
	}

	if members, err := r.council.ActiveCouncil(); err == nil {
		metrics.Election.SetCouncilSize(len(members))
	}
	if count, err := r.council.CandidateCount(); err == nil {
		metrics.Election.SetCandidates(count)
	}
	if voters, err := r.council.Voters(); err == nil {
		metrics.Election.SetVoters(len(voters))
	}
	if index, err := r.council.VoteIndex(); err == nil {
		metrics.Election.SetVoteIndex(uint32(index))
	}
	if active, err := r.council.PresentationActive(); err == nil {
		metrics.Election.SetWindowOpen(active)
	}
}

// Start processes a block every `Conf.BlockTime` until `Stop` is called.
func (r *Runner) Start() error {
	ticker := time.NewTicker(r.Conf.BlockTime)
	defer ticker.Stop()

	r.log.Info("runner started", "block-time", r.Conf.BlockTime)

	for {
		select {
		case <-ticker.C:
			if _, err := r.ProcessBlock(); err != nil {
				return err
			}
		case <-r.stop:
			r.log.Info("runner stopped", "height", r.Height())
			return nil
		}
	}
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}
