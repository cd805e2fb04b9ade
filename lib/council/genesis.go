package council

import (
	"sort"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

// GenesisAccount is an initial balance. A non-zero `LockedUntil` keeps the
// funds unmovable until that block.
type GenesisAccount struct {
	Address     string        `json:"address" yaml:"address"`
	Balance     common.Amount `json:"balance" yaml:"balance"`
	LockedUntil uint64        `json:"locked_until,omitempty" yaml:"locked_until"`
}

// GenesisConfig is the initial state of the election.
type GenesisConfig struct {
	Params   Params           `json:"params" yaml:"params"`
	Council  []Member         `json:"council" yaml:"council"`
	Accounts []GenesisAccount `json:"accounts" yaml:"accounts"`
}

func (c *Council) Initialized() (bool, error) {
	return storage.Exists(c.st, ParamVotingPeriodKey)
}

// Genesis writes the parameters, the initial council and the initial
// balances. It can run only once on a storage.
func (c *Council) Genesis(config GenesisConfig) error {
	if initialized, err := c.Initialized(); err != nil {
		return err
	} else if initialized {
		return errors.AlreadyInitialized
	}
	if err := config.Params.IsWellFormed(); err != nil {
		return err
	}

	members := append([]Member(nil), config.Council...)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Expiry < members[j].Expiry
	})

	if err := c.putParams(config.Params); err != nil {
		return err
	}
	if err := storage.PutValue(c.st, ActiveCouncilKey, members); err != nil {
		return err
	}
	if err := storage.PutValue(c.st, VoteIndexKey, VoteIndex(0)); err != nil {
		return err
	}
	for _, account := range config.Accounts {
		if err := c.ledger.SetBalance(account.Address, account.Balance); err != nil {
			return err
		}
		if account.LockedUntil < 1 {
			continue
		}
		if err := c.ledger.Lock(account.Address, account.LockedUntil); err != nil {
			return err
		}
	}

	log.Debug("genesis", "members", len(members), "accounts", len(config.Accounts))

	return nil
}
