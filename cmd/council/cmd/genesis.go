package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"
	"gopkg.in/yaml.v2"

	"boscoin.io/council/cmd/council/common"
	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/storage"
)

var (
	genesisCmd *cobra.Command

	flagGenesisStorage string
)

func init() {
	genesisCmd = &cobra.Command{
		Use:   "genesis <genesis file>",
		Short: "Initialize the election storage from a yaml genesis file",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			flagName, err := MakeGenesis(args[0], flagGenesisStorage)
			if len(flagName) != 0 || err != nil {
				common.PrintFlagsError(c, flagName, err)
			}

			fmt.Println("successfully initialized council storage")
		},
	}

	flagGenesisStorage = defaultStorage()
	genesisCmd.Flags().StringVar(&flagGenesisStorage, "storage", flagGenesisStorage, "storage uri")

	rootCmd.AddCommand(genesisCmd)
}

// LoadGenesisConfig reads the yaml genesis file; every address in it must be
// a public address.
func LoadGenesisConfig(path string) (config council.GenesisConfig, err error) {
	var b []byte
	if b, err = ioutil.ReadFile(path); err != nil {
		err = errors.Wrap(err, "failed to read genesis file")
		return
	}
	if err = yaml.UnmarshalStrict(b, &config); err != nil {
		err = errors.Wrap(err, "failed to parse genesis file")
		return
	}

	for _, member := range config.Council {
		if _, err = keypair.Parse(member.Address); err != nil {
			err = errors.Wrapf(err, "bad council member address, '%s'", member.Address)
			return
		}
	}
	for _, account := range config.Accounts {
		if _, err = keypair.Parse(account.Address); err != nil {
			err = errors.Wrapf(err, "bad account address, '%s'", account.Address)
			return
		}
	}

	return
}

// InitGenesis writes the genesis state at block 0 and saves the height.
func InitGenesis(st storage.Database, config council.GenesisConfig) error {
	height := block.NewHeight(0)
	c := council.New(st, ledger.NewAccounts(st, height), height)
	if err := c.Genesis(config); err != nil {
		return err
	}

	return height.Save(st)
}

// MakeGenesis initializes the storage at `storageURI` from the genesis file.
// The returned string is the name of the flag which errored.
func MakeGenesis(path, storageURI string) (string, error) {
	config, err := LoadGenesisConfig(path)
	if err != nil {
		return "<genesis file>", err
	}

	storageConfig, err := storage.NewConfigFromString(storageURI)
	if err != nil {
		return "--storage", err
	}

	st, err := storage.NewLevelDBBackend(storageConfig)
	if err != nil {
		return "--storage", errors.Wrap(err, "failed to initialize storage")
	}
	defer st.Close()

	if err = InitGenesis(st, config); err != nil {
		return "<genesis file>", err
	}

	return "", nil
}
