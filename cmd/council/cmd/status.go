package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"boscoin.io/council/cmd/council/common"
	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/storage"
)

var (
	statusCmd *cobra.Command

	flagStatusStorage string
	flagStatusFormat  string
)

type statusOutput struct {
	Height uint64        `json:"height" yaml:"height"`
	State  council.State `json:"state" yaml:"state"`
}

func init() {
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print the election state of a stopped node's storage",
		Run: func(c *cobra.Command, args []string) {
			encode, ok := common.DefaultEncodes[flagStatusFormat]
			if !ok {
				common.PrintFlagsError(c, "--format", fmt.Errorf("'%s' not recognized", flagStatusFormat))
			}

			output, err := loadStatus(flagStatusStorage)
			if err != nil {
				common.PrintFlagsError(c, "--storage", err)
			}
			if err = encode(output, os.Stdout); err != nil {
				common.PrintError(c, err)
			}
		},
	}

	flagStatusStorage = defaultStorage()
	statusCmd.Flags().StringVar(&flagStatusStorage, "storage", flagStatusStorage, "storage uri")
	statusCmd.Flags().StringVar(&flagStatusFormat, "format", "prettyjson", "format={json, prettyjson, yaml}")

	rootCmd.AddCommand(statusCmd)
}

func loadStatus(storageURI string) (output statusOutput, err error) {
	var storageConfig *storage.Config
	if storageConfig, err = storage.NewConfigFromString(storageURI); err != nil {
		return
	}

	var st *storage.LevelDBBackend
	if st, err = storage.NewLevelDBBackend(storageConfig); err != nil {
		err = errors.Wrap(err, "failed to open storage")
		return
	}
	defer st.Close()

	var height *block.Height
	if height, err = block.LoadHeight(st); err != nil {
		return
	}

	c := council.New(st, ledger.NewAccounts(st, height), height)
	var initialized bool
	if initialized, err = c.Initialized(); err != nil {
		return
	} else if !initialized {
		err = errors.New("storage is not initialized; run `genesis` first")
		return
	}

	output.Height = height.CurrentBlock()
	output.State, err = c.State()

	return
}
