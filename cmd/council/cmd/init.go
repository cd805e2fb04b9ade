package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"boscoin.io/council/cmd/council/common"
	libcommon "boscoin.io/council/lib/common"
)

var rootCmd = &cobra.Command{
	Use:   os.Args[0],
	Short: "council",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		common.PrintFlagsError(rootCmd, "", err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

// defaultStorage is `COUNCIL_STORAGE` or the `db` directory under the current
// directory.
func defaultStorage() string {
	if s := libcommon.GetENVValue("COUNCIL_STORAGE", ""); len(s) > 0 {
		return s
	}

	currentDirectory, err := os.Getwd()
	if err == nil {
		currentDirectory, err = filepath.Abs(currentDirectory)
	}
	if err != nil {
		return "memory://"
	}

	return fmt.Sprintf("file://%s/db", currentDirectory)
}
