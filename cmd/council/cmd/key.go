package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"

	"boscoin.io/council/cmd/council/common"
)

var (
	keyCmd         *cobra.Command
	keyGenerateCmd *cobra.Command

	flagKeyParse  bool
	flagKeyFormat string
)

type keyPair struct {
	Seed    string `json:"seed" yaml:"seed"`
	Address string `json:"address" yaml:"address"`
}

func init() {
	keyCmd = &cobra.Command{
		Use:   "key",
		Short: "Keypair management",
		Run: func(c *cobra.Command, args []string) {
			if len(args) < 1 {
				c.Usage()
			}
		},
	}

	keyGenerateCmd = &cobra.Command{
		Use:   "generate [<secret seed>]",
		Short: "Generate keypair for an account",
		Run: func(c *cobra.Command, args []string) {
			input := strings.TrimSpace(strings.Join(args, " "))
			if flagKeyParse && len(input) == 0 {
				common.PrintFlagsError(c, "--parse", fmt.Errorf("--parse needs <secret seed>"))
			}

			kp, err := generateKP(input, flagKeyParse)
			if err != nil {
				common.PrintFlagsError(c, "<secret seed>", err)
			}

			encode, ok := keyEncoders()[flagKeyFormat]
			if !ok {
				common.PrintFlagsError(c, "--format", fmt.Errorf("'%s' not recognized", flagKeyFormat))
			}
			if err := encode(keyPair{Seed: kp.Seed(), Address: kp.Address()}, os.Stdout); err != nil {
				common.PrintError(c, err)
			}
		},
	}
	keyGenerateCmd.Flags().BoolVar(&flagKeyParse, "parse", false, "parse secret seed")
	keyGenerateCmd.Flags().StringVar(&flagKeyFormat, "format", "default", "format={default, json, oneline, prettyjson, yaml}")

	keyCmd.AddCommand(keyGenerateCmd)
	rootCmd.AddCommand(keyCmd)
}

func keyEncoders() map[string]common.Encode {
	encoders := map[string]common.Encode{
		"default": func(v interface{}, w io.Writer) error {
			kp := v.(keyPair)
			_, err := fmt.Fprintf(w, "   Secret Seed: %s\nPublic Address: %s\n", kp.Seed, kp.Address)
			return err
		},
		"oneline": func(v interface{}, w io.Writer) error {
			kp := v.(keyPair)
			_, err := fmt.Fprintf(w, "%s %s\n", kp.Seed, kp.Address)
			return err
		},
	}
	for name, encode := range common.DefaultEncodes {
		encoders[name] = encode
	}

	return encoders
}

// generateKP makes a random keypair, or parses the given secret seed with
// `fromSeed`.
func generateKP(seed string, fromSeed bool) (*keypair.Full, error) {
	if !fromSeed {
		return keypair.Random()
	}

	kp, err := keypair.Parse(seed)
	if err != nil {
		return nil, err
	}
	full, ok := kp.(*keypair.Full)
	if !ok {
		return nil, fmt.Errorf("not a secret seed")
	}

	return full, nil
}
