package main

import (
	"crypto/rand"
	"fmt"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().Bool("extended", false, "Generate extended ed25519 key")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a key with its single and account addresses",
	Args:  cobra.NoArgs,
	RunE:  runKeygen,
}

func runKeygen(cmd *cobra.Command, args []string) error {
	extended, _ := cmd.Flags().GetBool("extended")
	d, err := cfg.Discrimination()
	if err != nil {
		return err
	}
	seed := make([]byte, ledger.SecretKeySize)
	if _, err = rand.Read(seed); err != nil {
		return err
	}
	var key *ledger.PrivateKey
	if extended {
		key, err = ledger.NewExtendedPrivateKeyFromSeed(seed)
	} else {
		key, err = ledger.NewPrivateKeyFromSeed(seed)
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "secret:  %s\n", key.Bech32())
	fmt.Fprintf(out, "public:  %s\n", key.PublicKey().Bech32())
	fmt.Fprintf(out, "single:  %s\n", cfg.FormatAddress(ledger.NewSingleAddress(d, key.PublicKey())))
	fmt.Fprintf(out, "account: %s\n", cfg.FormatAddress(ledger.NewAccountAddress(d, key.PublicKey())))
	return nil
}
