package main

import (
	"encoding/hex"
	"fmt"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/lunfardo314/easytx/ledger/txbuilder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Bool("unchecked", false, "Skip the fee and balance check (unsafe)")
	buildCmd.Flags().BoolP("verbose", "v", false, "Print the transaction")
}

var buildCmd = &cobra.Command{
	Use:   "build DRAFT_FILE",
	Short: "Finalize, sign and serialize a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	unchecked, _ := cmd.Flags().GetBool("unchecked")
	verbose, _ := cmd.Flags().GetBool("verbose")

	draft, err := LoadDraft(args[0])
	if err != nil {
		return err
	}
	genesis, err := cfg.Genesis()
	if err != nil {
		return err
	}
	reqs, err := draft.WitnessRequests()
	if err != nil {
		return err
	}
	b, err := draft.Builder(log)
	if err != nil {
		return err
	}
	var tx *ledger.Transaction
	if unchecked {
		log.Warnf("building without balance check")
		tx, err = b.UncheckedFinalize()
	} else {
		var policy txbuilder.OutputPolicy
		if policy, err = draft.OutputPolicy(); err != nil {
			return err
		}
		tx, err = b.Finalize(cfg.FeeAlgorithm(), policy)
	}
	if err != nil {
		return err
	}
	gtx, err := txbuilder.SignAndBuild(cmd.Context(), genesis, tx, reqs)
	if err != nil {
		return err
	}
	log.Infof("built transaction %s: %d inputs, %d outputs", gtx.ID().String(), tx.NumInputs(), tx.NumOutputs())

	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprint(out, txbuilder.GeneratedTransactionToString(gtx))
	}
	fmt.Fprintf(out, "%s\n%s\n", gtx.ID().String(), hex.EncodeToString(gtx.Bytes()))
	return nil
}
