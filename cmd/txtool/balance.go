package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(balanceCmd)
}

var balanceCmd = &cobra.Command{
	Use:   "balance DRAFT_FILE",
	Short: "Estimate fee and balance of a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	draft, err := LoadDraft(args[0])
	if err != nil {
		return err
	}
	b, err := draft.Builder(log)
	if err != nil {
		return err
	}
	feeAlg := cfg.FeeAlgorithm()
	fee, err := b.EstimateFee(feeAlg)
	if err != nil {
		return err
	}
	withoutFee, err := b.GetBalanceWithoutFee()
	if err != nil {
		return err
	}
	bal, err := b.GetBalance(feeAlg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "inputs:  %d\noutputs: %d\n", b.NumInputs(), b.NumOutputs())
	fmt.Fprintf(out, "fee:     %d (%s)\n", fee, feeAlg)
	fmt.Fprintf(out, "balance without fee: %s\n", withoutFee)
	fmt.Fprintf(out, "balance: %s (%s)\n", bal, bal.Sign())
	return nil
}
