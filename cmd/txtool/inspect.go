package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/lunfardo314/easytx/ledger/txbuilder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect HEX",
	Short: "Decode a serialized transaction, with or without witnesses",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	out := cmd.OutOrStdout()
	gtx, err := txbuilder.GeneratedTransactionFromBytes(data)
	if err == nil {
		fmt.Fprint(out, txbuilder.GeneratedTransactionToString(gtx))
		return nil
	}
	log.Debugf("not a witnessed transaction: %v", err)
	tx, err := ledger.TransactionFromBytes(data)
	if err != nil {
		return err
	}
	fmt.Fprint(out, "unwitnessed\n"+tx.String())
	return nil
}
