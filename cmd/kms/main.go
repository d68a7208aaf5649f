// Copyright (C) 2024-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kms",
	Short: "Remote signer for the Lux/Tendermint-style consensus wire",
	Long: `kms runs the remote signer side of the socket private-validator
protocol: it dials one validator connection, decodes
SignRequest frames, signs them with a local keyring, and writes back
SignResponse frames until the stream closes.`,
}

func main() {
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
