// Copyright (C) 2024-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/luxfi/consensus/internal/config"
	"github.com/luxfi/consensus/internal/keyring"
	"github.com/luxfi/consensus/internal/signer"
	kmslog "github.com/luxfi/consensus/log"
	"github.com/luxfi/consensus/metrics"
)

func serveCmd() *cobra.Command {
	var (
		address       string
		port          int
		keyringSource string
		debug         bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Dial a validator and serve sign requests until the stream closes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewBuilder().
				WithValidator(address, port).
				WithKeyringSource(keyringSource).
				WithDebug(debug).
				Build()
			if err != nil {
				return fmt.Errorf("build config: %w", err)
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&address, "validator-address", "127.0.0.1", "validator hostname or IP to dial")
	cmd.Flags().IntVar(&port, "validator-port", 26659, "validator signer-socket TCP port")
	cmd.Flags().StringVar(&keyringSource, "keyring", config.KeyringMemory, "directory of *.key files, or :memory: for an ephemeral test key")
	cmd.Flags().BoolVar(&debug, "debug", false, "accept the PoisonPill sentinel (never enable in production)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := kmslog.NewNoOpLogger()

	kr, err := loadKeyring(cfg.KeyringSource)
	if err != nil {
		return fmt.Errorf("load keyring: %w", err)
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	dialer := net.Dialer{Timeout: cfg.DialTimeout}
	addr := fmt.Sprintf("%s:%d", cfg.ValidatorAddress, cfg.ValidatorPort)
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial validator %s: %w", addr, err)
	}

	session := signer.New(conn, kr, log, signer.WithDebug(cfg.Debug), signer.WithMetrics(m))
	return session.Run(ctx)
}

func loadKeyring(source string) (*keyring.Memory, error) {
	if source == config.KeyringMemory {
		kr, pub, err := keyring.NewMemoryWithKey()
		if err != nil {
			return nil, err
		}
		fmt.Printf("generated ephemeral public key: %x\n", pub)
		return kr, nil
	}
	return keyring.LoadMemory(source)
}
