// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config builds the signer's runtime configuration: which
// validator to dial, where keys come from, and whether debug-only
// protocol features (PoisonPill) are accepted.
package config

import (
	"fmt"
	"time"
)

// KeyringMemory is the sentinel KeyringSource value selecting an
// ephemeral, randomly-keyed in-memory keyring instead of one loaded from
// disk. Useful for local testing and the reference CLI's demo mode.
const KeyringMemory = ":memory:"

// Config holds everything the signer needs to start a session.
type Config struct {
	// ValidatorAddress is the hostname or IP of the validator to dial.
	ValidatorAddress string
	// ValidatorPort is the validator's signer-socket TCP port.
	ValidatorPort int
	// KeyringSource is a directory of key files for internal/keyring to
	// load, or KeyringMemory for ephemeral test keys.
	KeyringSource string
	// Debug gates acceptance of the PoisonPill sentinel (spec.md §3/§5):
	// production signers must reject it.
	Debug bool
	// DialTimeout bounds how long Builder.Build's caller should wait to
	// connect; it is not consulted by Builder itself.
	DialTimeout time.Duration
}

// Builder provides a fluent interface for constructing a Config,
// accumulating the first validation error encountered and refusing
// further mutation once one occurs.
type Builder struct {
	config *Config
	err    error
}

// NewBuilder returns a Builder seeded with conservative defaults: no
// validator address (must be set), debug mode off, a 5s dial timeout.
func NewBuilder() *Builder {
	return &Builder{
		config: &Config{
			ValidatorPort: 26659,
			KeyringSource: KeyringMemory,
			DialTimeout:   5 * time.Second,
		},
	}
}

// WithValidator sets the validator address and port.
func (b *Builder) WithValidator(address string, port int) *Builder {
	if b.err != nil {
		return b
	}
	if address == "" {
		b.err = fmt.Errorf("validator address must not be empty")
		return b
	}
	if port < 1 || port > 65535 {
		b.err = fmt.Errorf("validator port must be in [1, 65535], got %d", port)
		return b
	}
	b.config.ValidatorAddress = address
	b.config.ValidatorPort = port
	return b
}

// WithKeyringSource sets where keys are loaded from.
func (b *Builder) WithKeyringSource(source string) *Builder {
	if b.err != nil {
		return b
	}
	if source == "" {
		b.err = fmt.Errorf("keyring source must not be empty")
		return b
	}
	b.config.KeyringSource = source
	return b
}

// WithDebug toggles acceptance of the PoisonPill sentinel.
func (b *Builder) WithDebug(debug bool) *Builder {
	if b.err != nil {
		return b
	}
	b.config.Debug = debug
	return b
}

// WithDialTimeout sets the dial timeout.
func (b *Builder) WithDialTimeout(d time.Duration) *Builder {
	if b.err != nil {
		return b
	}
	if d <= 0 {
		b.err = fmt.Errorf("dial timeout must be positive, got %s", d)
		return b
	}
	b.config.DialTimeout = d
	return b
}

// Build returns the final Config, or the first error any With* call
// accumulated.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.config.ValidatorAddress == "" {
		return nil, fmt.Errorf("validator address is required")
	}
	clone := *b.config
	return &clone, nil
}
