// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keyring is the signer's external keyring collaborator: it
// holds the validator's private keys and produces detached signatures
// over already-canonicalized bytes. The session loop never inspects a
// key directly; it only calls Sign.
package keyring

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrUnknownPublicKey is returned when no signer is registered for the
// requested public key.
var ErrUnknownPublicKey = errors.New("keyring: unknown public key")

// Keyring produces a detached signature over msg using the private key
// registered for pk. Implementations must be read-only and safe for
// concurrent use across sessions: the keyring is the one resource every
// session shares.
type Keyring interface {
	Sign(pk [32]byte, msg []byte) ([64]byte, error)
}

// Memory is an in-memory ed25519 Keyring. Reads (Sign) are safe for
// concurrent use by multiple sessions; Add is meant for startup-time
// population only.
type Memory struct {
	mu   sync.RWMutex
	keys map[[32]byte]ed25519.PrivateKey
}

// NewMemory returns an empty in-memory keyring.
func NewMemory() *Memory {
	return &Memory{keys: make(map[[32]byte]ed25519.PrivateKey)}
}

// NewMemoryWithKey returns an in-memory keyring pre-populated with a
// single freshly generated ed25519 key, for tests and the reference
// CLI's ":memory:" keyring source.
func NewMemoryWithKey() (*Memory, ed25519.PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	m := NewMemory()
	var pk [32]byte
	copy(pk[:], pub)
	m.keys[pk] = priv
	return m, pub, nil
}

// LoadMemory populates a Memory keyring from every *.key file under dir.
// Each file must contain a raw 64-byte ed25519 private key (seed||public).
func LoadMemory(dir string) (*Memory, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read keyring directory %s: %w", dir, err)
	}

	m := NewMemory()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".key" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read key file %s: %w", entry.Name(), err)
		}
		if len(raw) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("key file %s: want %d bytes, got %d", entry.Name(), ed25519.PrivateKeySize, len(raw))
		}
		priv := ed25519.PrivateKey(raw)
		var pk [32]byte
		copy(pk[:], priv.Public().(ed25519.PublicKey))
		m.keys[pk] = priv
	}
	return m, nil
}

// Add registers priv under its own public key. Not safe to call
// concurrently with Sign.
func (m *Memory) Add(priv ed25519.PrivateKey) {
	var pk [32]byte
	copy(pk[:], priv.Public().(ed25519.PublicKey))
	m.keys[pk] = priv
}

// Sign implements Keyring.
func (m *Memory) Sign(pk [32]byte, msg []byte) ([64]byte, error) {
	m.mu.RLock()
	priv, ok := m.keys[pk]
	m.mu.RUnlock()

	var sig [64]byte
	if !ok {
		return sig, ErrUnknownPublicKey
	}
	copy(sig[:], ed25519.Sign(priv, msg))
	return sig, nil
}
