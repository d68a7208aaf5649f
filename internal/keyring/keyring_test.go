// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keyring

import (
	"crypto/ed25519"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_SignAndVerify(t *testing.T) {
	m, pub, err := NewMemoryWithKey()
	require.NoError(t, err)

	var pk [32]byte
	copy(pk[:], pub)

	msg := []byte("canonical vote bytes")
	sig, err := m.Sign(pk, msg)
	require.NoError(t, err)
	require.True(t, ed25519.Verify(pub, msg, sig[:]))
}

func TestMemory_UnknownKey(t *testing.T) {
	m := NewMemory()
	var pk [32]byte
	_, err := m.Sign(pk, []byte("msg"))
	require.ErrorIs(t, err, ErrUnknownPublicKey)
}

func TestMemory_AddThenSign(t *testing.T) {
	m := NewMemory()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	m.Add(priv)

	var pk [32]byte
	copy(pk[:], pub)

	sig, err := m.Sign(pk, []byte("hello"))
	require.NoError(t, err)
	require.True(t, ed25519.Verify(pub, []byte("hello"), sig[:]))
}

func TestLoadMemory_RejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/bad.key", []byte("too short"), 0o600))

	_, err := LoadMemory(dir)
	require.Error(t, err)
}
