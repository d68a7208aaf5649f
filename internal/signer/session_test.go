// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package signer

import (
	"context"
	"crypto/ed25519"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/consensus/internal/keyring"
	kmslog "github.com/luxfi/consensus/log"
	"github.com/luxfi/consensus/pkg/wire"
)

func TestSession_HappyPath(t *testing.T) {
	validatorConn, signerConn := net.Pipe()
	defer validatorConn.Close()

	kr, pub, err := keyring.NewMemoryWithKey()
	require.NoError(t, err)

	session := New(signerConn, kr, kmslog.NewNoOpLogger())

	done := make(chan error, 1)
	go func() { done <- session.Run(context.Background()) }()

	msg := make([]byte, 32)
	for i := range msg {
		msg[i] = byte(i)
	}
	var pk [32]byte
	copy(pk[:], pub)

	req := wire.EncodeSignRequest(wire.SignRequest{PublicKey: pk, Msg: msg})
	_, err = validatorConn.Write(req)
	require.NoError(t, err)

	respBuf := make([]byte, 256)
	validatorConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := validatorConn.Read(respBuf)
	require.NoError(t, err)

	resp, err := wire.DecodeSignResponse(respBuf[:n])
	require.NoError(t, err)
	require.True(t, ed25519.Verify(pub, msg, resp.Sig[:]))

	validatorConn.Close()
	require.NoError(t, <-done)
}

func TestSession_PoisonPillRequiresDebug(t *testing.T) {
	validatorConn, signerConn := net.Pipe()
	defer validatorConn.Close()

	kr := keyring.NewMemory()
	session := New(signerConn, kr, kmslog.NewNoOpLogger())

	done := make(chan error, 1)
	go func() { done <- session.Run(context.Background()) }()

	_, err := validatorConn.Write(wire.EncodePoisonPill())
	require.NoError(t, err)

	// Without debug mode, the session must reject the pill and terminate
	// with an error rather than silently closing.
	err = <-done
	require.Error(t, err)
}

func TestSession_PoisonPillAcceptedInDebug(t *testing.T) {
	validatorConn, signerConn := net.Pipe()
	defer validatorConn.Close()

	kr := keyring.NewMemory()
	session := New(signerConn, kr, kmslog.NewNoOpLogger(), WithDebug(true))

	done := make(chan error, 1)
	go func() { done <- session.Run(context.Background()) }()

	_, err := validatorConn.Write(wire.EncodePoisonPill())
	require.NoError(t, err)

	require.NoError(t, <-done)
}

func TestSession_UnknownKeyIsFatal(t *testing.T) {
	validatorConn, signerConn := net.Pipe()
	defer validatorConn.Close()

	kr := keyring.NewMemory()
	session := New(signerConn, kr, kmslog.NewNoOpLogger())

	done := make(chan error, 1)
	go func() { done <- session.Run(context.Background()) }()

	var pk [32]byte
	req := wire.EncodeSignRequest(wire.SignRequest{PublicKey: pk, Msg: []byte("msg")})
	_, err := validatorConn.Write(req)
	require.NoError(t, err)

	err = <-done
	require.Error(t, err)
}
