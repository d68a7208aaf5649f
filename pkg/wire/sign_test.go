// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignRequestRoundTrip(t *testing.T) {
	var req SignRequest
	for i := range req.PublicKey {
		req.PublicKey[i] = byte(i)
	}
	req.Msg = []byte("canonical bytes to sign")

	enc := EncodeSignRequest(req)
	got, err := DecodeSignRequest(enc)
	require.NoError(t, err)
	require.Equal(t, req, got)
}

func TestSignResponseRoundTrip(t *testing.T) {
	var resp SignResponse
	for i := range resp.Sig {
		resp.Sig[i] = byte(i)
	}

	enc := EncodeSignResponse(resp)
	got, err := DecodeSignResponse(enc)
	require.NoError(t, err)
	require.Equal(t, resp, got)
}

func TestIsPoisonPill(t *testing.T) {
	require.True(t, IsPoisonPill(EncodePoisonPill()))

	var req SignRequest
	require.False(t, IsPoisonPill(EncodeSignRequest(req)))
}

func TestLengthPrefixMatchesRemainder_SignRequest(t *testing.T) {
	var req SignRequest
	req.Msg = []byte("x")
	enc := EncodeSignRequest(req)

	r := bytes.NewReader(enc)
	n, err := DecodeUvarint(r)
	require.NoError(t, err)
	require.Equal(t, int(n), r.Len())
}
