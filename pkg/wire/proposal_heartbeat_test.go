// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testProposal() Proposal {
	return Proposal{
		Height:   12345,
		Round:    2,
		POLRound: -1,
		BlockID: BlockID{
			Hash: []byte("hash"),
			PartsHeader: PartsSetHeader{
				Total: 1000000,
				Hash:  []byte("parts_hash"),
			},
		},
		Timestamp: time.Date(2017, 12, 25, 3, 0, 1, 234000000, time.UTC),
	}
}

func TestProposalRoundTrip(t *testing.T) {
	cases := map[string]Proposal{
		"no signature": testProposal(),
		"with signature": func() Proposal {
			p := testProposal()
			var sig [64]byte
			for i := range sig {
				sig[i] = byte(i)
			}
			p.Signature = &sig
			return p
		}(),
		"nil block id": func() Proposal {
			p := testProposal()
			p.BlockID = BlockID{}
			return p
		}(),
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			enc := EncodeProposal(p)
			got, err := DecodeProposal(enc)
			require.NoError(t, err)
			require.Equal(t, p, got)
		})
	}
}

func TestCanonicalProposalJSON_Deterministic(t *testing.T) {
	p := testProposal()
	require.Equal(t, CanonicalProposalJSON("test-chain", p), CanonicalProposalJSON("test-chain", p))
	require.Contains(t, CanonicalProposalJSON("test-chain", p), `"@type":"proposal"`)
}

func testHeartbeat() Heartbeat {
	return Heartbeat{
		ValidatorAddress: [20]byte{0x01, 0x02, 0x03},
		ValidatorIndex:   7,
		Height:           12345,
		Round:            2,
		Sequence:         9,
	}
}

func TestHeartbeatRoundTrip(t *testing.T) {
	cases := map[string]Heartbeat{
		"no signature": testHeartbeat(),
		"with signature": func() Heartbeat {
			h := testHeartbeat()
			var sig [64]byte
			for i := range sig {
				sig[i] = byte(i)
			}
			h.Signature = &sig
			return h
		}(),
		"no validator address": func() Heartbeat {
			h := testHeartbeat()
			h.ValidatorAddress = [20]byte{}
			return h
		}(),
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			enc := EncodeHeartbeat(h)
			got, err := DecodeHeartbeat(enc)
			require.NoError(t, err)
			require.Equal(t, h, got)
		})
	}
}

func TestCanonicalHeartbeatJSON_Deterministic(t *testing.T) {
	h := testHeartbeat()
	require.Equal(t, CanonicalHeartbeatJSON("test-chain", h), CanonicalHeartbeatJSON("test-chain", h))
	require.Contains(t, CanonicalHeartbeatJSON("test-chain", h), `"@type":"heartbeat"`)
}
