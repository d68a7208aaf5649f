// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "time"

// VoteType distinguishes a validator's PreVote from its PreCommit.
type VoteType byte

const (
	VoteTypePreVote   VoteType = 0x01
	VoteTypePreCommit VoteType = 0x02
)

func (vt VoteType) valid() bool {
	return vt == VoteTypePreVote || vt == VoteTypePreCommit
}

// PartsSetHeader describes how a block is split into parts.
//
// Invariant: Total == 0 iff Hash is empty.
type PartsSetHeader struct {
	Total int64
	Hash  []byte
}

func (h PartsSetHeader) isZero() bool {
	return h.Total == 0 && len(h.Hash) == 0
}

// BlockID is a compact, content-addressed reference to a block. A BlockID
// with an empty Hash and a zero-valued PartsHeader is "nil" — no block is
// referenced.
type BlockID struct {
	Hash        []byte
	PartsHeader PartsSetHeader
}

// IsNil reports whether id references no block.
func (id BlockID) IsNil() bool {
	return len(id.Hash) == 0 && id.PartsHeader.isZero()
}

// Vote is a validator's signed opinion on a block at a given height/round.
type Vote struct {
	ValidatorAddress [20]byte
	ValidatorIndex   int64
	Height           int64
	Round            int64
	Timestamp        time.Time
	Type             VoteType
	BlockID          BlockID
	// Signature is present iff the vote has already been signed.
	Signature *[64]byte
}

// Proposal is a validator's proposed block for a round, plus the point-of-
// lock round (POLRound) it is rebroadcasting if applicable. It carries no
// separate point-of-lock block ID; BlockID is the proposed block.
type Proposal struct {
	Height        int64
	Round         int64
	POLRound      int64
	BlockID       BlockID
	Timestamp     time.Time
	Signature     *[64]byte
}

// Heartbeat is a liveness probe a validator signs periodically.
type Heartbeat struct {
	ValidatorAddress [20]byte
	ValidatorIndex   int64
	Height           int64
	Round            int64
	Sequence         int64
	Signature        *[64]byte
}

// SignRequest asks the signer to produce a detached signature over an
// already-canonicalized message. The signer never re-canonicalizes Msg; it
// signs exactly the bytes it is given.
type SignRequest struct {
	PublicKey [32]byte
	Msg       []byte
}

// SignResponse carries the detached signature the signer produced.
type SignResponse struct {
	Sig [64]byte
}

// PoisonPill is a zero-payload sentinel, accepted only in debug builds,
// that commands the session to terminate without writing a response.
type PoisonPill struct{}
