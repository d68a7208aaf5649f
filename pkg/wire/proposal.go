// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "bytes"

// EncodeProposal serializes p as a length-prefixed
// tendermint/socketpv/SignProposalMsg frame. POLRound is always emitted
// (unlike BlockID/Signature, it has no natural "empty" value to omit);
// Signature is omitted if nil.
func EncodeProposal(p Proposal) []byte {
	return encodeFrame(NameSignProposalMsg, func(out *bytes.Buffer) {
		EncodeFieldTag(out, 1, Typ38Byte)
		EncodeInt64(out, p.Height)

		EncodeFieldTag(out, 2, Typ3Varint)
		EncodeVarint(out, p.Round)

		EncodeFieldTag(out, 3, Typ3Varint)
		EncodeVarint(out, p.POLRound)

		encodeBlockID(out, 4, p.BlockID)

		EncodeFieldTag(out, 5, Typ3Struct)
		_ = EncodeInstant(out, p.Timestamp)

		if p.Signature != nil {
			EncodeFieldTag(out, 6, Typ3Interface)
			EncodeBytes(out, p.Signature[:])
		}
	})
}

// DecodeProposal parses a tendermint/socketpv/SignProposalMsg frame
// produced by EncodeProposal.
func DecodeProposal(data []byte) (Proposal, error) {
	var p Proposal

	err := decodeFrame(NameSignProposalMsg, data, func(r *bytes.Reader) error {
		if err := ExpectFieldTag(r, 1, Typ38Byte); err != nil {
			return err
		}
		height, err := DecodeInt64(r)
		if err != nil {
			return err
		}
		p.Height = height

		if err := ExpectFieldTag(r, 2, Typ3Varint); err != nil {
			return err
		}
		round, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		p.Round = round

		if err := ExpectFieldTag(r, 3, Typ3Varint); err != nil {
			return err
		}
		polRound, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		p.POLRound = polRound

		blockID, err := decodeBlockID(r, 4)
		if err != nil {
			return err
		}
		p.BlockID = blockID

		if err := ExpectFieldTag(r, 5, Typ3Struct); err != nil {
			return err
		}
		ts, err := DecodeInstant(r)
		if err != nil {
			return err
		}
		p.Timestamp = ts

		if b, ok := PeekByte(r); ok && b == FieldTag(6, Typ3Interface) {
			if _, err := r.ReadByte(); err != nil {
				return ErrTruncated
			}
			sig, err := DecodeBytes(r)
			if err != nil {
				return err
			}
			var arr [64]byte
			copy(arr[:], sig)
			p.Signature = &arr
		}

		return nil
	})

	return p, err
}
