// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "bytes"

// EncodeVote serializes v as a length-prefixed tendermint/socketpv/SignVoteMsg
// frame. Fields are emitted in ascending order; ValidatorAddress is omitted
// if empty and Signature is omitted if nil.
func EncodeVote(v Vote) []byte {
	return encodeFrame(NameSignVoteMsg, func(out *bytes.Buffer) {
		if v.ValidatorAddress != ([20]byte{}) {
			EncodeFieldTag(out, 1, Typ3ByteLength)
			EncodeBytes(out, v.ValidatorAddress[:])
		}

		EncodeFieldTag(out, 2, Typ3Varint)
		EncodeVarint(out, v.ValidatorIndex)

		EncodeFieldTag(out, 3, Typ38Byte)
		EncodeInt64(out, v.Height)

		EncodeFieldTag(out, 4, Typ3Varint)
		EncodeVarint(out, v.Round)

		EncodeFieldTag(out, 5, Typ3Struct)
		_ = EncodeInstant(out, v.Timestamp)

		EncodeFieldTag(out, 6, Typ3Varint)
		EncodeUint8(out, byte(v.Type))

		encodeBlockID(out, 7, v.BlockID)

		if v.Signature != nil {
			EncodeFieldTag(out, 8, Typ3Interface)
			EncodeBytes(out, v.Signature[:])
		}
	})
}

// DecodeVote parses a tendermint/socketpv/SignVoteMsg frame produced by
// EncodeVote.
func DecodeVote(data []byte) (Vote, error) {
	var v Vote

	err := decodeFrame(NameSignVoteMsg, data, func(r *bytes.Reader) error {
		if b, ok := PeekByte(r); ok && b == FieldTag(1, Typ3ByteLength) {
			if _, err := r.ReadByte(); err != nil {
				return ErrTruncated
			}
			addr, err := DecodeBytes(r)
			if err != nil {
				return err
			}
			copy(v.ValidatorAddress[:], addr)
		}

		if err := ExpectFieldTag(r, 2, Typ3Varint); err != nil {
			return err
		}
		idx, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		v.ValidatorIndex = idx

		if err := ExpectFieldTag(r, 3, Typ38Byte); err != nil {
			return err
		}
		height, err := DecodeInt64(r)
		if err != nil {
			return err
		}
		v.Height = height

		if err := ExpectFieldTag(r, 4, Typ3Varint); err != nil {
			return err
		}
		round, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		v.Round = round

		if err := ExpectFieldTag(r, 5, Typ3Struct); err != nil {
			return err
		}
		ts, err := DecodeInstant(r)
		if err != nil {
			return err
		}
		v.Timestamp = ts

		if err := ExpectFieldTag(r, 6, Typ3Varint); err != nil {
			return err
		}
		vt, err := DecodeUint8(r)
		if err != nil {
			return err
		}
		if !VoteType(vt).valid() {
			return ErrInvalidVoteType
		}
		v.Type = VoteType(vt)

		blockID, err := decodeBlockID(r, 7)
		if err != nil {
			return err
		}
		v.BlockID = blockID

		if b, ok := PeekByte(r); ok && b == FieldTag(8, Typ3Interface) {
			if _, err := r.ReadByte(); err != nil {
				return ErrTruncated
			}
			sig, err := DecodeBytes(r)
			if err != nil {
				return err
			}
			var arr [64]byte
			copy(arr[:], sig)
			v.Signature = &arr
		}

		return nil
	})

	return v, err
}
