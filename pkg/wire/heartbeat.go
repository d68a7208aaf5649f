// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "bytes"

// EncodeHeartbeat serializes h as a length-prefixed
// tendermint/socketpv/SignHeartbeatMsg frame. ValidatorAddress is omitted
// if empty; Signature is omitted if nil.
func EncodeHeartbeat(h Heartbeat) []byte {
	return encodeFrame(NameSignHeartbeatMsg, func(out *bytes.Buffer) {
		if h.ValidatorAddress != ([20]byte{}) {
			EncodeFieldTag(out, 1, Typ3ByteLength)
			EncodeBytes(out, h.ValidatorAddress[:])
		}

		EncodeFieldTag(out, 2, Typ3Varint)
		EncodeVarint(out, h.ValidatorIndex)

		EncodeFieldTag(out, 3, Typ3Varint)
		EncodeVarint(out, h.Height)

		EncodeFieldTag(out, 4, Typ3Varint)
		EncodeVarint(out, h.Round)

		EncodeFieldTag(out, 5, Typ3Varint)
		EncodeVarint(out, h.Sequence)

		if h.Signature != nil {
			EncodeFieldTag(out, 6, Typ3Interface)
			EncodeBytes(out, h.Signature[:])
		}
	})
}

// DecodeHeartbeat parses a tendermint/socketpv/SignHeartbeatMsg frame
// produced by EncodeHeartbeat.
func DecodeHeartbeat(data []byte) (Heartbeat, error) {
	var h Heartbeat

	err := decodeFrame(NameSignHeartbeatMsg, data, func(r *bytes.Reader) error {
		if b, ok := PeekByte(r); ok && b == FieldTag(1, Typ3ByteLength) {
			if _, err := r.ReadByte(); err != nil {
				return ErrTruncated
			}
			addr, err := DecodeBytes(r)
			if err != nil {
				return err
			}
			copy(h.ValidatorAddress[:], addr)
		}

		if err := ExpectFieldTag(r, 2, Typ3Varint); err != nil {
			return err
		}
		idx, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		h.ValidatorIndex = idx

		if err := ExpectFieldTag(r, 3, Typ3Varint); err != nil {
			return err
		}
		height, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		h.Height = height

		if err := ExpectFieldTag(r, 4, Typ3Varint); err != nil {
			return err
		}
		round, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		h.Round = round

		if err := ExpectFieldTag(r, 5, Typ3Varint); err != nil {
			return err
		}
		seq, err := DecodeVarint(r)
		if err != nil {
			return err
		}
		h.Sequence = seq

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
			h.Signature = &arr
		}

		return nil
	})

	return h, err
}
