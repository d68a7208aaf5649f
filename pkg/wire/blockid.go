// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "bytes"

// encodePartsSetHeader writes h's fields (total, hash), omitting hash when
// empty but always writing total, even when it is zero. The parts header
// struct itself is always present inside a BlockID.
func encodePartsSetHeader(out *bytes.Buffer, h PartsSetHeader) {
	EncodeFieldTag(out, 1, Typ3Varint)
	EncodeVarint(out, h.Total)

	if len(h.Hash) > 0 {
		EncodeFieldTag(out, 2, Typ3ByteLength)
		EncodeBytes(out, h.Hash)
	}
}

func decodePartsSetHeader(r *bytes.Reader) (PartsSetHeader, error) {
	var h PartsSetHeader

	if err := ExpectFieldTag(r, 1, Typ3Varint); err != nil {
		return h, err
	}
	total, err := DecodeVarint(r)
	if err != nil {
		return h, err
	}
	h.Total = total

	if b, ok := PeekByte(r); ok && b == FieldTag(2, Typ3ByteLength) {
		if _, err := r.ReadByte(); err != nil {
			return h, ErrTruncated
		}
		hash, err := DecodeBytes(r)
		if err != nil {
			return h, err
		}
		h.Hash = hash
	}

	return h, nil
}

// encodeBlockID writes id as a nested struct under field number num,
// omitting the hash field when empty, then closes both the parts-header
// struct and the BlockID struct with a StructTerm each.
func encodeBlockID(out *bytes.Buffer, num uint32, id BlockID) {
	EncodeFieldTag(out, num, Typ3Struct)

	if len(id.Hash) > 0 {
		EncodeFieldTag(out, 1, Typ3ByteLength)
		EncodeBytes(out, id.Hash)
	}

	EncodeFieldTag(out, 2, Typ3Struct)
	encodePartsSetHeader(out, id.PartsHeader)
	EmitStructTerm(out) // closes parts header

	EmitStructTerm(out) // closes BlockID
}

func decodeBlockID(r *bytes.Reader, num uint32) (BlockID, error) {
	var id BlockID

	if err := ExpectFieldTag(r, num, Typ3Struct); err != nil {
		return id, err
	}

	if b, ok := PeekByte(r); ok && b == FieldTag(1, Typ3ByteLength) {
		if _, err := r.ReadByte(); err != nil {
			return id, ErrTruncated
		}
		hash, err := DecodeBytes(r)
		if err != nil {
			return id, err
		}
		id.Hash = hash
	}

	if err := ExpectFieldTag(r, 2, Typ3Struct); err != nil {
		return id, err
	}
	header, err := decodePartsSetHeader(r)
	if err != nil {
		return id, err
	}
	id.PartsHeader = header

	if err := ExpectStructTerm(r); err != nil { // closes parts header
		return id, err
	}
	if err := ExpectStructTerm(r); err != nil { // closes BlockID
		return id, err
	}

	return id, nil
}
