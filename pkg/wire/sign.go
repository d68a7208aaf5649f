// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import "bytes"

// Registered names for the session's request/response envelopes and the
// generic sign primitive they carry.
const (
	NameSignRequest  = "tendermint/socketpv/SignRequest"
	NameSignResponse = "tendermint/socketpv/SignResponse"
)

// encodeSignRequest/decodeSignRequest implement C3 for the generic
// SignRequest{public_key, msg} entity described in spec.md's data model.
// Unlike Vote/Proposal/Heartbeat, both fields are mandatory: an empty msg
// is a legal (if useless) request, so neither field is ever omitted.
func encodeSignRequest(out *bytes.Buffer, req SignRequest) {
	EncodeFieldTag(out, 1, Typ3ByteLength)
	EncodeBytes(out, req.PublicKey[:])

	EncodeFieldTag(out, 2, Typ3ByteLength)
	EncodeBytes(out, req.Msg)
}

func decodeSignRequest(r *bytes.Reader) (SignRequest, error) {
	var req SignRequest

	if err := ExpectFieldTag(r, 1, Typ3ByteLength); err != nil {
		return req, err
	}
	pk, err := DecodeBytes(r)
	if err != nil {
		return req, err
	}
	copy(req.PublicKey[:], pk)

	if err := ExpectFieldTag(r, 2, Typ3ByteLength); err != nil {
		return req, err
	}
	msg, err := DecodeBytes(r)
	if err != nil {
		return req, err
	}
	req.Msg = msg

	return req, nil
}

// EncodeSignRequest serializes req as a length-prefixed
// tendermint/socketpv/SignRequest frame.
func EncodeSignRequest(req SignRequest) []byte {
	return encodeFrame(NameSignRequest, func(out *bytes.Buffer) {
		encodeSignRequest(out, req)
	})
}

// DecodeSignRequest parses a frame produced by EncodeSignRequest.
func DecodeSignRequest(data []byte) (SignRequest, error) {
	var req SignRequest
	err := decodeFrame(NameSignRequest, data, func(r *bytes.Reader) error {
		var err error
		req, err = decodeSignRequest(r)
		return err
	})
	return req, err
}

// EncodeSignResponse serializes resp as a length-prefixed
// tendermint/socketpv/SignResponse frame.
func EncodeSignResponse(resp SignResponse) []byte {
	return encodeFrame(NameSignResponse, func(out *bytes.Buffer) {
		EncodeFieldTag(out, 1, Typ3ByteLength)
		EncodeBytes(out, resp.Sig[:])
	})
}

// DecodeSignResponse parses a frame produced by EncodeSignResponse.
func DecodeSignResponse(data []byte) (SignResponse, error) {
	var resp SignResponse
	err := decodeFrame(NameSignResponse, data, func(r *bytes.Reader) error {
		if err := ExpectFieldTag(r, 1, Typ3ByteLength); err != nil {
			return err
		}
		sig, err := DecodeBytes(r)
		if err != nil {
			return err
		}
		copy(resp.Sig[:], sig)
		return nil
	})
	return resp, err
}

// EncodePoisonPill serializes the zero-payload PoisonPill sentinel: just
// its disfix with no payload struct and no field-1 wrapper.
func EncodePoisonPill() []byte {
	d := DisfixFor(NamePoisonPillMsg, Typ3Struct)
	var body bytes.Buffer
	body.Write(d[:])
	EmitStructTerm(&body)

	var out bytes.Buffer
	EncodeUvarint(&out, uint64(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// IsPoisonPill reports whether data is a PoisonPill frame, without fully
// decoding it.
func IsPoisonPill(data []byte) bool {
	r := bytes.NewReader(data)
	if _, err := DecodeUvarint(r); err != nil {
		return false
	}
	want := DisfixFor(NamePoisonPillMsg, Typ3Struct)
	var got [4]byte
	if _, err := readFull(r, got[:]); err != nil {
		return false
	}
	return got == [4]byte(want)
}
