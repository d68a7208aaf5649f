// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"bytes"
	"io"
)

// encodeFrame wraps a message body in the outer framing every registered
// message shares: uvarint(len) || disfix || field1(Struct) || body ||
// StructTerm (closes field 1) || StructTerm (closes the message).
func encodeFrame(name string, encodeBody func(*bytes.Buffer)) []byte {
	var body bytes.Buffer

	d := DisfixFor(name, Typ3Struct)
	body.Write(d[:])

	EncodeFieldTag(&body, 1, Typ3Struct)
	encodeBody(&body)
	EmitStructTerm(&body) // closes the outer payload struct (field 1)
	EmitStructTerm(&body) // closes the top-level message

	var out bytes.Buffer
	EncodeUvarint(&out, uint64(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// decodeFrame mirrors encodeFrame: it reads the length prefix, verifies the
// disfix, enters the field-1 payload struct, hands the reader to decodeBody,
// then closes both StructTerm pairs.
func decodeFrame(name string, data []byte, decodeBody func(*bytes.Reader) error) error {
	r := bytes.NewReader(data)

	if _, err := DecodeUvarint(r); err != nil {
		return err
	}

	want := DisfixFor(name, Typ3Struct)
	var got [4]byte
	if _, err := readFull(r, got[:]); err != nil {
		return err
	}
	if got != [4]byte(want) {
		return &UnexpectedFieldError{Got: got[3], Want: want[3]}
	}

	if err := ExpectFieldTag(r, 1, Typ3Struct); err != nil {
		return err
	}

	if err := decodeBody(r); err != nil {
		return err
	}

	if err := ExpectStructTerm(r); err != nil { // closes field 1
		return err
	}
	return ExpectStructTerm(r) // closes the message
}

// maxFrameLen bounds how much a single ReadFrame call will allocate for a
// declared body length, so a corrupt or hostile length prefix cannot make
// the signer attempt an enormous allocation before the length is even
// validated against real data.
const maxFrameLen = 16 << 20 // 16 MiB

// byteReader is the minimal interface ReadFrame needs: a stream reader that
// can also hand back one byte at a time for the uvarint length prefix.
// *bufio.Reader satisfies it.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// ReadFrame reads one length-prefixed frame from r: a uvarint length
// followed by that many body bytes. The returned slice includes the length
// prefix, so it can be passed directly to a message's Decode function.
func ReadFrame(r byteReader) ([]byte, error) {
	var prefix bytes.Buffer
	var length uint64
	var shift uint
	for i := 0; i < 10; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, ErrTruncated
		}
		prefix.WriteByte(b)
		length |= uint64(b&0x7f) << shift
		if b < 0x80 {
			break
		}
		shift += 7
		if i == 9 {
			return nil, ErrOverflow
		}
	}
	if length > maxFrameLen {
		return nil, ErrOverflow
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, ErrTruncated
	}

	frame := append(prefix.Bytes(), body...)
	return frame, nil
}
