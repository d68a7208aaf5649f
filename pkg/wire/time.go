// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"bytes"
	"time"
)

// EncodeInstant writes t as an inline two-field struct: seconds since the
// Unix epoch (field 1, 8Byte, big-endian) and additional nanoseconds in
// [0, 1e9) (field 2, 4Byte, big-endian), terminated by one StructTerm. The
// tag that introduces the struct itself belongs to the enclosing field, not
// to this function.
//
// Both fields use fixed-width shapes rather than varints; the wire vectors
// this codec interoperates with fix seconds at 8 raw bytes and nanos at 4,
// not the zig-zag varints an earlier prose description of this format
// suggested.
func EncodeInstant(out *bytes.Buffer, t time.Time) error {
	nanos := t.Nanosecond()
	if nanos < 0 || nanos >= 1e9 {
		return ErrPrecision
	}

	EncodeFieldTag(out, 1, Typ38Byte)
	EncodeInt64(out, t.Unix())

	EncodeFieldTag(out, 2, Typ34Byte)
	EncodeFixed32(out, uint32(nanos))

	EmitStructTerm(out)
	return nil
}

// DecodeInstant reads the struct EncodeInstant produces, returning a UTC
// time.Time.
func DecodeInstant(r *bytes.Reader) (time.Time, error) {
	if err := ExpectFieldTag(r, 1, Typ38Byte); err != nil {
		return time.Time{}, err
	}
	seconds, err := DecodeInt64(r)
	if err != nil {
		return time.Time{}, err
	}

	if err := ExpectFieldTag(r, 2, Typ34Byte); err != nil {
		return time.Time{}, err
	}
	nanos, err := DecodeFixed32(r)
	if err != nil {
		return time.Time{}, err
	}

	if err := ExpectStructTerm(r); err != nil {
		return time.Time{}, err
	}

	return time.Unix(seconds, int64(nanos)).UTC(), nil
}
