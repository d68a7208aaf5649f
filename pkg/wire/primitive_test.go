// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 32, ^uint64(0)} {
		var buf bytes.Buffer
		EncodeUvarint(&buf, v)
		got, err := DecodeUvarint(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	for _, v := range []int64{0, -1, 1, -12345, 12345, 1 << 40, -(1 << 40)} {
		var buf bytes.Buffer
		EncodeVarint(&buf, v)
		got, err := DecodeVarint(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecodeUvarint_OverflowsOnTenthContinuation(t *testing.T) {
	overflow := bytes.Repeat([]byte{0x80}, 10)
	_, err := DecodeUvarint(bytes.NewReader(overflow))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestEncodeInt64_BigEndian(t *testing.T) {
	var buf bytes.Buffer
	EncodeInt64(&buf, 1514170801)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x5a, 0x40, 0xd5, 0x71}, buf.Bytes())

	got, err := DecodeInt64(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(1514170801), got)
}

func TestFieldTagRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	EncodeFieldTag(&buf, 3, Typ3ByteLength)
	err := ExpectFieldTag(bytes.NewReader(buf.Bytes()), 3, Typ3ByteLength)
	require.NoError(t, err)
}

func TestExpectFieldTag_Mismatch(t *testing.T) {
	var buf bytes.Buffer
	EncodeFieldTag(&buf, 3, Typ3ByteLength)
	err := ExpectFieldTag(bytes.NewReader(buf.Bytes()), 4, Typ3ByteLength)
	var unexpected *UnexpectedFieldError
	require.ErrorAs(t, err, &unexpected)
}

func TestExpectStructTerm_InvalidTyp3(t *testing.T) {
	err := ExpectStructTerm(bytes.NewReader([]byte{0x0e}))
	require.ErrorIs(t, err, ErrInvalidTyp3)
}

func TestInstantRoundTrip(t *testing.T) {
	want := time.Date(2017, 12, 25, 3, 0, 1, 234000000, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, EncodeInstant(&buf, want))

	got, err := DecodeInstant(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestBytesRoundTrip(t *testing.T) {
	for _, b := range [][]byte{nil, {}, []byte("hello"), bytes.Repeat([]byte{0xff}, 300)} {
		var buf bytes.Buffer
		EncodeBytes(&buf, b)
		got, err := DecodeBytes(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, len(b), len(got))
	}
}

func TestUint8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 2, 255} {
		var buf bytes.Buffer
		EncodeUint8(&buf, v)
		got, err := DecodeUint8(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
