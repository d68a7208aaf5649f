// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package wire implements the canonical binary codec used between a
consensus validator and its remote signer.

# Wire Format

Every message on the stream is a length-prefixed, disfixed struct:

	frame := uvarint(len(body)) body
	body  := disfix(4 bytes) payload_struct StructTerm

Fields inside a struct are introduced by a single tag byte packing a
1-based field number and a 4-bit Typ3 shape:

	tag := (field_number << 3) | typ3

Fields are emitted in strictly ascending field-number order; an
optional field whose value is empty (empty byte string, zero validator
address, nil signature) is omitted entirely rather than written with an
explicit "absent" marker. Nested structs (BlockID, its parts header, the
timestamp) are always written, even when zero-valued. Readers
resynchronize by peeking the next tag byte
against the set of fields that could legally follow.

This is the same discipline go-amino used for pre-protobuf Tendermint
wire messages; tendermint/socketpv/SignVoteMsg and its siblings are
the concrete disfixed names this package encodes.

# Disfix

disfix is four bytes derived from a message's registered name. The low
nibble of the fourth byte is OR'd with the Typ3 of the value it
prefixes (always Typ3Struct at the top level). Two independent
implementations computing disfix from the same name string must agree
byte-for-byte; see ComputeDisfix.

# Canonical JSON

The bytes a validator actually signs are not the binary wire form but
a deterministic JSON rendering produced by CanonicalVoteJSON,
CanonicalProposalJSON, and CanonicalHeartbeatJSON. The signer treats
that JSON as an opaque byte string handed to it by the caller; it never
reconstructs it from a decoded message itself.
*/
package wire
