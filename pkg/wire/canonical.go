// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CanonicalVoteJSON renders v as the deterministic JSON object a validator
// actually signs: keys in a fixed order, no extra whitespace, upper-hex
// hashes, and the vote type rendered as a single string character rather
// than a number.
func CanonicalVoteJSON(chainID string, v Vote) string {
	var b strings.Builder
	b.WriteByte('{')
	writeJSONField(&b, "@chain_id", chainID, true)
	writeJSONRaw(&b, "@type", `"vote"`, true)
	writeJSONRaw(&b, "block_id", blockIDJSON(v.BlockID), true)
	writeJSONRaw(&b, "height", fmt.Sprintf("%d", v.Height), true)
	writeJSONRaw(&b, "round", fmt.Sprintf("%d", v.Round), true)
	writeJSONField(&b, "timestamp", formatCanonicalTime(v.Timestamp), true)
	writeJSONField(&b, "type", voteTypeChar(v.Type), false)
	b.WriteByte('}')
	return b.String()
}

// CanonicalProposalJSON is the Proposal analogue of CanonicalVoteJSON.
func CanonicalProposalJSON(chainID string, p Proposal) string {
	var b strings.Builder
	b.WriteByte('{')
	writeJSONField(&b, "@chain_id", chainID, true)
	writeJSONRaw(&b, "@type", `"proposal"`, true)
	writeJSONRaw(&b, "block_id", blockIDJSON(p.BlockID), true)
	writeJSONRaw(&b, "height", fmt.Sprintf("%d", p.Height), true)
	writeJSONRaw(&b, "pol_round", fmt.Sprintf("%d", p.POLRound), true)
	writeJSONRaw(&b, "round", fmt.Sprintf("%d", p.Round), true)
	writeJSONField(&b, "timestamp", formatCanonicalTime(p.Timestamp), false)
	b.WriteByte('}')
	return b.String()
}

// CanonicalHeartbeatJSON is the Heartbeat analogue of CanonicalVoteJSON.
func CanonicalHeartbeatJSON(chainID string, h Heartbeat) string {
	var b strings.Builder
	b.WriteByte('{')
	writeJSONField(&b, "@chain_id", chainID, true)
	writeJSONRaw(&b, "@type", `"heartbeat"`, true)
	writeJSONRaw(&b, "height", fmt.Sprintf("%d", h.Height), true)
	writeJSONRaw(&b, "round", fmt.Sprintf("%d", h.Round), true)
	writeJSONRaw(&b, "sequence", fmt.Sprintf("%d", h.Sequence), true)
	writeJSONRaw(&b, "validator_index", fmt.Sprintf("%d", h.ValidatorIndex), false)
	b.WriteByte('}')
	return b.String()
}

func blockIDJSON(id BlockID) string {
	var b strings.Builder
	b.WriteByte('{')
	writeJSONField(&b, "hash", strings.ToUpper(hex.EncodeToString(id.Hash)), true)
	writeJSONRaw(&b, "parts", partsSetHeaderJSON(id.PartsHeader), false)
	b.WriteByte('}')
	return b.String()
}

func partsSetHeaderJSON(h PartsSetHeader) string {
	var b strings.Builder
	b.WriteByte('{')
	writeJSONField(&b, "hash", strings.ToUpper(hex.EncodeToString(h.Hash)), true)
	writeJSONRaw(&b, "total", fmt.Sprintf("%d", h.Total), false)
	b.WriteByte('}')
	return b.String()
}

// writeJSONField appends `"key":"value"` (value JSON-escaped and quoted),
// followed by a trailing comma if more is more.
func writeJSONField(b *strings.Builder, key, value string, more bool) {
	writeJSONRaw(b, key, string(mustMarshalString(value)), more)
}

// writeJSONRaw appends `"key":rawValue`, followed by a trailing comma if
// more is more. rawValue is assumed to already be valid JSON.
func writeJSONRaw(b *strings.Builder, key, rawValue string, more bool) {
	b.Write(mustMarshalString(key))
	b.WriteByte(':')
	b.WriteString(rawValue)
	if more {
		b.WriteByte(',')
	}
}

func mustMarshalString(s string) []byte {
	out, err := json.Marshal(s)
	if err != nil {
		// json.Marshal on a string only fails for invalid UTF-8, which
		// cannot occur for the hex/decimal/RFC3339 strings this package
		// produces.
		panic(err)
	}
	return out
}

// voteTypeChar renders vt as the single character the canonical JSON form
// uses in place of its numeric byte value.
func voteTypeChar(vt VoteType) string {
	return string(rune(vt))
}

// formatCanonicalTime renders t as RFC 3339 with nanosecond precision and a
// literal "Z" zone designator.
func formatCanonicalTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z")
}
