// go-ndefcodec
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-ndefcodec.
//
// go-ndefcodec is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-ndefcodec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-ndefcodec; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package ndefcodec

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

// recordGen generates records that satisfy every encoding rule.
func recordGen() *rapid.Generator[Record] {
	return rapid.Custom(func(t *rapid.T) Record {
		tnf := rapid.SampledFrom([]TypeNameFormat{
			TNFEmpty,
			TNFWellKnown,
			TNFMedia,
			TNFAbsoluteURI,
			TNFExternal,
			TNFUnknown,
			TNFUnchanged,
		}).Draw(t, "tnf")

		if tnf == TNFEmpty {
			return NewEmptyRecord()
		}

		rec := Record{TNF: tnf}
		if tnf.allowsType() {
			rec.Type = rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "type")
		}
		if rapid.Bool().Draw(t, "hasID") {
			rec.ID = rapid.SliceOfN(rapid.Byte(), 0, 16).Draw(t, "id")
			if rec.ID == nil {
				rec.ID = []byte{}
			}
		}
		// Payloads straddle the 255 byte short record boundary
		rec.Payload = rapid.SliceOfN(rapid.Byte(), 0, 600).Draw(t, "payload")
		return rec
	})
}

func messageGen() *rapid.Generator[Message] {
	return rapid.Custom(func(t *rapid.T) Message {
		return NewMessage(rapid.SliceOfN(recordGen(), 0, 6).Draw(t, "records")...)
	})
}

// TestPropertyRoundTrip verifies Decode(Encode(m)) == m.
func TestPropertyRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		msg := messageGen().Draw(t, "msg")

		encoded, err := Encode(msg)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v (bytes=%x)", err, encoded)
		}
		if !decoded.Equal(msg) {
			t.Fatalf("round trip mismatch: %d records in, %d out", msg.Len(), decoded.Len())
		}
	})
}

// TestPropertyEncodeDeterministic verifies encoding depends only on the message.
func TestPropertyEncodeDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		msg := messageGen().Draw(t, "msg")

		first, err1 := Encode(msg)
		second, err2 := Encode(msg)
		if err1 != nil || err2 != nil {
			t.Fatalf("Encode failed: %v, %v", err1, err2)
		}
		if string(first) != string(second) {
			t.Fatalf("Encode not deterministic: %x vs %x", first, second)
		}
	})
}

// TestPropertyLengthForm verifies the short record flag tracks payload size.
func TestPropertyLengthForm(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		encoded, err := Encode(NewMessage(rec))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		short := encoded[0]&flagSR != 0
		if short != (len(rec.Payload) <= 255) {
			t.Fatalf("SR=%v for %d byte payload", short, len(rec.Payload))
		}
		if encoded[0]&(flagMB|flagME) != flagMB|flagME {
			t.Fatalf("single record header 0x%02X missing MB/ME", encoded[0])
		}
		if len(encoded) != encodedSize(rec) {
			t.Fatalf("encoded %d bytes, expected %d", len(encoded), encodedSize(rec))
		}
	})
}

// TestPropertyTruncationIsMalformed verifies every strict prefix of a single
// record fails to decode with ErrMalformedRecord.
func TestPropertyTruncationIsMalformed(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		rec := recordGen().Draw(t, "record")

		encoded, err := Encode(NewMessage(rec))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		cut := rapid.IntRange(1, len(encoded)-1).Draw(t, "cut")

		_, err = Decode(encoded[:cut])
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("Decode of %d/%d bytes: got %v, want ErrMalformedRecord", cut, len(encoded), err)
		}
	})
}
