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
	"testing"
)

// FuzzDecode feeds arbitrary bytes to Decode. Anything it accepts must
// re-encode and decode to the same message.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xD0, 0x00, 0x00})
	f.Add([]byte{0xD1, 0x01, 0x0C, 'U', 0x01, 'e', 'x', 'a', 'm', 'p', 'l', 'e', '.', 'c', 'o', 'm'})
	f.Add([]byte{0xD9, 0x01, 0x00, 0x00, 'U'})
	f.Add([]byte{0xC2, 0x01, 0x00, 0x00, 0x00, 0x01, 'x', 0xAA})
	f.Add([]byte{0xB1, 0x01, 0x00, 'T'})
	f.Add([]byte{0xC2, 0x00, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte{0xD1})

	f.Fuzz(func(t *testing.T, data []byte) {
		msg, err := Decode(data)
		if err != nil {
			return
		}

		encoded, err := Encode(msg)
		if err != nil {
			t.Fatalf("decoded message does not encode: %v (input %x)", err, data)
		}
		again, err := Decode(encoded)
		if err != nil {
			t.Fatalf("re-encoded message does not decode: %v (input %x)", err, data)
		}
		if !again.Equal(msg) {
			t.Fatalf("re-encode changed the message (input %x)", data)
		}
	})
}

// FuzzUnwrapTLV checks TLV parsing never panics or returns more than it read.
func FuzzUnwrapTLV(f *testing.F) {
	f.Add([]byte{0x03, 0x00, 0xFE})
	f.Add([]byte{0x00, 0x00, 0x03, 0x03, 0xAA, 0xBB, 0xCC})
	f.Add([]byte{0x03, 0xFF, 0x00, 0x02, 0xAA, 0xBB})
	f.Add([]byte{0x03, 0xFF, 0x01})
	f.Add([]byte{0x01, 0x05, 0xAA})
	f.Add([]byte{0xFE, 0x03, 0x01, 0xAA})

	f.Fuzz(func(t *testing.T, data []byte) {
		value, err := UnwrapTLV(data)
		if err != nil {
			return
		}
		if len(value) > len(data) {
			t.Fatalf("value of %d bytes from %d byte input", len(value), len(data))
		}
	})
}
