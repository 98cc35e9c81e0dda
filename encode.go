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
	"encoding/binary"
)

// Encode serializes msg into NDEF bytes. The first record gets the Message
// Begin flag and the last the Message End flag. Payloads of up to 255 bytes
// use the short record form, larger ones the 4-byte length form. An empty
// message encodes to an empty slice.
//
// A payload longer than 2^32-1 bytes fails with ErrPayloadTooLarge; other
// rule violations fail with ErrInvalidRecord.
func Encode(msg Message) ([]byte, error) {
	size := 0
	for i, rec := range msg.records {
		if err := rec.Validate(); err != nil {
			return nil, encodeError(i, err)
		}
		size += encodedSize(rec)
	}

	out := make([]byte, 0, size)
	last := len(msg.records) - 1
	for i, rec := range msg.records {
		out = appendRecord(out, rec, i == 0, i == last)
	}
	return out, nil
}

func encodedSize(rec Record) int {
	n := 2 + len(rec.Type) + len(rec.ID) + len(rec.Payload)
	if len(rec.Payload) <= shortRecordMaxLen {
		n++
	} else {
		n += 4
	}
	if rec.HasID() {
		n++
	}
	return n
}

// appendRecord writes one already validated record to dst.
func appendRecord(dst []byte, rec Record, begin, end bool) []byte {
	short := len(rec.Payload) <= shortRecordMaxLen

	flags := byte(rec.TNF) & tnfMask
	if begin {
		flags |= flagMB
	}
	if end {
		flags |= flagME
	}
	if short {
		flags |= flagSR
	}
	if rec.HasID() {
		flags |= flagIL
	}

	dst = append(dst, flags, byte(len(rec.Type)))
	if short {
		dst = append(dst, byte(len(rec.Payload)))
	} else {
		//nolint:gosec // Validate bounds the payload length to uint32
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(rec.Payload)))
	}
	if rec.HasID() {
		dst = append(dst, byte(len(rec.ID)))
	}

	dst = append(dst, rec.Type...)
	dst = append(dst, rec.ID...)
	dst = append(dst, rec.Payload...)
	return dst
}
