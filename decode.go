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
	"fmt"
)

// recordHeader holds the fixed-position fields of one record.
type recordHeader struct {
	payloadLen uint64
	typeLen    int
	idLen      int
	tnf        TypeNameFormat
	wireTNF    byte
	hasID      bool
}

// Decode parses raw NDEF bytes into a Message. Records are read back-to-back
// until the input is exhausted; empty input decodes to an empty Message.
//
// Truncated or structurally invalid records fail with ErrMalformedRecord and
// chunked records with ErrUnsupportedChunking, both wrapped in a *RecordError.
func Decode(data []byte) (Message, error) {
	var records []Record
	offset := 0

	for offset < len(data) {
		rec, n, err := decodeRecord(data[offset:])
		if err != nil {
			return Message{}, decodeError(len(records), offset, err)
		}
		records = append(records, rec)
		offset += n
	}

	return Message{records: records}, nil
}

// decodeRecord parses one record from the front of data and returns the
// number of bytes it consumed.
func decodeRecord(data []byte) (Record, int, error) {
	hdr, pos, err := parseRecordHeader(data)
	if err != nil {
		return Record{}, 0, err
	}

	remaining := uint64(len(data) - pos)
	need := uint64(hdr.typeLen) + uint64(hdr.idLen) + hdr.payloadLen
	if need > remaining {
		return Record{}, 0, fmt.Errorf("%w: declares %d bytes of fields, %d remain",
			ErrMalformedRecord, need, remaining)
	}

	rec := Record{TNF: hdr.tnf}
	if hdr.typeLen > 0 {
		rec.Type = make([]byte, hdr.typeLen)
		copy(rec.Type, data[pos:])
		pos += hdr.typeLen
	}
	if hdr.hasID {
		rec.ID = make([]byte, hdr.idLen)
		copy(rec.ID, data[pos:])
		pos += hdr.idLen
	}
	if hdr.payloadLen > 0 {
		n := int(hdr.payloadLen)
		rec.Payload = make([]byte, n)
		copy(rec.Payload, data[pos:pos+n])
		pos += n
	}

	return rec, pos, nil
}

// parseRecordHeader reads the flags byte and length fields, returning the
// offset at which the Type field starts.
func parseRecordHeader(data []byte) (recordHeader, int, error) {
	var hdr recordHeader
	if len(data) < 2 {
		return hdr, 0, fmt.Errorf("%w: truncated header", ErrMalformedRecord)
	}

	flags := data[0]
	if flags&flagCF != 0 {
		return hdr, 0, ErrUnsupportedChunking
	}
	hdr.wireTNF = flags & tnfMask
	hdr.tnf = tnfFromWire(hdr.wireTNF)
	hdr.hasID = flags&flagIL != 0
	hdr.typeLen = int(data[1])
	pos := 2

	if flags&flagSR != 0 {
		if pos+1 > len(data) {
			return hdr, 0, fmt.Errorf("%w: truncated short payload length", ErrMalformedRecord)
		}
		hdr.payloadLen = uint64(data[pos])
		pos++
	} else {
		if pos+4 > len(data) {
			return hdr, 0, fmt.Errorf("%w: truncated payload length", ErrMalformedRecord)
		}
		hdr.payloadLen = uint64(binary.BigEndian.Uint32(data[pos : pos+4]))
		pos += 4
	}

	if hdr.hasID {
		if pos+1 > len(data) {
			return hdr, 0, fmt.Errorf("%w: truncated id length", ErrMalformedRecord)
		}
		hdr.idLen = int(data[pos])
		pos++
	}

	if err := hdr.check(); err != nil {
		return hdr, 0, err
	}
	return hdr, pos, nil
}

// check enforces the per-format rules on declared lengths.
func (h recordHeader) check() error {
	if !h.tnf.allowsType() && h.typeLen != 0 {
		return fmt.Errorf("%w: type name format 0x%02X with a %d byte type",
			ErrMalformedRecord, h.wireTNF, h.typeLen)
	}
	if h.tnf == TNFEmpty && (h.hasID || h.payloadLen != 0) {
		return fmt.Errorf("%w: empty record with id or payload", ErrMalformedRecord)
	}
	return nil
}
