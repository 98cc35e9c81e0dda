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

// TLV block types used in NFC Forum Type 2 tag memory
const (
	TLVNull        byte = 0x00
	TLVLockControl byte = 0x01
	TLVMemControl  byte = 0x02
	TLVNDEF        byte = 0x03
	TLVProprietary byte = 0xFD
	TLVTerminator  byte = 0xFE

	tlvLongForm      byte = 0xFF
	maxShortTLVValue      = 0xFE
	maxLongTLVValue       = 0xFFFE
)

// WrapTLV frames an encoded NDEF message as an NDEF Message TLV followed by a
// Terminator TLV, ready to be written to Type 2 tag user memory.
func WrapTLV(msg []byte) ([]byte, error) {
	n := len(msg)
	if n > maxLongTLVValue {
		return nil, fmt.Errorf("%w: %d bytes does not fit a TLV", ErrPayloadTooLarge, n)
	}

	out := make([]byte, 0, n+5)
	out = append(out, TLVNDEF)
	if n <= maxShortTLVValue {
		out = append(out, byte(n))
	} else {
		out = append(out, tlvLongForm)
		//nolint:gosec // bounded by maxLongTLVValue above
		out = binary.BigEndian.AppendUint16(out, uint16(n))
	}
	out = append(out, msg...)
	out = append(out, TLVTerminator)
	return out, nil
}

// UnwrapTLV returns a copy of the value of the first NDEF Message TLV in data.
// NULL TLVs and other TLV types are skipped; a Terminator TLV ends the search.
func UnwrapTLV(data []byte) ([]byte, error) {
	value, found, err := findNDEFTLV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTLV, err)
	}
	if !found {
		return nil, ErrNoNDEF
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// ValidateTLV checks that data holds a well-formed NDEF Message TLV.
func ValidateTLV(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty data", ErrMalformedTLV)
	}
	_, err := UnwrapTLV(data)
	return err
}

// findNDEFTLV walks the TLV block and returns the NDEF TLV value, if any.
func findNDEFTLV(data []byte) (ndefData []byte, found bool, err error) {
	i := 0
	for i < len(data) {
		switch data[i] {
		case TLVNull:
			i++
			continue
		case TLVTerminator:
			return nil, false, nil
		case TLVNDEF:
			length, start, err := parseTLVLength(data, i)
			if err != nil {
				return nil, false, err
			}
			if start+length > len(data) {
				return nil, false, fmt.Errorf("NDEF TLV declares %d bytes, %d remain", length, len(data)-start)
			}
			return data[start : start+length], true, nil
		}

		next, err := skipTLV(data, i)
		if err != nil {
			return nil, false, err
		}
		i = next
	}
	return nil, false, nil
}

// parseTLVLength reads the length field of the TLV whose type byte is at i
// and returns the value length and the offset where the value starts.
func parseTLVLength(data []byte, i int) (length, start int, err error) {
	if i+1 >= len(data) {
		return 0, 0, fmt.Errorf("TLV at offset %d: missing length", i)
	}
	if data[i+1] != tlvLongForm {
		return int(data[i+1]), i + 2, nil
	}
	if i+3 >= len(data) {
		return 0, 0, fmt.Errorf("TLV at offset %d: truncated long length", i)
	}
	return int(binary.BigEndian.Uint16(data[i+2 : i+4])), i + 4, nil
}

// skipTLV returns the offset just past the TLV at i.
func skipTLV(data []byte, i int) (int, error) {
	if data[i] == TLVNull || data[i] == TLVTerminator {
		return i + 1, nil
	}
	length, start, err := parseTLVLength(data, i)
	if err != nil {
		return 0, err
	}
	if start+length > len(data) {
		return 0, fmt.Errorf("TLV 0x%02X at offset %d declares %d bytes, %d remain",
			data[i], i, length, len(data)-start)
	}
	return start + length, nil
}
