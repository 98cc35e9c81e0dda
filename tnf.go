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

// TypeNameFormat classifies how a record's Type field is interpreted.
type TypeNameFormat uint8

// Type Name Format values as defined by the NFC Forum.
const (
	TNFEmpty       TypeNameFormat = 0x00
	TNFWellKnown   TypeNameFormat = 0x01
	TNFMedia       TypeNameFormat = 0x02
	TNFAbsoluteURI TypeNameFormat = 0x03
	TNFExternal    TypeNameFormat = 0x04
	TNFUnknown     TypeNameFormat = 0x05
	TNFUnchanged   TypeNameFormat = 0x06
)

// tnfReserved is the wire code the NFC Forum reserves; it decodes as TNFUnknown.
const tnfReserved byte = 0x07

// invalidDataLabel is the fallback label for values no table knows about.
const invalidDataLabel = "Invalid data"

var tnfLabels = map[TypeNameFormat]string{
	TNFWellKnown:   "NFC Well Known type",
	TNFMedia:       "Media type",
	TNFAbsoluteURI: "Absolute URI type",
	TNFExternal:    "NFC External type",
	TNFUnknown:     "Unknown type",
	TNFUnchanged:   "Unchanged type",
	TNFEmpty:       "Empty payload",
}

// Describe returns a human-readable label for tnf. Unrecognized values map to
// "Invalid data".
func Describe(tnf TypeNameFormat) string {
	if label, ok := tnfLabels[tnf]; ok {
		return label
	}
	return invalidDataLabel
}

// String implements fmt.Stringer using Describe.
func (t TypeNameFormat) String() string {
	return Describe(t)
}

// Valid reports whether t is one of the seven encodable formats.
func (t TypeNameFormat) Valid() bool {
	return t <= TNFUnchanged
}

// tnfFromWire maps the low three header bits to a TypeNameFormat.
func tnfFromWire(code byte) TypeNameFormat {
	code &= tnfMask
	if code > byte(TNFUnchanged) {
		return TNFUnknown
	}
	return TypeNameFormat(code)
}

// allowsType reports whether records of this format may carry a Type field.
func (t TypeNameFormat) allowsType() bool {
	switch t {
	case TNFEmpty, TNFUnknown, TNFUnchanged:
		return false
	case TNFWellKnown, TNFMedia, TNFAbsoluteURI, TNFExternal:
		return true
	default:
		return false
	}
}
