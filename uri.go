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
	"net/url"
	"strings"
	"unicode/utf8"
)

// uriPrefixes is the NFC Forum URI RTD abbreviation table, indexed by
// identifier code.
var uriPrefixes = [...]string{
	"",
	"http://www.",
	"https://www.",
	"http://",
	"https://",
	"tel:",
	"mailto:",
	"ftp://anonymous:anonymous@",
	"ftp://ftp.",
	"ftps://",
	"sftp://",
	"smb://",
	"nfs://",
	"ftp://",
	"dav://",
	"news:",
	"telnet://",
	"imap:",
	"rtsp://",
	"urn:",
	"pop:",
	"sip:",
	"sips:",
	"tftp:",
	"btspp://",
	"btl2cap://",
	"btgoep://",
	"tcpobex://",
	"irdaobex://",
	"file://",
	"urn:epc:id:",
	"urn:epc:tag:",
	"urn:epc:pat:",
	"urn:epc:raw:",
	"urn:epc:",
	"urn:nfc:",
}

var wellKnownURIType = []byte("U")

// URIPrefix returns the expansion of a URI identifier code.
func URIPrefix(code byte) (string, bool) {
	if int(code) >= len(uriPrefixes) {
		return "", false
	}
	return uriPrefixes[code], true
}

// IsURIRecord reports whether r is a well-known "U" record.
func (r Record) IsURIRecord() bool {
	return r.TNF == TNFWellKnown && string(r.Type) == string(wellKnownURIType)
}

// WellKnownTypeURIPayload interprets r as a well-known URI record. It returns
// false, never an error, when r is not a URI record, the identifier code is
// outside the abbreviation table, the remainder is not valid UTF-8, or the
// result does not parse as a URL.
func WellKnownTypeURIPayload(r Record) (*url.URL, bool) {
	uri, ok := wellKnownURIString(r)
	if !ok {
		return nil, false
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, false
	}
	return u, true
}

func wellKnownURIString(r Record) (string, bool) {
	if !r.IsURIRecord() || len(r.Payload) == 0 {
		return "", false
	}
	prefix, ok := URIPrefix(r.Payload[0])
	if !ok {
		return "", false
	}
	rest := r.Payload[1:]
	if !utf8.Valid(rest) {
		return "", false
	}
	return prefix + string(rest), true
}

// NewURIRecord returns a well-known URI record, abbreviating uri with the
// longest matching prefix from the identifier table.
func NewURIRecord(uri string) Record {
	code, rest := abbreviateURI(uri)
	payload := make([]byte, 0, 1+len(rest))
	payload = append(payload, code)
	payload = append(payload, rest...)
	return Record{
		TNF:     TNFWellKnown,
		Type:    []byte("U"),
		Payload: payload,
	}
}

func abbreviateURI(uri string) (code byte, rest string) {
	best := 0
	for i := 1; i < len(uriPrefixes); i++ {
		p := uriPrefixes[i]
		if len(p) > len(uriPrefixes[best]) && strings.HasPrefix(uri, p) {
			best = i
		}
	}
	return byte(best), uri[len(uriPrefixes[best]):]
}
