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
	"unicode/utf8"
)

// Summary renders a one-line display label for r.
//
//   - well-known records show the format and type, plus the URI for "U" records
//   - absolute URI records show their payload text
//   - media records show the format and MIME type
//   - everything else shows the format label alone
//
// Anything that is not valid UTF-8 renders as "Invalid data".
func Summary(r Record) string {
	switch r.TNF {
	case TNFWellKnown:
		if !utf8.Valid(r.Type) {
			return invalidDataLabel
		}
		label := r.TNF.String() + ": " + string(r.Type)
		if u, ok := WellKnownTypeURIPayload(r); ok {
			label += ", " + u.String()
		}
		return label
	case TNFAbsoluteURI:
		if !utf8.Valid(r.Payload) {
			return invalidDataLabel
		}
		return string(r.Payload)
	case TNFMedia:
		if !utf8.Valid(r.Type) {
			return invalidDataLabel
		}
		return r.TNF.String() + ": " + string(r.Type)
	case TNFExternal, TNFEmpty, TNFUnknown, TNFUnchanged:
		return r.TNF.String()
	default:
		return Describe(r.TNF)
	}
}
