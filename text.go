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
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// Text record status byte layout
const (
	textStatusUTF16   byte = 0x80
	textStatusRFU     byte = 0x40
	textLangLenMask   byte = 0x3F
	defaultTextLang        = "en"
	maxTextLangLength      = 0x3F
)

var wellKnownTextType = []byte("T")

// IsTextRecord reports whether r is a well-known "T" record.
func (r Record) IsTextRecord() bool {
	return r.TNF == TNFWellKnown && string(r.Type) == string(wellKnownTextType)
}

// NewTextRecord returns a UTF-8 well-known text record. An empty lang
// defaults to "en"; otherwise it must be a valid BCP 47 language tag.
func NewTextRecord(text, lang string) (Record, error) {
	return newTextRecord([]byte(text), lang, 0)
}

// NewUTF16TextRecord returns a well-known text record with UTF-16BE text.
func NewUTF16TextRecord(text, lang string) (Record, error) {
	if !utf8.ValidString(text) {
		return Record{}, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidRecord)
	}
	encoded, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(text))
	if err != nil {
		return Record{}, fmt.Errorf("%w: encoding UTF-16 text: %w", ErrInvalidRecord, err)
	}
	return newTextRecord(encoded, lang, textStatusUTF16)
}

func newTextRecord(body []byte, lang string, status byte) (Record, error) {
	code, err := textLanguage(lang)
	if err != nil {
		return Record{}, err
	}

	payload := make([]byte, 0, 1+len(code)+len(body))
	payload = append(payload, status|byte(len(code)))
	payload = append(payload, code...)
	payload = append(payload, body...)
	return Record{
		TNF:     TNFWellKnown,
		Type:    []byte("T"),
		Payload: payload,
	}, nil
}

func textLanguage(lang string) (string, error) {
	if lang == "" {
		return defaultTextLang, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%w: language %q: %w", ErrInvalidRecord, lang, err)
	}
	code := tag.String()
	if len(code) > maxTextLangLength {
		return "", fmt.Errorf("%w: language %q longer than %d bytes", ErrInvalidRecord, code, maxTextLangLength)
	}
	return code, nil
}

// WellKnownTypeTextPayload interprets r as a well-known text record and
// returns its text and language code. Like WellKnownTypeURIPayload it
// reports a miss instead of failing on records it cannot interpret.
func WellKnownTypeTextPayload(r Record) (text, lang string, ok bool) {
	if !r.IsTextRecord() || len(r.Payload) == 0 {
		return "", "", false
	}

	status := r.Payload[0]
	if status&textStatusRFU != 0 {
		return "", "", false
	}
	langLen := int(status & textLangLenMask)
	if 1+langLen > len(r.Payload) {
		return "", "", false
	}
	langBytes := r.Payload[1 : 1+langLen]
	body := r.Payload[1+langLen:]
	if !utf8.Valid(langBytes) {
		return "", "", false
	}

	if status&textStatusUTF16 == 0 {
		if !utf8.Valid(body) {
			return "", "", false
		}
		return string(body), string(langBytes), true
	}

	if len(body)%2 != 0 {
		return "", "", false
	}
	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder().Bytes(body)
	if err != nil {
		return "", "", false
	}
	return string(decoded), string(langBytes), true
}
