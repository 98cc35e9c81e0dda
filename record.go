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
	"bytes"
	"fmt"
)

// Record header bits
const (
	flagMB  byte = 0x80 // Message Begin
	flagME  byte = 0x40 // Message End
	flagCF  byte = 0x20 // Chunk Flag
	flagSR  byte = 0x10 // Short Record
	flagIL  byte = 0x08 // ID Length present
	tnfMask byte = 0x07

	shortRecordMaxLen = 0xFF
	maxFieldLen       = 0xFF
	maxPayloadLen     = 0xFFFFFFFF
)

// Record is a single NDEF record.
//
// A nil ID means the record has no identifier. A non-nil ID, even an empty
// one, is encoded with the IL flag and an explicit length byte, and Decode
// hands it back as a non-nil slice.
type Record struct {
	Type    []byte
	ID      []byte
	Payload []byte
	TNF     TypeNameFormat
}

// HasID reports whether the record carries an identifier field.
func (r Record) HasID() bool {
	return r.ID != nil
}

// Equal reports whether two records would encode to the same bytes at the
// same position in a message.
func (r Record) Equal(other Record) bool {
	return r.TNF == other.TNF &&
		r.HasID() == other.HasID() &&
		bytes.Equal(r.Type, other.Type) &&
		bytes.Equal(r.ID, other.ID) &&
		bytes.Equal(r.Payload, other.Payload)
}

// Validate checks the record against the format's structural rules.
func (r Record) Validate() error {
	if !r.TNF.Valid() {
		return fmt.Errorf("%w: type name format 0x%02X", ErrInvalidRecord, uint8(r.TNF))
	}
	if len(r.Type) > maxFieldLen {
		return fmt.Errorf("%w: type is %d bytes, max %d", ErrInvalidRecord, len(r.Type), maxFieldLen)
	}
	if len(r.ID) > maxFieldLen {
		return fmt.Errorf("%w: id is %d bytes, max %d", ErrInvalidRecord, len(r.ID), maxFieldLen)
	}
	if !payloadLengthFits(len(r.Payload)) {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(r.Payload))
	}
	if !r.TNF.allowsType() && len(r.Type) > 0 {
		return fmt.Errorf("%w: %s record must not have a type", ErrInvalidRecord, r.TNF)
	}
	if r.TNF == TNFEmpty && (r.HasID() || len(r.Payload) > 0) {
		return fmt.Errorf("%w: empty record must not have an id or payload", ErrInvalidRecord)
	}
	return nil
}

func (r Record) clone() Record {
	return Record{
		TNF:     r.TNF,
		Type:    bytes.Clone(r.Type),
		ID:      bytes.Clone(r.ID),
		Payload: bytes.Clone(r.Payload),
	}
}

func payloadLengthFits(n int) bool {
	return n >= 0 && uint64(n) <= maxPayloadLen
}

// Message is an immutable, ordered sequence of records.
type Message struct {
	records []Record
}

// NewMessage builds a message from copies of records.
func NewMessage(records ...Record) Message {
	if len(records) == 0 {
		return Message{}
	}
	cloned := make([]Record, len(records))
	for i, r := range records {
		cloned[i] = r.clone()
	}
	return Message{records: cloned}
}

// Len returns the number of records.
func (m Message) Len() int {
	return len(m.records)
}

// IsEmpty reports whether the message has no records.
func (m Message) IsEmpty() bool {
	return len(m.records) == 0
}

// Record returns a copy of the record at index i.
func (m Message) Record(i int) (Record, bool) {
	if i < 0 || i >= len(m.records) {
		return Record{}, false
	}
	return m.records[i].clone(), true
}

// Records returns copies of all records in stream order.
func (m Message) Records() []Record {
	out := make([]Record, len(m.records))
	for i, r := range m.records {
		out[i] = r.clone()
	}
	return out
}

// Equal reports whether both messages hold equal records in the same order.
func (m Message) Equal(other Message) bool {
	if len(m.records) != len(other.records) {
		return false
	}
	for i := range m.records {
		if !m.records[i].Equal(other.records[i]) {
			return false
		}
	}
	return true
}

// NewEmptyRecord returns a TNF Empty record.
func NewEmptyRecord() Record {
	return Record{TNF: TNFEmpty}
}

// NewMediaRecord returns a media-type record (RFC 2046), e.g. "text/plain".
func NewMediaRecord(mimeType string, payload []byte) Record {
	return Record{
		TNF:     TNFMedia,
		Type:    []byte(mimeType),
		Payload: bytes.Clone(payload),
	}
}

// NewAbsoluteURIRecord returns a record whose type is an absolute URI.
func NewAbsoluteURIRecord(uri string, payload []byte) Record {
	return Record{
		TNF:     TNFAbsoluteURI,
		Type:    []byte(uri),
		Payload: bytes.Clone(payload),
	}
}

// NewExternalRecord returns an NFC Forum external type record, e.g.
// "example.com:mytype".
func NewExternalRecord(domainType string, payload []byte) Record {
	return Record{
		TNF:     TNFExternal,
		Type:    []byte(domainType),
		Payload: bytes.Clone(payload),
	}
}
