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
	"fmt"
)

// Codec errors
var (
	ErrMalformedRecord     = errors.New("ndef: malformed record")
	ErrUnsupportedChunking = errors.New("ndef: chunked records not supported")
	ErrPayloadTooLarge     = errors.New("ndef: payload too large")
	ErrInvalidRecord       = errors.New("ndef: invalid record")
)

// TLV framing errors
var (
	ErrNoNDEF       = errors.New("ndef: no NDEF message TLV found")
	ErrMalformedTLV = errors.New("ndef: malformed TLV")
)

// Tag exchange errors
var (
	ErrNilSession         = errors.New("ndef: nil session")
	ErrMessageTooLarge    = errors.New("ndef: message exceeds tag capacity")
	ErrVerificationFailed = errors.New("ndef: write verification failed")
	ErrTransient          = errors.New("ndef: transient session error")
)

// RecordError reports where in a message a codec operation failed.
type RecordError struct {
	Err    error
	Op     string
	Index  int
	Offset int
}

func (e *RecordError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: record %d at offset %d: %v", e.Op, e.Index, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: record %d: %v", e.Op, e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewTransientError marks err as a session failure worth retrying, such as the
// tag briefly leaving the field.
func NewTransientError(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, ErrTransient)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransient, err)
}

// IsRetryable reports whether err came from a transient session failure.
// Codec errors are never retryable: malformed data stays malformed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTransient)
}

func decodeError(index, offset int, err error) error {
	return &RecordError{Op: "decode", Index: index, Offset: offset, Err: err}
}

func encodeError(index int, err error) error {
	return &RecordError{Op: "encode", Index: index, Offset: -1, Err: err}
}
