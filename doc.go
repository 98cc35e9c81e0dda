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

/*
Package ndefcodec provides a pure Go codec for NFC Data Exchange Format (NDEF)
records and messages.

NDEF is the NFC Forum's binary message format for tag content. A message is a
sequence of self-delimiting records; each record carries a 3-bit Type Name
Format (TNF), a type, an optional identifier and a payload. This package
decodes raw tag bytes into records and encodes records back into bytes, and
leaves radio access and session lifecycle to the platform.

Features:
  - Bit-exact record encoding with automatic short/long length fields
  - Decoding with explicit errors for truncated and chunked records
  - Well-known URI and text record helpers
  - NDEF Message TLV framing for Type 2 tag memory
  - A Tag wrapper that drives any Session with retries and write verification

Basic Usage:

	import (
	    "github.com/ZaparooProject/go-ndefcodec"
	)

	// Build and encode a message
	msg := ndefcodec.NewMessage(
	    ndefcodec.NewURIRecord("https://zaparoo.org"),
	    ndefcodec.NewMediaRecord("text/plain", []byte("hi")),
	)
	data, err := ndefcodec.Encode(msg)
	if err != nil {
	    log.Fatal(err)
	}

	// Decode it again
	decoded, err := ndefcodec.Decode(data)
	if err != nil {
	    log.Fatal(err)
	}

	for _, rec := range decoded.Records() {
	    fmt.Println(ndefcodec.Summary(rec))
	}

Sessions:

A Session supplies raw bytes on read and accepts encoded bytes on write. Wrap
it in a Tag to exchange whole messages:

	tag, err := ndefcodec.NewTag(session,
	    ndefcodec.WithMaxRetries(5),
	    ndefcodec.WithLogger(logger),
	)
	if err != nil {
	    log.Fatal(err)
	}

	msg, err := tag.ReadMessage(ctx)

Identifiers:

A record's ID is absent when nil. A non-nil ID, even an empty one, is written
with the IL flag and a length byte, and decodes back to a non-nil slice.

Error Handling:

All operations return errors that can be inspected:

	if errors.Is(err, ndefcodec.ErrMalformedRecord) {
	    // Ask the user to scan the tag again
	}

Thread Safety:

The codec functions are pure and safe for concurrent use. A Tag serializes its
own operations.
*/
package ndefcodec
