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

// Package testing provides in-memory tag sessions for exercising the codec
// without hardware.
package testing

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	ndefcodec "github.com/ZaparooProject/go-ndefcodec"
)

// Test UIDs
var (
	TestNTAG213UID = []byte{0x04, 0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}
	TestNTAG215UID = []byte{0x04, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD}
	TestNTAG216UID = []byte{0x04, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE}
)

// Virtual tag errors
var (
	ErrTagNotPresent    = errors.New("tag not present")
	ErrReadOnly         = errors.New("tag is read-only")
	ErrCapacityExceeded = errors.New("data exceeds tag capacity")
)

// User memory sizes in bytes
const (
	NTAG213UserMemory = 144
	NTAG215UserMemory = 504
	NTAG216UserMemory = 888
)

// VirtualTag represents a simulated NFC Forum Type 2 tag. It implements
// ndefcodec.Session over its user memory area.
type VirtualTag struct {
	Type          string
	UID           []byte
	memory        []byte
	failReads     int
	failWrites    int
	reads         int
	writes        int
	mu            sync.Mutex
	present       bool
	readOnly      bool
	corruptWrites bool
}

// NewVirtualNTAG213 creates a virtual NTAG213 holding a "Hello World" text record
func NewVirtualNTAG213(uid []byte) *VirtualTag {
	if uid == nil {
		uid = TestNTAG213UID
	}
	tag := newVirtualTag("NTAG213", uid, NTAG213UserMemory)
	_ = tag.SetNDEFText("Hello World")
	return tag
}

// NewVirtualNTAG215 creates a blank, NDEF-formatted virtual NTAG215
func NewVirtualNTAG215(uid []byte) *VirtualTag {
	if uid == nil {
		uid = TestNTAG215UID
	}
	return newVirtualTag("NTAG215", uid, NTAG215UserMemory)
}

// NewVirtualNTAG216 creates a blank, NDEF-formatted virtual NTAG216
func NewVirtualNTAG216(uid []byte) *VirtualTag {
	if uid == nil {
		uid = TestNTAG216UID
	}
	return newVirtualTag("NTAG216", uid, NTAG216UserMemory)
}

func newVirtualTag(tagType string, uid []byte, size int) *VirtualTag {
	tag := &VirtualTag{
		Type:    tagType,
		UID:     uid,
		memory:  make([]byte, size),
		present: true,
	}
	// Freshly formatted tags carry an empty NDEF TLV
	copy(tag.memory, []byte{ndefcodec.TLVNDEF, 0x00, ndefcodec.TLVTerminator})
	return tag
}

// GetUIDString returns the UID as a hex string
func (v *VirtualTag) GetUIDString() string {
	return hex.EncodeToString(v.UID)
}

// Capacity returns the size of the user memory area
func (v *VirtualTag) Capacity() int {
	return len(v.memory)
}

// ReadRawBytes implements ndefcodec.Session
func (v *VirtualTag) ReadRawBytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.reads++

	if !v.present {
		return nil, ndefcodec.NewTransientError("read", ErrTagNotPresent)
	}
	if v.failReads > 0 {
		v.failReads--
		return nil, ndefcodec.NewTransientError("read", errors.New("simulated RF error"))
	}

	// Return a copy to prevent modification
	data := make([]byte, len(v.memory))
	copy(data, v.memory)
	return data, nil
}

// WriteRawBytes implements ndefcodec.Session
func (v *VirtualTag) WriteRawBytes(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.writes++

	if !v.present {
		return ndefcodec.NewTransientError("write", ErrTagNotPresent)
	}
	if v.readOnly {
		return ErrReadOnly
	}
	if len(data) > len(v.memory) {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrCapacityExceeded, len(data), len(v.memory))
	}
	if v.failWrites > 0 {
		v.failWrites--
		return ndefcodec.NewTransientError("write", errors.New("simulated RF error"))
	}

	clear(v.memory)
	copy(v.memory, data)
	if v.corruptWrites && len(data) > 1 {
		v.memory[len(data)-2] ^= 0xFF
	}
	return nil
}

// SetNDEFText stores a single text record message in user memory
func (v *VirtualTag) SetNDEFText(text string) error {
	rec, err := ndefcodec.NewTextRecord(text, "en")
	if err != nil {
		return err
	}
	encoded, err := ndefcodec.Encode(ndefcodec.NewMessage(rec))
	if err != nil {
		return err
	}
	framed, err := ndefcodec.WrapTLV(encoded)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(framed) > len(v.memory) {
		return fmt.Errorf("%w: %d bytes, capacity %d", ErrCapacityExceeded, len(framed), len(v.memory))
	}
	clear(v.memory)
	copy(v.memory, framed)
	return nil
}

// GetNDEFText returns the text of the first text record in user memory
func (v *VirtualTag) GetNDEFText() string {
	v.mu.Lock()
	value, err := ndefcodec.UnwrapTLV(v.memory)
	v.mu.Unlock()
	if err != nil {
		return ""
	}

	msg, err := ndefcodec.Decode(value)
	if err != nil {
		return ""
	}
	for _, rec := range msg.Records() {
		if text, _, ok := ndefcodec.WellKnownTypeTextPayload(rec); ok {
			return text
		}
	}
	return ""
}

// SetRawMemory overwrites user memory, padding with zeros
func (v *VirtualTag) SetRawMemory(data []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.memory)
	copy(v.memory, data)
}

// Memory returns a copy of user memory
func (v *VirtualTag) Memory() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	data := make([]byte, len(v.memory))
	copy(data, v.memory)
	return data
}

// Remove sets the tag as not present
func (v *VirtualTag) Remove() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.present = false
}

// Insert sets the tag as present
func (v *VirtualTag) Insert() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.present = true
}

// SetReadOnly makes every later write fail permanently
func (v *VirtualTag) SetReadOnly(readOnly bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.readOnly = readOnly
}

// FailNextReads makes the next n reads fail with a transient error
func (v *VirtualTag) FailNextReads(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failReads = n
}

// FailNextWrites makes the next n writes fail with a transient error
func (v *VirtualTag) FailNextWrites(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failWrites = n
}

// CorruptWrites flips a byte near the end of every later write, so that
// read-back verification sees different data
func (v *VirtualTag) CorruptWrites(corrupt bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.corruptWrites = corrupt
}

// ReadCount returns the number of ReadRawBytes calls
func (v *VirtualTag) ReadCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.reads
}

// WriteCount returns the number of WriteRawBytes calls
func (v *VirtualTag) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.writes
}
