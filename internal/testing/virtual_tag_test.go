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

package testing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ndefcodec "github.com/ZaparooProject/go-ndefcodec"
)

func TestVirtualTag_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag      *VirtualTag
		name     string
		wantUID  string
		wantText string
		capacity int
	}{
		{
			name:     "NTAG213",
			tag:      NewVirtualNTAG213(nil),
			wantUID:  "04123456789abc",
			wantText: "Hello World",
			capacity: NTAG213UserMemory,
		},
		{
			name:     "NTAG215",
			tag:      NewVirtualNTAG215(nil),
			wantUID:  "0423456789abcd",
			capacity: NTAG215UserMemory,
		},
		{
			name:     "NTAG216",
			tag:      NewVirtualNTAG216([]byte{0x04, 0x01}),
			wantUID:  "0401",
			capacity: NTAG216UserMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantUID, tt.tag.GetUIDString())
			assert.Equal(t, tt.capacity, tt.tag.Capacity())
			assert.Equal(t, tt.wantText, tt.tag.GetNDEFText())
		})
	}
}

func TestVirtualTag_BlankTagIsFormatted(t *testing.T) {
	t.Parallel()

	mem := NewVirtualNTAG215(nil).Memory()
	assert.Equal(t, []byte{ndefcodec.TLVNDEF, 0x00, ndefcodec.TLVTerminator}, mem[:3])
}

func TestVirtualTag_SetNDEFText(t *testing.T) {
	t.Parallel()

	tag := NewVirtualNTAG213(nil)
	require.NoError(t, tag.SetNDEFText("**launch.system:genesis"))
	assert.Equal(t, "**launch.system:genesis", tag.GetNDEFText())

	err := tag.SetNDEFText(strings.Repeat("x", NTAG213UserMemory))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "**launch.system:genesis", tag.GetNDEFText())
}

func TestVirtualTag_ReadReturnsCopy(t *testing.T) {
	t.Parallel()

	tag := NewVirtualNTAG213(nil)
	data, err := tag.ReadRawBytes(context.Background())
	require.NoError(t, err)

	data[0] = 0x00
	assert.Equal(t, ndefcodec.TLVNDEF, tag.Memory()[0])
}

func TestVirtualTag_FailuresAreTransient(t *testing.T) {
	t.Parallel()

	tag := NewVirtualNTAG215(nil)
	tag.FailNextReads(1)
	tag.FailNextWrites(1)

	_, err := tag.ReadRawBytes(context.Background())
	assert.True(t, ndefcodec.IsRetryable(err))
	err = tag.WriteRawBytes(context.Background(), []byte{0x03, 0x00, 0xFE})
	assert.True(t, ndefcodec.IsRetryable(err))

	_, err = tag.ReadRawBytes(context.Background())
	require.NoError(t, err)
	require.NoError(t, tag.WriteRawBytes(context.Background(), []byte{0x03, 0x00, 0xFE}))

	tag.Remove()
	_, err = tag.ReadRawBytes(context.Background())
	require.ErrorIs(t, err, ErrTagNotPresent)
	assert.True(t, ndefcodec.IsRetryable(err))

	tag.Insert()
	tag.SetReadOnly(true)
	err = tag.WriteRawBytes(context.Background(), []byte{0x03, 0x00, 0xFE})
	require.ErrorIs(t, err, ErrReadOnly)
	assert.False(t, ndefcodec.IsRetryable(err))

	assert.Equal(t, 3, tag.ReadCount())
	assert.Equal(t, 3, tag.WriteCount())
}

func TestVirtualTag_WriteClearsOldData(t *testing.T) {
	t.Parallel()

	tag := NewVirtualNTAG213(nil)
	require.NoError(t, tag.WriteRawBytes(context.Background(), []byte{0x03, 0x00, 0xFE}))

	mem := tag.Memory()
	assert.Equal(t, []byte{0x03, 0x00, 0xFE}, mem[:3])
	assert.Equal(t, make([]byte, len(mem)-3), mem[3:])
	assert.Empty(t, tag.GetNDEFText())
}
