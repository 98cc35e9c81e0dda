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
	"context"
	"fmt"
	"sync"

	"github.com/ZaparooProject/go-ndefcodec/internal/retry"
)

// Session is the platform collaborator that moves raw bytes to and from a
// tag. Connecting, polling and field detection all happen on its side.
//
// Implementations should wrap failures worth retrying with
// NewTransientError so Tag can tell them apart from permanent ones.
type Session interface {
	// ReadRawBytes returns the tag's NDEF area
	ReadRawBytes(ctx context.Context) ([]byte, error)

	// WriteRawBytes replaces the tag's NDEF area with data
	WriteRawBytes(ctx context.Context, data []byte) error
}

// Tag reads and writes whole NDEF messages through a Session.
//
// Operations on one Tag are serialized; use one Tag per physical reader.
type Tag struct {
	session Session
	config  *Config
	mu      sync.Mutex
}

// NewTag creates a Tag over session with the given options
func NewTag(session Session, opts ...Option) (*Tag, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	tag := &Tag{
		session: session,
		config:  DefaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(tag); err != nil {
			return nil, err
		}
	}

	return tag, nil
}

// Config returns a copy of the tag's configuration
func (t *Tag) Config() Config {
	return *t.config
}

// ReadMessage reads the tag and decodes its NDEF message. Transient session
// errors are retried; decode errors are returned as-is.
func (t *Tag) ReadMessage(ctx context.Context) (Message, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg, n, err := t.readMessage(ctx)
	if err != nil {
		return Message{}, err
	}

	t.config.Logger.Debug().
		Int("bytes", n).
		Int("records", msg.Len()).
		Msg("read NDEF message")
	return msg, nil
}

// WriteMessage encodes msg and writes it to the tag. With write verification
// enabled the tag is read back and compared against msg.
func (t *Tag) WriteMessage(ctx context.Context, msg Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.frame(msg)
	if err != nil {
		return err
	}

	_, err = retry.Do(ctx, t.retryConfig("write"), func(ctx context.Context) (struct{}, bool, error) {
		err := t.session.WriteRawBytes(ctx, data)
		return struct{}{}, IsRetryable(err), err
	})
	if err != nil {
		return fmt.Errorf("write NDEF message: %w", err)
	}

	t.config.Logger.Debug().
		Int("bytes", len(data)).
		Int("records", msg.Len()).
		Msg("wrote NDEF message")

	if !t.config.VerifyWrites {
		return nil
	}
	return t.verify(ctx, msg)
}

// frame encodes msg into the exact bytes handed to the session.
func (t *Tag) frame(msg Message) ([]byte, error) {
	data, err := Encode(msg)
	if err != nil {
		return nil, err
	}
	if t.config.UseTLV {
		data, err = WrapTLV(data)
		if err != nil {
			return nil, err
		}
	}
	if len(data) > t.config.MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLarge, len(data), t.config.MaxMessageSize)
	}
	return data, nil
}

func (t *Tag) verify(ctx context.Context, want Message) error {
	got, _, err := t.readMessage(ctx)
	if err != nil {
		t.config.Logger.Error().Err(err).Msg("write verification read failed")
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}
	if !got.Equal(want) {
		t.config.Logger.Error().
			Int("want_records", want.Len()).
			Int("got_records", got.Len()).
			Msg("write verification mismatch")
		return fmt.Errorf("%w: read back message differs", ErrVerificationFailed)
	}
	return nil
}

func (t *Tag) readMessage(ctx context.Context) (Message, int, error) {
	raw, err := retry.Do(ctx, t.retryConfig("read"), func(ctx context.Context) ([]byte, bool, error) {
		data, err := t.session.ReadRawBytes(ctx)
		return data, IsRetryable(err), err
	})
	if err != nil {
		return Message{}, 0, fmt.Errorf("read NDEF message: %w", err)
	}

	data := raw
	if t.config.UseTLV {
		data, err = UnwrapTLV(raw)
		if err != nil {
			return Message{}, 0, fmt.Errorf("read NDEF message: %w", err)
		}
	}

	msg, err := Decode(data)
	if err != nil {
		t.config.Logger.Warn().Err(err).Int("bytes", len(data)).Msg("tag holds an undecodable NDEF message")
		return Message{}, 0, fmt.Errorf("read NDEF message: %w", err)
	}
	return msg, len(data), nil
}

func (t *Tag) retryConfig(desc string) retry.Config {
	return retry.Config{
		Clock:       t.config.Clock,
		Description: desc,
		MaxRetries:  t.config.MaxRetries,
		Delay:       t.config.RetryDelay,
		OnRetry: func(attempt int, err error) {
			t.config.Logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Str("op", desc).
				Msg("retrying tag session")
		},
	}
}
