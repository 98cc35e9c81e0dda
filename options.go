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
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Config holds the settings a Tag uses when exchanging messages with its
// session.
type Config struct {
	Clock          clockwork.Clock
	Logger         zerolog.Logger
	RetryDelay     time.Duration
	MaxMessageSize int
	MaxRetries     int
	UseTLV         bool
	VerifyWrites   bool
}

// DefaultConfig returns the default tag configuration
func DefaultConfig() *Config {
	return &Config{
		Clock:          clockwork.NewRealClock(),
		Logger:         zerolog.Nop(),
		RetryDelay:     50 * time.Millisecond,
		MaxMessageSize: 4096,
		MaxRetries:     3,
		UseTLV:         true,
		VerifyWrites:   true,
	}
}

// Option is a functional option for configuring a Tag
type Option func(*Tag) error

// WithLogger sets the logger used for session activity
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tag) error {
		t.config.Logger = logger
		return nil
	}
}

// WithTLV controls whether session bytes are framed in an NDEF Message TLV
func WithTLV(enabled bool) Option {
	return func(t *Tag) error {
		t.config.UseTLV = enabled
		return nil
	}
}

// WithMaxMessageSize sets the largest byte run WriteMessage will send
func WithMaxMessageSize(size int) Option {
	return func(t *Tag) error {
		if size <= 0 {
			return errors.New("max message size must be positive")
		}
		t.config.MaxMessageSize = size
		return nil
	}
}

// WithMaxRetries sets how many times a transient session error is retried
func WithMaxRetries(maxRetries int) Option {
	return func(t *Tag) error {
		if maxRetries < 0 {
			return errors.New("max retries must not be negative")
		}
		t.config.MaxRetries = maxRetries
		return nil
	}
}

// WithRetryDelay sets the wait between retries
func WithRetryDelay(delay time.Duration) Option {
	return func(t *Tag) error {
		if delay < 0 {
			return errors.New("retry delay must not be negative")
		}
		t.config.RetryDelay = delay
		return nil
	}
}

// WithWriteVerification enables reading a message back after writing it
func WithWriteVerification(enabled bool) Option {
	return func(t *Tag) error {
		t.config.VerifyWrites = enabled
		return nil
	}
}

// WithClock replaces the clock used for retry delays
func WithClock(clock clockwork.Clock) Option {
	return func(t *Tag) error {
		if clock == nil {
			return errors.New("nil clock")
		}
		t.config.Clock = clock
		return nil
	}
}
