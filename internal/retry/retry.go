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

// Package retry provides the bounded retry loop used for tag session I/O
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrRetriesExhausted is returned when every attempt asked to be retried.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Operation represents a function that can be retried
// Returns: result, shouldRetry, error
//   - result: the value if successful
//   - shouldRetry: true if the attempt failed in a way worth repeating
//   - error: the attempt's error; permanent when shouldRetry is false
type Operation[T any] func(ctx context.Context) (T, bool, error)

// Config configures retry behavior
type Config struct {
	Clock       clockwork.Clock
	OnRetry     func(attempt int, err error)
	Description string
	MaxRetries  int
	Delay       time.Duration
}

// Do executes op, retrying up to MaxRetries additional times while it reports
// shouldRetry. Waits between attempts honour ctx.
func Do[T any](ctx context.Context, config Config, op Operation[T]) (T, error) {
	var zero T
	clock := config.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	var lastErr error
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, shouldRetry, err := op(ctx)
		if !shouldRetry {
			return result, err
		}
		lastErr = err

		// If we should retry but we're at max attempts, break
		if attempt >= config.MaxRetries {
			break
		}

		if config.OnRetry != nil {
			config.OnRetry(attempt+1, err)
		}

		if config.Delay > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-clock.After(config.Delay):
			}
		}
	}

	return zero, exhausted(config.Description, config.MaxRetries+1, lastErr)
}

func exhausted(desc string, attempts int, lastErr error) error {
	if desc == "" {
		desc = "operation"
	}
	if lastErr == nil {
		return fmt.Errorf("%s: %w after %d attempts", desc, ErrRetriesExhausted, attempts)
	}
	return fmt.Errorf("%s: %w after %d attempts: %w", desc, ErrRetriesExhausted, attempts, lastErr)
}
