// Copyright (c) 2026 Momento, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package dispatch prepares outgoing calls. It is the single choke point
// every operation routes through: it validates the target cache name,
// computes the absolute per-call deadline from the configured timeout,
// and attaches the cache name to the call metadata for downstream
// routing. Preparing a call is synchronous and bounded; suspension only
// ever happens at the transport boundary.
package dispatch

import (
	"context"
	"time"
	"unicode"

	"github.com/momentohq/momento-go/momentoerrors"
	"google.golang.org/grpc/metadata"
)

// CacheNameHeader carries the target cache name on data plane calls.
const CacheNameHeader = "cache"

// Cache names above this length are rejected before any network attempt.
const _maxNameLength = 255

// ValidateName checks a caller-supplied name against the service's
// naming constraints. label names the field in error messages
// ("cache name", "leaderboard name").
func ValidateName(name string, label string) error {
	if name == "" {
		return momentoerrors.InvalidArgumentErrorf("%s cannot be empty", label)
	}
	if len(name) > _maxNameLength {
		return momentoerrors.InvalidArgumentErrorf("%s cannot exceed %d bytes", label, _maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return momentoerrors.InvalidArgumentErrorf("%s cannot contain control characters", label)
		}
	}
	return nil
}

// Prepare validates the target cache name and returns a context carrying
// the computed absolute deadline plus the cache name metadata. The
// transport enforces the deadline; callers must invoke cancel once the
// call resolves.
func Prepare(ctx context.Context, cacheName string, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	ctx, err := PrepareStream(ctx, cacheName)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}

// PrepareStream is Prepare without the deadline, for long-lived
// streaming calls such as topic subscriptions.
func PrepareStream(ctx context.Context, cacheName string) (context.Context, error) {
	if err := ValidateName(cacheName, "cache name"); err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, CacheNameHeader, cacheName), nil
}
