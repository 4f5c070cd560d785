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

package dispatch

import (
	"context"
	"strings"
	"testing"
	"time"

	momento "github.com/momentohq/momento-go"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"valid", "my-cache", ""},
		{"valid with spaces", "my cache", ""},
		{"empty", "", "cannot be empty"},
		{"too long", strings.Repeat("a", 256), "cannot exceed 255 bytes"},
		{"max length ok", strings.Repeat("a", 255), ""},
		{"control characters", "my\ncache", "cannot contain control characters"},
		{"nul byte", "my\x00cache", "cannot contain control characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.value, "cache name")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, momentoerrors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "cache name")
		})
	}
}

func TestPrepareSetsDeadlineAndMetadata(t *testing.T) {
	before := time.Now()
	ctx, cancel, err := Prepare(context.Background(), "my-cache", 5*time.Second)
	require.NoError(t, err)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(before))
	assert.True(t, deadline.Before(before.Add(5*time.Second+time.Minute)))

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"my-cache"}, md.Get(CacheNameHeader))
}

func TestPrepareInvalidNameFailsBeforeNetwork(t *testing.T) {
	ctx, cancel, err := Prepare(context.Background(), "", time.Second)
	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.Nil(t, cancel)
	assert.True(t, momentoerrors.IsInvalidArgument(err))
}

func TestPrepareStreamHasNoDeadline(t *testing.T) {
	ctx, err := PrepareStream(context.Background(), "my-cache")
	require.NoError(t, err)

	_, ok := ctx.Deadline()
	assert.False(t, ok)

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"my-cache"}, md.Get(CacheNameHeader))
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "go:cache:"+momento.Version, UserAgent("cache"))
	assert.Equal(t, "go:topic:"+momento.Version, UserAgent("topic"))
}
