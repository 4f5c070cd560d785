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

package cache

import (
	"context"
	"time"

	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/internal/protos/cachepb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// SetRequest stores a value in a cache.
type SetRequest struct {
	// CacheName is the cache to store the item in.
	CacheName string
	// Key is the key of the item.
	Key []byte
	// Value is the data to store.
	Value []byte
	// TTL is the time-to-live for the item. Zero means the client's
	// default TTL.
	TTL time.Duration
}

// SetResponse is the response to a successful Set.
type SetResponse struct{}

// Set stores a value in a cache.
func (c *Client) Set(ctx context.Context, request *SetRequest) (*SetResponse, error) {
	ttlMilliseconds, err := c.expandTTL(request.TTL)
	if err != nil {
		return nil, err
	}

	ctx, cancel, err := dispatch.Prepare(ctx, request.CacheName, c.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	response, err := c.nextDataClient().Set(ctx, &cachepb.SetRequest{
		CacheKey:        request.Key,
		CacheBody:       request.Value,
		TtlMilliseconds: ttlMilliseconds,
	})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}
	if response.GetResult() != cachepb.ECacheResult_Ok {
		return nil, momentoerrors.UnknownErrorf("set returned an unrecognized result: %s", response.String())
	}
	return &SetResponse{}, nil
}
