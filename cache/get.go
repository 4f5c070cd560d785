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

	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/internal/protos/cachepb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// GetRequest retrieves a value from a cache.
type GetRequest struct {
	// CacheName is the cache to look the item up in.
	CacheName string
	// Key is the key of the item.
	Key []byte
}

// GetResponse is the response to a Get. It is a GetHit when the item was
// found and a GetMiss when it was not.
type GetResponse interface {
	isGetResponse()
}

// GetHit indicates the item was found.
type GetHit struct {
	// Value is the stored data.
	Value []byte
}

func (GetHit) isGetResponse() {}

// GetMiss indicates the item was not found.
type GetMiss struct{}

func (GetMiss) isGetResponse() {}

// Get retrieves a value from a cache. The response is a *GetHit when the
// item was found and a *GetMiss when it was not.
func (c *Client) Get(ctx context.Context, request *GetRequest) (GetResponse, error) {
	ctx, cancel, err := dispatch.Prepare(ctx, request.CacheName, c.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	response, err := c.nextDataClient().Get(ctx, &cachepb.GetRequest{CacheKey: request.Key})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}
	switch response.GetResult() {
	case cachepb.ECacheResult_Hit:
		return &GetHit{Value: response.GetCacheBody()}, nil
	case cachepb.ECacheResult_Miss:
		return &GetMiss{}, nil
	default:
		return nil, momentoerrors.UnknownErrorf("get returned an unrecognized result: %s", response.GetResult())
	}
}
