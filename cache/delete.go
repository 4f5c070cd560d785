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

// DeleteRequest removes an item from a cache.
type DeleteRequest struct {
	// CacheName is the cache to remove the item from.
	CacheName string
	// Key is the key of the item.
	Key []byte
}

// DeleteResponse is the response to a successful Delete. Deleting a key
// that does not exist succeeds.
type DeleteResponse struct{}

// Delete removes an item from a cache.
func (c *Client) Delete(ctx context.Context, request *DeleteRequest) (*DeleteResponse, error) {
	ctx, cancel, err := dispatch.Prepare(ctx, request.CacheName, c.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	if _, err := c.nextDataClient().Delete(ctx, &cachepb.DeleteRequest{CacheKey: request.Key}); err != nil {
		return nil, momentoerrors.FromError(err)
	}
	return &DeleteResponse{}, nil
}
