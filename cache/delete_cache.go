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
	"github.com/momentohq/momento-go/internal/protos/controlpb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// DeleteCacheRequest deletes a cache and all of its contents.
type DeleteCacheRequest struct {
	// CacheName is the name of the cache to delete.
	CacheName string
}

// DeleteCacheResponse is the response to a successful DeleteCache.
type DeleteCacheResponse struct{}

// DeleteCache deletes a cache and all of its contents. Deleting a cache
// that does not exist returns a NotFound error.
func (c *Client) DeleteCache(ctx context.Context, request *DeleteCacheRequest) (*DeleteCacheResponse, error) {
	if err := dispatch.ValidateName(request.CacheName, "cache name"); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.deadline())
	defer cancel()

	if _, err := c.controlClient().DeleteCache(ctx, &controlpb.DeleteCacheRequest{CacheName: request.CacheName}); err != nil {
		return nil, momentoerrors.FromError(err)
	}
	return &DeleteCacheResponse{}, nil
}
