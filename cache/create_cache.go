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

// CreateCacheRequest creates a cache.
type CreateCacheRequest struct {
	// CacheName is the name of the cache to create.
	CacheName string
}

// CreateCacheResponse is the response to a CreateCache. It is a
// CreateCacheSuccess when the cache was created and a
// CreateCacheAlreadyExists when a cache with that name already existed.
type CreateCacheResponse interface {
	isCreateCacheResponse()
}

// CreateCacheSuccess indicates the cache was created.
type CreateCacheSuccess struct{}

func (CreateCacheSuccess) isCreateCacheResponse() {}

// CreateCacheAlreadyExists indicates a cache with that name already exists.
type CreateCacheAlreadyExists struct{}

func (CreateCacheAlreadyExists) isCreateCacheResponse() {}

// CreateCache creates a cache. Creating a cache that already exists is not
// an error: the response is a *CreateCacheAlreadyExists.
func (c *Client) CreateCache(ctx context.Context, request *CreateCacheRequest) (CreateCacheResponse, error) {
	if err := dispatch.ValidateName(request.CacheName, "cache name"); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.deadline())
	defer cancel()

	_, err := c.controlClient().CreateCache(ctx, &controlpb.CreateCacheRequest{CacheName: request.CacheName})
	if err != nil {
		err := momentoerrors.FromError(err)
		if momentoerrors.IsAlreadyExists(err) {
			return &CreateCacheAlreadyExists{}, nil
		}
		return nil, err
	}
	return &CreateCacheSuccess{}, nil
}
