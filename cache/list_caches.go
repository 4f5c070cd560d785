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

	"github.com/momentohq/momento-go/internal/protos/controlpb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// ListCachesRequest lists the caches in the account.
type ListCachesRequest struct {
	// NextToken resumes listing from a previous response's NextToken.
	// Leave empty to list from the beginning.
	NextToken string
}

// CacheInfo describes one cache.
type CacheInfo struct {
	// Name is the name of the cache.
	Name string
}

// ListCachesResponse is the response to a successful ListCaches.
type ListCachesResponse struct {
	// Caches is one page of caches.
	Caches []CacheInfo
	// NextToken, when non-empty, can be passed to a subsequent ListCaches
	// to fetch the next page.
	NextToken string
}

// ListCaches lists the caches in the account.
func (c *Client) ListCaches(ctx context.Context, request *ListCachesRequest) (*ListCachesResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.deadline())
	defer cancel()

	response, err := c.controlClient().ListCaches(ctx, &controlpb.ListCachesRequest{NextToken: request.NextToken})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}

	caches := make([]CacheInfo, 0, len(response.GetCache()))
	for _, cache := range response.GetCache() {
		caches = append(caches, CacheInfo{Name: cache.GetCacheName()})
	}
	return &ListCachesResponse{Caches: caches, NextToken: response.GetNextToken()}, nil
}
