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

package leaderboard

import (
	"context"

	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/internal/protos/leaderboardpb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// FetchByScoreRequest fetches a page of elements whose scores fall in a
// range.
type FetchByScoreRequest struct {
	// ScoreRange bounds the scores fetched. Nil spans all scores.
	ScoreRange *ScoreRange
	// Offset skips that many elements of the range before the page.
	Offset uint32
	// Count caps the page size. Zero means the server default.
	Count uint32
	// Order directs the ranking within the range.
	Order Order
}

// FetchByScore fetches elements whose scores fall in the requested
// range, ranked under the requested order. Fetching from a leaderboard
// that does not exist returns no elements.
func (l *Leaderboard) FetchByScore(ctx context.Context, request *FetchByScoreRequest) ([]RankedElement, error) {
	ctx, cancel, err := dispatch.Prepare(ctx, l.cacheName, l.client.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	response, err := l.client.nextDataClient().FetchByScore(ctx, &leaderboardpb.FetchByScoreRequest{
		CacheName:   l.cacheName,
		Leaderboard: l.leaderboardName,
		ScoreRange:  request.ScoreRange.wire(),
		Offset:      request.Offset,
		Count:       request.Count,
		Order:       request.Order.wire(),
	})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}
	return rankedElements(response.GetElements()), nil
}
