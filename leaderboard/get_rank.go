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

// GetRank returns the rank and score of the given element IDs under the
// given order. IDs not present in the leaderboard are absent from the
// result.
func (l *Leaderboard) GetRank(ctx context.Context, ids []uint32, order Order) ([]RankedElement, error) {
	if len(ids) == 0 {
		return nil, momentoerrors.InvalidArgumentErrorf("ids cannot be empty")
	}

	ctx, cancel, err := dispatch.Prepare(ctx, l.cacheName, l.client.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	response, err := l.client.nextDataClient().GetRank(ctx, &leaderboardpb.GetRankRequest{
		CacheName:   l.cacheName,
		Leaderboard: l.leaderboardName,
		Ids:         ids,
		Order:       order.wire(),
	})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}
	return rankedElements(response.GetElements()), nil
}
