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

// Upsert inserts the elements into the leaderboard, overwriting the
// score of any element whose ID is already present. Upserting into a
// leaderboard that does not exist yet creates it.
func (l *Leaderboard) Upsert(ctx context.Context, elements []Element) error {
	if len(elements) == 0 {
		return momentoerrors.InvalidArgumentErrorf("elements cannot be empty")
	}

	ctx, cancel, err := dispatch.Prepare(ctx, l.cacheName, l.client.deadline())
	if err != nil {
		return err
	}
	defer cancel()

	wire := make([]*leaderboardpb.Element, 0, len(elements))
	for _, element := range elements {
		wire = append(wire, &leaderboardpb.Element{Id: element.ID, Score: element.Score})
	}

	_, err = l.client.nextDataClient().UpsertElements(ctx, &leaderboardpb.UpsertElementsRequest{
		CacheName:   l.cacheName,
		Leaderboard: l.leaderboardName,
		Elements:    wire,
	})
	if err != nil {
		return momentoerrors.FromError(err)
	}
	return nil
}
