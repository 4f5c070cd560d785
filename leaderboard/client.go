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

// Package leaderboard is the client for sorted leaderboard operations.
package leaderboard

import (
	"math"
	"time"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/internal/protos/leaderboardpb"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Client is a leaderboard client. It owns a pool of data plane channels
// selected round-robin per call and one control plane channel for
// leaderboard deletion. Obtain a Leaderboard handle for a specific
// leaderboard with the Leaderboard method; handles share the client's
// channels.
type Client struct {
	dataPool      *channel.Pool
	controlConn   *grpc.ClientConn
	configuration config.Configuration
	logger        *zap.Logger
}

// Configuration returns the configuration the client was built with.
func (c *Client) Configuration() config.Configuration {
	return c.configuration
}

// Close closes every channel held by the client, combining any close
// errors. Handles obtained from the client stop working.
func (c *Client) Close() error {
	c.logger.Debug("closing leaderboard client")
	return multierr.Append(c.dataPool.Close(), c.controlConn.Close())
}

// Leaderboard returns a handle to one leaderboard in one cache. The
// names are validated here, once, rather than on every call. The
// leaderboard itself needs no prior creation; upserting into a new name
// creates it.
func (c *Client) Leaderboard(cacheName string, leaderboardName string) (*Leaderboard, error) {
	if err := dispatch.ValidateName(cacheName, "cache name"); err != nil {
		return nil, err
	}
	if err := dispatch.ValidateName(leaderboardName, "leaderboard name"); err != nil {
		return nil, err
	}
	return &Leaderboard{
		client:          c,
		cacheName:       cacheName,
		leaderboardName: leaderboardName,
	}, nil
}

func (c *Client) nextDataClient() leaderboardpb.LeaderboardClient {
	return leaderboardpb.NewLeaderboardClient(c.dataPool.Next())
}

func (c *Client) controlClient() leaderboardpb.LeaderboardClient {
	return leaderboardpb.NewLeaderboardClient(c.controlConn)
}

func (c *Client) deadline() time.Duration {
	return c.configuration.ClientTimeout()
}

// Leaderboard is a handle to one leaderboard in one cache. It is a
// cheap value sharing the client's channels and is safe for concurrent
// use.
type Leaderboard struct {
	client          *Client
	cacheName       string
	leaderboardName string
}

// Order directs ranking: rank 0 is the lowest score ascending, the
// highest descending.
type Order int

const (
	// Ascending ranks the lowest score first.
	Ascending Order = iota
	// Descending ranks the highest score first.
	Descending
)

func (o Order) wire() leaderboardpb.Order {
	if o == Descending {
		return leaderboardpb.Order_Descending
	}
	return leaderboardpb.Order_Ascending
}

// Element is one leaderboard entry to upsert.
type Element struct {
	// ID identifies the element within the leaderboard.
	ID uint32
	// Score orders the element.
	Score float64
}

// RankedElement is one leaderboard entry with its rank under the
// requested order.
type RankedElement struct {
	// ID identifies the element within the leaderboard.
	ID uint32
	// Rank is the element's zero-based position.
	Rank uint32
	// Score orders the element.
	Score float64
}

// ScoreRange bounds a fetch by score. A nil bound is unbounded, as is a
// NaN or infinite one; the zero value spans all scores.
type ScoreRange struct {
	// Min is the inclusive lower bound.
	Min *float64
	// Max is the exclusive upper bound.
	Max *float64
}

func (r *ScoreRange) wire() *leaderboardpb.ScoreRange {
	wire := &leaderboardpb.ScoreRange{UnboundedMin: true, UnboundedMax: true}
	if r == nil {
		return wire
	}
	if r.Min != nil && !math.IsNaN(*r.Min) && !math.IsInf(*r.Min, 0) {
		wire.UnboundedMin = false
		wire.MinInclusive = *r.Min
	}
	if r.Max != nil && !math.IsNaN(*r.Max) && !math.IsInf(*r.Max, 0) {
		wire.UnboundedMax = false
		wire.MaxExclusive = *r.Max
	}
	return wire
}

func rankedElements(elements []*leaderboardpb.RankedElement) []RankedElement {
	ranked := make([]RankedElement, 0, len(elements))
	for _, element := range elements {
		ranked = append(ranked, RankedElement{
			ID:    element.GetId(),
			Rank:  element.GetRank(),
			Score: element.GetScore(),
		})
	}
	return ranked
}
