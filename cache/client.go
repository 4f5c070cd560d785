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

// Package cache is the client for scalar cache operations and cache
// administration.
package cache

import (
	"time"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/protos/cachepb"
	"github.com/momentohq/momento-go/internal/protos/controlpb"
	"github.com/momentohq/momento-go/momentoerrors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Client is a cache client. It owns a pool of data plane channels
// selected round-robin per call and one control plane channel, all
// established at build time. A *Client is a cheap handle: copies share
// the underlying channels and may be used concurrently. Close releases
// the shared channels; call it once, when no handle needs them anymore.
type Client struct {
	dataPool      *channel.Pool
	controlConn   *grpc.ClientConn
	configuration config.Configuration
	defaultTTL    time.Duration
	logger        *zap.Logger
}

// Configuration returns the configuration the client was built with.
func (c *Client) Configuration() config.Configuration {
	return c.configuration
}

// Close closes every channel held by the client, combining any close
// errors.
func (c *Client) Close() error {
	c.logger.Debug("closing cache client")
	return multierr.Append(c.dataPool.Close(), c.controlConn.Close())
}

func (c *Client) nextDataClient() cachepb.ScsClient {
	return cachepb.NewScsClient(c.dataPool.Next())
}

func (c *Client) controlClient() controlpb.ScsControlClient {
	return controlpb.NewScsControlClient(c.controlConn)
}

func (c *Client) deadline() time.Duration {
	return c.configuration.ClientTimeout()
}

// expandTTL resolves a per-item TTL against the client default and
// converts it to milliseconds for the wire.
func (c *Client) expandTTL(ttl time.Duration) (uint64, error) {
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	if ttl < 0 {
		return 0, momentoerrors.InvalidArgumentErrorf("TTL must be positive, got %v", ttl)
	}
	return uint64(ttl / time.Millisecond), nil
}
