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

// Package topics is the client for topic publish and subscribe.
package topics

import (
	"time"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/protos/pubsubpb"
	"github.com/momentohq/momento-go/momentoerrors"
	"go.uber.org/zap"
)

// Client is a topics client. Publishes and subscriptions share a pool
// of data plane channels selected round-robin per call, so long-lived
// subscription streams spread across channels instead of piling onto
// one. Close releases the channels and ends every subscription served
// over them.
type Client struct {
	dataPool      *channel.Pool
	configuration config.Configuration
	logger        *zap.Logger
}

// Configuration returns the configuration the client was built with.
func (c *Client) Configuration() config.Configuration {
	return c.configuration
}

// Close closes every channel held by the client, combining any close
// errors. Active subscriptions are terminated.
func (c *Client) Close() error {
	c.logger.Debug("closing topics client")
	return c.dataPool.Close()
}

func (c *Client) nextPubsubClient() pubsubpb.PubsubClient {
	return pubsubpb.NewPubsubClient(c.dataPool.Next())
}

func (c *Client) deadline() time.Duration {
	return c.configuration.ClientTimeout()
}

// topicValue converts a user-facing value to its wire form.
func topicValue(value Value) (*pubsubpb.TopicValue, error) {
	switch value := value.(type) {
	case String:
		return &pubsubpb.TopicValue{Text: string(value)}, nil
	case Bytes:
		return &pubsubpb.TopicValue{Binary: []byte(value)}, nil
	default:
		return nil, momentoerrors.InvalidArgumentErrorf("unsupported topic value type %T", value)
	}
}

// Value is a topic message payload: a String or a Bytes.
type Value interface {
	isValue()
}

// String is a UTF-8 text payload.
type String string

func (String) isValue() {}

// Bytes is a binary payload. The wire format does not distinguish an
// empty Bytes from an empty String: a published empty Bytes is
// delivered to subscribers as String("").
type Bytes []byte

func (Bytes) isValue() {}
