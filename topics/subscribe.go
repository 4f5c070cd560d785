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

package topics

import (
	"context"

	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/internal/protos/pubsubpb"
	"github.com/momentohq/momento-go/momentoerrors"
)

// SubscribeRequest subscribes to a topic.
type SubscribeRequest struct {
	// CacheName is the cache the topic belongs to.
	CacheName string
	// TopicName is the topic to subscribe to.
	TopicName string
	// ResumeAtSequenceNumber resumes delivery at the given sequence
	// number. Zero subscribes from the tail of the topic.
	ResumeAtSequenceNumber uint64
}

// Item is one message delivered to a subscription.
type Item struct {
	// Value is the payload: a String or a Bytes as published.
	Value Value
	// SequenceNumber is the item's position in the topic, usable as a
	// resume point for a later subscription.
	SequenceNumber uint64
}

// Subscription is a live subscription to a topic. It is not safe for
// concurrent use; receive from one goroutine.
type Subscription struct {
	stream pubsubpb.Pubsub_SubscribeClient
	cancel context.CancelFunc
}

// Subscribe opens a subscription to a topic. Unlike unary calls the
// stream carries no deadline: it stays open until Close, the parent
// context ends, or the server terminates it. Errors establishing the
// stream surface on the first Item call.
func (c *Client) Subscribe(ctx context.Context, request *SubscribeRequest) (*Subscription, error) {
	if err := dispatch.ValidateName(request.TopicName, "topic name"); err != nil {
		return nil, err
	}

	ctx, err := dispatch.PrepareStream(ctx, request.CacheName)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)

	stream, err := c.nextPubsubClient().Subscribe(ctx, &pubsubpb.SubscriptionRequest{
		CacheName:                   request.CacheName,
		Topic:                       request.TopicName,
		ResumeAtTopicSequenceNumber: request.ResumeAtSequenceNumber,
	})
	if err != nil {
		cancel()
		return nil, momentoerrors.FromError(err)
	}

	return &Subscription{stream: stream, cancel: cancel}, nil
}

// Item blocks until the next message arrives and returns it. Heartbeats
// keeping the stream alive are consumed here and never surfaced. A
// payload with no binary data is delivered as a String, so an empty
// Bytes publish arrives as String(""). When the subscription has been
// closed or the server ends the stream, Item returns an error.
func (s *Subscription) Item() (*Item, error) {
	for {
		item, err := s.stream.Recv()
		if err != nil {
			return nil, momentoerrors.FromError(err)
		}
		if item.GetHeartbeat() {
			continue
		}

		value := item.GetValue()
		if value == nil {
			return nil, momentoerrors.UnknownErrorf("subscription item carried no value: %s", item.String())
		}
		if binary := value.GetBinary(); binary != nil {
			return &Item{Value: Bytes(binary), SequenceNumber: item.GetTopicSequenceNumber()}, nil
		}
		return &Item{Value: String(value.GetText()), SequenceNumber: item.GetTopicSequenceNumber()}, nil
	}
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.cancel()
}
