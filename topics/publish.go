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

// PublishRequest publishes a value to a topic.
type PublishRequest struct {
	// CacheName is the cache the topic belongs to.
	CacheName string
	// TopicName is the topic to publish to.
	TopicName string
	// Value is the payload: a String or a Bytes.
	Value Value
}

// PublishResponse is the response to a successful Publish.
type PublishResponse struct{}

// Publish publishes a value to a topic. Topics need no prior creation;
// publishing to a new topic name creates it.
func (c *Client) Publish(ctx context.Context, request *PublishRequest) (*PublishResponse, error) {
	if err := dispatch.ValidateName(request.TopicName, "topic name"); err != nil {
		return nil, err
	}
	value, err := topicValue(request.Value)
	if err != nil {
		return nil, err
	}

	ctx, cancel, err := dispatch.Prepare(ctx, request.CacheName, c.deadline())
	if err != nil {
		return nil, err
	}
	defer cancel()

	_, err = c.nextPubsubClient().Publish(ctx, &pubsubpb.PublishRequest{
		CacheName: request.CacheName,
		Topic:     request.TopicName,
		Value:     value,
	})
	if err != nil {
		return nil, momentoerrors.FromError(err)
	}
	return &PublishResponse{}, nil
}
