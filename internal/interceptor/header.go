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

// Package interceptor attaches authentication and client identification
// metadata to every outgoing call on a channel. It never inspects or
// alters the call payload.
package interceptor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// AuthorizationHeader carries the auth token on every call.
	AuthorizationHeader = "authorization"
	// AgentHeader carries the client identification string
	// (product, client type, and SDK version) on every call.
	AgentHeader = "agent"
)

// NewUnary returns a unary client interceptor that appends the
// authorization and agent headers to the outgoing metadata.
func NewUnary(authToken string, agent string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(withHeaders(ctx, authToken, agent), method, req, reply, cc, opts...)
	}
}

// NewStream returns a stream client interceptor that appends the
// authorization and agent headers to the outgoing metadata.
func NewStream(authToken string, agent string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		return streamer(withHeaders(ctx, authToken, agent), desc, cc, method, opts...)
	}
}

func withHeaders(ctx context.Context, authToken string, agent string) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		AuthorizationHeader, authToken,
		AgentHeader, agent,
	)
}
