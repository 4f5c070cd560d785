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

// Package channel establishes gRPC channels to service endpoints and
// pools them for round-robin selection.
package channel

import (
	"crypto/tls"
	"strings"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/internal/interceptor"
	"github.com/momentohq/momento-go/momentoerrors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
)

const _defaultPort = "443"

// Dial opens a single channel to the given endpoint, wrapped with the
// header interceptor carrying the auth token and agent string.
//
// Endpoints produced by a credential provider are https URLs and are
// dialed with TLS on port 443. A bare host:port endpoint (loopback
// servers in tests) is dialed without TLS. The channel connects lazily;
// endpoint and channel setup errors still surface here, as
// CodeFailedToConnect.
func Dial(
	endpoint string,
	authToken string,
	agent string,
	grpcConfig config.GrpcConfiguration,
	logger *zap.Logger,
) (*grpc.ClientConn, error) {
	target, secure := parseEndpoint(endpoint)
	if target == "" {
		return nil, momentoerrors.FailedToConnectErrorf("endpoint %q has no host to connect to", endpoint)
	}

	options := []grpc.DialOption{
		grpc.WithUnaryInterceptor(interceptor.NewUnary(authToken, agent)),
		grpc.WithStreamInterceptor(interceptor.NewStream(authToken, agent)),
	}
	if secure {
		options = append(options, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	} else {
		options = append(options, grpc.WithInsecure())
	}
	if keepAliveTime := grpcConfig.KeepAliveTime(); keepAliveTime > 0 {
		options = append(options, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                keepAliveTime,
			Timeout:             grpcConfig.KeepAliveTimeout(),
			PermitWithoutStream: grpcConfig.KeepAlivePermitWithoutCalls(),
		}))
	}

	conn, err := grpc.Dial(target, options...)
	if err != nil {
		return nil, momentoerrors.FailedToConnectErrorf("failed to connect to %s: %v", target, err)
	}
	logger.Debug("opened channel", zap.String("target", target), zap.Bool("secure", secure))
	return conn, nil
}

func parseEndpoint(endpoint string) (target string, secure bool) {
	if strings.HasPrefix(endpoint, "https://") {
		target = strings.TrimPrefix(endpoint, "https://")
		if target == "" {
			return "", true
		}
		if !strings.Contains(target, ":") {
			target += ":" + _defaultPort
		}
		return target, true
	}
	return endpoint, false
}
