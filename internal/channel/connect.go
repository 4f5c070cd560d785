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

package channel

import (
	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// _dial is swapped out in tests to inject dial failures.
var _dial = func(
	endpoint string,
	authToken string,
	agent string,
	grpcConfig config.GrpcConfiguration,
	logger *zap.Logger,
) (*grpc.ClientConn, error) {
	return Dial(endpoint, authToken, agent, grpcConfig, logger)
}

// Connect opens the full channel set for a client: NumChannels data
// plane channels to the cache endpoint plus one control plane channel
// to the control endpoint, every one wrapped with the header
// interceptor. Connect fails fast: if any channel fails to establish,
// every channel opened so far is closed and no partial set is returned.
func Connect(
	credentialProvider credentials.Provider,
	configuration config.Configuration,
	agent string,
) (*Pool, *grpc.ClientConn, error) {
	pool, err := ConnectData(credentialProvider, configuration, agent)
	if err != nil {
		return nil, nil, err
	}

	grpcConfig := configuration.TransportStrategy().GrpcConfiguration()
	controlConn, err := _dial(
		credentialProvider.ControlEndpoint(),
		credentialProvider.AuthToken(),
		agent,
		grpcConfig,
		configuration.Logger(),
	)
	if err != nil {
		_ = pool.Close()
		return nil, nil, err
	}

	return pool, controlConn, nil
}

// ConnectData opens the data plane channel pool only: NumChannels
// channels to the cache endpoint, all wrapped with the header
// interceptor. Like Connect it fails fast, closing any channels opened
// before the failure.
func ConnectData(
	credentialProvider credentials.Provider,
	configuration config.Configuration,
	agent string,
) (*Pool, error) {
	grpcConfig := configuration.TransportStrategy().GrpcConfiguration()
	logger := configuration.Logger()
	authToken := credentialProvider.AuthToken()

	numChannels := grpcConfig.NumChannels()
	if numChannels == 0 {
		numChannels = 1
	}

	conns := make([]*grpc.ClientConn, 0, numChannels)
	for i := uint32(0); i < numChannels; i++ {
		conn, err := _dial(credentialProvider.CacheEndpoint(), authToken, agent, grpcConfig, logger)
		if err != nil {
			for _, opened := range conns {
				_ = opened.Close()
			}
			return nil, err
		}
		conns = append(conns, conn)
	}

	return NewPool(conns), nil
}
