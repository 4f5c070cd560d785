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
	"encoding/base64"
	"testing"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func testProvider(t *testing.T) credentials.Provider {
	token := base64.URLEncoding.EncodeToString(
		[]byte(`{"api_key":"test-api-key","endpoint":"momento_endpoint"}`))
	provider, err := credentials.FromString(token)
	require.NoError(t, err)
	return provider
}

// stubDial replaces _dial for the duration of the test. failAt is the
// 1-based call number that fails; every other call opens a real lazy
// channel, all of which are recorded.
func stubDial(t *testing.T, failAt int) *[]*grpc.ClientConn {
	opened := &[]*grpc.ClientConn{}
	calls := 0
	previous := _dial
	_dial = func(
		endpoint string,
		authToken string,
		agent string,
		grpcConfig config.GrpcConfiguration,
		logger *zap.Logger,
	) (*grpc.ClientConn, error) {
		calls++
		if calls == failAt {
			return nil, momentoerrors.FailedToConnectErrorf("failed to connect to %s", endpoint)
		}
		conn, err := Dial("localhost:50051", authToken, agent, grpcConfig, logger)
		require.NoError(t, err)
		*opened = append(*opened, conn)
		return conn, nil
	}
	t.Cleanup(func() { _dial = previous })
	return opened
}

// requireClosed asserts every recorded channel was already closed: a
// second Close on a closed grpc channel reports an error.
func requireClosed(t *testing.T, conns []*grpc.ClientConn) {
	for i, conn := range conns {
		assert.Error(t, conn.Close(), "channel %d was left open", i)
	}
}

func TestConnectDataMidPoolFailureClosesOpenedChannels(t *testing.T) {
	opened := stubDial(t, 3)

	configuration := config.Laptop().WithNumChannels(4)
	pool, err := ConnectData(testProvider(t), configuration, "agent")
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.True(t, momentoerrors.IsFailedToConnect(err))

	// The two channels dialed before the failure must not leak.
	require.Len(t, *opened, 2)
	requireClosed(t, *opened)
}

func TestConnectControlFailureClosesDataPool(t *testing.T) {
	// Two data dials succeed; the control dial (third call) fails.
	opened := stubDial(t, 3)

	configuration := config.Laptop().WithNumChannels(2)
	pool, controlConn, err := Connect(testProvider(t), configuration, "agent")
	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Nil(t, controlConn)
	assert.True(t, momentoerrors.IsFailedToConnect(err))

	require.Len(t, *opened, 2)
	requireClosed(t, *opened)
}

func TestConnectOpensPoolAndControl(t *testing.T) {
	opened := stubDial(t, 0)

	configuration := config.Laptop().WithNumChannels(2)
	pool, controlConn, err := Connect(testProvider(t), configuration, "agent")
	require.NoError(t, err)
	defer pool.Close()
	defer controlConn.Close()

	assert.Equal(t, 2, pool.Len())
	require.Len(t, *opened, 3)
}
