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

package cache

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentialProvider(t *testing.T) credentials.Provider {
	token := base64.URLEncoding.EncodeToString(
		[]byte(`{"api_key":"test-api-key","endpoint":"momento_endpoint"}`))
	provider, err := credentials.FromString(token)
	require.NoError(t, err)
	return provider
}

func TestBuilderBuild(t *testing.T) {
	client, err := NewClientBuilder().
		DefaultTTL(60 * time.Second).
		Configuration(config.Laptop()).
		CredentialProvider(testCredentialProvider(t)).
		Build()
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 1, client.dataPool.Len())
	assert.Equal(t, 60*time.Second, client.defaultTTL)
}

func TestBuilderWithNumConnections(t *testing.T) {
	client, err := NewClientBuilder().
		DefaultTTL(time.Minute).
		Configuration(config.Laptop()).
		CredentialProvider(testCredentialProvider(t)).
		WithNumConnections(4).
		Build()
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 4, client.dataPool.Len())
	assert.Equal(t, uint32(4),
		client.Configuration().TransportStrategy().GrpcConfiguration().NumChannels())
}

func TestBuilderRejectsNonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		client, err := NewClientBuilder().
			DefaultTTL(ttl).
			Configuration(config.Laptop()).
			CredentialProvider(testCredentialProvider(t)).
			Build()
		require.Error(t, err)
		assert.Nil(t, client)
		assert.True(t, momentoerrors.IsInvalidArgument(err))
	}
}

func TestBuilderFailsToConnectWithoutEndpoints(t *testing.T) {
	// A zero-value provider has no endpoints, so the very first dial
	// fails and no client is returned.
	client, err := NewClientBuilder().
		DefaultTTL(time.Minute).
		Configuration(config.Laptop()).
		CredentialProvider(credentials.Provider{}).
		Build()
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, momentoerrors.IsFailedToConnect(err))
}

func TestBuilderCloseCombinesChannels(t *testing.T) {
	client, err := NewClientBuilder().
		DefaultTTL(time.Minute).
		Configuration(config.Laptop()).
		CredentialProvider(testCredentialProvider(t)).
		WithNumConnections(2).
		Build()
	require.NoError(t, err)
	require.NoError(t, client.Close())
}
