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

package leaderboard

import (
	"encoding/base64"
	"testing"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBuild(t *testing.T) {
	token := base64.URLEncoding.EncodeToString(
		[]byte(`{"api_key":"test-api-key","endpoint":"momento_endpoint"}`))
	provider, err := credentials.FromString(token)
	require.NoError(t, err)

	client, err := NewClientBuilder().
		Configuration(config.Laptop()).
		CredentialProvider(provider).
		WithNumConnections(3).
		Build()
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 3, client.dataPool.Len())
	assert.NotNil(t, client.controlConn)
}

func TestBuilderFailsToConnectWithoutEndpoints(t *testing.T) {
	client, err := NewClientBuilder().
		Configuration(config.Laptop()).
		CredentialProvider(credentials.Provider{}).
		Build()
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, momentoerrors.IsFailedToConnect(err))
}
