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
	"testing"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/momentoerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		target   string
		secure   bool
	}{
		{"https://cache.momento_endpoint", "cache.momento_endpoint:443", true},
		{"https://cache.example.com:8443", "cache.example.com:8443", true},
		{"localhost:50051", "localhost:50051", false},
		{"https://", "", true},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			target, secure := parseEndpoint(tt.endpoint)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.secure, secure)
		})
	}
}

func TestDialSecureEndpoint(t *testing.T) {
	grpcConfig := config.Laptop().TransportStrategy().GrpcConfiguration()
	conn, err := Dial("https://cache.momento_endpoint", "token", "agent", grpcConfig, zap.NewNop())
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, "cache.momento_endpoint:443", conn.Target())
}

func TestDialEmptyEndpoint(t *testing.T) {
	grpcConfig := config.Laptop().TransportStrategy().GrpcConfiguration()
	for _, endpoint := range []string{"", "https://"} {
		conn, err := Dial(endpoint, "token", "agent", grpcConfig, zap.NewNop())
		require.Error(t, err)
		assert.Nil(t, conn)
		assert.True(t, momentoerrors.IsFailedToConnect(err))
	}
}
