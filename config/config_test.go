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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWithersReturnCopies(t *testing.T) {
	base := Laptop()

	modified := base.WithClientTimeout(time.Second).WithNumChannels(4)
	assert.Equal(t, time.Second, modified.ClientTimeout())
	assert.Equal(t, uint32(4), modified.NumChannels())

	// The base configuration is unchanged.
	assert.Equal(t, 15*time.Second, base.ClientTimeout())
	assert.Equal(t, uint32(1), base.NumChannels())
}

func TestDefaultLoggerIsNop(t *testing.T) {
	assert.NotNil(t, Laptop().Logger())

	logger := zap.NewExample()
	assert.Equal(t, logger, Laptop().WithLogger(logger).Logger())
}

func TestPrebuiltConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		timeout time.Duration
	}{
		{"laptop", Laptop(), 15 * time.Second},
		{"in-region", InRegion(), 1100 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.timeout, tt.cfg.ClientTimeout())
			assert.Equal(t, uint32(1), tt.cfg.NumChannels())
			grpcConfig := tt.cfg.TransportStrategy().GrpcConfiguration()
			assert.Equal(t, 5*time.Second, grpcConfig.KeepAliveTime())
			assert.Equal(t, time.Second, grpcConfig.KeepAliveTimeout())
			assert.True(t, grpcConfig.KeepAlivePermitWithoutCalls())
		})
	}
}
