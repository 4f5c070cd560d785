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

// Package config holds client configuration: per-call timeout, channel
// pool sizing, and transport tuning. A Configuration is an immutable
// value; the With* methods return modified copies.
package config

import (
	"time"

	"go.uber.org/zap"
)

// Configuration is the top level client configuration. Zero values are
// not useful; start from one of the prebuilt configurations (Laptop,
// InRegion) and derive from there.
type Configuration struct {
	transportStrategy TransportStrategy
	logger            *zap.Logger
}

// New returns a Configuration wrapping the given transport strategy.
func New(transportStrategy TransportStrategy) Configuration {
	return Configuration{transportStrategy: transportStrategy}
}

// TransportStrategy returns the transport strategy.
func (c Configuration) TransportStrategy() TransportStrategy {
	return c.transportStrategy
}

// ClientTimeout returns the per-call timeout. Every call's absolute
// deadline is computed from this value at call preparation time.
func (c Configuration) ClientTimeout() time.Duration {
	return c.transportStrategy.grpc.deadline
}

// NumChannels returns the number of data plane channels a client built
// with this configuration will open.
func (c Configuration) NumChannels() uint32 {
	return c.transportStrategy.grpc.numChannels
}

// Logger returns the configured logger, or a no-op logger if none was
// set.
func (c Configuration) Logger() *zap.Logger {
	if c.logger == nil {
		return zap.NewNop()
	}
	return c.logger
}

// WithTransportStrategy returns a copy of the Configuration with the
// given transport strategy.
func (c Configuration) WithTransportStrategy(transportStrategy TransportStrategy) Configuration {
	c.transportStrategy = transportStrategy
	return c
}

// WithClientTimeout returns a copy of the Configuration with the given
// per-call timeout.
func (c Configuration) WithClientTimeout(timeout time.Duration) Configuration {
	c.transportStrategy.grpc.deadline = timeout
	return c
}

// WithNumChannels returns a copy of the Configuration with the given
// data plane channel count.
func (c Configuration) WithNumChannels(numChannels uint32) Configuration {
	c.transportStrategy.grpc.numChannels = numChannels
	return c
}

// WithLogger returns a copy of the Configuration with the given logger.
func (c Configuration) WithLogger(logger *zap.Logger) Configuration {
	c.logger = logger
	return c
}

// TransportStrategy selects and tunes the underlying transport. gRPC is
// the only transport today.
type TransportStrategy struct {
	grpc GrpcConfiguration
}

// NewTransportStrategy returns a TransportStrategy wrapping the given
// gRPC configuration.
func NewTransportStrategy(grpc GrpcConfiguration) TransportStrategy {
	return TransportStrategy{grpc: grpc}
}

// GrpcConfiguration returns the gRPC configuration.
func (s TransportStrategy) GrpcConfiguration() GrpcConfiguration {
	return s.grpc
}

// GrpcConfiguration tunes the gRPC channels a client opens.
type GrpcConfiguration struct {
	numChannels                 uint32
	deadline                    time.Duration
	keepAliveTime               time.Duration
	keepAliveTimeout            time.Duration
	keepAlivePermitWithoutCalls bool
}

// NewGrpcConfiguration returns a GrpcConfiguration with the given
// channel count and per-call timeout.
func NewGrpcConfiguration(numChannels uint32, deadline time.Duration) GrpcConfiguration {
	return GrpcConfiguration{
		numChannels: numChannels,
		deadline:    deadline,
	}
}

// NumChannels returns the number of data plane channels to open.
func (g GrpcConfiguration) NumChannels() uint32 {
	return g.numChannels
}

// Deadline returns the per-call timeout.
func (g GrpcConfiguration) Deadline() time.Duration {
	return g.deadline
}

// KeepAliveTime returns the interval at which keepalive pings are sent,
// or zero if keepalive is disabled.
func (g GrpcConfiguration) KeepAliveTime() time.Duration {
	return g.keepAliveTime
}

// KeepAliveTimeout returns how long to wait for a keepalive ping
// acknowledgement before closing the channel.
func (g GrpcConfiguration) KeepAliveTimeout() time.Duration {
	return g.keepAliveTimeout
}

// KeepAlivePermitWithoutCalls reports whether keepalive pings are sent
// even when there are no in-flight calls.
func (g GrpcConfiguration) KeepAlivePermitWithoutCalls() bool {
	return g.keepAlivePermitWithoutCalls
}

// WithKeepAlive returns a copy of the GrpcConfiguration with keepalive
// pings enabled at the given interval and timeout.
func (g GrpcConfiguration) WithKeepAlive(interval, timeout time.Duration, permitWithoutCalls bool) GrpcConfiguration {
	g.keepAliveTime = interval
	g.keepAliveTimeout = timeout
	g.keepAlivePermitWithoutCalls = permitWithoutCalls
	return g
}
