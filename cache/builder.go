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
	"time"

	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/dispatch"
	"github.com/momentohq/momento-go/momentoerrors"
)

// NewClientBuilder starts building a cache Client. Construction is
// staged: each phase exposes only the transition to the next, so a
// Client cannot be built without a default TTL, a configuration, and a
// credential provider — in that order. Only the terminal phase has
// Build.
//
//	client, err := cache.NewClientBuilder().
//		DefaultTTL(60 * time.Second).
//		Configuration(config.Laptop()).
//		CredentialProvider(provider).
//		Build()
func NewClientBuilder() BuilderNeedsDefaultTTL {
	return BuilderNeedsDefaultTTL{}
}

// BuilderNeedsDefaultTTL is the first builder phase.
type BuilderNeedsDefaultTTL struct{}

// DefaultTTL sets the time-to-live applied to items set without an
// explicit TTL.
func (BuilderNeedsDefaultTTL) DefaultTTL(ttl time.Duration) BuilderNeedsConfiguration {
	return BuilderNeedsConfiguration{defaultTTL: ttl}
}

// BuilderNeedsConfiguration is the builder phase awaiting a
// configuration.
type BuilderNeedsConfiguration struct {
	defaultTTL time.Duration
}

// Configuration sets the client configuration.
func (b BuilderNeedsConfiguration) Configuration(configuration config.Configuration) BuilderNeedsCredentialProvider {
	return BuilderNeedsCredentialProvider{
		defaultTTL:    b.defaultTTL,
		configuration: configuration,
	}
}

// BuilderNeedsCredentialProvider is the builder phase awaiting
// credentials.
type BuilderNeedsCredentialProvider struct {
	defaultTTL    time.Duration
	configuration config.Configuration
}

// CredentialProvider sets the credentials used to locate and
// authenticate with the service.
func (b BuilderNeedsCredentialProvider) CredentialProvider(credentialProvider credentials.Provider) BuilderReadyToBuild {
	return BuilderReadyToBuild{
		defaultTTL:         b.defaultTTL,
		configuration:      b.configuration,
		credentialProvider: credentialProvider,
	}
}

// BuilderReadyToBuild is the terminal builder phase.
type BuilderReadyToBuild struct {
	defaultTTL         time.Duration
	configuration      config.Configuration
	credentialProvider credentials.Provider
}

// WithNumConnections overrides the configured data plane channel count.
func (b BuilderReadyToBuild) WithNumConnections(numConnections uint32) BuilderReadyToBuild {
	b.configuration = b.configuration.WithNumChannels(numConnections)
	return b
}

// Build opens the data plane channel pool and the control plane channel
// and returns the Client. If any channel fails to establish, the whole
// build fails with CodeFailedToConnect and no client is returned.
func (b BuilderReadyToBuild) Build() (*Client, error) {
	if b.defaultTTL <= 0 {
		return nil, momentoerrors.InvalidArgumentErrorf("default TTL must be positive, got %v", b.defaultTTL)
	}

	agent := dispatch.UserAgent("cache")
	pool, controlConn, err := channel.Connect(b.credentialProvider, b.configuration, agent)
	if err != nil {
		return nil, err
	}

	return &Client{
		dataPool:      pool,
		controlConn:   controlConn,
		configuration: b.configuration,
		defaultTTL:    b.defaultTTL,
		logger:        b.configuration.Logger(),
	}, nil
}
