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
	"github.com/momentohq/momento-go/config"
	"github.com/momentohq/momento-go/credentials"
	"github.com/momentohq/momento-go/internal/channel"
	"github.com/momentohq/momento-go/internal/dispatch"
)

// NewClientBuilder starts building a leaderboard Client. Construction
// is staged: a configuration, then a credential provider, then Build.
func NewClientBuilder() BuilderNeedsConfiguration {
	return BuilderNeedsConfiguration{}
}

// BuilderNeedsConfiguration is the first builder phase.
type BuilderNeedsConfiguration struct{}

// Configuration sets the client configuration.
func (BuilderNeedsConfiguration) Configuration(configuration config.Configuration) BuilderNeedsCredentialProvider {
	return BuilderNeedsCredentialProvider{configuration: configuration}
}

// BuilderNeedsCredentialProvider is the builder phase awaiting
// credentials.
type BuilderNeedsCredentialProvider struct {
	configuration config.Configuration
}

// CredentialProvider sets the credentials used to locate and
// authenticate with the service.
func (b BuilderNeedsCredentialProvider) CredentialProvider(credentialProvider credentials.Provider) BuilderReadyToBuild {
	return BuilderReadyToBuild{
		configuration:      b.configuration,
		credentialProvider: credentialProvider,
	}
}

// BuilderReadyToBuild is the terminal builder phase.
type BuilderReadyToBuild struct {
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
	agent := dispatch.UserAgent("leaderboard")
	pool, controlConn, err := channel.Connect(b.credentialProvider, b.configuration, agent)
	if err != nil {
		return nil, err
	}

	return &Client{
		dataPool:      pool,
		controlConn:   controlConn,
		configuration: b.configuration,
		logger:        b.configuration.Logger(),
	}, nil
}
