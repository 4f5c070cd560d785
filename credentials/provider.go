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

// Package credentials parses Momento API tokens into the information the
// clients need to establish a connection to and authenticate with the
// service. No network I/O happens here; it is pure parsing and endpoint
// derivation.
package credentials

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/momentohq/momento-go/momentoerrors"
)

const _tokenParseErrorMessage = "could not parse token: please ensure a valid token was entered correctly"

// v1Token is the decoded JSON payload of an API token.
type v1Token struct {
	APIKey   string `json:"api_key"`
	Endpoint string `json:"endpoint"`
}

// Provider carries the auth token and the service endpoints derived from
// an API token. It is an immutable value; transforms such as
// WithBaseEndpoint return a new Provider.
type Provider struct {
	authToken       string
	controlEndpoint string
	cacheEndpoint   string
	tokenEndpoint   string
}

// FromEnvironmentVariable returns a Provider using an API token stored in
// the named environment variable. An unset variable is an
// invalid-argument error, never a silent default.
func FromEnvironmentVariable(name string) (Provider, error) {
	token, ok := os.LookupEnv(name)
	if !ok {
		return Provider{}, momentoerrors.InvalidArgumentErrorf("env var %s must be set", name)
	}
	return decodeAuthToken(token)
}

// FromString returns a Provider from the provided API token.
func FromString(token string) (Provider, error) {
	if token == "" {
		return Provider{}, momentoerrors.InvalidArgumentErrorf("auth token string cannot be empty")
	}
	return decodeAuthToken(token)
}

// WithBaseEndpoint returns a new Provider with the control, cache, and
// token endpoints rederived from the given base host. The auth token is
// unchanged.
func (p Provider) WithBaseEndpoint(endpoint string) Provider {
	return Provider{
		authToken:       p.authToken,
		controlEndpoint: httpsEndpoint(controlEndpoint(endpoint)),
		cacheEndpoint:   httpsEndpoint(cacheEndpoint(endpoint)),
		tokenEndpoint:   httpsEndpoint(tokenEndpoint(endpoint)),
	}
}

// AuthToken returns the auth token presented to the service on every call.
func (p Provider) AuthToken() string {
	return p.authToken
}

// ControlEndpoint returns the control plane endpoint.
func (p Provider) ControlEndpoint() string {
	return p.controlEndpoint
}

// CacheEndpoint returns the data plane endpoint.
func (p Provider) CacheEndpoint() string {
	return p.cacheEndpoint
}

// TokenEndpoint returns the token issuance endpoint.
func (p Provider) TokenEndpoint() string {
	return p.tokenEndpoint
}

// String implements fmt.Stringer. The auth token is always redacted so
// that a Provider can never leak the secret through logs or debug dumps.
func (p Provider) String() string {
	return fmt.Sprintf(
		"credentials.Provider{authToken: <redacted>, controlEndpoint: %s, cacheEndpoint: %s, tokenEndpoint: %s}",
		p.controlEndpoint, p.cacheEndpoint, p.tokenEndpoint,
	)
}

// Format implements fmt.Formatter. It routes every verb through String so
// that %v, %+v, and %#v never render the auth token.
func (p Provider) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", p.String())
	default:
		fmt.Fprint(f, p.String())
	}
}

func decodeAuthToken(token string) (Provider, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Provider{}, momentoerrors.InvalidArgumentErrorf(_tokenParseErrorMessage)
	}

	var decoded v1Token
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Provider{}, momentoerrors.InvalidArgumentErrorf(_tokenParseErrorMessage)
	}
	if decoded.APIKey == "" || decoded.Endpoint == "" {
		return Provider{}, momentoerrors.InvalidArgumentErrorf(_tokenParseErrorMessage)
	}

	return Provider{
		authToken:       decoded.APIKey,
		controlEndpoint: httpsEndpoint(controlEndpoint(decoded.Endpoint)),
		cacheEndpoint:   httpsEndpoint(cacheEndpoint(decoded.Endpoint)),
		tokenEndpoint:   httpsEndpoint(tokenEndpoint(decoded.Endpoint)),
	}, nil
}

func controlEndpoint(endpoint string) string {
	return "control." + endpoint
}

func cacheEndpoint(endpoint string) string {
	return "cache." + endpoint
}

func tokenEndpoint(endpoint string) string {
	return "token." + endpoint
}

func httpsEndpoint(hostname string) string {
	return "https://" + hostname
}
