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

import "time"

const _defaultNumChannels = 1

// Laptop is a development configuration with a generous per-call timeout
// suitable for high-latency environments such as a developer workstation.
func Laptop() Configuration {
	return New(NewTransportStrategy(
		NewGrpcConfiguration(_defaultNumChannels, 15*time.Second).
			WithKeepAlive(5*time.Second, time.Second, true),
	))
}

// InRegion is a production configuration with a tight per-call timeout
// for clients deployed in the same region as the service.
func InRegion() Configuration {
	return New(NewTransportStrategy(
		NewGrpcConfiguration(_defaultNumChannels, 1100*time.Millisecond).
			WithKeepAlive(5*time.Second, time.Second, true),
	))
}
