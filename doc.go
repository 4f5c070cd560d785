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

// Package momento is the Go client SDK for the Momento service.
//
// The SDK exposes one client per feature surface: package cache for
// scalar cache operations and cache administration, package topics for
// pub/sub publish and subscribe, and package leaderboard for ranking
// operations. All three clients share the same connection and dispatch
// core: a CredentialProvider (package credentials) that turns an API
// token into service endpoints, an immutable Configuration (package
// config), and a staged builder that opens a fixed pool of gRPC channels
// to the data plane plus a single control plane channel, attaching
// authentication and client identification metadata to every call.
//
// Errors returned by every client are *momentoerrors.Status values
// carrying a Code that callers can branch on.
package momento
