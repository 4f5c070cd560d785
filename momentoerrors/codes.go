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

package momentoerrors

import "strconv"

const (
	// CodeOK means no error; returned on success.
	CodeOK Code = 0

	// CodeCancelled means the operation was cancelled, typically by the
	// caller.
	CodeCancelled Code = 1

	// CodeUnknown means an unknown error. Responses that carry a status
	// the SDK does not recognize are converted to this code with the raw
	// response retained in the message.
	CodeUnknown Code = 2

	// CodeInvalidArgument means the caller specified an invalid argument,
	// for example a malformed API token or an empty cache name. Unlike
	// CodeFailedPrecondition, the argument is problematic regardless of
	// the state of the service.
	CodeInvalidArgument Code = 3

	// CodeDeadlineExceeded means the client-side deadline expired before
	// the operation could complete.
	CodeDeadlineExceeded Code = 4

	// CodeNotFound means a requested entity (e.g. a cache) was not found.
	CodeNotFound Code = 5

	// CodeAlreadyExists means the entity the caller attempted to create
	// already exists.
	CodeAlreadyExists Code = 6

	// CodePermissionDenied means the caller does not have permission to
	// execute the specified operation.
	CodePermissionDenied Code = 7

	// CodeResourceExhausted means some resource has been exhausted,
	// perhaps a per-account quota.
	CodeResourceExhausted Code = 8

	// CodeFailedPrecondition means the operation was rejected because the
	// system is not in a state required for the operation's execution.
	CodeFailedPrecondition Code = 9

	// CodeAborted means the operation was aborted, typically due to a
	// concurrency issue.
	CodeAborted Code = 10

	// CodeOutOfRange means the operation was attempted past the valid
	// range.
	CodeOutOfRange Code = 11

	// CodeUnimplemented means the operation is not implemented or not
	// enabled on the service.
	CodeUnimplemented Code = 12

	// CodeInternal means an internal service error.
	CodeInternal Code = 13

	// CodeUnavailable means the service is currently unavailable. This is
	// most likely a transient condition.
	CodeUnavailable Code = 14

	// CodeDataLoss means unrecoverable data loss or corruption.
	CodeDataLoss Code = 15

	// CodeUnauthenticated means the request does not have valid
	// authentication credentials for the operation.
	CodeUnauthenticated Code = 16

	// CodeFailedToConnect means a gRPC channel to the service could not
	// be established while building a client. A client build fails
	// entirely on this code; no partially connected client is returned.
	CodeFailedToConnect Code = 17
)

var (
	_codeToString = map[Code]string{
		CodeOK:                 "ok",
		CodeCancelled:          "cancelled",
		CodeUnknown:            "unknown",
		CodeInvalidArgument:    "invalid-argument",
		CodeDeadlineExceeded:   "deadline-exceeded",
		CodeNotFound:           "not-found",
		CodeAlreadyExists:      "already-exists",
		CodePermissionDenied:   "permission-denied",
		CodeResourceExhausted:  "resource-exhausted",
		CodeFailedPrecondition: "failed-precondition",
		CodeAborted:            "aborted",
		CodeOutOfRange:         "out-of-range",
		CodeUnimplemented:      "unimplemented",
		CodeInternal:           "internal",
		CodeUnavailable:        "unavailable",
		CodeDataLoss:           "data-loss",
		CodeUnauthenticated:    "unauthenticated",
		CodeFailedToConnect:    "failed-to-connect",
	}
)

// Code represents the type of error for a call against the service.
//
// With the exception of CodeFailedToConnect, which is produced locally
// while building a client, these codes match gRPC status codes.
// https://godoc.org/google.golang.org/grpc/codes#Code
type Code int

// String returns the string representation of the Code.
func (c Code) String() string {
	s, ok := _codeToString[c]
	if ok {
		return s
	}
	return strconv.Itoa(int(c))
}
