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

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// _grpcCodeToCode maps all gRPC Codes to their corresponding Code.
//
// Transport errors pass through this mapping untouched: the SDK never
// reinterprets or retries them. A gRPC code outside this map converts to
// CodeUnknown with the raw status message retained.
var _grpcCodeToCode = map[codes.Code]Code{
	codes.OK:                 CodeOK,
	codes.Canceled:           CodeCancelled,
	codes.Unknown:            CodeUnknown,
	codes.InvalidArgument:    CodeInvalidArgument,
	codes.DeadlineExceeded:   CodeDeadlineExceeded,
	codes.NotFound:           CodeNotFound,
	codes.AlreadyExists:      CodeAlreadyExists,
	codes.PermissionDenied:   CodePermissionDenied,
	codes.ResourceExhausted:  CodeResourceExhausted,
	codes.FailedPrecondition: CodeFailedPrecondition,
	codes.Aborted:            CodeAborted,
	codes.OutOfRange:         CodeOutOfRange,
	codes.Unimplemented:      CodeUnimplemented,
	codes.Internal:           CodeInternal,
	codes.Unavailable:        CodeUnavailable,
	codes.DataLoss:           CodeDataLoss,
	codes.Unauthenticated:    CodeUnauthenticated,
}

func fromGRPCError(err error) (*Status, bool) {
	grpcStatus, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	code, ok := _grpcCodeToCode[grpcStatus.Code()]
	if !ok {
		return &Status{
			code: CodeUnknown,
			err:  &wrapError{err: err},
		}, true
	}
	if code == CodeOK {
		return nil, true
	}
	return &Status{
		code: code,
		err:  &wrapError{err: err},
	}, true
}
