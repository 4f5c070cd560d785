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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	_codeToErrorConstructor = map[Code]func(string, ...interface{}) error{
		CodeInvalidArgument:  InvalidArgumentErrorf,
		CodeFailedToConnect:  FailedToConnectErrorf,
		CodeUnknown:          UnknownErrorf,
		CodeDeadlineExceeded: DeadlineExceededErrorf,
		CodeNotFound:         NotFoundErrorf,
		CodeAlreadyExists:    AlreadyExistsErrorf,
		CodeInternal:         InternalErrorf,
		CodeUnavailable:      UnavailableErrorf,
	}
	_codeToIsErrorWithCode = map[Code]func(error) bool{
		CodeInvalidArgument:  IsInvalidArgument,
		CodeFailedToConnect:  IsFailedToConnect,
		CodeDeadlineExceeded: IsDeadlineExceeded,
		CodeNotFound:         IsNotFound,
		CodeAlreadyExists:    IsAlreadyExists,
		CodeUnavailable:      IsUnavailable,
	}
)

func TestErrorsString(t *testing.T) {
	for code, errorConstructor := range _codeToErrorConstructor {
		t.Run(code.String(), func(t *testing.T) {
			st, ok := errorConstructor("hello %d", 1).(*Status)
			require.True(t, ok)
			require.Equal(t, fmt.Sprintf("code:%s message:hello 1", code.String()), st.Error())
		})
	}
}

func TestErrorsCode(t *testing.T) {
	for code, errorConstructor := range _codeToErrorConstructor {
		t.Run(code.String(), func(t *testing.T) {
			require.Equal(t, code, FromError(errorConstructor("hello")).Code())
		})
	}
}

func TestIsErrorWithCode(t *testing.T) {
	for code, isErrorWithCode := range _codeToIsErrorWithCode {
		t.Run(code.String(), func(t *testing.T) {
			require.True(t, isErrorWithCode(_codeToErrorConstructor[code]("hello")))
			require.False(t, isErrorWithCode(errors.New("hello")))
		})
	}
}

func TestNewfOKReturnsNil(t *testing.T) {
	assert.Nil(t, Newf(CodeOK, "no error"))
}

func TestFromErrorNil(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Equal(t, CodeOK, FromError(nil).Code())
}

func TestFromErrorUnknownWrapping(t *testing.T) {
	cause := errors.New("network down")
	st := FromError(cause)
	require.NotNil(t, st)
	assert.Equal(t, CodeUnknown, st.Code())
	assert.Equal(t, cause, st.Unwrap())
}

func TestFromErrorGRPCStatusPassthrough(t *testing.T) {
	tests := []struct {
		grpcCode codes.Code
		want     Code
	}{
		{codes.DeadlineExceeded, CodeDeadlineExceeded},
		{codes.NotFound, CodeNotFound},
		{codes.AlreadyExists, CodeAlreadyExists},
		{codes.InvalidArgument, CodeInvalidArgument},
		{codes.Unavailable, CodeUnavailable},
		{codes.PermissionDenied, CodePermissionDenied},
		{codes.Unauthenticated, CodeUnauthenticated},
		{codes.Internal, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			err := status.Error(tt.grpcCode, "transport says no")
			st := FromError(err)
			require.NotNil(t, st)
			assert.Equal(t, tt.want, st.Code())
			assert.Contains(t, st.Message(), "transport says no")
		})
	}
}

func TestFromErrorUnrecognizedGRPCCode(t *testing.T) {
	err := status.Error(codes.Code(100), "weird response")
	st := FromError(err)
	require.NotNil(t, st)
	assert.Equal(t, CodeUnknown, st.Code())
	// The raw response is kept for diagnosis.
	assert.Contains(t, st.Message(), "weird response")
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "invalid-argument", CodeInvalidArgument.String())
	assert.Equal(t, "failed-to-connect", CodeFailedToConnect.String())
	assert.Equal(t, "99", Code(99).String())
}
