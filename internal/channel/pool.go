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

package channel

import (
	internalsync "github.com/momentohq/momento-go/internal/sync"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
)

// Pool is a fixed-size ordered set of channels to the same endpoint,
// selected round-robin per call. The cursor is owned by the Pool
// instance: unrelated clients never share one.
type Pool struct {
	conns []*grpc.ClientConn
	next  *atomic.Uint64
	close internalsync.OnceWithError
}

// NewPool returns a Pool over the given channels. The slice must be
// non-empty; the pool takes ownership of the channels and closes them
// on Close.
func NewPool(conns []*grpc.ClientConn) *Pool {
	return &Pool{
		conns: conns,
		next:  atomic.NewUint64(0),
	}
}

// Next returns the next channel in round-robin order. It is safe for
// concurrent use: a single atomic increment selects the channel, and the
// cursor wraps via modular arithmetic.
func (p *Pool) Next() *grpc.ClientConn {
	return p.conns[(p.next.Inc()-1)%uint64(len(p.conns))]
}

// Len returns the number of channels in the pool.
func (p *Pool) Len() int {
	return len(p.conns)
}

// Close closes every channel in the pool, combining any close errors.
// Close is idempotent: later calls return the first call's result.
func (p *Pool) Close() error {
	return p.close.Do(func() error {
		var err error
		for _, conn := range p.conns {
			err = multierr.Append(err, conn.Close())
		}
		return err
	})
}
