/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package conn

import (
	"context"
	"net"
)

// Dialer abstracts the TCP dial so tests can substitute net.Pipe or a
// scripted failure without opening a real socket. do_connect in the
// original spawns a non-blocking connect_ex and polls readiness; Go's
// DialContext already blocks a dedicated goroutine instead, which is
// posted back to the loop once it resolves.
type Dialer interface {
	DialContext(ctx context.Context, address string) (net.Conn, error)
}

type netDialer struct {
	d net.Dialer
}

// NewDialer returns a Dialer backed by the standard library's net.Dialer,
// connecting over tcp.
func NewDialer() Dialer {
	return netDialer{}
}

func (n netDialer) DialContext(ctx context.Context, address string) (net.Conn, error) {
	return n.d.DialContext(ctx, "tcp", address)
}

// closerFunc adapts a plain func() error to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// timerCloser adapts an eventloop.Timer to io.Closer so it can be
// registered alongside the socket in a per-attempt mapcloser.Closer.
type timerCloser struct {
	stop func() bool
}

func (t timerCloser) Close() error {
	t.stop()
	return nil
}
