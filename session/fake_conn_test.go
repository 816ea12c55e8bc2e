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

package session_test

import (
	"context"

	"github.com/nabbar/nxtcp/conn"
)

// fakeConn is a conn.Conn test double driven directly by the test, with no
// socket or event loop behind it.
type fakeConn struct {
	readyHandler      func(bool)
	downstreamHandler func(interface{})
	sent              []interface{}
	ready             bool
}

func (f *fakeConn) Start(context.Context) {}
func (f *fakeConn) Stop()                 {}

func (f *fakeConn) AddReadyHandler(fn func(ready bool)) uint64 {
	f.readyHandler = fn
	fn(f.ready)
	return 1
}

func (f *fakeConn) RemoveReadyHandler(uint64) bool { f.readyHandler = nil; return true }

func (f *fakeConn) SetDownstreamHandler(fn func(pkt interface{})) {
	f.downstreamHandler = fn
}

func (f *fakeConn) SendVerb(v interface{}) error {
	f.sent = append(f.sent, v)
	return nil
}

func (f *fakeConn) State() conn.State {
	if f.ready {
		return conn.StateReady
	}
	return conn.StateIdle
}

func (f *fakeConn) Ready() bool { return f.ready }

func (f *fakeConn) simulateReady(ready bool) {
	f.ready = ready
	if f.readyHandler != nil {
		f.readyHandler(ready)
	}
}

func (f *fakeConn) simulateIncoming(pkt interface{}) {
	if f.downstreamHandler != nil {
		f.downstreamHandler(pkt)
	}
}

func (f *fakeConn) lastSent() interface{} {
	if len(f.sent) == 0 {
		return nil
	}
	return f.sent[len(f.sent)-1]
}
