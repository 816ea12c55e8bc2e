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

package eventloop

import (
	"context"
	"time"
)

// Loop serializes arbitrary work and timer callbacks onto one goroutine.
// package conn posts to it from its dial/read-pump/write-pump goroutines and
// arms timers on it for the connect/welcome/cool-down deadlines; every
// callback it invokes therefore runs without racing any other callback.
type Loop interface {
	// Run executes posted work and due timers until ctx is canceled or
	// Shutdown is called. It returns ctx.Err() in the former case, nil in
	// the latter. Run is not reentrant: call it from exactly one goroutine.
	Run(ctx context.Context) error

	// Shutdown unblocks a running Run after at most one more cycle.
	Shutdown()

	// Post enqueues fn to run on the loop goroutine. Safe to call from any
	// goroutine, including from within a callback already running on the
	// loop.
	Post(fn func())

	// AfterFunc arms a one-shot timer that runs fn on the loop goroutine
	// once d has elapsed on the Loop's clock. The returned Timer can be
	// stopped before it fires.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a pending AfterFunc callback.
type Timer interface {
	// Stop cancels the timer. It reports true if the callback had not yet
	// run or been stopped, false otherwise.
	Stop() bool
}
