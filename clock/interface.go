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

package clock

import "time"

// Clock is the monotonic time source consumed by eventloop.Loop, conn.NxtcpConn
// and dispatch.Core. Handlers never call time.Now/time.After directly.
type Clock interface {
	// Now returns the clock's current instant.
	Now() time.Time
	// After returns a channel that receives the current time once d has
	// elapsed, mirroring time.After.
	After(d time.Duration) <-chan time.Time
	// Sleep blocks the calling goroutine for d (only meaningful for Real;
	// Fake.Sleep advances its own counter instead of blocking).
	Sleep(d time.Duration)
}

// Real is backed directly by the time package.
type Real struct{}

// New returns the real, wall-clock-backed Clock.
func New() Clock { return Real{} }

func (Real) Now() time.Time                  { return time.Now() }
func (Real) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (Real) Sleep(d time.Duration)           { time.Sleep(d) }
