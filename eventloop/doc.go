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

// Package eventloop gives package conn a single goroutine on which every
// state transition, timer firing and inbound-packet dispatch runs serially,
// so the connection state machine never needs its own locking.
//
// It is the Go-idiomatic rendering of nervix/mainloop/mainloop.py's
// selector-driven Mainloop: where the Python original calls
// selectors.DefaultSelector().select() to wait on raw file descriptors,
// Go's netpoller already does that job inside a blocking net.Conn.Read/Write
// call on its own goroutine. The adapter here keeps only the two
// capabilities package conn actually consumes from the original: an
// arbitrary-work queue that a read-pump or write-pump goroutine posts
// completion callbacks onto (the equivalent of an IO readiness handler
// firing), and a one-shot monotonic timer keyed off a clock.Clock.
package eventloop
