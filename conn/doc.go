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

// Package conn implements the five-state NXTCP connection state machine:
// Idle, Connecting, WaitWelcome, Ready and Failed. It owns the TCP socket,
// the wire codec instances and the connect/welcome/cool-down timers, and
// exposes a ready-state observer and a downstream-packet handler to
// package dispatch.
//
// Grounded on original_source/nervix/protocols/nxtcp/connection.py's
// NxtcpConnection: the same state table, the same evaluate_state-driven
// transitions, and the same cool-down/ping/welcome policies, re-expressed
// around a net.Conn and an eventloop.Loop instead of a raw non-blocking
// socket and a selectors.DefaultSelector.
package conn
