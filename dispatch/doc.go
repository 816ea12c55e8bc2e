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

// Package dispatch implements Core, the verb dispatcher sitting between a
// conn.Conn and the high-level handles in package session: the outgoing
// backlog and auto-resend set, the messageref allocator, and the per-name
// call/interest handler registries.
//
// Core owns no goroutine of its own. It is driven entirely by conn.Conn's
// ready and downstream callbacks, so every method on it runs on whatever
// goroutine conn.Conn invokes those callbacks from (the connection's
// eventloop.Loop goroutine) -- the same single-threaded invariant
// package conn relies on, and the one spec.md's concurrency model
// describes as "dispatcher state are owned exclusively by the event
// loop; handles hold weak, non-owning references to the dispatcher".
//
// Grounded on original_source/nervix/channel.py's Core class.
package dispatch
