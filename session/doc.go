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

// Package session implements the application-facing handles layered on
// top of a dispatch.Core: Channel is the entry point, Session and
// Subscription are the two long-lived handles, RequestStub/Request is
// the one-shot request pair, and Call/Interest/Post represent inbound
// call and interest deliveries and the replies sent to them.
//
// Every handle here holds only a weak, non-owning reference to its
// dispatch.Core, per spec.md §5's "Shared-resource policy": the socket,
// codec and all dispatcher state are owned exclusively by the event
// loop, handles are messaging collaborators only.
//
// Grounded on original_source/nervix/channel.py's Channel, Subscription,
// RequestStub, Request, Session, Message, Call, Interest and Post
// classes.
package session
