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

// Package wire implements the NXTCP length-prefixed frame codec: every
// packet on the wire is uint32 length (big-endian) | uint8 type | length
// bytes of body, per spec.md §4.1. It is adapted in shape from
// nervix/util/{encoder,decoder}.py's chunk-buffer/commit-pointer design
// (BaseEncoder.fetch_chunk/commit, BaseDecoder.get/commit) and from
// nervix/protocols/nxtcp/{encoder,decoder}.py's per-packet-type body
// layouts, re-expressed directly against verb.Verb instead of a
// protocol-local packet hierarchy.
//
// Encoder queues complete framed byte sequences and drains them into an
// io.Writer respecting partial writes; Decoder accumulates arbitrary byte
// chunks and exposes a single TryDecode operation that returns either a
// decoded verb.Verb or reports that more bytes are needed.
package wire
