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

package wire

import (
	"encoding/binary"
	"io"
	"sync"

	liberr "github.com/nabbar/nxtcp/errors"
)

// Encoder queues complete framed byte sequences (one per Put) and drains
// them into an io.Writer via Drain, which performs a single underlying
// Write per call and only commits the bytes that call actually accepted —
// mirroring nervix/util/encoder.py's BaseEncoder.fetch_chunk/commit pair.
type Encoder struct {
	mu    sync.Mutex
	queue [][]byte
	pos   int
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Put encodes p and appends the resulting frame to the back of the queue.
func (e *Encoder) Put(p interface{}) error {
	frame, err := Encode(p)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.queue = append(e.queue, frame)
	e.mu.Unlock()
	return nil
}

// Pending reports whether any bytes remain queued for the wire.
func (e *Encoder) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue) > 0
}

// Drain performs one Write call against w using the head of the queue, and
// advances the commit pointer only by the number of bytes w.Write actually
// accepted. It never skips ahead past a partial write; a subsequent Drain
// resumes exactly where the previous one left off.
func (e *Encoder) Drain(w io.Writer) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) == 0 {
		return 0, nil
	}

	head := e.queue[0][e.pos:]
	n, err := w.Write(head)
	e.pos += n

	if e.pos >= len(e.queue[0]) {
		e.queue = e.queue[1:]
		e.pos = 0
	}

	return n, err
}

// Decoder accumulates arbitrary byte chunks (whatever size a socket read
// happens to hand back) and exposes TryDecode, which returns either a
// fully decoded packet or reports that more bytes are needed — mirroring
// nervix/util/decoder.py's BaseDecoder.get/commit byte-granular buffering.
type Decoder struct {
	buf []byte
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends raw bytes (e.g. freshly read from a socket) to the internal
// buffer. No bytes are ever dropped across partial reads.
func (d *Decoder) Feed(chunk []byte) {
	d.buf = append(d.buf, chunk...)
}

// TryDecode attempts to decode a single packet from the buffered bytes.
// ok is false if not enough data is buffered yet (err is nil in that case).
// A non-nil err is a decoding error (spec.md §7): the caller should check
// IsFatal(err) to decide whether the stream itself must be abandoned or
// whether decoding can continue with the next frame.
func (d *Decoder) TryDecode() (pkt interface{}, ok bool, err error) {
	if len(d.buf) < HeaderSize {
		return nil, false, nil
	}

	length := binary.BigEndian.Uint32(d.buf[0:4])
	pt := PacketType(d.buf[4])

	if length > MaxFrameBody {
		return nil, false, liberr.Newf(liberr.ErrFrameLengthOverflow,
			"frame declares %d body bytes, exceeding the %d bound", length, MaxFrameBody)
	}

	total := HeaderSize + int(length)
	if len(d.buf) < total {
		return nil, false, nil
	}

	body := append([]byte(nil), d.buf[HeaderSize:total]...)
	d.buf = d.buf[total:]

	pkt, decErr := decodeBody(pt, body)
	if decErr != nil {
		return nil, false, decErr
	}
	return pkt, true, nil
}

// IsFatal reports whether a TryDecode error requires abandoning the
// connection (the length header itself could not be trusted) rather than
// simply logging and continuing with the next frame.
func IsFatal(err error) bool {
	return liberr.HasCode(err, liberr.ErrFrameLengthOverflow)
}
