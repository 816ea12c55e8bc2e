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

	liberr "github.com/nabbar/nxtcp/errors"
)

func putUint8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

func putUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// putString appends a uint8-length-prefixed byte string. The caller is
// responsible for having validated len(s) <= 255 (verb.ValidateName does).
func putString(buf []byte, s []byte) []byte {
	buf = putUint8(buf, uint8(len(s)))
	return append(buf, s...)
}

// putBlob appends a uint32-length-prefixed byte blob.
func putBlob(buf []byte, b []byte) []byte {
	buf = putUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

// reader walks a single frame's body, tracking its own cursor so decodeXxx
// functions read fields in normative order without manual offset bookkeeping.
type reader struct {
	buf []byte
	pos int
}

func newReader(body []byte) *reader {
	return &reader{buf: body}
}

func (r *reader) uint8() (uint8, error) {
	if r.pos+1 > len(r.buf) {
		return 0, liberr.New(liberr.ErrFrameFieldOverflow, "uint8 field exceeds frame body")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) uint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, liberr.New(liberr.ErrFrameFieldOverflow, "uint32 field exceeds frame body")
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) uint64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, liberr.New(liberr.ErrFrameFieldOverflow, "uint64 field exceeds frame body")
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *reader) str() ([]byte, error) {
	n, err := r.uint8()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.buf) {
		return nil, liberr.New(liberr.ErrFrameFieldOverflow, "string field exceeds frame body")
	}
	v := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return append([]byte(nil), v...), nil
}

func (r *reader) blob() ([]byte, error) {
	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	if n > MaxFrameBody || r.pos+int(n) > len(r.buf) {
		return nil, liberr.New(liberr.ErrFrameFieldOverflow, "blob field exceeds frame body")
	}
	v := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return append([]byte(nil), v...), nil
}
