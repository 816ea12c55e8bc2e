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

package errors

import "strconv"

// CodeError is a numeric error classification, grouped by owning package
// (see modules.go). It plays the same role as an HTTP status code: a
// stable, loggable value independent of the (human-readable, possibly
// localized) error message.
type CodeError uint16

const (
	UnknownError CodeError = 0

	// ErrNameInvalid covers every rejection performed by verb.ValidateName:
	// empty, oversized, or containing a byte outside 0-9 A-Z a-z - _.
	ErrNameInvalid CodeError = MinPkgVerb + iota
	ErrPayloadTooLarge
	ErrRefNumberInvalid
	ErrVerbValidation

	ErrFrameUnknownType CodeError = MinPkgWire + iota
	ErrFrameTruncated
	ErrFrameFieldOverflow
	ErrFrameLengthOverflow

	ErrLoopClosed CodeError = MinPkgEventLoop + iota

	ErrDial CodeError = MinPkgConn + iota
	ErrConnectTimeout
	ErrWelcomeTimeout
	ErrTransport
	ErrProtocolVersion

	ErrDispatchMiss CodeError = MinPkgDispatch + iota

	ErrURIInvalid CodeError = MinPkgConfig + iota
)

var codeMessage = map[CodeError]string{
	UnknownError:          "unknown error",
	ErrNameInvalid:        "invalid name",
	ErrPayloadTooLarge:    "payload exceeds 32KiB bound",
	ErrRefNumberInvalid:   "reference number out of range",
	ErrVerbValidation:     "verb failed validation",
	ErrFrameUnknownType:    "unknown packet type",
	ErrFrameTruncated:      "frame truncated",
	ErrFrameFieldOverflow:  "field length exceeds frame body",
	ErrFrameLengthOverflow: "frame length exceeds maximum allowed size",
	ErrLoopClosed:          "event loop is closed",
	ErrDial:               "dial failed",
	ErrConnectTimeout:     "connect attempt timed out",
	ErrWelcomeTimeout:     "no welcome packet received in time",
	ErrTransport:          "transport error",
	ErrProtocolVersion:    "unsupported protocol version",
	ErrDispatchMiss:       "no handler registered",
	ErrURIInvalid:         "invalid nxtcp:// URI",
}

// String returns the human-readable message registered for this code, or
// the numeric code itself if none was registered.
func (c CodeError) String() string {
	if m, ok := codeMessage[c]; ok {
		return m
	}
	return strconv.Itoa(int(c))
}

// Uint16 returns the CodeError as its wire/log-friendly numeric form.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}
