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

package verb

import (
	liberr "github.com/nabbar/nxtcp/errors"
)

// MaxPayloadSize is the protocol's bound on Payload and Topic blobs (32KiB).
const MaxPayloadSize = 1 << 15

// MaxRefNumber is the largest valid messageref/postref value (2^32-1, the
// wire is a uint32 so this is already the natural ceiling; 0 means "none").
const MaxRefNumber = 1<<32 - 1

// ValidateName reports whether name is a legal NXTCP name: 1..255 bytes,
// each one of 0-9 A-Z a-z - _.
func ValidateName(name []byte) error {
	if len(name) == 0 {
		return liberr.New(liberr.ErrNameInvalid, "name is empty")
	}
	if len(name) > 255 {
		return liberr.New(liberr.ErrNameInvalid, "name exceeds 255 bytes")
	}
	for _, c := range name {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '-' || c == '_') {
			return liberr.Newf(liberr.ErrNameInvalid, "name contains invalid byte %q", c)
		}
	}
	return nil
}

// ValidatePayload reports whether payload respects the 32KiB bound. A nil
// payload is always valid (it denotes "absent").
func ValidatePayload(payload []byte) error {
	if payload == nil {
		return nil
	}
	if len(payload) > MaxPayloadSize {
		return liberr.New(liberr.ErrPayloadTooLarge, "payload exceeds 32KiB")
	}
	return nil
}

// ValidateRefNumber reports whether nr is a legal reference number. 0 always
// denotes "none" and is valid; any value above MaxRefNumber is rejected.
func ValidateRefNumber(nr uint64) error {
	if nr == 0 {
		return nil
	}
	if nr > MaxRefNumber {
		return liberr.New(liberr.ErrRefNumberInvalid, "reference number exceeds 2^32")
	}
	return nil
}
