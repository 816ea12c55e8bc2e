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

package session

import (
	"github.com/nabbar/nxtcp/handlerset"
	"github.com/nabbar/nxtcp/verb"
)

// MessageFilter is a bitmask over {OK, TIMEOUT, UNREACHABLE}, the status
// filter applied to Subscription and Request message handlers. It mirrors
// channel.py's MessageStatus Flag enum.
type MessageFilter = handlerset.Filter

const (
	FilterMessageOK MessageFilter = 1 << iota
	FilterMessageTimeout
	FilterMessageUnreachable
)

// FilterMessageNotOK matches TIMEOUT or UNREACHABLE but not OK.
const FilterMessageNotOK = FilterMessageTimeout | FilterMessageUnreachable

// FilterMessageAny matches every message status, the default filter for
// AddHandler when none is given.
const FilterMessageAny = FilterMessageOK | FilterMessageTimeout | FilterMessageUnreachable

func messageFilterFromStatus(s verb.MessageStatus) MessageFilter {
	switch s {
	case verb.StatusOK:
		return FilterMessageOK
	case verb.StatusTimeout:
		return FilterMessageTimeout
	case verb.StatusUnreachable:
		return FilterMessageUnreachable
	default:
		return 0
	}
}

// InterestFilter is a bitmask over {INTEREST, NO_INTEREST}, mirroring
// channel.py's InterestStatus Flag enum.
type InterestFilter = handlerset.Filter

const (
	FilterInterest InterestFilter = 1 << iota
	FilterNoInterest
)

// FilterInterestAny matches both INTEREST and NO_INTEREST updates.
const FilterInterestAny = FilterInterest | FilterNoInterest

func interestFilterFromStatus(s verb.InterestStatus) InterestFilter {
	switch s {
	case verb.StatusInterest:
		return FilterInterest
	case verb.StatusNoInterest:
		return FilterNoInterest
	default:
		return 0
	}
}
