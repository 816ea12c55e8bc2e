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

// Kind identifies a verb's variant independently of its Go type, so the
// dispatcher and backlog can switch on it without a type assertion.
type Kind uint8

const (
	KindLogin Kind = iota + 1
	KindLogout
	KindSession
	KindRequest
	KindCall
	KindPost
	KindMessage
	KindSubscribe
	KindUnsubscribe
	KindInterest
)

// String returns the verb kind's name, used in log fields and Stringer
// implementations below.
func (k Kind) String() string {
	switch k {
	case KindLogin:
		return "LOGIN"
	case KindLogout:
		return "LOGOUT"
	case KindSession:
		return "SESSION"
	case KindRequest:
		return "REQUEST"
	case KindCall:
		return "CALL"
	case KindPost:
		return "POST"
	case KindMessage:
		return "MESSAGE"
	case KindSubscribe:
		return "SUBSCRIBE"
	case KindUnsubscribe:
		return "UNSUBSCRIBE"
	case KindInterest:
		return "INTEREST"
	default:
		return "UNKNOWN"
	}
}

// Verb is any upstream or downstream protocol verb. Validate rejects a
// malformed verb before it reaches the dispatcher's backlog or the codec.
type Verb interface {
	// Kind reports which verb variant this is.
	Kind() Kind
	// Validate reports a liberr.Error (code errors.ErrVerbValidation or a
	// more specific field code) if the verb's fields are out of bounds.
	Validate() error
}

// SessionState is SessionVerb.State's enum.
type SessionState uint8

const (
	SessionEnded SessionState = iota
	SessionStandby
	SessionActive
)

func (s SessionState) String() string {
	switch s {
	case SessionEnded:
		return "ENDED"
	case SessionStandby:
		return "STANDBY"
	case SessionActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// MessageStatus is MessageVerb.Status's enum.
type MessageStatus uint8

const (
	StatusOK MessageStatus = iota
	StatusTimeout
	StatusUnreachable
)

func (s MessageStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusUnreachable:
		return "UNREACHABLE"
	default:
		return "UNKNOWN"
	}
}

// InterestStatus is InterestVerb.Status's enum.
type InterestStatus uint8

const (
	StatusNoInterest InterestStatus = iota
	StatusInterest
)

func (s InterestStatus) String() string {
	switch s {
	case StatusNoInterest:
		return "NO_INTEREST"
	case StatusInterest:
		return "INTEREST"
	default:
		return "UNKNOWN"
	}
}
