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
	"fmt"

	liberr "github.com/nabbar/nxtcp/errors"
)

// Login requests the server to establish or join a session under Name.
// Persist keeps the session alive after disconnect; Standby joins as a
// non-active participant; Enforce steals the active slot from a holder.
type Login struct {
	Name    []byte
	Enforce bool
	Standby bool
	Persist bool
}

func (v *Login) Kind() Kind { return KindLogin }

func (v *Login) Validate() error {
	return ValidateName(v.Name)
}

func (v *Login) String() string {
	return fmt.Sprintf("LOGIN(%s, enforce=%t, standby=%t, persist=%t)", v.Name, v.Enforce, v.Standby, v.Persist)
}

// Logout ends the session previously established with Login.
type Logout struct {
	Name []byte
}

func (v *Logout) Kind() Kind { return KindLogout }

func (v *Logout) Validate() error {
	return ValidateName(v.Name)
}

func (v *Logout) String() string {
	return fmt.Sprintf("LOGOUT(%s)", v.Name)
}

// Session is a downstream, informational notice of a session's state.
type Session struct {
	Name  []byte
	State SessionState
}

func (v *Session) Kind() Kind { return KindSession }

func (v *Session) Validate() error {
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	if v.State != SessionEnded && v.State != SessionStandby && v.State != SessionActive {
		return liberr.Newf(liberr.ErrVerbValidation, "session: invalid state %d", v.State)
	}
	return nil
}

func (v *Session) String() string {
	return fmt.Sprintf("SESSION(%s, %s)", v.Name, v.State)
}

// Request addresses Name with Payload and, unless Unidirectional, expects a
// Message reply correlated by MessageRef within Timeout.
type Request struct {
	Name           []byte
	Unidirectional bool
	MessageRef     uint64
	Timeout        uint64 // milliseconds, 0 = none
	Payload        []byte
}

func (v *Request) Kind() Kind { return KindRequest }

func (v *Request) Validate() error {
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	if err := ValidateRefNumber(v.MessageRef); err != nil {
		return err
	}
	return ValidatePayload(v.Payload)
}

func (v *Request) String() string {
	return fmt.Sprintf("REQUEST(%s, unidirectional=%t, messageref=%d, timeout=%d, %dB)",
		v.Name, v.Unidirectional, v.MessageRef, v.Timeout, len(v.Payload))
}

// Call is a downstream delivery of a Request to a session's call handler.
type Call struct {
	Unidirectional bool
	PostRef        uint64
	Name           []byte
	Payload        []byte
}

func (v *Call) Kind() Kind { return KindCall }

func (v *Call) Validate() error {
	if err := ValidateRefNumber(v.PostRef); err != nil {
		return err
	}
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	return ValidatePayload(v.Payload)
}

func (v *Call) String() string {
	return fmt.Sprintf("CALL(%d, unidirectional=%t, %dB)", v.PostRef, v.Unidirectional, len(v.Payload))
}

// Post addresses a reply at PostRef, echoing back to a Call or Interest.
type Post struct {
	PostRef uint64
	Payload []byte
}

func (v *Post) Kind() Kind { return KindPost }

func (v *Post) Validate() error {
	if err := ValidateRefNumber(v.PostRef); err != nil {
		return err
	}
	return ValidatePayload(v.Payload)
}

func (v *Post) String() string {
	return fmt.Sprintf("POST(%d, %dB)", v.PostRef, len(v.Payload))
}

// Message is the downstream reply to a bidirectional Request, correlated by
// MessageRef. Payload is present iff Status is StatusOK.
type Message struct {
	MessageRef uint64
	Status     MessageStatus
	Payload    []byte
}

func (v *Message) Kind() Kind { return KindMessage }

func (v *Message) Validate() error {
	if err := ValidateRefNumber(v.MessageRef); err != nil {
		return err
	}
	if v.Status != StatusOK && v.Status != StatusTimeout && v.Status != StatusUnreachable {
		return liberr.Newf(liberr.ErrVerbValidation, "message: invalid status %d", v.Status)
	}
	return ValidatePayload(v.Payload)
}

func (v *Message) String() string {
	return fmt.Sprintf("MESSAGE(%d, status=%s, %dB)", v.MessageRef, v.Status, len(v.Payload))
}

// Subscribe registers interest in Topic under Name, correlated by
// MessageRef for the server's acknowledgement path.
type Subscribe struct {
	Name       []byte
	MessageRef uint64
	Topic      []byte
}

func (v *Subscribe) Kind() Kind { return KindSubscribe }

func (v *Subscribe) Validate() error {
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	if err := ValidateRefNumber(v.MessageRef); err != nil {
		return err
	}
	return ValidatePayload(v.Topic)
}

func (v *Subscribe) String() string {
	return fmt.Sprintf("SUBSCRIBE(%s, messageref=%d, %dB topic)", v.Name, v.MessageRef, len(v.Topic))
}

// Unsubscribe withdraws a prior Subscribe.
type Unsubscribe struct {
	Name  []byte
	Topic []byte
}

func (v *Unsubscribe) Kind() Kind { return KindUnsubscribe }

func (v *Unsubscribe) Validate() error {
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	return ValidatePayload(v.Topic)
}

func (v *Unsubscribe) String() string {
	return fmt.Sprintf("UNSUBSCRIBE(%s, %dB topic)", v.Name, len(v.Topic))
}

// Interest is the downstream notice that a publisher now has (or no longer
// has) an active subscriber for Topic under Name.
type Interest struct {
	PostRef uint64
	Name    []byte
	Status  InterestStatus
	Topic   []byte
}

func (v *Interest) Kind() Kind { return KindInterest }

func (v *Interest) Validate() error {
	if err := ValidateRefNumber(v.PostRef); err != nil {
		return err
	}
	if err := ValidateName(v.Name); err != nil {
		return err
	}
	if v.Status != StatusNoInterest && v.Status != StatusInterest {
		return liberr.Newf(liberr.ErrVerbValidation, "interest: invalid status %d", v.Status)
	}
	return ValidatePayload(v.Topic)
}

func (v *Interest) String() string {
	return fmt.Sprintf("INTEREST(%d, %s, %s, %dB topic)", v.PostRef, v.Name, v.Status, len(v.Topic))
}
