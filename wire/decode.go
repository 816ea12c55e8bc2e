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
	liberr "github.com/nabbar/nxtcp/errors"
	"github.com/nabbar/nxtcp/verb"
)

// decodeBody decodes a single frame's body (pt, body) into the packet it
// represents: a verb.Verb for the ten protocol verbs, or one of this
// package's control packets. An unrecognized pt is a decoding error, never
// a silent skip, per spec.md §4.1.
func decodeBody(pt PacketType, body []byte) (interface{}, error) {
	switch pt {
	case PacketLogin:
		return decodeLogin(body)
	case PacketLogout:
		return decodeLogout(body)
	case PacketSession:
		return decodeSession(body)
	case PacketRequest:
		return decodeRequest(body)
	case PacketCall:
		return decodeCall(body)
	case PacketPost:
		return decodePost(body)
	case PacketMessage:
		return decodeMessage(body)
	case PacketSubscribe:
		return decodeSubscribe(body)
	case PacketUnsubscribe:
		return decodeUnsubscribe(body)
	case PacketInterest:
		return decodeInterest(body)
	case PacketPing:
		return Ping{}, nil
	case PacketPong:
		return Pong{}, nil
	case PacketByeBye:
		return ByeBye{}, nil
	case PacketQuit:
		return Quit{}, nil
	case PacketWelcome:
		return decodeWelcome(body)
	default:
		return nil, liberr.Newf(liberr.ErrFrameUnknownType, "unknown packet type 0x%02x", uint8(pt))
	}
}

func decodeLogin(body []byte) (*verb.Login, error) {
	r := newReader(body)
	flags, err := r.uint8()
	if err != nil {
		return nil, err
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	return &verb.Login{
		Name:    name,
		Persist: flags&(1<<0) != 0,
		Standby: flags&(1<<1) != 0,
		Enforce: flags&(1<<2) != 0,
	}, nil
}

func decodeLogout(body []byte) (*verb.Logout, error) {
	r := newReader(body)
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	return &verb.Logout{Name: name}, nil
}

func decodeSession(body []byte) (*verb.Session, error) {
	r := newReader(body)
	state, err := r.uint8()
	if err != nil {
		return nil, err
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	return &verb.Session{Name: name, State: verb.SessionState(state)}, nil
}

func decodeRequest(body []byte) (*verb.Request, error) {
	r := newReader(body)
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	flags, err := r.uint8()
	if err != nil {
		return nil, err
	}
	ref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	timeout, err := r.uint32()
	if err != nil {
		return nil, err
	}
	payload, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Request{
		Name:           name,
		Unidirectional: flags&(1<<0) != 0,
		MessageRef:     uint64(ref),
		Timeout:        uint64(timeout),
		Payload:        payload,
	}, nil
}

func decodeCall(body []byte) (*verb.Call, error) {
	r := newReader(body)
	flags, err := r.uint8()
	if err != nil {
		return nil, err
	}
	postref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	payload, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Call{
		Unidirectional: flags&(1<<0) != 0,
		PostRef:        uint64(postref),
		Name:           name,
		Payload:        payload,
	}, nil
}

func decodePost(body []byte) (*verb.Post, error) {
	r := newReader(body)
	postref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	payload, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Post{PostRef: uint64(postref), Payload: payload}, nil
}

// decodeMessage ignores any bytes following the reference field when
// status != ok: some server implementations put stray bytes there, and
// spec.md §9 directs the decoder to never attempt a payload read in that
// case.
func decodeMessage(body []byte) (*verb.Message, error) {
	r := newReader(body)
	status, err := r.uint8()
	if err != nil {
		return nil, err
	}
	ref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	m := &verb.Message{MessageRef: uint64(ref), Status: verb.MessageStatus(status)}
	if m.Status == verb.StatusOK {
		payload, err := r.blob()
		if err != nil {
			return nil, err
		}
		m.Payload = payload
	}
	return m, nil
}

func decodeSubscribe(body []byte) (*verb.Subscribe, error) {
	r := newReader(body)
	ref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	topic, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Subscribe{MessageRef: uint64(ref), Name: name, Topic: topic}, nil
}

func decodeUnsubscribe(body []byte) (*verb.Unsubscribe, error) {
	r := newReader(body)
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	topic, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Unsubscribe{Name: name, Topic: topic}, nil
}

func decodeInterest(body []byte) (*verb.Interest, error) {
	r := newReader(body)
	status, err := r.uint8()
	if err != nil {
		return nil, err
	}
	postref, err := r.uint32()
	if err != nil {
		return nil, err
	}
	name, err := r.str()
	if err != nil {
		return nil, err
	}
	topic, err := r.blob()
	if err != nil {
		return nil, err
	}
	return &verb.Interest{
		Status:  verb.InterestStatus(status),
		PostRef: uint64(postref),
		Name:    name,
		Topic:   topic,
	}, nil
}

func decodeWelcome(body []byte) (*Welcome, error) {
	r := newReader(body)
	serverVersion, err := r.uint32()
	if err != nil {
		return nil, err
	}
	protocolVersion, err := r.uint32()
	if err != nil {
		return nil, err
	}
	return &Welcome{ServerVersion: serverVersion, ProtocolVersion: protocolVersion}, nil
}
