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
	"fmt"

	liberr "github.com/nabbar/nxtcp/errors"
	"github.com/nabbar/nxtcp/verb"
)

// Encode frames p into a complete length-prefixed byte sequence. p must be
// one of the verb.Verb implementations in package verb, or one of this
// package's control packets (Ping, Pong, ByeBye, Quit, Welcome).
func Encode(p interface{}) ([]byte, error) {
	var (
		pt   PacketType
		body []byte
	)

	switch v := p.(type) {
	case *verb.Login:
		pt, body = PacketLogin, encodeLogin(v)
	case *verb.Logout:
		pt, body = PacketLogout, encodeLogout(v)
	case *verb.Session:
		pt, body = PacketSession, encodeSession(v)
	case *verb.Request:
		pt, body = PacketRequest, encodeRequest(v)
	case *verb.Call:
		pt, body = PacketCall, encodeCall(v)
	case *verb.Post:
		pt, body = PacketPost, encodePost(v)
	case *verb.Message:
		pt, body = PacketMessage, encodeMessage(v)
	case *verb.Subscribe:
		pt, body = PacketSubscribe, encodeSubscribe(v)
	case *verb.Unsubscribe:
		pt, body = PacketUnsubscribe, encodeUnsubscribe(v)
	case *verb.Interest:
		pt, body = PacketInterest, encodeInterest(v)
	case Ping:
		pt, body = PacketPing, nil
	case Pong:
		pt, body = PacketPong, nil
	case ByeBye:
		pt, body = PacketByeBye, nil
	case Quit:
		pt, body = PacketQuit, nil
	case Welcome:
		pt, body = PacketWelcome, encodeWelcome(&v)
	case *Welcome:
		pt, body = PacketWelcome, encodeWelcome(v)
	default:
		return nil, liberr.Newf(liberr.ErrFrameUnknownType, "wire: cannot encode %T", p)
	}

	frame := make([]byte, 0, HeaderSize+len(body))
	frame = putUint32(frame, uint32(len(body)))
	frame = putUint8(frame, uint8(pt))
	frame = append(frame, body...)
	return frame, nil
}

func encodeLogin(v *verb.Login) []byte {
	var flags uint8
	if v.Persist {
		flags |= 1 << 0
	}
	if v.Standby {
		flags |= 1 << 1
	}
	if v.Enforce {
		flags |= 1 << 2
	}
	buf := putUint8(nil, flags)
	return putString(buf, v.Name)
}

func encodeLogout(v *verb.Logout) []byte {
	return putString(nil, v.Name)
}

func encodeSession(v *verb.Session) []byte {
	buf := putUint8(nil, uint8(v.State))
	return putString(buf, v.Name)
}

func encodeRequest(v *verb.Request) []byte {
	buf := putString(nil, v.Name)
	var flags uint8
	if v.Unidirectional {
		flags |= 1 << 0
	}
	buf = putUint8(buf, flags)
	ref := v.MessageRef
	if v.Unidirectional {
		ref = 0
	}
	buf = putUint32(buf, uint32(ref))
	buf = putUint32(buf, uint32(v.Timeout))
	return putBlob(buf, v.Payload)
}

func encodeCall(v *verb.Call) []byte {
	var flags uint8
	if v.Unidirectional {
		flags |= 1 << 0
	}
	buf := putUint8(nil, flags)
	buf = putUint32(buf, uint32(v.PostRef))
	buf = putString(buf, v.Name)
	return putBlob(buf, v.Payload)
}

func encodePost(v *verb.Post) []byte {
	buf := putUint32(nil, uint32(v.PostRef))
	return putBlob(buf, v.Payload)
}

func encodeMessage(v *verb.Message) []byte {
	buf := putUint8(nil, uint8(v.Status))
	buf = putUint32(buf, uint32(v.MessageRef))
	if v.Status == verb.StatusOK {
		buf = putBlob(buf, v.Payload)
	}
	return buf
}

func encodeSubscribe(v *verb.Subscribe) []byte {
	buf := putUint32(nil, uint32(v.MessageRef))
	buf = putString(buf, v.Name)
	return putBlob(buf, v.Topic)
}

func encodeUnsubscribe(v *verb.Unsubscribe) []byte {
	buf := putString(nil, v.Name)
	return putBlob(buf, v.Topic)
}

func encodeInterest(v *verb.Interest) []byte {
	buf := putUint8(nil, uint8(v.Status))
	buf = putUint32(buf, uint32(v.PostRef))
	buf = putString(buf, v.Name)
	return putBlob(buf, v.Topic)
}

func encodeWelcome(v *Welcome) []byte {
	buf := putUint32(nil, v.ServerVersion)
	return putUint32(buf, v.ProtocolVersion)
}

// String renders a PacketType as its protocol name plus hex code, used in
// log fields and decode-error messages.
func (t PacketType) String() string {
	if name, ok := packetNames[t]; ok {
		return fmt.Sprintf("%s(0x%02x)", name, uint8(t))
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", uint8(t))
}

var packetNames = map[PacketType]string{
	PacketLogin:       "LOGIN",
	PacketLogout:      "LOGOUT",
	PacketRequest:     "REQUEST",
	PacketPost:        "POST",
	PacketSubscribe:   "SUBSCRIBE",
	PacketUnsubscribe: "UNSUBSCRIBE",
	PacketPong:        "PONG",
	PacketQuit:        "QUIT",
	PacketSession:     "SESSION",
	PacketCall:        "CALL",
	PacketMessage:     "MESSAGE",
	PacketInterest:    "INTEREST",
	PacketPing:        "PING",
	PacketWelcome:     "WELCOME",
	PacketByeBye:      "BYEBYE",
}
