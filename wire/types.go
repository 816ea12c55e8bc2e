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

// PacketType is the single byte following the 4-byte length prefix that
// identifies a frame's body layout.
type PacketType uint8

// Upstream (client -> server) packet types.
const (
	PacketLogin       PacketType = 0x01
	PacketLogout      PacketType = 0x03
	PacketRequest     PacketType = 0x04
	PacketPost        PacketType = 0x06
	PacketSubscribe   PacketType = 0x08
	PacketUnsubscribe PacketType = 0x10
	PacketPong        PacketType = 0x81
	PacketQuit        PacketType = 0x84
)

// Downstream (server -> client) packet types.
const (
	PacketSession  PacketType = 0x02
	PacketCall     PacketType = 0x05
	PacketMessage  PacketType = 0x07
	PacketInterest PacketType = 0x09
	PacketPing     PacketType = 0x80
	PacketWelcome  PacketType = 0x82
	PacketByeBye   PacketType = 0x83
)

// HeaderSize is the fixed 4-byte length + 1-byte type prefix on every frame.
const HeaderSize = 5

// MaxFrameBody bounds a single frame's body to something well beyond any
// legal packet (255-byte name + 32KiB payload/topic + a handful of fixed
// fields), guarding the decoder against a corrupt or hostile length field
// before it tries to buffer gigabytes waiting for bytes that will never
// arrive.
const MaxFrameBody = 1<<16 + 1<<16
