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

package conn

import (
	"net"

	"github.com/nabbar/nxtcp/ctxutil"
	"github.com/nabbar/nxtcp/wire"
)

// readPump is the Go-idiomatic replacement for the original's
// IOProxy read-handler: instead of the loop polling a non-blocking socket
// for readability, a dedicated goroutine blocks on Read and posts each
// chunk (and any terminal error) back onto the loop goroutine to be fed
// into the shared wire.Decoder. bag carries this attempt's attempt/remote/
// client-id attributes so a read error can be logged with the same fields
// doConnect logged the attempt's start with.
func (c *NxtcpConn) readPump(bag ctxutil.Bag, nc net.Conn, stop <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := nc.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case <-stop:
				return
			default:
			}
			c.loop.Post(func() { c.onReadChunk(chunk) })
		}
		if err != nil {
			select {
			case <-stop:
				return
			default:
			}
			c.log.Warning("read pump closed", attemptFields(bag))
			c.loop.Post(func() { c.onTransportError(err) })
			return
		}
	}
}

// writePump drains the shared wire.Encoder to nc whenever woken, mirroring
// the original's on_write handler without needing the loop itself to
// manage socket writability.
func (c *NxtcpConn) writePump(nc net.Conn, wake <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-wake:
			for c.enc != nil && c.enc.Pending() {
				if _, err := c.enc.Drain(nc); err != nil {
					select {
					case <-stop:
						return
					default:
					}
					c.loop.Post(func() { c.onTransportError(err) })
					return
				}
			}
		}
	}
}

// onReadChunk feeds freshly read bytes into the decoder and dispatches
// every complete frame it can extract. A fatal decode error (an untrusted
// frame-length header) tears the connection down; any other decode error
// is logged and the decoder resynchronizes on the next frame.
func (c *NxtcpConn) onReadChunk(chunk []byte) {
	if c.dec == nil {
		return
	}
	c.dec.Feed(chunk)

	for {
		pkt, ok, err := c.dec.TryDecode()
		if err != nil {
			if wire.IsFatal(err) {
				c.onTransportError(err)
				return
			}
			c.log.Warning("dropping malformed frame", nil)
			continue
		}
		if !ok {
			return
		}
		c.handlePacket(pkt)
	}
}
