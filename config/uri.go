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

package config

import (
	"net/url"
	"strconv"

	liberr "github.com/nabbar/nxtcp/errors"
)

// Scheme is the only URI scheme ParseURI accepts.
const Scheme = "nxtcp"

// ParseURI parses a "nxtcp://host:port" URI into a Config pre-filled with
// every spec default, ready to dial. It rejects a missing scheme, a scheme
// other than "nxtcp", a missing host or a missing/invalid port.
func ParseURI(raw string) (*Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, liberr.Wrap(liberr.ErrURIInvalid, "malformed uri", err)
	}

	if u.Scheme != Scheme {
		return nil, liberr.Newf(liberr.ErrURIInvalid, "unknown scheme %q, expected %q", u.Scheme, Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return nil, liberr.New(liberr.ErrURIInvalid, "missing host")
	}

	portStr := u.Port()
	if portStr == "" {
		return nil, liberr.New(liberr.ErrURIInvalid, "missing port")
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, liberr.Wrap(liberr.ErrURIInvalid, "invalid port", err)
	}

	c := Default()
	c.Host = host
	c.Port = uint16(port)

	return c, nil
}
