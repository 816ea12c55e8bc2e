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
	"github.com/nabbar/nxtcp/duration"
	liberr "github.com/nabbar/nxtcp/errors"
)

// DefaultCoolDown is the progressive reconnect schedule used when Config
// doesn't override it: 5s, 5s, 5s, 10s, 10s, 20s, 30s, 60s, saturating at
// the last value and reset on a successful connect.
func DefaultCoolDown() []duration.Duration {
	return []duration.Duration{
		duration.Seconds(5), duration.Seconds(5), duration.Seconds(5),
		duration.Seconds(10), duration.Seconds(10),
		duration.Seconds(20), duration.Seconds(30), duration.Seconds(60),
	}
}

// Config describes how a client dials and retries a single nxtcp server.
type Config struct {
	// Host and Port identify the server, parsed out of a nxtcp://host:port URI.
	Host string
	Port uint16

	// ConnectTimeout bounds the TCP dial (spec default: 3s).
	ConnectTimeout duration.Duration
	// WelcomeTimeout bounds the wait for a WELCOME packet after connect (spec default: 2s).
	WelcomeTimeout duration.Duration
	// CoolDown is the progressive reconnect schedule (spec default: DefaultCoolDown()).
	CoolDown []duration.Duration

	// DefaultTTL is the backlog entry lifetime used when a verb is enqueued
	// without an explicit ttl (spec default: 5s).
	DefaultTTL duration.Duration
	// DefaultRequestTimeout is the protocol-level timeout field carried on a
	// REQUEST when the caller doesn't override it (spec default: 5s).
	DefaultRequestTimeout duration.Duration
}

// Default returns a Config with every spec-mandated default applied and no
// host/port set.
func Default() *Config {
	return &Config{
		ConnectTimeout:        duration.Seconds(3),
		WelcomeTimeout:        duration.Seconds(2),
		CoolDown:              DefaultCoolDown(),
		DefaultTTL:            duration.Seconds(5),
		DefaultRequestTimeout: duration.Seconds(5),
	}
}

// Validate reports a liberr.Error (code errors.ErrURIInvalid) if the Config
// cannot be used to dial a server.
func (c *Config) Validate() error {
	if c == nil {
		return liberr.New(liberr.ErrURIInvalid, "nil config")
	}
	if c.Host == "" {
		return liberr.New(liberr.ErrURIInvalid, "missing host")
	}
	if c.Port == 0 {
		return liberr.New(liberr.ErrURIInvalid, "missing or zero port")
	}
	if len(c.CoolDown) == 0 {
		return liberr.New(liberr.ErrURIInvalid, "empty cool-down schedule")
	}
	return nil
}
