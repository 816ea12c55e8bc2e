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
	"github.com/spf13/viper"

	"github.com/nabbar/nxtcp/duration"
	liberr "github.com/nabbar/nxtcp/errors"
)

// Keys used to look the Config fields up in a viper instance.
const (
	KeyURI                   = "nxtcp.uri"
	KeyConnectTimeout        = "nxtcp.connect_timeout"
	KeyWelcomeTimeout        = "nxtcp.welcome_timeout"
	KeyCoolDown              = "nxtcp.cool_down"
	KeyDefaultTTL            = "nxtcp.default_ttl"
	KeyDefaultRequestTimeout = "nxtcp.default_request_timeout"
)

// RegisterDefaults pre-seeds v with every spec default, so a partially
// populated config file only needs to override what it cares about.
func RegisterDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault(KeyConnectTimeout, d.ConnectTimeout.String())
	v.SetDefault(KeyWelcomeTimeout, d.WelcomeTimeout.String())
	v.SetDefault(KeyDefaultTTL, d.DefaultTTL.String())
	v.SetDefault(KeyDefaultRequestTimeout, d.DefaultRequestTimeout.String())

	cd := make([]string, 0, len(d.CoolDown))
	for _, s := range d.CoolDown {
		cd = append(cd, s.String())
	}
	v.SetDefault(KeyCoolDown, cd)
}

// FromViper builds a Config from v, starting from the nxtcp.uri key and
// layering any nxtcp.connect_timeout / welcome_timeout / cool_down /
// default_ttl / default_request_timeout overrides on top of it.
func FromViper(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, liberr.New(liberr.ErrURIInvalid, "nil viper instance")
	}

	uri := v.GetString(KeyURI)
	if uri == "" {
		return nil, liberr.New(liberr.ErrURIInvalid, "missing nxtcp.uri")
	}

	c, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if s := v.GetString(KeyConnectTimeout); s != "" {
		if d, e := duration.Parse(s); e == nil {
			c.ConnectTimeout = d
		}
	}
	if s := v.GetString(KeyWelcomeTimeout); s != "" {
		if d, e := duration.Parse(s); e == nil {
			c.WelcomeTimeout = d
		}
	}
	if s := v.GetString(KeyDefaultTTL); s != "" {
		if d, e := duration.Parse(s); e == nil {
			c.DefaultTTL = d
		}
	}
	if s := v.GetString(KeyDefaultRequestTimeout); s != "" {
		if d, e := duration.Parse(s); e == nil {
			c.DefaultRequestTimeout = d
		}
	}
	if raw := v.GetStringSlice(KeyCoolDown); len(raw) > 0 {
		cd := make([]duration.Duration, 0, len(raw))
		for _, s := range raw {
			if d, e := duration.Parse(s); e == nil {
				cd = append(cd, d)
			}
		}
		if len(cd) > 0 {
			c.CoolDown = cd
		}
	}

	if err = c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
