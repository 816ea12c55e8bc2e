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

package nxtcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/nabbar/nxtcp/clock"
	"github.com/nabbar/nxtcp/config"
	"github.com/nabbar/nxtcp/conn"
	"github.com/nabbar/nxtcp/eventloop"
	"github.com/nabbar/nxtcp/logger"
	"github.com/nabbar/nxtcp/metrics"
	"github.com/nabbar/nxtcp/serializer"
	"github.com/nabbar/nxtcp/session"
)

// Options customizes CreateChannel/CreateConnection beyond the spec's
// built-in defaults. The zero value uses a real clock, a logrus-backed
// logger at Info level writing to stderr, and the default string
// serializer, matching nervix's create_channel(uri) with no extra
// arguments.
type Options struct {
	Clock      clock.Clock
	Logger     logger.Logger
	Serializer serializer.Serializer
	Dialer     conn.Dialer
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = logger.New(logger.InfoLevel, nil)
	}
	if o.Serializer == nil {
		o.Serializer = serializer.String{}
	}
	if o.Dialer == nil {
		o.Dialer = conn.NewDialer()
	}
	return o
}

// CreateConnection parses a "nxtcp://host:port" URI, starts its event
// loop running in the background bound to ctx, and returns a conn.Conn
// ready to Start(). Mirrors original_source/nervix/__init__.py's
// create_connection(uri), with the event loop (an explicit asyncio loop
// in the original) owned by ctx instead of a global default loop.
func CreateConnection(ctx context.Context, uri string, opts Options) (conn.Conn, error) {
	cfg, err := config.ParseURI(uri)
	if err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	loop := eventloop.New(opts.Clock)
	go func() { _ = loop.Run(ctx) }()

	return conn.New(loop, opts.Clock, opts.Logger, cfg, opts.Dialer), nil
}

// Channel bundles the session.Channel handed back by CreateChannel with
// the conn.Conn and metrics.Collector it rides on, so callers can
// register the collector with a prometheus.Registerer and Stop the
// connection on shutdown.
type Channel struct {
	*session.Channel

	Conn      conn.Conn
	Collector *metrics.Collector

	// Instance is this Channel's client-instance identifier, attached as
	// a logger field and a metrics constant label so a process running
	// several Channels can tell them apart.
	Instance string
}

// CreateChannel parses uri, wires a connection, dispatcher and channel on
// top of it, starts the connection's connect/reconnect cycle bound to
// ctx, and returns the result. Mirrors
// original_source/nervix/__init__.py's create_channel(uri).
func CreateChannel(ctx context.Context, uri string, opts Options) (*Channel, error) {
	opts = opts.withDefaults()

	cn, err := CreateConnection(ctx, uri, opts)
	if err != nil {
		return nil, err
	}

	instance := uuid.NewString()
	log := opts.Logger.WithFields(logger.Fields{"instance": instance})

	if idSetter, ok := cn.(interface{ SetClientID(string) }); ok {
		idSetter.SetClientID(instance)
	}

	ch := session.NewChannel(cn, opts.Serializer, opts.Clock, log)
	collector := metrics.New(cn, ch.Core(), instance)

	cn.Start(ctx)

	return &Channel{
		Channel:   ch,
		Conn:      cn,
		Collector: collector,
		Instance:  instance,
	}, nil
}
