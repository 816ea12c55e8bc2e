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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nabbar/nxtcp/conn"
	"github.com/nabbar/nxtcp/dispatch"
)

// coolDowner is implemented by conn.NxtcpConn but not required by the
// conn.Conn interface: Collect degrades gracefully (index -1) against a
// test double that doesn't track one.
type coolDowner interface {
	CoolDownIndex() int
}

// Collector reports a single connection's and dispatcher's state as
// prometheus metrics. One instance covers one Channel; a process using
// several registers one Collector per Channel, distinguished by the
// instance constant label.
type Collector struct {
	cn   conn.Conn
	core *dispatch.Core

	instance string

	state         *prometheus.Desc
	ready         *prometheus.Desc
	coolDownIdx   *prometheus.Desc
	backlogLen    *prometheus.Desc
	autoResendLen *prometheus.Desc
	nextRef       *prometheus.Desc
	verbsSent     *prometheus.Desc
	verbsReceived *prometheus.Desc
}

// New returns a Collector for cn/core, labeling every metric with
// instance (typically a google/uuid client-instance identifier).
func New(cn conn.Conn, core *dispatch.Core, instance string) *Collector {
	constLabels := prometheus.Labels{"instance": instance}

	return &Collector{
		cn:       cn,
		core:     core,
		instance: instance,

		state: prometheus.NewDesc(
			"nxtcp_connection_state", "Current connection state (0=idle,1=connecting,2=wait-welcome,3=ready,4=failed).",
			nil, constLabels),
		ready: prometheus.NewDesc(
			"nxtcp_connection_ready", "1 if the connection is currently ready to send, 0 otherwise.",
			nil, constLabels),
		coolDownIdx: prometheus.NewDesc(
			"nxtcp_connection_cooldown_index", "Index into the progressive cool-down schedule, -1 if unsupported.",
			nil, constLabels),
		backlogLen: prometheus.NewDesc(
			"nxtcp_dispatch_backlog_length", "Number of verbs currently queued in the TTL-bound backlog.",
			nil, constLabels),
		autoResendLen: prometheus.NewDesc(
			"nxtcp_dispatch_auto_resend_length", "Number of verbs currently in the auto-resend set.",
			nil, constLabels),
		nextRef: prometheus.NewDesc(
			"nxtcp_dispatch_next_messageref", "Next messageref the dispatcher will allocate.",
			nil, constLabels),
		verbsSent: prometheus.NewDesc(
			"nxtcp_dispatch_verbs_sent_total", "Total verbs handed to the connection for transmission.",
			nil, constLabels),
		verbsReceived: prometheus.NewDesc(
			"nxtcp_dispatch_verbs_received_total", "Total verbs decoded and routed from the connection.",
			nil, constLabels),
	}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.state
	descs <- c.ready
	descs <- c.coolDownIdx
	descs <- c.backlogLen
	descs <- c.autoResendLen
	descs <- c.nextRef
	descs <- c.verbsSent
	descs <- c.verbsReceived
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	metrics <- prometheus.MustNewConstMetric(c.state, prometheus.GaugeValue, float64(c.cn.State()))

	ready := 0.0
	if c.cn.Ready() {
		ready = 1.0
	}
	metrics <- prometheus.MustNewConstMetric(c.ready, prometheus.GaugeValue, ready)

	idx := -1
	if cd, ok := c.cn.(coolDowner); ok {
		idx = cd.CoolDownIndex()
	}
	metrics <- prometheus.MustNewConstMetric(c.coolDownIdx, prometheus.GaugeValue, float64(idx))

	stats := c.core.Stats()
	metrics <- prometheus.MustNewConstMetric(c.backlogLen, prometheus.GaugeValue, float64(stats.BacklogLen))
	metrics <- prometheus.MustNewConstMetric(c.autoResendLen, prometheus.GaugeValue, float64(stats.AutoResendLen))
	metrics <- prometheus.MustNewConstMetric(c.nextRef, prometheus.GaugeValue, float64(stats.NextMessageRef))
	metrics <- prometheus.MustNewConstMetric(c.verbsSent, prometheus.CounterValue, float64(stats.VerbsSent))
	metrics <- prometheus.MustNewConstMetric(c.verbsReceived, prometheus.CounterValue, float64(stats.VerbsReceived))
}
