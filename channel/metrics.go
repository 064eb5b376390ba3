package channel

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	sendCount    atomic.Uint64
	skipCount    atomic.Uint64
	errorCount   atomic.Uint64
	sendDuration prometheus.Summary
}

func (m *metrics) observe(dur time.Duration) {
	if m.sendDuration != nil {
		m.sendDuration.Observe(dur.Seconds())
	}
}

func registerMetrics(reg *prometheus.Registry, c *channel) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "fcm",
		Subsystem: "channel",
		Name:      "send_count",
		Help:      "total count of sent messages",
	}, func() float64 {
		return float64(c.metrics.sendCount.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "fcm",
		Subsystem: "channel",
		Name:      "skip_count",
		Help:      "total count of messages skipped for lack of a recipient",
	}, func() float64 {
		return float64(c.metrics.skipCount.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "fcm",
		Subsystem: "channel",
		Name:      "error_count",
		Help:      "total count of failed sends",
	}, func() float64 {
		return float64(c.metrics.errorCount.Load())
	}))
	c.metrics.sendDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "fcm",
		Subsystem: "channel",
		Name:      "duration_seconds",
		Objectives: map[float64]float64{
			0.5:  0.5,
			0.85: 0.01,
			0.95: 0.0005,
			0.99: 0.0001,
		},
	})
	reg.MustRegister(c.metrics.sendDuration)
}
