// Package metrics counts tinylog records per level in Prometheus before
// handing them to the wrapped sink.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/tinylog"
)

// Counter wraps a PrintFunc and counts every record that reaches it.
type Counter struct {
	next    tinylog.PrintFunc
	records *prometheus.CounterVec
	bytes   *prometheus.CounterVec
}

// New registers the record counters on reg (prometheus.DefaultRegisterer when
// nil) and returns a Counter forwarding to next. next may be nil to count only.
func New(reg prometheus.Registerer, next tinylog.PrintFunc) (*Counter, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Counter{
		next: next,
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tinylog_records_total",
				Help: "Total number of log records dispatched to the sink",
			},
			[]string{"level"},
		),
		bytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tinylog_message_bytes_total",
				Help: "Total rendered message bytes dispatched to the sink",
			},
			[]string{"level"},
		),
	}
	for _, col := range []prometheus.Collector{c.records, c.bytes} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	// Pre-create series so every level shows up at zero.
	for l := tinylog.LevelTrace; l < tinylog.LevelNone; l++ {
		c.records.WithLabelValues(l.String())
		c.bytes.WithLabelValues(l.String())
	}
	return c, nil
}

// Print implements tinylog.PrintFunc.
func (c *Counter) Print(level tinylog.Level, file string, line int, msg string) {
	name := level.String()
	c.records.WithLabelValues(name).Inc()
	c.bytes.WithLabelValues(name).Add(float64(len(msg)))
	if c.next != nil {
		c.next(level, file, line, msg)
	}
}
