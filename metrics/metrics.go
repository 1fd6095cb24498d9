// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	dto "github.com/prometheus/client_model/go"
)

const namespace = "hyperds"

// Metrics counts the operations applied to the queue and the tree of a
// session and tracks their shape.
type Metrics struct {
	QueueOps             *prometheus.CounterVec
	QueueDegradedInserts prometheus.Counter
	QueueEmptyRemovals   prometheus.Counter
	QueueLen             prometheus.Gauge

	TreeOps              *prometheus.CounterVec
	TreeDuplicateInserts prometheus.Counter
	TreeMissingDeletes   prometheus.Counter
	TreeMisses           prometheus.Counter
	TreeLen              prometheus.Gauge
	TreeHeight           prometheus.Gauge
}

func New() (*prometheus.Registry, *Metrics, error) {
	r := prometheus.NewRegistry()
	m := &Metrics{
		QueueOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "ops",
			Help:      "number of queue operations by name",
		}, []string{"op"}),
		QueueDegradedInserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "degraded_inserts",
			Help:      "number of positional inserts that fell back to an append",
		}),
		QueueEmptyRemovals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "empty_removals",
			Help:      "number of front removals attempted on an empty queue",
		}),
		QueueLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "len",
			Help:      "number of ids in the queue",
		}),
		TreeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "ops",
			Help:      "number of tree operations by name",
		}, []string{"op"}),
		TreeDuplicateInserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "duplicate_inserts",
			Help:      "number of inserts ignored because the key existed",
		}),
		TreeMissingDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "missing_deletes",
			Help:      "number of deletes of absent keys",
		}),
		TreeMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "misses",
			Help:      "number of searches of absent keys",
		}),
		TreeLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "len",
			Help:      "number of keys in the tree",
		}),
		TreeHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "tree",
			Name:      "height",
			Help:      "longest root-to-leaf path of the tree",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.QueueOps),
		r.Register(m.QueueDegradedInserts),
		r.Register(m.QueueEmptyRemovals),
		r.Register(m.QueueLen),
		r.Register(m.TreeOps),
		r.Register(m.TreeDuplicateInserts),
		r.Register(m.TreeMissingDeletes),
		r.Register(m.TreeMisses),
		r.Register(m.TreeLen),
		r.Register(m.TreeHeight),
	)
	return r, m, errs.Err
}

// Row is a single flattened sample.
type Row struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (r Row) String() string {
	return fmt.Sprintf("%s %g", r.Name, r.Value)
}

// Summary gathers [g] into rows sorted by name. Labelled samples are
// rendered as name{label="value"}.
func Summary(g prometheus.Gatherer) ([]Row, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var rows []Row
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			rows = append(rows, Row{
				Name:  mf.GetName() + labels(m.GetLabel()),
				Value: value(mf.GetType(), m),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
