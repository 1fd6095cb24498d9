// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	require := require.New(t)
	r, m, err := New()
	require.NoError(err)

	m.QueueOps.WithLabelValues("insert-back").Add(2)
	m.QueueOps.WithLabelValues("remove-front").Inc()
	m.QueueLen.Set(1)
	m.TreeHeight.Set(3)
	require.InDelta(2, testutil.ToFloat64(m.QueueOps.WithLabelValues("insert-back")), 0)

	rows, err := Summary(r)
	require.NoError(err)

	got := map[string]float64{}
	for _, row := range rows {
		got[row.Name] = row.Value
	}
	require.InDelta(2, got[`hyperds_queue_ops{op="insert-back"}`], 0)
	require.InDelta(1, got[`hyperds_queue_ops{op="remove-front"}`], 0)
	require.InDelta(1, got["hyperds_queue_len"], 0)
	require.InDelta(3, got["hyperds_tree_height"], 0)
	require.Contains(got, "hyperds_tree_duplicate_inserts")

	for i := 1; i < len(rows); i++ {
		require.LessOrEqual(rows[i-1].Name, rows[i].Name)
	}
	require.Equal("hyperds_queue_len 1", Row{Name: "hyperds_queue_len", Value: 1}.String())
}

func TestNewIsolatedRegistries(t *testing.T) {
	require := require.New(t)
	_, a, err := New()
	require.NoError(err)
	_, b, err := New()
	require.NoError(err)

	a.TreeMisses.Inc()
	require.InDelta(0, testutil.ToFloat64(b.TreeMisses), 0)
}
