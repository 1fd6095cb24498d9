// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"context"
	"testing"

	alogging "github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hyperds/internal/logging"
	"github.com/ava-labs/hyperds/metrics"
)

func newTestSession(t *testing.T) (*Session, *metrics.Metrics) {
	t.Helper()
	_, m, err := metrics.New()
	require.NoError(t, err)
	return New(logging.NewRecorder(alogging.Info), m), m
}

func run(t *testing.T, s *Session, cmds []Command) []*Result {
	t.Helper()
	results := make([]*Result, 0, len(cmds))
	for _, cmd := range cmds {
		res, err := s.Exec(context.Background(), cmd)
		require.NoError(t, err, cmd.String())
		results = append(results, res)
	}
	return results
}

func TestERQueueDemo(t *testing.T) {
	require := require.New(t)
	s, m := newTestSession(t)

	results := run(t, s, ERQueueDemo())
	byOp := map[string]string{}
	for _, res := range results {
		require.Equal(Queue, res.Target)
		byOp[res.Op] = res.Value
	}
	require.Equal("150 101 102 300", byOp["forward"])
	require.Equal("300 102 101 150", byOp["backward"])
	require.Equal("150", byOp["front"])
	require.Equal("300", byOp["back"])
	require.Equal("200", byOp["remove-front"])
	require.Equal("middle", byOp["insert-at"])

	require.InDelta(4, testutil.ToFloat64(m.QueueLen), 0)
	require.InDelta(3, testutil.ToFloat64(m.QueueOps.WithLabelValues("insert-back")), 0)
}

func TestTimeStreamDemo(t *testing.T) {
	require := require.New(t)
	s, m := newTestSession(t)

	results := run(t, s, TimeStreamDemo())
	require.Equal("Moon Landing", results[4].Value)
	require.Equal("Event Found! [1969: Moon Landing]", results[4].Message)
	require.Equal("removed", results[6].Value)
	require.Equal("1969 1990 2050 2100", results[7].Value)
	require.Contains(results[7].Message, "2050: Mars Colony Established")
	require.Equal(none, results[8].Value)
	require.Equal("Year 2000 not found in current timeline.", results[8].Message)
	require.Equal("131", results[9].Value)

	require.InDelta(4, testutil.ToFloat64(m.TreeLen), 0)
	require.InDelta(1, testutil.ToFloat64(m.TreeMisses), 0)
}

func TestQueueOutcomes(t *testing.T) {
	require := require.New(t)
	s, m := newTestSession(t)

	results := run(t, s, []Command{
		{Target: Queue, Op: "remove-front"},
		{Target: Queue, Op: "front"},
		{Target: Queue, Op: "insert-at", Args: []string{"7", "5"}},
		{Target: Queue, Op: "insert-at", Args: []string{"8", "2"}},
		{Target: Queue, Op: "insert-at", Args: []string{"6", "0"}},
		{Target: Queue, Op: "len"},
		{Target: Queue, Op: "forward"},
		{Target: Queue, Op: "clear"},
		{Target: Queue, Op: "back"},
	})
	require.Equal(none, results[0].Value)
	require.Equal("No patient to remove.", results[0].Message)
	require.Equal(none, results[1].Value)
	require.Equal("back (position too far)", results[2].Value)
	require.Equal("back", results[3].Value)
	require.Equal("front", results[4].Value)
	require.Equal("3", results[5].Value)
	require.Equal("6 7 8", results[6].Value)
	require.Equal(none, results[8].Value)

	require.InDelta(1, testutil.ToFloat64(m.QueueEmptyRemovals), 0)
	require.InDelta(1, testutil.ToFloat64(m.QueueDegradedInserts), 0)
}

func TestTreeOutcomes(t *testing.T) {
	require := require.New(t)
	s, m := newTestSession(t)

	results := run(t, s, []Command{
		{Target: Tree, Op: "min"},
		{Target: Tree, Op: "span"},
		{Target: Tree, Op: "insert", Args: []string{"1969", "Moon", "Landing"}},
		{Target: Tree, Op: "insert", Args: []string{"1969", "Hoax"}},
		{Target: Tree, Op: "search", Args: []string{"1969"}},
		{Target: Tree, Op: "delete", Args: []string{"1492"}},
		{Target: Tree, Op: "insert", Args: []string{"2001", "Odyssey"}},
		{Target: Tree, Op: "max"},
		{Target: Tree, Op: "height"},
		{Target: Tree, Op: "len"},
		{Target: Tree, Op: "clear"},
		{Target: Tree, Op: "report"},
	})
	require.Equal(none, results[0].Value)
	require.Equal("0", results[1].Value)
	require.Equal("inserted", results[2].Value)
	require.Equal("ignored", results[3].Value)
	require.Equal("Moon Landing", results[4].Value)
	require.Equal("absent", results[5].Value)
	require.Equal("2001", results[7].Value)
	require.Equal("2", results[8].Value)
	require.Equal("2", results[9].Value)
	require.Empty(results[11].Value)

	require.InDelta(1, testutil.ToFloat64(m.TreeDuplicateInserts), 0)
	require.InDelta(1, testutil.ToFloat64(m.TreeMissingDeletes), 0)
	require.InDelta(0, testutil.ToFloat64(m.TreeHeight), 0)
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		err  error
	}{
		{
			name: "unknown target",
			cmd:  Command{Target: "stack", Op: "push"},
			err:  ErrUnknownTarget,
		},
		{
			name: "unknown op",
			cmd:  Command{Target: Queue, Op: "pop-back"},
			err:  ErrUnknownOp,
		},
		{
			name: "missing args",
			cmd:  Command{Target: Queue, Op: "insert-at", Args: []string{"1"}},
			err:  ErrInvalidArgs,
		},
		{
			name: "extra args",
			cmd:  Command{Target: Tree, Op: "span", Args: []string{"1"}},
			err:  ErrInvalidArgs,
		},
		{
			name: "insert without event",
			cmd:  Command{Target: Tree, Op: "insert", Args: []string{"1969"}},
			err:  ErrInvalidArgs,
		},
		{
			name: "not a number",
			cmd:  Command{Target: Tree, Op: "search", Args: []string{"y2k"}},
			err:  ErrInvalidNumber,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			_, err := s.Exec(context.Background(), tt.cmd)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestExecCanceled(t *testing.T) {
	require := require.New(t)
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Exec(ctx, Command{Target: Queue, Op: "len"})
	require.ErrorIs(err, context.Canceled)
}

func TestOps(t *testing.T) {
	require := require.New(t)
	require.Contains(Ops(Queue), "insert-at")
	require.Contains(Ops(Tree), "span")
	require.Nil(Ops("stack"))
}

func TestExecLogs(t *testing.T) {
	require := require.New(t)
	_, m, err := metrics.New()
	require.NoError(err)
	log := logging.NewRecorder(alogging.Info)
	s := New(log, m)

	_, err = s.Exec(context.Background(), Command{Target: Queue, Op: "insert-front", Args: []string{"200"}})
	require.NoError(err)
	_, err = s.Exec(context.Background(), Command{Target: Queue, Op: "insert-at"})
	require.ErrorIs(err, ErrInvalidArgs)

	entries := log.Entries()
	require.Len(entries, 1)
	require.Equal("Critical patient 200 added first.", entries[0].Msg)
	require.Equal("queue", entries[0].Fields["target"])
	require.Equal("insert-front", entries[0].Fields["op"])
}
