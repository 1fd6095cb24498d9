// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/hyperds/bst"
	"github.com/ava-labs/hyperds/metrics"
	"github.com/ava-labs/hyperds/queue"
)

type Target string

const (
	Queue Target = "queue"
	Tree  Target = "tree"

	// none is rendered for empty results (front of an empty queue, min of
	// an empty tree, ...).
	none = "none"
)

// Command is a single operation against one of the structures of a
// [Session].
type Command struct {
	Target Target   `json:"target"`
	Op     string   `json:"op"`
	Args   []string `json:"args,omitempty"`
}

func (c Command) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", c.Target, c.Op, strings.Join(c.Args, " ")))
}

// Result describes the outcome of a [Command]. Message is meant for humans,
// Value is a stable rendering of the result that scripts can assert on.
type Result struct {
	Target  Target `json:"target"`
	Op      string `json:"op"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (r *Result) String() string {
	return r.Message
}

type handler struct {
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(s *Session, args []string) (*Result, error)
}

// Session owns an ER patient queue and a time-stream of events and applies
// [Command]s to them. Every operation is logged and counted.
//
// Session is not safe for concurrent use.
type Session struct {
	log     logging.Logger
	metrics *metrics.Metrics

	queue    *queue.Ordered[int]
	timeline *bst.Map[int, string]
}

func New(log logging.Logger, m *metrics.Metrics) *Session {
	return &Session{
		log:      log,
		metrics:  m,
		queue:    queue.New[int](),
		timeline: bst.New[int, string](0),
	}
}

// Exec applies [cmd]. Structural outcomes such as removing from an empty
// queue are reported in the result; errors are only returned for
// malformed commands.
func (s *Session) Exec(ctx context.Context, cmd Command) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ops map[string]handler
	switch cmd.Target {
	case Queue:
		ops = queueOps
	case Tree:
		ops = treeOps
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, cmd.Target)
	}
	h, ok := ops[cmd.Op]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownOp, cmd.Target, cmd.Op)
	}
	if n := len(cmd.Args); n < h.minArgs || (h.maxArgs >= 0 && n > h.maxArgs) {
		return nil, fmt.Errorf("%w: %s %s takes %s, got %d", ErrInvalidArgs, cmd.Target, cmd.Op, h.arity(), n)
	}

	res, err := h.run(s, cmd.Args)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", cmd.Target, cmd.Op, err)
	}
	res.Target, res.Op = cmd.Target, cmd.Op
	s.observe(cmd)
	s.log.Info(res.Message,
		zap.Stringer("target", cmd.Target),
		zap.String("op", cmd.Op),
		zap.Strings("args", cmd.Args),
		zap.String("value", res.Value),
	)
	return res, nil
}

func (t Target) String() string {
	return string(t)
}

func (s *Session) observe(cmd Command) {
	switch cmd.Target {
	case Queue:
		s.metrics.QueueOps.WithLabelValues(cmd.Op).Inc()
		s.metrics.QueueLen.Set(float64(s.queue.Len()))
	case Tree:
		s.metrics.TreeOps.WithLabelValues(cmd.Op).Inc()
		s.metrics.TreeLen.Set(float64(s.timeline.Len()))
		s.metrics.TreeHeight.Set(float64(s.timeline.Height()))
	}
}

func (h handler) arity() string {
	switch {
	case h.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", h.minArgs)
	case h.minArgs == h.maxArgs && h.minArgs == 1:
		return "1 argument"
	case h.minArgs == h.maxArgs:
		return fmt.Sprintf("%d arguments", h.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", h.minArgs, h.maxArgs)
	}
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

func joinInts(seq iter.Seq[int]) string {
	var b strings.Builder
	for v := range seq {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func optional(v int, ok bool) string {
	if !ok {
		return none
	}
	return strconv.Itoa(v)
}

// Ops returns the operation names accepted for [t], sorted.
func Ops(t Target) []string {
	switch t {
	case Queue:
		return slices.Sorted(maps.Keys(queueOps))
	case Tree:
		return slices.Sorted(maps.Keys(treeOps))
	default:
		return nil
	}
}
