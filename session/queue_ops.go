// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/hyperds/queue"
)

var queueOps = map[string]handler{
	"insert-front": {minArgs: 1, maxArgs: 1, run: (*Session).insertFront},
	"insert-back":  {minArgs: 1, maxArgs: 1, run: (*Session).insertBack},
	"insert-at":    {minArgs: 2, maxArgs: 2, run: (*Session).insertAt},
	"remove-front": {minArgs: 0, maxArgs: 0, run: (*Session).removeFront},
	"forward":      {minArgs: 0, maxArgs: 0, run: (*Session).forward},
	"backward":     {minArgs: 0, maxArgs: 0, run: (*Session).backward},
	"front":        {minArgs: 0, maxArgs: 0, run: (*Session).front},
	"back":         {minArgs: 0, maxArgs: 0, run: (*Session).back},
	"len": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		n := s.queue.Len()
		return &Result{Message: fmt.Sprintf("%d patients waiting.", n), Value: strconv.Itoa(n)}, nil
	}},
	"clear": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		s.queue.Clear()
		return &Result{Message: "Queue cleared.", Value: "0"}, nil
	}},
}

func (s *Session) insertFront(args []string) (*Result, error) {
	id, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	s.queue.InsertFront(id)
	return &Result{Message: fmt.Sprintf("Critical patient %d added first.", id), Value: queue.Front.String()}, nil
}

func (s *Session) insertBack(args []string) (*Result, error) {
	id, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	s.queue.InsertBack(id)
	return &Result{Message: fmt.Sprintf("Patient %d added at the end.", id), Value: queue.Back.String()}, nil
}

func (s *Session) insertAt(args []string) (*Result, error) {
	id, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	pos, err := parseInt(args[1])
	if err != nil {
		return nil, err
	}

	p := s.queue.InsertAt(id, pos)
	var msg string
	switch p {
	case queue.Front:
		msg = fmt.Sprintf("Critical patient %d added first.", id)
	case queue.Middle:
		msg = fmt.Sprintf("Patient %d placed at position %d.", id, pos)
	case queue.Back:
		msg = fmt.Sprintf("Patient %d added at the end.", id)
	case queue.BackOverflow:
		s.metrics.QueueDegradedInserts.Inc()
		msg = fmt.Sprintf("Position %d too far, patient %d added at the end.", pos, id)
	}
	return &Result{Message: msg, Value: p.String()}, nil
}

func (s *Session) removeFront([]string) (*Result, error) {
	id, ok := s.queue.RemoveFront()
	if !ok {
		s.metrics.QueueEmptyRemovals.Inc()
		return &Result{Message: "No patient to remove.", Value: none}, nil
	}
	return &Result{Message: fmt.Sprintf("Patient %d treated and removed.", id), Value: strconv.Itoa(id)}, nil
}

func (s *Session) forward([]string) (*Result, error) {
	ids := joinInts(s.queue.Forward())
	return &Result{Message: "Queue (Front to End): " + ids, Value: ids}, nil
}

func (s *Session) backward([]string) (*Result, error) {
	ids := joinInts(s.queue.Backward())
	return &Result{Message: "Queue (End to Front): " + ids, Value: ids}, nil
}

func (s *Session) front([]string) (*Result, error) {
	v := optional(s.queue.Front())
	return &Result{Message: "Head: " + v, Value: v}, nil
}

func (s *Session) back([]string) (*Result, error) {
	v := optional(s.queue.Back())
	return &Result{Message: "Tail: " + v, Value: v}, nil
}
