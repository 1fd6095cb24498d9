// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/hyperds/bst"
)

var treeOps = map[string]handler{
	"insert": {minArgs: 2, maxArgs: -1, run: (*Session).inject},
	"search": {minArgs: 1, maxArgs: 1, run: (*Session).search},
	"delete": {minArgs: 1, maxArgs: 1, run: (*Session).paradox},
	"report": {minArgs: 0, maxArgs: 0, run: (*Session).report},
	"min": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		v := optional(s.timeline.Min())
		return &Result{Message: "Earliest year: " + v, Value: v}, nil
	}},
	"max": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		v := optional(s.timeline.Max())
		return &Result{Message: "Latest year: " + v, Value: v}, nil
	}},
	"span": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		span := bst.Span(s.timeline)
		return &Result{Message: fmt.Sprintf("Time Span: %d years", span), Value: strconv.Itoa(span)}, nil
	}},
	"height": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		h := s.timeline.Height()
		return &Result{Message: fmt.Sprintf("Timeline depth: %d", h), Value: strconv.Itoa(h)}, nil
	}},
	"len": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		n := s.timeline.Len()
		return &Result{Message: fmt.Sprintf("%d events recorded.", n), Value: strconv.Itoa(n)}, nil
	}},
	"clear": {minArgs: 0, maxArgs: 0, run: func(s *Session, _ []string) (*Result, error) {
		s.timeline.Clear()
		return &Result{Message: "Timeline cleared.", Value: "0"}, nil
	}},
}

func (s *Session) inject(args []string) (*Result, error) {
	year, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	event := strings.Join(args[1:], " ")
	if !s.timeline.Insert(year, event) {
		s.metrics.TreeDuplicateInserts.Inc()
		return &Result{Message: fmt.Sprintf("Year %d already recorded. Timeline unchanged.", year), Value: "ignored"}, nil
	}
	return &Result{Message: fmt.Sprintf("Injecting %d... Timeline stable.", year), Value: "inserted"}, nil
}

func (s *Session) search(args []string) (*Result, error) {
	year, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	event, ok := s.timeline.Search(year)
	if !ok {
		s.metrics.TreeMisses.Inc()
		return &Result{Message: fmt.Sprintf("Year %d not found in current timeline.", year), Value: none}, nil
	}
	return &Result{Message: fmt.Sprintf("Event Found! [%d: %s]", year, event), Value: event}, nil
}

func (s *Session) paradox(args []string) (*Result, error) {
	year, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	if !s.timeline.Delete(year) {
		s.metrics.TreeMissingDeletes.Inc()
		return &Result{Message: fmt.Sprintf("Year %d not in timeline. Nothing removed.", year), Value: "absent"}, nil
	}
	return &Result{Message: fmt.Sprintf("Paradox at %d removed. Timeline stabilized.", year), Value: "removed"}, nil
}

func (s *Session) report([]string) (*Result, error) {
	var (
		lines []string
		years []string
	)
	for year, event := range s.timeline.InOrder() {
		lines = append(lines, fmt.Sprintf("%d: %s", year, event))
		years = append(years, strconv.Itoa(year))
	}
	return &Result{
		Message: "Chronological report:\n" + strings.Join(lines, "\n"),
		Value:   strings.Join(years, " "),
	}, nil
}
