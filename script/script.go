// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/hyperds/session"
)

var (
	ErrInvalidFormat = errors.New("script is neither JSON nor YAML")
	ErrNoSteps       = errors.New("script has no steps")
	ErrMissingField  = errors.New("missing field")
	ErrExpectation   = errors.New("expectation failed")
)

type Script struct {
	// Optional name, used in logs.
	Name  string `json:"name" yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Structure the step applies to: "queue" or "tree". (required)
	Target string `json:"target" yaml:"target"`
	// Operation name, see [session.Ops]. (required)
	Op string `json:"op" yaml:"op"`
	// Operation arguments. Numbers and strings are both accepted.
	Args []interface{} `json:"args,omitempty" yaml:"args,omitempty"`
	// Expected rendered value of the result, if any.
	Expect *string `json:"expect,omitempty" yaml:"expect,omitempty"`
}

func (s Step) Command() session.Command {
	cmd := session.Command{
		Target: session.Target(s.Target),
		Op:     s.Op,
	}
	for _, arg := range s.Args {
		cmd.Args = append(cmd.Args, fmt.Sprint(arg))
	}
	return cmd
}

func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Script, error) {
	var s Script
	switch {
	case isJSON(b):
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, err
		}
	case isYAML(b):
		if err := yaml.Unmarshal(b, &s); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidFormat
	}
	if err := s.Verify(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Verify() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range s.Steps {
		switch {
		case step.Target == "":
			return fmt.Errorf("%w: step %d: target", ErrMissingField, i)
		case step.Op == "":
			return fmt.Errorf("%w: step %d: op", ErrMissingField, i)
		}
	}
	return nil
}

// Run executes every step of [s] on [sess] in order, calling [f] (if not
// nil) with each result. It stops at the first malformed step or failed
// expectation.
func (s *Script) Run(ctx context.Context, sess *session.Session, f func(int, *session.Result)) error {
	for i, step := range s.Steps {
		cmd := step.Command()
		res, err := sess.Exec(ctx, cmd)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, cmd, err)
		}
		if f != nil {
			f(i, res)
		}
		if step.Expect != nil && *step.Expect != res.Value {
			return fmt.Errorf("%w: step %d (%s): want %q, got %q", ErrExpectation, i, cmd, *step.Expect, res.Value)
		}
	}
	return nil
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}
