// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ logging.Logger = (*Recorder)(nil)

type Entry struct {
	Level  logging.Level
	Msg    string
	Fields map[string]interface{}
}

// Recorder keeps every entry at or above its level in memory. Tests use it
// to assert on what a component logged.
type Recorder struct {
	lock    sync.Mutex
	level   logging.Level
	entries []Entry
}

func NewRecorder(level logging.Level) *Recorder {
	return &Recorder{level: level}
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	msgs := make([]string, len(r.entries))
	for i, e := range r.entries {
		msgs[i] = e.Msg
	}
	return msgs
}

func (r *Recorder) record(level logging.Level, msg string, fields []zap.Field) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if level < r.level {
		return
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: enc.Fields})
}

func (r *Recorder) Fatal(msg string, fields ...zap.Field) { r.record(logging.Fatal, msg, fields) }

func (r *Recorder) Error(msg string, fields ...zap.Field) { r.record(logging.Error, msg, fields) }

func (r *Recorder) Warn(msg string, fields ...zap.Field) { r.record(logging.Warn, msg, fields) }

func (r *Recorder) Info(msg string, fields ...zap.Field) { r.record(logging.Info, msg, fields) }

func (r *Recorder) Trace(msg string, fields ...zap.Field) { r.record(logging.Trace, msg, fields) }

func (r *Recorder) Debug(msg string, fields ...zap.Field) { r.record(logging.Debug, msg, fields) }

func (r *Recorder) Verbo(msg string, fields ...zap.Field) { r.record(logging.Verbo, msg, fields) }

func (r *Recorder) Enabled(level logging.Level) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return level >= r.level
}

func (r *Recorder) SetLevel(level logging.Level) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.level = level
}

func (*Recorder) RecoverAndExit(f, exit func()) {
	defer exit()
	f()
}

func (*Recorder) RecoverAndPanic(f func()) { f() }

func (*Recorder) Stop() {}

func (*Recorder) StopOnPanic() {}

// Write records [p] as an info message.
func (r *Recorder) Write(p []byte) (int, error) {
	r.record(logging.Info, string(p), nil)
	return len(p), nil
}
