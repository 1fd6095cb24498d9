// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrLoggerExists = errors.New("logger already exists")

// Config controls the loggers handed out by a [Factory].
type Config struct {
	Level logging.Level

	// Directory receives one rotating <name>.log file per logger. File
	// output is disabled when empty.
	Directory string
	MaxSize   int // megabytes
	MaxFiles  int
	MaxAge    int // days
	Compress  bool

	// DisableDisplay mutes the console core.
	DisableDisplay bool
	Display        io.WriteCloser
}

// Factory creates named loggers writing to a coloured console core and,
// optionally, to a lumberjack-rotated JSON file.
type Factory struct {
	config Config

	lock    sync.Mutex
	loggers map[string]logging.Logger
}

func NewFactory(config Config) *Factory {
	if config.Display == nil {
		config.Display = os.Stderr
	}
	return &Factory{
		config:  config,
		loggers: make(map[string]logging.Logger),
	}
}

func (f *Factory) Make(name string) (logging.Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrLoggerExists, name)
	}

	var display io.WriteCloser = f.config.Display
	if f.config.DisableDisplay {
		display = discardWriteCloser{io.Discard}
	}
	consoleCore := logging.NewWrappedCore(f.config.Level, display, logging.Colors.ConsoleEncoder())
	consoleCore.WriterDisabled = f.config.DisableDisplay
	cores := []logging.WrappedCore{consoleCore}

	if f.config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(f.config.Directory, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxAge:     f.config.MaxAge,
			MaxBackups: f.config.MaxFiles,
			Compress:   f.config.Compress,
		}
		cores = append(cores, logging.NewWrappedCore(f.config.Level, rw, logging.JSON.FileEncoder()))
	}

	l := logging.NewLogger(logging.Colors.WrapPrefix(name), cores...)
	f.loggers[name] = l
	return l, nil
}

// Close stops every logger created by f.
func (f *Factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = map[string]logging.Logger{}
}

type discardWriteCloser struct {
	io.Writer
}

func (discardWriteCloser) Close() error {
	return nil
}
