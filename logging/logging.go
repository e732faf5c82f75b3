/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a zap SugaredLogger to the Logger interface of the scheme.
type Logger struct {
	debugEnabled bool
	*zap.SugaredLogger
}

// New returns a development logger with the given name attached to every entry.
// Debug entries are emitted only if debug is set.
func New(name string, debug bool) (*Logger, error) {
	logConfig := zap.NewDevelopmentConfig()
	if !debug {
		logConfig.Level.SetLevel(zapcore.InfoLevel)
	}

	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("name", name))

	return &Logger{
		SugaredLogger: logger.Sugar(),
		debugEnabled:  logConfig.Level.Enabled(zapcore.DebugLevel),
	}, nil
}

// Wrap adapts an existing zap logger.
func Wrap(logger *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: logger.Sugar(),
		debugEnabled:  logger.Core().Enabled(zapcore.DebugLevel),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return Wrap(zap.NewNop())
}

func (l *Logger) DebugEnabled() bool {
	return l.debugEnabled
}
