// Package logger implements a logging adapter using zap.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using a zap SugaredLogger.
type Logger struct {
	mu     sync.RWMutex
	logger *zap.SugaredLogger
}

// New creates a new Logger writing human-readable output to stderr.
func New() *Logger {
	return &Logger{logger: newSugared(os.Stderr)}
}

func newSugared(w io.Writer) *zap.SugaredLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.InfoLevel,
	)
	return zap.New(core).Sugar()
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = newSugared(w)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain unrolled.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	messages := collectMessages(err)
	if len(messages) == 1 {
		l.logger.Error(messages[0])
		return
	}
	l.logger.Errorw(messages[0], "cause", strings.Join(messages[1:], ": "))
}

// collectMessages traverses the error chain and returns each link's own
// message. A non-zerr error terminates the walk with its full Error() text.
func collectMessages(err error) []string {
	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}
	return messages
}
