package jvm

import (
	"bytes"
	"strings"

	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogWriter bridges raw process output into the structured logger, one line
// per log entry. Partial lines are buffered until the next newline or Close.
type LogWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

// NewLogWriter creates a LogWriter emitting at the given level, "info" or
// "error".
func NewLogWriter(logger ports.Logger, level string) *LogWriter {
	return &LogWriter{logger: logger, level: level}
}

func (w *LogWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes any remaining buffered output as a final line.
func (w *LogWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *LogWriter) logLine(line []byte) {
	msg := string(line)
	// Windows line endings introduce \r. Remove it.
	msg = strings.TrimSuffix(msg, "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}
