// Package logger appends level-routed lines to the application, debug
// and error log files under storage/logs. Writes are serialized per
// file and guarded by an advisory file lock so that several processes
// can share the same logs.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// Log lines carry a UTC timestamp with microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var valueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// New prepares the log directory under root and opens the sinks:
// storage/logs/app.log and storage/logs/error.log always, plus
// storage/logs/debug.log when debug is true. The debug flag also
// controls whether Debug calls emit anything, and is fixed for the
// lifetime of the Logger.
//
// New fails if the directory cannot be created or any required file
// cannot be opened; no sink stays open after a failed construction.
func New(root string, debug bool) (*Logger, error) {
	dir, err := filepath.Abs(filepath.Join(root, "storage", "logs"))
	if err != nil {
		return nil, fmt.Errorf("logger: resolve log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return nil, fmt.Errorf("logger: create log dir %s: %w", dir, err)
	}

	l := &Logger{debug: debug}

	l.app, err = openSink(filepath.Join(dir, "app.log"))
	if err != nil {
		return nil, err
	}
	l.errs, err = openSink(filepath.Join(dir, "error.log"))
	if err != nil {
		l.app.close()
		return nil, err
	}
	if debug {
		l.dbg, err = openSink(filepath.Join(dir, "debug.log"))
		if err != nil {
			l.app.close()
			l.errs.close()
			return nil, err
		}
	}

	return l, nil
}

// Close closes every open sink. Call it once at process shutdown.
func (l *Logger) Close() error {
	var firstErr error
	for _, s := range []*sink{l.app, l.dbg, l.errs} {
		if s == nil {
			continue
		}
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// DebugEnabled reports whether the debug sink is active.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// Debug writes to the debug sink only. It is a no-op when the logger
// was constructed with debug off.
func (l *Logger) Debug(msg string, fields ...Field) error {
	if !l.debug {
		return nil
	}
	return l.write(LevelDebug, msg, fields)
}

// Info writes to the application sink.
func (l *Logger) Info(msg string, fields ...Field) error {
	return l.write(LevelInfo, msg, fields)
}

// Notice writes to the application sink.
func (l *Logger) Notice(msg string, fields ...Field) error {
	return l.write(LevelNotice, msg, fields)
}

// Warn writes to the application sink.
func (l *Logger) Warn(msg string, fields ...Field) error {
	return l.write(LevelWarn, msg, fields)
}

// Error writes to the application and error sinks.
func (l *Logger) Error(msg string, fields ...Field) error {
	return l.write(LevelError, msg, fields)
}

// Critical writes to the application and error sinks.
func (l *Logger) Critical(msg string, fields ...Field) error {
	return l.write(LevelCritical, msg, fields)
}

// Alert writes to the application and error sinks.
func (l *Logger) Alert(msg string, fields ...Field) error {
	return l.write(LevelAlert, msg, fields)
}

// Emergency writes to the application and error sinks.
func (l *Logger) Emergency(msg string, fields ...Field) error {
	return l.write(LevelEmergency, msg, fields)
}

// write formats one line and appends it to every sink the level
// routes to. The only error it returns is a bad context key; sink
// trouble past that point never reaches the caller.
func (l *Logger) write(level Level, msg string, fields []Field) error {
	ts := time.Now().UTC().Format(timestampLayout)

	for _, f := range fields {
		if !keyPattern.MatchString(f.Key) {
			return &InvalidKeyError{Key: f.Key}
		}
	}

	var b strings.Builder
	b.WriteString("timestamp=")
	b.WriteString(ts)
	b.WriteString(" level=")
	b.WriteString(level.String())
	b.WriteString(" message=")
	b.WriteString(quote(msg))
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(quote(fmt.Sprint(f.Value)))
	}
	b.WriteByte('\n')
	line := b.String()

	for _, s := range l.route(level) {
		s.append(line)
	}
	return nil
}

// route maps a level to its sinks. The debug sink, when open,
// receives every line.
func (l *Logger) route(level Level) []*sink {
	sinks := make([]*sink, 0, 3)
	switch level {
	case LevelDebug:
		// nothing beyond the debug sink
	case LevelInfo, LevelNotice, LevelWarn:
		sinks = append(sinks, l.app)
	case LevelError, LevelCritical, LevelAlert, LevelEmergency:
		sinks = append(sinks, l.app, l.errs)
	}
	if l.dbg != nil {
		sinks = append(sinks, l.dbg)
	}
	return sinks
}

// quote escapes backslashes and double quotes, then wraps the value
// in double quotes.
func quote(v string) string {
	return `"` + valueEscaper.Replace(v) + `"`
}

func openSink(path string) (*sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", path, err)
	}
	return &sink{path: path, f: f, fl: flock.New(path)}, nil
}

// append writes one complete line under the sink's locks. The mutex
// orders writers inside this process; the advisory flock fences off
// other processes appending to the same file. Lock acquisition is
// non-blocking: a contended line is dropped for this sink.
func (s *sink) append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.fl.TryLock()
	if err != nil || !locked {
		return
	}
	defer s.fl.Unlock()

	// A failed write is treated the same as a dropped one.
	_, _ = s.f.WriteString(line)
}

func (s *sink) close() error {
	if err := s.fl.Close(); err != nil {
		s.f.Close()
		return fmt.Errorf("logger: close lock %s: %w", s.path, err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("logger: close %s: %w", s.path, err)
	}
	return nil
}
