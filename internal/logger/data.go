package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/gofrs/flock"
)

// Level represents the severity of a log entry, ascending from
// LevelDebug to LevelEmergency.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelNotice
	LevelWarn
	LevelError
	LevelCritical
	LevelAlert
	LevelEmergency
)

var levelNames = map[Level]string{
	LevelDebug:     "DEBUG",
	LevelInfo:      "INFO",
	LevelNotice:    "NOTICE",
	LevelWarn:      "WARN",
	LevelError:     "ERROR",
	LevelCritical:  "CRITICAL",
	LevelAlert:     "ALERT",
	LevelEmergency: "EMERGENCY",
}

// String returns the uppercase token written on the log line.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", uint8(l))
}

// Field is one key/value pair of context attached to a log call.
// Fields are written in the order they are passed.
type Field struct {
	Key   string
	Value any
}

// F builds a context field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// InvalidKeyError reports a context key that is not limited to
// [A-Za-z0-9_]. The log call that carried it writes nothing.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("logger: invalid context key %q", e.Key)
}

// Logger writes one line per call to up to three append-only files.
// A single Logger is meant to be constructed at startup and shared;
// all methods are safe for concurrent use.
type Logger struct {
	debug bool
	app   *sink
	dbg   *sink
	errs  *sink
}

// sink is one output file plus its locks. The mutex serializes
// goroutines of this process; the flock guards against writers in
// other processes appending to the same path.
type sink struct {
	path string
	f    *os.File
	mu   sync.Mutex
	fl   *flock.Flock
}
