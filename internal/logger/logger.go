// Package logger provides leveled logging for the pricer CLI.
//
// Verbosity increases from Error through Trace and is set once after flag or
// config parsing. Output goes to stderr so the report text on stdout stays
// clean for piping.
package logger

import (
	"log"
	"os"
)

// Level represents a logging verbosity level. Higher values log more.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level run progress
	Debug              // derived quantities, intermediate results
	Trace              // per-node detail, very voluminous
)

// current holds the active verbosity; messages with level <= current are logged.
var current Level = Info

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
}

// SetVerbosity sets the global logging verbosity.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs diagnostic detail such as derived lattice parameters.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs very fine-grained execution detail.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
