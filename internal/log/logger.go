// Package log provides the named, leveled loggers used across the viewer.
// All loggers share one backend; SetSink and SetLevel affect every logger.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logger verbosity. Lower values are more verbose.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = [...]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// DefaultLevel is the verbosity used until SetLevel is called.
const DefaultLevel = Notice

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	current = DefaultLevel
)

// Logger is implemented by the loggers returned from New.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects every logger to sink, keeping the current level.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(backendLevels[current], "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity of every logger. Out of range levels are
// clamped to Debug or Error.
func SetLevel(level Level) {
	switch {
	case level < Debug:
		level = Debug
	case level > Error:
		level = Error
	}
	current = level
	backend.SetLevel(backendLevels[level], "")
}

// CurrentLevel returns the active verbosity.
func CurrentLevel() Level {
	return current
}

// VerbosityLevel maps the -v/-vv command line switches to a level.
func VerbosityLevel(verbose, veryVerbose bool) Level {
	switch {
	case veryVerbose:
		return Debug
	case verbose:
		return Info
	}
	return DefaultLevel
}

func init() {
	SetSink(os.Stdout)
}
