package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	plog "github.com/pion/logging"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that GlobalConfig doesn't need to be passed to
// literally every function in the project.
var (
	Mode Flag = Nil
	// Level is the level of loggers created by NewLogger.
	Level plog.LogLevel = plog.LogLevelWarn
	// Writer is where loggers created by NewLogger write to.
	Writer io.Writer = os.Stderr
)

// MemString returns a string containing various statistics on the current
// memory usage of qmcpoints.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}

// ParseLevel converts a level name (disabled, error, warn, info, debug, or
// trace) to a log level.
func ParseLevel(s string) (plog.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled":
		return plog.LogLevelDisabled, nil
	case "error":
		return plog.LogLevelError, nil
	case "warn":
		return plog.LogLevelWarn, nil
	case "info":
		return plog.LogLevelInfo, nil
	case "debug":
		return plog.LogLevelDebug, nil
	case "trace":
		return plog.LogLevelTrace, nil
	}
	return plog.LogLevelDisabled, fmt.Errorf("I don't recognize the log "+
		"level '%s'.", s)
}

// SetLevel sets the global log level from its name. The Debug and
// Performance modes are never quieter than info.
func SetLevel(s string) error {
	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	if Mode != Nil && level < plog.LogLevelInfo {
		level = plog.LogLevelInfo
	}
	Level = level
	return nil
}

// NewLogger returns a leveled logger for the given scope which writes to
// Writer at the current global Level.
func NewLogger(scope string) plog.LeveledLogger {
	return plog.NewDefaultLeveledLoggerForScope(scope, Level, Writer)
}

// LogMem writes MemString() to log if the Performance mode is active.
func LogMem(log plog.LeveledLogger) {
	if Mode == Performance {
		log.Infof("%s", MemString())
	}
}
