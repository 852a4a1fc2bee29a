package log

import (
	"fmt"
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "NONE", "OFF":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelFromString is the lenient form of ParseLevel; unknown names yield LevelDebug.
func LevelFromString(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		return LevelDebug
	}
	return l
}

type Logger struct {
	logger *log.Logger
	level  *Level
	prefix string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ltime|log.Lmicroseconds),
		level:  &level,
	}
}

// With returns a logger that shares output and level with l and tags every
// line with "[prefix] ".
func (l *Logger) With(prefix string) *Logger {
	return &Logger{
		logger: l.logger,
		level:  l.level,
		prefix: "[" + prefix + "] ",
	}
}

func (l *Logger) printf(tag, format string, v ...interface{}) {
	l.logger.Printf(tag+": "+l.prefix+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if *l.level <= LevelDebug {
		l.printf("DEBUG", format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if *l.level <= LevelInfo {
		l.printf("INFO", format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if *l.level <= LevelWarn {
		l.printf("WARN", format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if *l.level <= LevelError {
		l.printf("ERROR", format, v...)
	}
}

// SetLevel changes the level for l and every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	*l.level = level
}

func (l *Logger) Level() Level {
	return *l.level
}
