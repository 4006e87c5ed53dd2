// Package logging provides the leveled logger used across the
// storefront. The interface allows swapping implementations without
// touching call sites.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is the logging contract used by the orchestrator and the
// network-facing packages.
type Logger interface {
	Error(args ...any)
	Errorf(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
}

type stdLogger struct {
	errorLog *log.Logger
	warnLog  *log.Logger
	infoLog  *log.Logger
	debugLog *log.Logger
	debug    bool
}

// New creates a logger backed by the standard log package. Debug output
// is emitted only when debug is true.
func New(debug bool) Logger {
	return &stdLogger{
		errorLog: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
		warnLog:  log.New(os.Stderr, "[WARN] ", log.LstdFlags),
		infoLog:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		debugLog: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		debug:    debug,
	}
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() Logger {
	l := log.New(io.Discard, "", 0)
	return &stdLogger{errorLog: l, warnLog: l, infoLog: l, debugLog: l}
}

func (l *stdLogger) Error(args ...any)                 { l.errorLog.Output(2, fmt.Sprint(args...)) }
func (l *stdLogger) Errorf(format string, args ...any) { l.errorLog.Output(2, fmt.Sprintf(format, args...)) }
func (l *stdLogger) Warn(args ...any)                  { l.warnLog.Output(2, fmt.Sprint(args...)) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.warnLog.Output(2, fmt.Sprintf(format, args...)) }
func (l *stdLogger) Info(args ...any)                  { l.infoLog.Output(2, fmt.Sprint(args...)) }
func (l *stdLogger) Infof(format string, args ...any)  { l.infoLog.Output(2, fmt.Sprintf(format, args...)) }

func (l *stdLogger) Debug(args ...any) {
	if l.debug {
		l.debugLog.Output(2, fmt.Sprint(args...))
	}
}

func (l *stdLogger) Debugf(format string, args ...any) {
	if l.debug {
		l.debugLog.Output(2, fmt.Sprintf(format, args...))
	}
}
