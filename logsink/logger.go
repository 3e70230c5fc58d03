package logsink

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// The fixed follow-up line every sink receives after a fatal message.
const bugReportLine = "    This indicates a bug in the program, please file a report via GitHub\n"

// Logger owns the ordered set of active sinks and the process-wide logging
// state: the trace-filter set, the stdout-only override, and the current
// indentation depth. Every log call fans out to all registered sinks in
// insertion order under one mutex, so two concurrent calls never interleave
// their per-sink writes.
type Logger struct {
	mu    sync.Mutex
	sinks []Sink

	traceFilters map[string]struct{}
	stdoutOnly   bool
	indentDepth  atomic.Int32

	// exit is called after a fatal message has been fanned out. Tests
	// replace it to intercept the abort.
	exit func()
}

// New returns a Logger with no sinks registered.
func New() *Logger {
	return &Logger{
		traceFilters: make(map[string]struct{}),
		exit:         func() { os.Exit(1) },
	}
}

// AddSink registers a sink. The Logger takes ownership and closes the sink
// when the Logger itself is closed. Dispatch order is registration order.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// SetStdoutOnly routes error-tier console output to stdout instead of
// stderr, for hosts that capture a single stream.
func (l *Logger) SetStdoutOnly(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdoutOnly = v
}

// Close closes every registered sink and empties the registry. The first
// close error is returned; all sinks are closed regardless.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, s := range l.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.sinks = nil
	return firstErr
}

// emitState snapshots the per-call state passed to every sink in a fan-out.
func (l *Logger) emitState() EmitState {
	return EmitState{
		IndentDepth: int(l.indentDepth.Load()),
		ForceStdout: l.stdoutOnly,
	}
}

func (l *Logger) emitLocked(severity Severity, msg string) {
	state := l.emitState()
	for _, s := range l.sinks {
		s.Emit(severity, msg, state)
	}
}

func (l *Logger) emit(severity Severity, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.emitLocked(severity, msg)
}

// Logf logs at an explicit severity with no added prefix.
func (l *Logger) Logf(severity Severity, format string, args ...any) {
	l.emit(severity, fmt.Sprintf(format, args...))
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	l.emit(DebugLevel, fmt.Sprintf(format, args...))
}

// Verbosef logs at VerboseLevel.
func (l *Logger) Verbosef(format string, args ...any) {
	l.emit(VerboseLevel, fmt.Sprintf(format, args...))
}

// Noticef logs at NoticeLevel.
func (l *Logger) Noticef(format string, args ...any) {
	l.emit(NoticeLevel, fmt.Sprintf(format, args...))
}

// Warnf logs at WarningLevel with a "Warning: " prefix.
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(WarningLevel, fmt.Sprintf("Warning: "+format, args...))
}

// Errorf logs at ErrorLevel with an "ERROR: " prefix.
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(ErrorLevel, fmt.Sprintf("ERROR: "+format, args...))
}

// Fatalf logs at FatalLevel with an "INTERNAL ERROR: " prefix, sends every
// sink a fixed bug-report follow-up line, and then terminates the process.
// This is the designated crash-with-diagnostics path; it does not return.
func (l *Logger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf("INTERNAL ERROR: "+format, args...)

	l.mu.Lock()
	state := l.emitState()
	for _, s := range l.sinks {
		s.Emit(FatalLevel, msg, state)
		s.Emit(FatalLevel, bugReportLine, state)
	}
	l.mu.Unlock()

	l.exit()
}

// Default is the process-wide logger used by the package-level functions.
var Default = New()

// Config describes the sinks Init builds on the Default logger.
type Config struct {
	// Verbosity is the console (and optional file) severity threshold.
	// The zero value means VerboseLevel, matching the sink default.
	Verbosity Severity
	// Colorize enables ANSI severity-keyword highlighting on the console.
	Colorize bool
	// StdoutOnly routes error-tier console output to stdout.
	StdoutOnly bool
	// FilePath, when set, additionally registers a file sink.
	FilePath string
	// LineBuffered requests flush-per-line mode for the file sink.
	LineBuffered bool
}

// Init configures the Default logger with a console sink and, optionally, a
// file sink. Call Close when shutting down so file output is flushed.
func Init(cfg Config) error {
	if cfg.Verbosity == 0 {
		cfg.Verbosity = VerboseLevel
	}

	if cfg.Colorize {
		Default.AddSink(NewColorConsoleSink(cfg.Verbosity))
	} else {
		Default.AddSink(NewConsoleSink(cfg.Verbosity))
	}
	Default.SetStdoutOnly(cfg.StdoutOnly)

	if cfg.FilePath != "" {
		fs, err := NewFileSink(cfg.FilePath, cfg.LineBuffered, cfg.Verbosity)
		if err != nil {
			return err
		}
		Default.AddSink(fs)
	}
	return nil
}

// Close closes the Default logger's sinks.
func Close() error { return Default.Close() }

// Logf logs to the Default logger at an explicit severity.
func Logf(severity Severity, format string, args ...any) {
	Default.Logf(severity, format, args...)
}

// Debugf logs to the Default logger at DebugLevel.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Verbosef logs to the Default logger at VerboseLevel.
func Verbosef(format string, args ...any) { Default.Verbosef(format, args...) }

// Noticef logs to the Default logger at NoticeLevel.
func Noticef(format string, args ...any) { Default.Noticef(format, args...) }

// Warnf logs to the Default logger at WarningLevel.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Errorf logs to the Default logger at ErrorLevel.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }

// Fatalf logs to the Default logger at FatalLevel and terminates the process.
func Fatalf(format string, args ...any) { Default.Fatalf(format, args...) }
