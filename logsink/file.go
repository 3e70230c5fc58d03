package logsink

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FileSink writes wrapped log text to a file it exclusively owns. Output is
// block-buffered by default; line-buffered mode flushes whenever a complete
// line has been written. Messages at WarningLevel or worse are always
// flushed immediately so a crash shortly after an error does not lose it.
type FileSink struct {
	baseSink

	file         *os.File
	w            *bufio.Writer
	lineBuffered bool
}

// NewFileSink creates (or truncates) the file at path and returns a sink
// writing to it. Failure to open the file is returned to the caller; a
// broken sink is never registered.
func NewFileSink(path string, lineBuffered bool, min Severity, opts ...SinkOption) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewFileSinkFromFile(f, lineBuffered, min, opts...), nil
}

// NewFileSinkFromFile adopts an already-open writable file. The sink takes
// ownership and closes it on Close.
func NewFileSinkFromFile(f *os.File, lineBuffered bool, min Severity, opts ...SinkOption) *FileSink {
	return &FileSink{
		baseSink:     newBaseSink(min, opts...),
		file:         f,
		w:            bufio.NewWriter(f),
		lineBuffered: lineBuffered,
	}
}

// Emit implements Sink.
func (s *FileSink) Emit(severity Severity, msg string, state EmitState) {
	if severity > s.minSeverity {
		return
	}

	wrapped := s.wrap(msg, state.IndentDepth)
	s.w.WriteString(wrapped)

	if severity <= WarningLevel || (s.lineBuffered && strings.IndexByte(wrapped, '\n') >= 0) {
		s.w.Flush()
	}

	s.noteLastChar(wrapped)
}

// Close flushes buffered output and closes the owned file.
func (s *FileSink) Close() error {
	flushErr := s.w.Flush()
	if err := s.file.Close(); err != nil {
		return err
	}
	return flushErr
}
