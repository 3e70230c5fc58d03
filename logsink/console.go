package logsink

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Dependency injection points for testing console output.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// ConsoleSink writes to stdout or stderr depending on severity. Output at
// WarningLevel or worse goes to stderr and is flushed on both sides of the
// write so critical messages stay visible and chronologically ordered even
// when later low-severity output sits in the stdout buffer.
type ConsoleSink struct {
	baseSink

	out *bufio.Writer
	err io.Writer
}

// NewConsoleSink returns a console sink with the given severity threshold.
// The line width is probed from the terminal when stdout is one, falling
// back to the default width otherwise.
func NewConsoleSink(min Severity, opts ...SinkOption) *ConsoleSink {
	c := &ConsoleSink{
		baseSink: newBaseSink(min, opts...),
		err:      outStderr,
	}
	c.out = bufio.NewWriter(outStdout)
	probeTermWidth(&c.baseSink)
	return c
}

// NewColorConsoleSink returns a console sink that additionally highlights
// severity keywords with ANSI colors.
func NewColorConsoleSink(min Severity, opts ...SinkOption) *ConsoleSink {
	c := NewConsoleSink(min, opts...)
	c.preprocess = colorizeLine
	return c
}

// probeTermWidth replaces the default line width with the real terminal
// width. An explicit WithLineWidth option wins over the probe.
func probeTermWidth(b *baseSink) {
	if b.lineWidth != defaultLineWidth {
		return
	}
	f, ok := outStdout.(*os.File)
	if !ok {
		return
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		b.lineWidth = w
	}
}

// Emit implements Sink.
func (c *ConsoleSink) Emit(severity Severity, msg string, state EmitState) {
	if severity > c.minSeverity {
		return
	}

	// Keep older buffered stdout output ahead of this stderr write.
	if severity <= WarningLevel {
		c.flush()
	}

	wrapped := c.wrap(msg, state.IndentDepth)
	if severity <= WarningLevel && !state.ForceStdout {
		io.WriteString(c.err, wrapped)
	} else {
		c.out.WriteString(wrapped)
	}

	// Make sure this message is displayed immediately even if we print
	// lower severity stuff later.
	if severity <= WarningLevel {
		c.flush()
	}

	c.noteLastChar(wrapped)
}

func (c *ConsoleSink) flush() {
	c.out.Flush()
}

// Close flushes pending output. The sink does not own the process streams,
// so nothing is closed.
func (c *ConsoleSink) Close() error {
	return c.out.Flush()
}
