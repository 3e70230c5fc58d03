package logsink

// Default geometry for newly constructed sinks.
const (
	defaultIndentSize = 4
	defaultLineWidth  = 120
)

// EmitState carries the per-call registry state a sink needs while writing:
// the current indentation depth and whether error-tier output has been
// redirected to stdout. The owning Logger snapshots it once per fan-out so
// every sink in the dispatch sees the same values.
type EmitState struct {
	// IndentDepth is the number of indent units to prefix on each line.
	IndentDepth int
	// ForceStdout routes error-tier console output to stdout instead of stderr.
	ForceStdout bool
}

// Sink is a destination for filtered, formatted log text. Sinks are owned
// exclusively by the Logger they are registered with; the Logger closes
// them on teardown.
type Sink interface {
	// MinSeverity returns the sink's threshold. Messages less severe than
	// this are dropped without any formatting or I/O.
	MinSeverity() Severity

	// Emit writes one message. The message may contain embedded newlines
	// and need not end with one; the sink wraps, indents, and flushes
	// according to its own policy.
	Emit(severity Severity, msg string, state EmitState)

	// Close flushes buffered output and releases anything the sink owns.
	Close() error
}

// SinkOption adjusts the geometry of a sink under construction.
type SinkOption func(*baseSink)

// WithIndentSize sets the number of spaces per indentation level.
func WithIndentSize(n int) SinkOption {
	return func(b *baseSink) {
		if n >= 0 {
			b.indentSize = n
		}
	}
}

// WithLineWidth sets the column at which lines are wrapped.
func WithLineWidth(n int) SinkOption {
	return func(b *baseSink) {
		if n > 0 {
			b.lineWidth = n
		}
	}
}

// baseSink holds the state shared by all concrete sinks: the severity
// threshold, the wrap geometry, the trailing-newline flag, and the optional
// per-line preprocess hook.
type baseSink struct {
	minSeverity Severity
	indentSize  int
	lineWidth   int

	// lastNewline records whether the previous emit ended in '\n'; when it
	// did not, the next message continues that line and must not be
	// indented again.
	lastNewline bool

	// preprocess, if set, transforms each fully accumulated line before it
	// is appended to the wrapped output.
	preprocess func(line string) string
}

func newBaseSink(min Severity, opts ...SinkOption) baseSink {
	b := baseSink{
		minSeverity: min,
		indentSize:  defaultIndentSize,
		lineWidth:   defaultLineWidth,
		lastNewline: true,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// MinSeverity returns the sink's severity threshold.
func (b *baseSink) MinSeverity() Severity { return b.minSeverity }

// noteLastChar updates the trailing-newline flag from the text actually
// written. Empty output leaves the flag unchanged.
func (b *baseSink) noteLastChar(wrapped string) {
	if wrapped == "" {
		return
	}
	b.lastNewline = wrapped[len(wrapped)-1] == '\n'
}
