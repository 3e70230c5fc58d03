// Package logsink is a small embeddable logging facility with
// severity-filtered, multi-destination output and indentation-aware line
// wrapping.
//
// # Sinks
//
// A Logger fans every message out to an ordered list of sinks. Each sink
// filters by its own minimum severity, wraps long lines to its line width,
// prefixes each line with the current indentation, and decides when to
// flush. Three sink kinds are provided: a console sink that routes
// warning-and-worse output to stderr, a colorizing console sink that
// highlights severity keywords with ANSI escapes, and a file sink with
// line-buffered or block-buffered output.
//
// # Usage
//
// Configure the package-level Default logger once at startup:
//
//	logsink.Init(logsink.Config{Verbosity: logsink.NoticeLevel, Colorize: true})
//	defer logsink.Close()
//
//	logsink.Noticef("loaded %d modules\n", n)
//	logsink.Warnf("disk low\n")
//
// or build sinks explicitly:
//
//	lg := logsink.New()
//	lg.AddSink(logsink.NewConsoleSink(logsink.VerboseLevel))
//	lg.Errorf("cannot open %s\n", path)
//
// Nested operations indent their output with a scope:
//
//	logsink.Noticef("elaborating design\n")
//	done := logsink.Indent()
//	logsink.Verbosef("24 cells\n")
//	done()
//
// # Severity model
//
// Six levels, most severe first: FATAL, ERROR, WARNING, NOTICE, VERBOSE,
// DEBUG. A sink emits a message iff the message is at least as severe as
// the sink's threshold. Fatalf notifies every sink and then terminates the
// process; it is the designated crash-with-diagnostics path.
//
// # Trace filtering
//
// Tracef/LogTracef emit high-volume per-function debug output gated by an
// allow-list of function or type names, so a debug build can be noisy in
// just the code under investigation:
//
//	lg.AddTraceFilter("Widget")
//	lg.LogTracef("Widget::Resize(int, int)", "now %d x %d\n", w, h)
//
// # Concurrency
//
// Entry points may be called from any goroutine; one mutex per Logger
// serializes whole fan-outs, so messages never interleave across sinks.
// Sinks and trace filters are normally configured during single-threaded
// startup (see ParseArgument) and read thereafter.
package logsink
