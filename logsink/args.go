package logsink

import "fmt"

// ParseArgument consumes the command-line token at args[*i] when it is one
// of the logging arguments, mutating the caller-supplied console verbosity
// and the Logger's configuration as a side effect:
//
//	-q, --quiet           step verbosity one notch toward more-severe
//	--verbose             set verbosity to VerboseLevel
//	--debug               set verbosity to DebugLevel
//	-l, --logfile PATH    register a file sink at the current verbosity
//	-L, --logfile-lines PATH  same, line-buffered
//	--trace FILTER        enable trace output for FILTER ("" or "all" = everything)
//	--stdout-only         route error-tier console output to stdout
//
// The index is advanced past any consumed value argument. Recognized tokens
// return true (the caller should skip them); unrecognized tokens return
// false with a nil error. A recognized token with a bad or missing value
// returns true with the error.
func (l *Logger) ParseArgument(args []string, i *int, verbosity *Severity) (bool, error) {
	s := args[*i]

	switch s {
	case "-q", "--quiet":
		*verbosity = verbosity.Quieter()

	case "--verbose":
		*verbosity = VerboseLevel

	case "--debug":
		*verbosity = DebugLevel

	case "-l", "--logfile", "-L", "--logfile-lines":
		lineBuffered := s == "-L" || s == "--logfile-lines"
		if *i+1 >= len(args) {
			return true, fmt.Errorf("%s requires an argument", s)
		}
		*i++
		sink, err := NewFileSink(args[*i], lineBuffered, *verbosity)
		if err != nil {
			return true, err
		}
		l.AddSink(sink)

	case "--trace":
		if *i+1 >= len(args) {
			return true, fmt.Errorf("%s requires an argument", s)
		}
		*i++
		l.AddTraceFilter(args[*i])

	case "--stdout-only":
		l.SetStdoutOnly(true)

	default:
		return false, nil
	}

	return true, nil
}

// ParseArgument consumes a logging argument on behalf of the Default logger.
func ParseArgument(args []string, i *int, verbosity *Severity) (bool, error) {
	return Default.ParseArgument(args, i, verbosity)
}
