package logsink

// Severity is the importance of a log message. Smaller values are more
// severe: a message is emitted by a sink iff its severity value is less
// than or equal to the sink's minimum-severity threshold.
type Severity int

const (
	// FatalLevel means the program state is unusable and we must exit now.
	FatalLevel Severity = iota + 1
	// ErrorLevel means the operation failed and cannot continue.
	ErrorLevel
	// WarningLevel means something looks wrong but we proceed at the user's risk.
	WarningLevel
	// NoticeLevel is useful information about progress.
	NoticeLevel
	// VerboseLevel is detail end users sometimes need, but not often.
	VerboseLevel
	// DebugLevel is extremely detailed output for people working on internals.
	DebugLevel
)

// AllLevels returns all severities, most severe first.
func AllLevels() []Severity {
	return []Severity{
		FatalLevel,
		ErrorLevel,
		WarningLevel,
		NoticeLevel,
		VerboseLevel,
		DebugLevel,
	}
}

// String returns the level name.
func (s Severity) String() string {
	switch s {
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case NoticeLevel:
		return "NOTICE"
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Quieter returns the severity one notch toward more-severe, saturating at
// ErrorLevel. This is the step applied by the --quiet argument.
func (s Severity) Quieter() Severity {
	switch s {
	case DebugLevel:
		return VerboseLevel
	case VerboseLevel:
		return NoticeLevel
	case NoticeLevel:
		return WarningLevel
	case WarningLevel:
		return ErrorLevel
	default:
		return s
	}
}
