package logsink

import (
	"fmt"
	"runtime"
	"strings"
)

// TraceAll is the wildcard trace filter matching every qualified name.
const TraceAll = "all"

// AddTraceFilter enables trace output for the given bare function name or
// enclosing type name. An empty or "all" filter resets the set to the
// wildcard, enabling every trace call site.
func (l *Logger) AddTraceFilter(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" || name == TraceAll {
		l.traceFilters = map[string]struct{}{TraceAll: {}}
		return
	}
	l.traceFilters[name] = struct{}{}
}

// LogTracef emits a high-volume debug trace message gated by the trace
// filter set. qualified is a fully qualified function signature; the
// enclosing type name (if any) or else the bare function name must be in
// the filter set for anything to be emitted. The output is a line with the
// qualified name in brackets followed by the formatted message, dispatched
// at DebugLevel.
func (l *Logger) LogTracef(qualified, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Bail before any formatting work unless some sink would accept DEBUG.
	if !l.debugSinkRegisteredLocked() {
		return
	}

	class, fn := splitQualifiedName(qualified)
	if !l.traceEnabledLocked(class, fn) {
		return
	}

	name := fn
	if class != "" {
		name = class + "::" + fn
	}
	l.emitLocked(DebugLevel, "["+name+"]\n"+fmt.Sprintf(format, args...))
}

// Tracef is the call-site convenience form of LogTracef: the qualified name
// is recovered from the calling function via the runtime.
func (l *Logger) Tracef(format string, args ...any) {
	l.LogTracef(callerQualifiedName(2), format, args...)
}

// LogTracef emits a trace message through the Default logger.
func LogTracef(qualified, format string, args ...any) {
	Default.LogTracef(qualified, format, args...)
}

// Tracef emits a trace message for the calling function through the
// Default logger.
func Tracef(format string, args ...any) {
	Default.LogTracef(callerQualifiedName(2), format, args...)
}

func (l *Logger) debugSinkRegisteredLocked() bool {
	for _, s := range l.sinks {
		if DebugLevel <= s.MinSeverity() {
			return true
		}
	}
	return false
}

func (l *Logger) traceEnabledLocked(class, fn string) bool {
	if _, ok := l.traceFilters[TraceAll]; ok {
		return true
	}
	if class != "" {
		if _, ok := l.traceFilters[class]; ok {
			return true
		}
	}
	_, ok := l.traceFilters[fn]
	return ok
}

// splitQualifiedName recovers the bare function name and, if present, the
// enclosing type name from a fully qualified function signature such as
// "void Widget::Resize(int, int)". The argument list starts at the last
// "(" and the name boundary is the last "::" before it; anything before
// that (return types, possibly themselves namespaced) is stripped. A
// signature without the expected delimiters falls back to being the name
// itself.
func splitQualifiedName(sig string) (class, fn string) {
	s := sig
	if i := strings.LastIndex(s, "("); i >= 0 {
		s = s[:i]
	}

	i := strings.LastIndex(s, "::")
	if i < 0 {
		// Free function; drop a leading return type if there is one.
		if j := strings.LastIndex(s, " "); j >= 0 {
			s = s[j+1:]
		}
		if s == "" {
			return "", sig
		}
		return "", s
	}

	fn = s[i+2:]
	class = s[:i]
	if j := strings.LastIndexAny(class, " :"); j >= 0 {
		class = class[j+1:]
	}
	if fn == "" {
		return "", sig
	}
	return class, fn
}

// callerQualifiedName derives a Class::Func style qualified name for the
// function skip frames up the stack, from the runtime's
// "path/pkg.(*Type).Method" naming.
func callerQualifiedName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "unknown"
	}

	full := f.Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	// full is now "pkg.(*Type).Method", "pkg.Type.Method" or "pkg.Func".
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}

	if i := strings.LastIndex(full, "."); i >= 0 {
		recv := strings.TrimSuffix(strings.TrimPrefix(full[:i], "(*"), ")")
		return recv + "::" + full[i+1:]
	}
	return full
}
