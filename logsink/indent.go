package logsink

import "sync"

// Indent increases the indentation depth applied by every sink and returns
// a restore function that undoes it. The restore function is idempotent, so
// the usual pattern is safe on every exit path, including panics:
//
//	defer lg.Indent()()
//
// The depth is a counter on the Logger shared by all goroutines logging
// through it; interleaved scopes from concurrent goroutines will see each
// other's depth.
func (l *Logger) Indent() (restore func()) {
	l.indentDepth.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() {
			l.indentDepth.Add(-1)
		})
	}
}

// IndentDepth returns the current indentation depth.
func (l *Logger) IndentDepth() int {
	return int(l.indentDepth.Load())
}

// Indent increases the Default logger's indentation depth.
func Indent() (restore func()) { return Default.Indent() }
